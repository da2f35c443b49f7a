// Package prompttest provides a scripted Prompter for tests.
package prompttest

import (
	"context"
	"sync"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/prompt"
)

// Scripted answers prompts from a fixed list and records what was asked.
type Scripted struct {
	mu      sync.Mutex
	answers []string
	Asked   []string
}

func New(answers ...string) *Scripted {
	return &Scripted{answers: answers}
}

// Ask returns the next scripted answer, or prompt.ErrInterrupted once the
// script runs out.
func (s *Scripted) Ask(_ context.Context, help string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Asked = append(s.Asked, help)
	if len(s.answers) == 0 {
		return "", apperr.E(apperr.KindPrompt, "ask "+help, prompt.ErrInterrupted)
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}
