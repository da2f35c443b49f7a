package quiz

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/prompt"
	"github.com/japaniel/abfrag/pkg/vocab"
)

// ErrIncompleteForms is returned when a verb lacks a conjugation form the quiz asks for.
var ErrIncompleteForms = errors.New("verb has fewer than 4 conjugation forms")

// Tense is one question asked per verb. FormIndex -1 means the infinitive.
type Tense struct {
	Label     string
	FormIndex int
}

// Tenses are asked in this order for every verb.
var Tenses = []Tense{
	{Label: "Infinitiv", FormIndex: -1},
	{Label: "Präsens", FormIndex: 1},
	{Label: "Präteritum", FormIndex: 2},
	{Label: "Perfekt", FormIndex: 3},
}

// Score counts correct answers out of answers given.
type Score struct {
	Correct int
	Total   int
}

func (s *Score) add(o Score) {
	s.Correct += o.Correct
	s.Total += o.Total
}

// Session drives one quiz over a list of verbs.
type Session struct {
	prompter prompt.Prompter
	out      io.Writer
}

func NewSession(p prompt.Prompter, out io.Writer) *Session {
	return &Session{prompter: p, out: out}
}

// FormatAnswered renders the feedback row shown after an answer. The
// reference is always shown.
func FormatAnswered(answer, reference, tense string) string {
	glyph := "❌"
	if IsCorrect(answer, reference) {
		glyph = "✅"
	}
	return fmt.Sprintf("%16s │ %-16s │ %s %s", tense, answer, glyph, reference)
}

func reference(v vocab.Verb, t Tense) (string, error) {
	if t.FormIndex < 0 {
		return v.InfinitiveDE, nil
	}
	f, ok := v.Form(t.FormIndex)
	if !ok {
		return "", apperr.E(apperr.KindCommand, "quiz "+v.InfinitiveDE,
			fmt.Errorf("%w (missing %s, index %d)", ErrIncompleteForms, t.Label, t.FormIndex))
	}
	return f, nil
}

// Run asks every tense of every verb in order and prints the final score.
// A prompt failure or an incomplete verb aborts the session.
func (s *Session) Run(ctx context.Context, verbs []vocab.Verb) (Score, error) {
	var total Score
	for _, v := range verbs {
		sc, err := s.askVerb(ctx, v)
		if err != nil {
			return total, err
		}
		total.add(sc)
		fmt.Fprintln(s.out)
	}
	fmt.Fprintf(s.out, "🇩🇪 %d correct out of %d! 🇩🇪\n\n", total.Correct, total.Total)
	slog.Debug("quiz finished", "verbs", len(verbs), "correct", total.Correct, "total", total.Total)
	return total, nil
}

func (s *Session) askVerb(ctx context.Context, v vocab.Verb) (Score, error) {
	refs := make([]string, len(Tenses))
	for i, t := range Tenses {
		r, err := reference(v, t)
		if err != nil {
			return Score{}, err
		}
		refs[i] = r
	}

	expansion := ""
	if e := v.Expansion(); e != "" {
		expansion = "(" + e + ")"
	}
	fmt.Fprintf(s.out, "%18s %s\n", v.EN, expansion)

	var sc Score
	for i, t := range Tenses {
		answer, err := s.prompter.Ask(ctx, t.Label)
		if err != nil {
			return Score{}, err
		}
		fmt.Fprintln(s.out, FormatAnswered(answer, refs[i], t.Label))
		sc.Total++
		if IsCorrect(answer, refs[i]) {
			sc.Correct++
		}
	}
	return sc, nil
}
