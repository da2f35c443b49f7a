package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/japaniel/abfrag/pkg/apperr"
)

// ErrInterrupted is returned when input ends before an answer is submitted.
var ErrInterrupted = errors.New("input interrupted")

// Prompter asks for a single line of text. help names what is being asked.
type Prompter interface {
	Ask(ctx context.Context, help string) (string, error)
}

type readResult struct {
	line string
	err  error
}

// Terminal reads answers line by line from in and writes prompts to out.
// A read abandoned by a cancelled Ask is handed to the next Ask.
type Terminal struct {
	in      *bufio.Reader
	out     io.Writer
	pending chan readResult
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Ask prints the help text and blocks until a line is submitted or ctx is
// done. The trailing line break is stripped; nothing else is trimmed.
func (t *Terminal) Ask(ctx context.Context, help string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", apperr.E(apperr.KindPrompt, "ask "+help, err)
	}
	if _, err := fmt.Fprintf(t.out, "%18s › ", help); err != nil {
		return "", apperr.E(apperr.KindIO, "ask "+help, err)
	}

	if t.pending == nil {
		ch := make(chan readResult, 1)
		t.pending = ch
		go func() {
			line, err := t.in.ReadString('\n')
			ch <- readResult{line: line, err: err}
		}()
	}

	var r readResult
	select {
	case <-ctx.Done():
		return "", apperr.E(apperr.KindPrompt, "ask "+help, ctx.Err())
	case r = <-t.pending:
		t.pending = nil
	}

	line, err := r.line, r.err
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		if errors.Is(err, io.EOF) {
			err = ErrInterrupted
		}
		return "", apperr.E(apperr.KindPrompt, "ask "+help, err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
