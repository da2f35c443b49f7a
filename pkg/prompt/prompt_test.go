package prompt

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalAsk(t *testing.T) {
	var out bytes.Buffer
	term := NewTerminal(strings.NewReader("fahren\r\n fährt \nfuhr"), &out)
	ctx := context.Background()

	got, err := term.Ask(ctx, "Infinitiv")
	require.NoError(t, err)
	assert.Equal(t, "fahren", got)

	got, err = term.Ask(ctx, "Präsens")
	require.NoError(t, err)
	assert.Equal(t, " fährt ", got)

	// Last line without a newline is still an answer.
	got, err = term.Ask(ctx, "Präteritum")
	require.NoError(t, err)
	assert.Equal(t, "fuhr", got)

	_, err = term.Ask(ctx, "Perfekt")
	require.ErrorIs(t, err, ErrInterrupted)
	assert.Equal(t, apperr.KindPrompt, apperr.KindOf(err))

	assert.Contains(t, out.String(), "Infinitiv")
	assert.Contains(t, out.String(), "Perfekt")
}

func TestTerminalAskCanceled(t *testing.T) {
	term := NewTerminal(strings.NewReader("x\n"), &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := term.Ask(ctx, "Infinitiv")
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, apperr.KindPrompt, apperr.KindOf(err))
}

func TestTerminalAskCanceledWhileReading(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	term := NewTerminal(pr, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := term.Ask(ctx, "Präsens")
		done <- err
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, apperr.KindPrompt, apperr.KindOf(err))
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after the context was canceled")
	}

	// The line typed after the cancel goes to the next Ask.
	go func() { _, _ = pw.Write([]byte("fährt\n")) }()
	got, err := term.Ask(context.Background(), "Präsens")
	require.NoError(t, err)
	assert.Equal(t, "fährt", got)
}
