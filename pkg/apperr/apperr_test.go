package apperr

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type storageErr struct{}

func (storageErr) Error() string { return "storage" }
func (storageErr) Kind() Kind    { return KindDatabase }

func TestEWrapsCause(t *testing.T) {
	err := E(KindIO, "read payload", fs.ErrNotExist)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, "read payload: file does not exist", err.Error())
	assert.Equal(t, KindIO, KindOf(err))
}

func TestENilCause(t *testing.T) {
	assert.NoError(t, E(KindIO, "noop", nil))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"plain", errors.New("boom"), KindCommand},
		{"kinded", storageErr{}, KindDatabase},
		{"wrapped kinded", fmt.Errorf("upsert: %w", storageErr{}), KindDatabase},
		{"outermost wins", E(KindPrompt, "ask", storageErr{}), KindPrompt},
		{"errorf", Errorf(KindNumericParse, "freq", "bad %q", "x"), KindNumericParse},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "migration", KindMigration.String())
	assert.Equal(t, "delimited-text", KindDelimited.String())
	assert.Equal(t, "command", Kind(99).String())
}
