package payload

import (
	"testing"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	ok := vocab.Verb{InfinitiveDE: "gehen", EN: "to go", FreqPercentile: 100}

	tests := []struct {
		name    string
		payload vocab.UpsertPayload
		wantErr string
	}{
		{name: "valid verbs", payload: vocab.VerbPayload(ok)},
		{name: "empty payload", payload: vocab.VerbPayload()},
		{name: "placeholder", payload: vocab.PlaceholderPayload(), wantErr: "InfinitiveDE"},
		{
			name:    "freq out of range",
			payload: vocab.VerbPayload(ok, vocab.Verb{InfinitiveDE: "x", EN: "x", FreqPercentile: 101}),
			wantErr: "record 1",
		},
		{
			name:    "noun without gloss",
			payload: vocab.NounPayload(vocab.Noun{DE: "Haus"}),
			wantErr: "Field: EN",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.payload)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Equal(t, apperr.KindCommand, apperr.KindOf(err))
		})
	}
}
