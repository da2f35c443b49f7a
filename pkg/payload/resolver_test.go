package payload

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/prompt"
	"github.com/japaniel/abfrag/pkg/prompt/prompttest"
	"github.com/japaniel/abfrag/pkg/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const oneVerb = `{"Verb":[{
  "infinitive_de": "fahren",
  "forms_de": ["", "fährt", "fuhr", "ist gefahren"],
  "en": "to drive",
  "irregular": true,
  "freq_percentile": 91.25
}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolveJSONFile(t *testing.T) {
	path := writeFile(t, "data.json", oneVerb)

	p, err := NewResolver(nil).Resolve(context.Background(), &path)
	require.NoError(t, err)
	require.Equal(t, vocab.KindVerb, p.Kind())
	require.Len(t, p.Verbs, 1)
	assert.Equal(t, vocab.Verb{
		InfinitiveDE:   "fahren",
		FormsDE:        []string{"", "fährt", "fuhr", "ist gefahren"},
		EN:             "to drive",
		Irregular:      true,
		FreqPercentile: 91.25,
	}, p.Verbs[0])
}

func TestResolveNonJSONIsInline(t *testing.T) {
	input := "data.txt"
	p, err := NewResolver(nil).Resolve(context.Background(), &input)
	require.NoError(t, err)
	assert.Equal(t, vocab.PlaceholderPayload(), p)

	input = "fahren"
	p, err = NewResolver(nil).Resolve(context.Background(), &input)
	require.NoError(t, err)
	assert.Equal(t, vocab.PlaceholderPayload(), p)
}

func TestResolveNilWithoutPrompter(t *testing.T) {
	p, err := NewResolver(nil).Resolve(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, vocab.PlaceholderPayload(), p)
}

func TestResolveMissingJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	_, err := NewResolver(nil).Resolve(context.Background(), &path)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Equal(t, apperr.KindIO, apperr.KindOf(err))
}

func TestResolveMalformedJSON(t *testing.T) {
	path := writeFile(t, "bad.json", `{"Verb": [`)
	_, err := NewResolver(nil).Resolve(context.Background(), &path)
	require.Error(t, err)
	assert.Equal(t, apperr.KindSerialization, apperr.KindOf(err))
}

func TestLoadJSONRejectsOtherExtensions(t *testing.T) {
	for _, name := range []string{"data.txt", "data", "data.json.bak"} {
		path := writeFile(t, name, oneVerb)
		_, err := LoadJSON(path)
		require.ErrorIs(t, err, ErrInvalidFormat, name)
		assert.Equal(t, apperr.KindCommand, apperr.KindOf(err))
	}
}

func TestResolveNilRunsInteractiveEntry(t *testing.T) {
	p := prompttest.New(
		"abfahren", "", "fährt ab; fuhr ab; ist abgefahren", "to depart", "of a train",
		"Der Zug fährt ab.", "", "ja", "61.5", "n",
	)

	got, err := NewResolver(p).Resolve(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, got.Verbs, 1)
	v := got.Verbs[0]
	assert.Equal(t, "abfahren", v.InfinitiveDE)
	assert.Nil(t, v.InfinitiveExpandedDE)
	assert.Equal(t, []string{"", "fährt ab", "fuhr ab", "ist abgefahren"}, v.FormsDE)
	assert.Equal(t, "to depart", v.EN)
	assert.Equal(t, "of a train", v.Expansion())
	assert.Equal(t, []string{"Der Zug fährt ab."}, v.ExamplesDE)
	assert.Nil(t, v.ExamplesEN)
	assert.True(t, v.Irregular)
	assert.InDelta(t, 61.5, v.FreqPercentile, 0.001)
	require.NoError(t, Validate(got))
}

func TestInteractiveEntryMultipleVerbs(t *testing.T) {
	p := prompttest.New(
		"sein", "", "; ist; war; ist gewesen", "to be", "", "", "", "y", "", "y",
		"gehen", "", "geht;ging;ist gegangen", "to go", "", "", "", "y", "99", "n",
	)

	got, err := NewResolver(p).FromPrompt(context.Background())
	require.NoError(t, err)
	require.Len(t, got.Verbs, 2)
	assert.Equal(t, []string{"", "ist", "war", "ist gewesen"}, got.Verbs[0].FormsDE)
	assert.Zero(t, got.Verbs[0].FreqPercentile)
	assert.Equal(t, "gehen", got.Verbs[1].InfinitiveDE)
}

func TestInteractiveEntryBadNumber(t *testing.T) {
	p := prompttest.New("sein", "", "ist;war;ist gewesen", "to be", "", "", "", "y", "viel")

	_, err := NewResolver(p).FromPrompt(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindNumericParse, apperr.KindOf(err))
}

func TestInteractiveEntryBadYesNo(t *testing.T) {
	p := prompttest.New("sein", "", "ist;war;ist gewesen", "to be", "", "", "", "vielleicht")

	_, err := NewResolver(p).FromPrompt(context.Background())
	require.Error(t, err)
	assert.Equal(t, apperr.KindCommand, apperr.KindOf(err))
}

func TestInteractiveEntryInterrupted(t *testing.T) {
	_, err := NewResolver(prompttest.New("sein")).FromPrompt(context.Background())
	require.ErrorIs(t, err, prompt.ErrInterrupted)
}
