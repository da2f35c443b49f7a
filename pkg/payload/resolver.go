package payload

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/prompt"
	"github.com/japaniel/abfrag/pkg/vocab"
)

// ErrInvalidFormat is returned when a payload file is not JSON.
var ErrInvalidFormat = errors.New("unrecognized filetype")

const jsonExt = ".json"

// Resolver turns the upsert command argument into records.
type Resolver struct {
	prompter prompt.Prompter
}

// NewResolver returns a Resolver. With a nil prompter, a missing argument
// resolves to the placeholder payload instead of interactive entry.
func NewResolver(p prompt.Prompter) *Resolver {
	return &Resolver{prompter: p}
}

// Resolve picks the payload source from input:
//   - nil: interactive entry
//   - "*.json": the JSON file at that path
//   - anything else: inline text
func (r *Resolver) Resolve(ctx context.Context, input *string) (vocab.UpsertPayload, error) {
	switch {
	case input == nil:
		if r.prompter == nil {
			return vocab.PlaceholderPayload(), nil
		}
		return r.FromPrompt(ctx)
	case strings.HasSuffix(*input, jsonExt):
		return LoadJSON(*input)
	default:
		return ParseInline(*input)
	}
}

// LoadJSON reads a payload file. Only the .json extension is accepted.
func LoadJSON(path string) (vocab.UpsertPayload, error) {
	if filepath.Ext(path) != jsonExt {
		return vocab.UpsertPayload{}, apperr.E(apperr.KindCommand, "load payload "+path, ErrInvalidFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return vocab.UpsertPayload{}, apperr.E(apperr.KindIO, "load payload", err)
	}

	var p vocab.UpsertPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return vocab.UpsertPayload{}, apperr.E(apperr.KindSerialization, "parse payload "+path, err)
	}
	slog.Debug("payload loaded", "path", path, "kind", p.Kind(), "records", p.Len())
	return p, nil
}

// ParseInline handles a raw text argument. No inline grammar exists yet, so
// it yields the placeholder payload, which fails validation before any write.
func ParseInline(raw string) (vocab.UpsertPayload, error) {
	slog.Warn("inline payloads are not supported, using placeholder record", "input", raw)
	return vocab.PlaceholderPayload(), nil
}
