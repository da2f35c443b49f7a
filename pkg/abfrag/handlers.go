package abfrag

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/db"
	"github.com/japaniel/abfrag/pkg/payload"
	"github.com/japaniel/abfrag/pkg/prompt"
	"github.com/japaniel/abfrag/pkg/quiz"
	"github.com/japaniel/abfrag/pkg/vocab"
)

// ErrNounsUnsupported is returned for noun payloads; nouns have no table yet.
var ErrNounsUnsupported = errors.New("noun upsert is not supported yet")

// VerbExerciseOptions configures one verb quiz.
type VerbExerciseOptions struct {
	Irregular  bool
	FreqBias   bool
	WordAmount int32
}

// DefaultVerbOptions is the exercise run when no subcommand is given.
func DefaultVerbOptions() VerbExerciseOptions {
	return VerbExerciseOptions{Irregular: true, FreqBias: true, WordAmount: 10}
}

// VerbStore is the storage the handlers need.
type VerbStore interface {
	QueryVerbs(ctx context.Context, f db.VerbFilter) ([]vocab.Verb, error)
	UpsertVerb(ctx context.Context, v vocab.Verb) error
	CountVerbs(ctx context.Context) (int, error)
}

// App wires storage, prompting and output for the CLI commands.
type App struct {
	Store    VerbStore
	Prompter prompt.Prompter
	Out      io.Writer
}

// StartVerbExercise samples verbs and runs a quiz session over them.
func (a *App) StartVerbExercise(ctx context.Context, opts VerbExerciseOptions) (quiz.Score, error) {
	if opts.FreqBias {
		slog.Info("freq bias requested; sampling stays uniform")
	}
	verbs, err := a.Store.QueryVerbs(ctx, db.VerbFilter{Irregular: opts.Irregular, Limit: opts.WordAmount})
	if err != nil {
		return quiz.Score{}, err
	}
	slog.Debug("verbs sampled", "irregular", opts.Irregular, "requested", opts.WordAmount, "got", len(verbs))
	return quiz.NewSession(a.Prompter, a.Out).Run(ctx, verbs)
}

// HandleUpsert resolves input into records, validates them and writes each
// verb. It returns the number of records written.
func (a *App) HandleUpsert(ctx context.Context, input *string) (int, error) {
	p, err := payload.NewResolver(a.Prompter).Resolve(ctx, input)
	if err != nil {
		return 0, err
	}
	if p.Kind() == vocab.KindNoun {
		return 0, apperr.E(apperr.KindCommand, "upsert", ErrNounsUnsupported)
	}
	if err := payload.Validate(p); err != nil {
		return 0, err
	}

	for i, v := range p.Verbs {
		if err := a.Store.UpsertVerb(ctx, v); err != nil {
			return i, err
		}
		slog.Debug("verb upserted", "de", v.InfinitiveDE)
	}
	total, err := a.Store.CountVerbs(ctx)
	if err != nil {
		slog.Warn("count verbs after upsert", "err", err)
	}
	slog.Info("upsert complete", "records", len(p.Verbs), "total", total)
	return len(p.Verbs), nil
}
