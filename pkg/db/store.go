package db

import (
	"context"
	"io"

	sq "github.com/Masterminds/squirrel"
	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/vocab"
	"github.com/jmoiron/sqlx"
)

// DBExecutor lets Store run against either *sqlx.DB or *sqlx.Tx.
type DBExecutor interface {
	sqlx.ExtContext
}

// VerbFilter selects verbs for a quiz.
type VerbFilter struct {
	Irregular bool
	Limit     int32
}

var verbColumns = []string{
	"de",
	"de_expanded",
	"de_examples",
	"de_forms",
	"en",
	"en_expanded",
	"en_examples",
	"irregular",
	"freq_percentile",
}

// verbRow is the stored shape of a Verb; list fields are delimiter-joined.
type verbRow struct {
	DE             string  `db:"de"`
	DEExpanded     *string `db:"de_expanded"`
	DEExamples     *string `db:"de_examples"`
	DEForms        string  `db:"de_forms"`
	EN             string  `db:"en"`
	ENExpanded     *string `db:"en_expanded"`
	ENExamples     *string `db:"en_examples"`
	Irregular      bool    `db:"irregular"`
	FreqPercentile float32 `db:"freq_percentile"`
}

func (r verbRow) toVerb() vocab.Verb {
	return vocab.Verb{
		InfinitiveDE:         r.DE,
		InfinitiveExpandedDE: r.DEExpanded,
		ExamplesDE:           vocab.DecodeOptionalList(r.DEExamples),
		FormsDE:              vocab.DecodeList(r.DEForms),
		EN:                   r.EN,
		ENExpanded:           r.ENExpanded,
		ExamplesEN:           vocab.DecodeOptionalList(r.ENExamples),
		Irregular:            r.Irregular,
		FreqPercentile:       r.FreqPercentile,
	}
}

func fromVerb(v vocab.Verb) (verbRow, error) {
	forms, err := vocab.EncodeList(v.FormsDE)
	if err != nil {
		return verbRow{}, err
	}
	deEx, err := vocab.EncodeOptionalList(v.ExamplesDE)
	if err != nil {
		return verbRow{}, err
	}
	enEx, err := vocab.EncodeOptionalList(v.ExamplesEN)
	if err != nil {
		return verbRow{}, err
	}
	return verbRow{
		DE:             v.InfinitiveDE,
		DEExpanded:     v.InfinitiveExpandedDE,
		DEExamples:     deEx,
		DEForms:        forms,
		EN:             v.EN,
		ENExpanded:     v.ENExpanded,
		ENExamples:     enEx,
		Irregular:      v.Irregular,
		FreqPercentile: v.FreqPercentile,
	}, nil
}

// Store reads and writes vocabulary records.
type Store struct {
	db DBExecutor
}

// NewStore wraps an executor. Close closes it when it is closable.
func NewStore(db DBExecutor) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	if c, ok := s.db.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// QueryVerbs returns up to f.Limit verbs with a matching irregular flag in
// random order.
func (s *Store) QueryVerbs(ctx context.Context, f VerbFilter) ([]vocab.Verb, error) {
	if f.Limit < 0 {
		return nil, apperr.Errorf(apperr.KindCommand, "query verbs", "word amount must not be negative, got %d", f.Limit)
	}
	if f.Limit == 0 {
		return []vocab.Verb{}, nil
	}

	query, args, err := sq.Select(verbColumns...).
		From("verbs").
		Where(sq.Eq{"irregular": f.Irregular}).
		OrderBy("RANDOM()").
		Limit(uint64(f.Limit)).
		ToSql()
	if err != nil {
		return nil, &StorageError{Op: "build verb query", Err: err}
	}

	var rows []verbRow
	if err := sqlx.SelectContext(ctx, s.db, &rows, query, args...); err != nil {
		return nil, &StorageError{Op: "query verbs", Err: err}
	}

	out := make([]vocab.Verb, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toVerb())
	}
	return out, nil
}

// UpsertVerb inserts v or replaces the stored verb with the same infinitive.
func (s *Store) UpsertVerb(ctx context.Context, v vocab.Verb) error {
	r, err := fromVerb(v)
	if err != nil {
		return &StorageError{Op: "encode verb " + v.InfinitiveDE, Err: err}
	}

	query, args, err := sq.Replace("verbs").
		Columns(verbColumns...).
		Values(r.DE, r.DEExpanded, r.DEExamples, r.DEForms, r.EN, r.ENExpanded, r.ENExamples, r.Irregular, r.FreqPercentile).
		ToSql()
	if err != nil {
		return &StorageError{Op: "build verb upsert", Err: err}
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return &StorageError{Op: "upsert verb " + v.InfinitiveDE, Err: err}
	}
	return nil
}

// CountVerbs returns the number of stored verbs.
func (s *Store) CountVerbs(ctx context.Context) (int, error) {
	var n int
	if err := sqlx.GetContext(ctx, s.db, &n, `SELECT COUNT(*) FROM verbs`); err != nil {
		return 0, &StorageError{Op: "count verbs", Err: err}
	}
	return n, nil
}
