package payload

import (
	"context"
	"strconv"
	"strings"

	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/vocab"
)

// FromPrompt asks for verbs field by field until the user declines another.
func (r *Resolver) FromPrompt(ctx context.Context) (vocab.UpsertPayload, error) {
	var verbs []vocab.Verb
	for {
		v, err := r.askVerb(ctx)
		if err != nil {
			return vocab.UpsertPayload{}, err
		}
		verbs = append(verbs, v)

		more, err := r.askBool(ctx, "another (y/n)")
		if err != nil {
			return vocab.UpsertPayload{}, err
		}
		if !more {
			return vocab.VerbPayload(verbs...), nil
		}
	}
}

func (r *Resolver) askVerb(ctx context.Context) (vocab.Verb, error) {
	v := vocab.EmptyVerb()
	var err error

	if v.InfinitiveDE, err = r.ask(ctx, "infinitive"); err != nil {
		return v, err
	}
	if v.InfinitiveExpandedDE, err = r.askOptional(ctx, "infinitive note"); err != nil {
		return v, err
	}
	forms, err := r.ask(ctx, "forms (präs;prät;perf)")
	if err != nil {
		return v, err
	}
	v.FormsDE = normalizeForms(vocab.SplitInput(forms))
	if v.EN, err = r.ask(ctx, "english"); err != nil {
		return v, err
	}
	if v.ENExpanded, err = r.askOptional(ctx, "english note"); err != nil {
		return v, err
	}
	if v.ExamplesDE, err = r.askList(ctx, "examples de"); err != nil {
		return v, err
	}
	if v.ExamplesEN, err = r.askList(ctx, "examples en"); err != nil {
		return v, err
	}
	if v.Irregular, err = r.askBool(ctx, "irregular (y/n)"); err != nil {
		return v, err
	}
	if v.FreqPercentile, err = r.askFloat(ctx, "freq percentile"); err != nil {
		return v, err
	}
	return v, nil
}

// normalizeForms puts three entered forms at indices 1-3, leaving index 0 empty.
func normalizeForms(forms []string) []string {
	if len(forms) == 3 {
		return append([]string{""}, forms...)
	}
	if forms == nil {
		return []string{}
	}
	return forms
}

func (r *Resolver) ask(ctx context.Context, help string) (string, error) {
	s, err := r.prompter.Ask(ctx, help)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(s), nil
}

func (r *Resolver) askOptional(ctx context.Context, help string) (*string, error) {
	s, err := r.ask(ctx, help)
	if err != nil || s == "" {
		return nil, err
	}
	return &s, nil
}

func (r *Resolver) askList(ctx context.Context, help string) ([]string, error) {
	s, err := r.ask(ctx, help)
	if err != nil {
		return nil, err
	}
	return vocab.SplitInput(s), nil
}

func (r *Resolver) askBool(ctx context.Context, help string) (bool, error) {
	s, err := r.ask(ctx, help)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(s) {
	case "y", "yes", "j", "ja", "true":
		return true, nil
	case "", "n", "no", "nein", "false":
		return false, nil
	}
	return false, apperr.Errorf(apperr.KindCommand, help, "expected y or n, got %q", s)
}

func (r *Resolver) askFloat(ctx context.Context, help string) (float32, error) {
	s, err := r.ask(ctx, help)
	if err != nil || s == "" {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return 0, apperr.E(apperr.KindNumericParse, help, err)
	}
	return float32(f), nil
}
