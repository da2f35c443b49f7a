package vocab

import (
	"encoding/json"
	"fmt"
)

// UpsertPayload carries either verbs or nouns, never both.
// On the wire it is an object with a single "Verb" or "Noun" key.
type UpsertPayload struct {
	kind  Kind
	Verbs []Verb
	Nouns []Noun
}

// VerbPayload wraps verbs into a payload.
func VerbPayload(verbs ...Verb) UpsertPayload {
	if verbs == nil {
		verbs = []Verb{}
	}
	return UpsertPayload{kind: KindVerb, Verbs: verbs}
}

// NounPayload wraps nouns into a payload.
func NounPayload(nouns ...Noun) UpsertPayload {
	if nouns == nil {
		nouns = []Noun{}
	}
	return UpsertPayload{kind: KindNoun, Nouns: nouns}
}

// PlaceholderPayload is the single empty verb returned where no real input exists.
func PlaceholderPayload() UpsertPayload {
	return VerbPayload(EmptyVerb())
}

// Kind reports which variant the payload holds.
func (p UpsertPayload) Kind() Kind { return p.kind }

// Len returns the number of records in the payload.
func (p UpsertPayload) Len() int {
	if p.kind == KindNoun {
		return len(p.Nouns)
	}
	return len(p.Verbs)
}

// Words returns the records as the Word capability.
func (p UpsertPayload) Words() []Word {
	out := make([]Word, 0, p.Len())
	switch p.kind {
	case KindVerb:
		for _, v := range p.Verbs {
			out = append(out, v)
		}
	case KindNoun:
		for _, n := range p.Nouns {
			out = append(out, n)
		}
	}
	return out
}

func (p UpsertPayload) MarshalJSON() ([]byte, error) {
	switch p.kind {
	case KindVerb:
		return json.Marshal(map[Kind][]Verb{KindVerb: p.Verbs})
	case KindNoun:
		return json.Marshal(map[Kind][]Noun{KindNoun: p.Nouns})
	}
	return nil, fmt.Errorf("upsert payload has no variant")
}

func (p *UpsertPayload) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 1 {
		return fmt.Errorf("upsert payload must have exactly one of %q or %q, got %d keys", KindVerb, KindNoun, len(raw))
	}
	for key, body := range raw {
		switch Kind(key) {
		case KindVerb:
			var verbs []Verb
			if err := json.Unmarshal(body, &verbs); err != nil {
				return fmt.Errorf("decode %s records: %w", key, err)
			}
			*p = VerbPayload(verbs...)
		case KindNoun:
			var nouns []Noun
			if err := json.Unmarshal(body, &nouns); err != nil {
				return fmt.Errorf("decode %s records: %w", key, err)
			}
			*p = NounPayload(nouns...)
		default:
			return fmt.Errorf("unknown upsert payload variant %q", key)
		}
	}
	return nil
}

// UnmarshalJSON also accepts the column-style field names (de, de_forms, ...)
// used by older datasets.
func (v *Verb) UnmarshalJSON(data []byte) error {
	type plain Verb
	var aux struct {
		plain
		DE         *string  `json:"de"`
		DEExpanded *string  `json:"de_expanded"`
		DEExamples []string `json:"de_examples"`
		DEForms    []string `json:"de_forms"`
		ENExamples []string `json:"en_examples"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	out := Verb(aux.plain)
	if out.InfinitiveDE == "" && aux.DE != nil {
		out.InfinitiveDE = *aux.DE
	}
	if out.InfinitiveExpandedDE == nil {
		out.InfinitiveExpandedDE = aux.DEExpanded
	}
	if out.ExamplesDE == nil {
		out.ExamplesDE = aux.DEExamples
	}
	if out.FormsDE == nil {
		out.FormsDE = aux.DEForms
	}
	if out.ExamplesEN == nil {
		out.ExamplesEN = aux.ENExamples
	}
	if out.FormsDE == nil {
		out.FormsDE = []string{}
	}
	*v = out
	return nil
}

// UnmarshalJSON accepts en_examples as an alias of examples_en. The gender
// key is required.
func (n *Noun) UnmarshalJSON(data []byte) error {
	type plain Noun
	var aux struct {
		plain
		Gender     *Gender  `json:"gender"`
		DEExamples []string `json:"de_examples"`
		ENExamples []string `json:"en_examples"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.Gender == nil {
		return fmt.Errorf("noun %q: missing gender", aux.DE)
	}
	out := Noun(aux.plain)
	out.Gender = *aux.Gender
	if out.ExamplesDE == nil {
		out.ExamplesDE = aux.DEExamples
	}
	if out.ExamplesEN == nil {
		out.ExamplesEN = aux.ENExamples
	}
	*n = out
	return nil
}
