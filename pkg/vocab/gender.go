package vocab

import (
	"encoding/json"
	"fmt"
)

// Gender is the grammatical gender of a noun.
type Gender int

const (
	Feminine Gender = iota
	Masculine
	Neutral
)

func (g Gender) String() string {
	switch g {
	case Feminine:
		return "Feminine"
	case Masculine:
		return "Masculine"
	case Neutral:
		return "Neutral"
	}
	return fmt.Sprintf("Gender(%d)", int(g))
}

// ParseGender maps the serialized name back to a Gender.
func ParseGender(s string) (Gender, error) {
	switch s {
	case "Feminine":
		return Feminine, nil
	case "Masculine":
		return Masculine, nil
	case "Neutral":
		return Neutral, nil
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

func (g Gender) MarshalJSON() ([]byte, error) {
	if g < Feminine || g > Neutral {
		return nil, fmt.Errorf("invalid gender %d", int(g))
	}
	return json.Marshal(g.String())
}

func (g *Gender) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("gender must be a string: %w", err)
	}
	parsed, err := ParseGender(s)
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
