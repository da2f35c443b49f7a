package vocab

// Kind names a record variant.
type Kind string

const (
	KindVerb Kind = "Verb"
	KindNoun Kind = "Noun"
)

// Word is implemented by every record variant.
type Word interface {
	// Key returns the natural primary key (the German headword).
	Key() string
	Kind() Kind
}

// Verb is a German verb with its English gloss and conjugation forms.
// FormsDE is index addressed: 1 present, 2 preterite, 3 perfect participle.
// Index 0 is unused by the quiz.
type Verb struct {
	InfinitiveDE         string   `json:"infinitive_de" validate:"required"`
	InfinitiveExpandedDE *string  `json:"infinitive_expanded_de,omitempty"`
	ExamplesDE           []string `json:"examples_de,omitempty"`
	FormsDE              []string `json:"forms_de"`
	EN                   string   `json:"en" validate:"required"`
	ENExpanded           *string  `json:"en_expanded,omitempty"`
	ExamplesEN           []string `json:"examples_en,omitempty"`
	Irregular            bool     `json:"irregular"`
	FreqPercentile       float32  `json:"freq_percentile" validate:"gte=0,lte=100"`
}

func (v Verb) Key() string { return v.InfinitiveDE }
func (v Verb) Kind() Kind  { return KindVerb }

// EmptyVerb returns a verb with every field at its zero value.
func EmptyVerb() Verb { return Verb{FormsDE: []string{}} }

// Noun is a German noun with its English gloss.
type Noun struct {
	DE             string   `json:"de" validate:"required"`
	DEExpanded     *string  `json:"de_expanded,omitempty"`
	ExamplesDE     []string `json:"examples_de,omitempty"`
	EN             string   `json:"en" validate:"required"`
	ENExpanded     *string  `json:"en_expanded,omitempty"`
	ExamplesEN     []string `json:"examples_en,omitempty"`
	Gender         Gender   `json:"gender"`
	FreqPercentile float32  `json:"freq_percentile" validate:"gte=0,lte=100"`
}

func (n Noun) Key() string { return n.DE }
func (n Noun) Kind() Kind  { return KindNoun }

// EmptyNoun returns a noun with every field at its zero value and neutral gender.
func EmptyNoun() Noun { return Noun{Gender: Neutral} }

// Expansion returns the English expansion or "" when absent.
func (v Verb) Expansion() string {
	if v.ENExpanded == nil {
		return ""
	}
	return *v.ENExpanded
}

// Form returns forms_de[i] and whether it exists.
func (v Verb) Form(i int) (string, bool) {
	if i < 0 || i >= len(v.FormsDE) {
		return "", false
	}
	return v.FormsDE[i], true
}
