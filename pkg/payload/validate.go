package payload

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/japaniel/abfrag/pkg/apperr"
	"github.com/japaniel/abfrag/pkg/vocab"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate checks every record of p before it is written.
func Validate(p vocab.UpsertPayload) error {
	for i, w := range p.Words() {
		if err := validate.Struct(w); err != nil {
			var verrs validator.ValidationErrors
			if !errors.As(err, &verrs) {
				return apperr.E(apperr.KindCommand, "validate payload", err)
			}
			var msgs []string
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("Field: %s, Tag: %s, Param: %s", fe.Field(), fe.Tag(), fe.Param()))
			}
			return apperr.Errorf(apperr.KindCommand, "validate payload",
				"%s record %d (%q) invalid: %s", w.Kind(), i, w.Key(), strings.Join(msgs, "; "))
		}
	}
	return nil
}
