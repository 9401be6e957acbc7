package studio

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/thinkscotty/contentspark/internal/ai"
	"github.com/thinkscotty/contentspark/internal/i18n"
	"github.com/thinkscotty/contentspark/internal/models"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("topic", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		_ = v.RegisterValidation("tone", func(fl validator.FieldLevel) bool {
			return models.Tone(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("image_style", func(fl validator.FieldLevel) bool {
			return models.ImageStyle(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("quote_category", func(fl validator.FieldLevel) bool {
			return models.QuoteCategory(fl.Field().String()).Valid()
		})

		validateInst = v
	})

	return validateInst
}

// validateRequest checks req and converts the first failure into an InputError.
// topicKey selects the message used for a missing topic; requests without a
// topic field pass "".
func (s *Studio) validateRequest(req any, topicKey string) error {
	err := validatorInstance().Struct(req)
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return &ai.InputError{Message: err.Error()}
	}

	fe := ves[0]
	value := fmt.Sprint(fe.Value())

	switch fe.Field() {
	case "Topic":
		return &ai.InputError{Message: s.msgs.T(topicKey)}
	case "Tone":
		return &ai.InputError{Message: s.msgs.T(i18n.InvalidTone, value)}
	case "ImageStyle":
		return &ai.InputError{Message: s.msgs.T(i18n.InvalidImageStyle, value)}
	case "Category":
		return &ai.InputError{Message: s.msgs.T(i18n.InvalidCategory, value)}
	default:
		return &ai.InputError{Message: fe.Error()}
	}
}
