package validation

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/wneessen/go-mail"
)

// TagMailAddress names the rule accepting any address the mailer can put in
// a Reply-To header
const TagMailAddress = "mailaddress"

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators
func RegisterValidators(v *validator.Validate) {
	v.RegisterValidation("singleline", validateSingleLine)
	v.RegisterValidation(TagMailAddress, validateMailAddress)
}

// validateSingleLine rejects values that would break a mail header
func validateSingleLine(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), "\r\n")
}

func validateMailAddress(fl validator.FieldLevel) bool {
	return mail.NewMsg().ReplyTo(fl.Field().String()) == nil
}

// ValidationError represents a validation error
type ValidationError struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Value string `json:"value"`
}

// FormatValidationError flattens validator errors into field/tag pairs
func FormatValidationError(err error) []ValidationError {
	var result []ValidationError
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			result = append(result, ValidationError{
				Field: e.Field(),
				Tag:   e.Tag(),
				Value: e.Param(),
			})
		}
	}
	return result
}

// HasTag reports whether any error failed on the given tag
func HasTag(errs []ValidationError, tag string) bool {
	for _, e := range errs {
		if e.Tag == tag {
			return true
		}
	}
	return false
}
