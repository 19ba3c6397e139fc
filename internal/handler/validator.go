package handler

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

var (
	validatorOnce sync.Once
	validate      *Validator
)

// InitValidator builds the shared validator and registers the custom tags
func InitValidator() {
	validatorOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("descriptor", validateDescriptor)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validator errors into a field -> message map
// without leaking Go struct names
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = "Invalid request format"
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "descriptor":
			errs[field] = "Must be a non-blank descriptor without control characters"
		case "max":
			errs[field] = fmt.Sprintf("Must be at most %s", e.Param())
		case "min":
			errs[field] = fmt.Sprintf("Must be at least %s", e.Param())
		case "gte":
			errs[field] = fmt.Sprintf("Must be %s or more", e.Param())
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

// validateDescriptor accepts any non-blank string free of control characters.
// Grammar errors are reported by the parser, not here.
func validateDescriptor(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.TrimSpace(s) == "" {
		return false
	}
	return strings.IndexFunc(s, unicode.IsControl) < 0
}
