package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "gt":
		return fmt.Sprintf("must be > %s", e.Param())
	case "lt":
		return fmt.Sprintf("must be < %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string // toml key, e.g. "error_rate"
	Message string
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed with %d error(s):", len(ve))
	for i, err := range ve {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their toml key.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Validate checks c and returns ValidationErrors describing every invalid
// field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := make(ValidationErrors, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, ValidationError{
			Field:   e.Field(),
			Message: getValidationMessage(e),
		})
	}
	return out
}
