package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// validatorInstance returns the shared validator; it caches struct metadata.
func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}

			return name
		})
	})

	return validate
}

// Validate checks cfg against its struct tags and reports every violation.
func Validate(cfg *Config) error {
	if cfg == nil {
		return ErrConfigNil
	}
	err := validatorInstance().Struct(cfg)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("config: validation error: %w", err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatValidationError(e))
	}

	return fmt.Errorf("config: validation failed:\n  - %s", strings.Join(msgs, "\n  - "))
}

// formatValidationError renders one field error using the yaml key.
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s (got: %v)", e.Field(), e.Param(), e.Value())
	case "max":
		return fmt.Sprintf("%s must be at most %s (got: %v)", e.Field(), e.Param(), e.Value())
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s] (got: %v)", e.Field(), e.Param(), e.Value())
	case "filepath":
		return fmt.Sprintf("%s must be a valid file path (got: %v)", e.Field(), e.Value())
	default:
		return fmt.Sprintf("%s failed validation '%s' (got: %v)", e.Field(), e.Tag(), e.Value())
	}
}
