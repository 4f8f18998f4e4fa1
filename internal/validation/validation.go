package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank rejects strings that are empty after trimming whitespace.
	_ = validate.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
}

// Errors maps a field name to a readable message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+e[field])
	}
	return strings.Join(parts, "; ")
}

// Validate checks s against its validate tags. It returns nil or Errors.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	out := make(Errors, len(validationErrs))
	for _, fieldErr := range validationErrs {
		field := fieldErr.Field()
		switch fieldErr.Tag() {
		case "required", "notblank":
			out[field] = "This field is required"
		case "numeric":
			out[field] = "Must be a number"
		case "max":
			out[field] = "Value is too long (max: " + fieldErr.Param() + ")"
		default:
			out[field] = "Invalid value"
		}
	}
	return out
}
