package orchestrators

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Struct fields are checked in
// declaration order, so the first reported failure is the first missing
// field in the documented field order.
var validate = validator.New()

func init() {
	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidationError reports the first missing or invalid input field.
type ValidationError struct {
	Field string
}

// Error returns the user-facing message naming the field.
func (e *ValidationError) Error() string {
	return "field " + e.Field + " is required"
}

// checkRequired runs struct validation and converts the first failure into a
// ValidationError naming the offending field.
func checkRequired(v any) error {
	if err := validate.Struct(v); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{Field: errs[0].Field()}
		}
		return err
	}
	return nil
}
