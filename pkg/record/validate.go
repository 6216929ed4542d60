package record

import (
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator. Timestamps validate as their
// string form, so `required` rejects the zero time. `notblank` rejects
// whitespace-only strings.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		_ = validate.RegisterValidation("notblank", validators.NotBlank)
		validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
			ts, ok := field.Interface().(Timestamp)
			if !ok || ts.IsZero() {
				return nil
			}
			return ts.String()
		}, Timestamp{})
	})
	return validate
}

// Validate checks a record's common fields.
func Validate(r Record) error {
	return Validator().Struct(r)
}
