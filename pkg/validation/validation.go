package validation

import "github.com/go-playground/validator/v10"

// Shared validator instance; DTOs declare their rules via `validate` tags.
var validate = validator.New()

// Struct validates a DTO against its `validate` tags.
func Struct(s any) error {
	return validate.Struct(s)
}
