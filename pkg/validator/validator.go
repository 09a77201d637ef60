// Package validator wires go-playground/validator into echo so the
// validate tags on request DTOs are enforced on every bound payload.
package validator

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator echo uses for c.Validate calls
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate checks the struct's validate tags; handlers map a non-nil
// error to an invalid-argument response
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}
