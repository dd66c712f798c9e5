// Package validator plugs go-playground validation into echo.
package validator

import (
	validator "github.com/go-playground/validator/v10"

	domainerrors "cityhub/internal/domain/errors"
)

// CustomValidator wraps a validator.Validate instance as echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the HTTP server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks the struct tags of a bound request payload. Failures are
// surfaced as the public validation error; field detail stays server-side.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	return nil
}
