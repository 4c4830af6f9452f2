// Package validation wires go-playground/validator into echo's request
// validation hook
package validation

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/go-playground/validator/v10"
)

// RequestValidator implements echo.Validator
type RequestValidator struct {
	validate *validator.Validate
}

// New creates a new request validator
func New() *RequestValidator {
	return &RequestValidator{
		validate: validator.New(),
	}
}

// Validate validates a bound request struct and converts failures into
// 400-level HTTP errors
func (v *RequestValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return httperror.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}
