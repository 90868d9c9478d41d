package handlers

import (
	"fmt"

	"kasuwa/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// validateStruct runs validator tags over a request body and converts
// failures into a 422 validation error with per-field messages.
func validateStruct(v *validator.Validate, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make(map[string]string)
	for _, e := range validationErrors {
		fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return apperrors.NewValidation(fields)
}
