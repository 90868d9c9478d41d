package apperrors

import (
	"errors"
	"net/http"
)

// Error is an operational error carrying the HTTP status it maps to.
// Services return these for every expected failure; anything else is
// treated as an internal fault by the boundary error handler.
type Error struct {
	Status  int
	Message string
	// Fields holds per-field messages for validation failures.
	Fields map[string]string
}

func (e *Error) Error() string {
	return e.Message
}

// NewBadRequest returns a 400 error.
func NewBadRequest(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

// NewUnauthorized returns a 401 error.
func NewUnauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

// NewForbidden returns a 403 error.
func NewForbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

// NewNotFound returns a 404 error.
func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

// NewConflict returns a 409 error.
func NewConflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

// NewValidation returns a 422 error carrying per-field messages.
func NewValidation(fields map[string]string) *Error {
	return &Error{Status: http.StatusUnprocessableEntity, Message: "Validation failed", Fields: fields}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
