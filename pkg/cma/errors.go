package cma

import (
	"errors"
	"fmt"
)

// Error codes for structured error reporting.
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeConflict      = "CONFLICT"
	ErrCodeRemote        = "REMOTE_ERROR"
	ErrCodePollExhausted = "POLL_EXHAUSTED"
)

// CMAError is the structured error type for all adapter operations.
type CMAError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	Cause   error          `json:"-"`
}

func (e *CMAError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CMAError) Unwrap() error {
	return e.Cause
}

// NewError creates a new CMAError.
func NewError(code, message string) *CMAError {
	return &CMAError{Code: code, Message: message}
}

// NewErrorf creates a new CMAError with a formatted message.
func NewErrorf(code, format string, args ...any) *CMAError {
	return &CMAError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithCause attaches an underlying cause.
func (e *CMAError) WithCause(err error) *CMAError {
	e.Cause = err
	return e
}

// WithDetails attaches key-value details.
func (e *CMAError) WithDetails(details map[string]any) *CMAError {
	e.Details = details
	return e
}

// IsCode reports whether err (or anything it wraps) is a CMAError
// carrying the given code.
func IsCode(err error, code string) bool {
	var ce *CMAError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}
