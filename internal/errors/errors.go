package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode represents a Satchel error code.
type ErrorCode string

const (
	ErrValidation     ErrorCode = "VALIDATION"      // 400: malformed field value
	ErrInvalidRequest ErrorCode = "INVALID_REQUEST" // 400: bad operation parameters
	ErrEmptyQuery     ErrorCode = "EMPTY_QUERY"     // 400: blank search term
	ErrNotFound       ErrorCode = "NOT_FOUND"       // 404: referenced name/title absent
	ErrAlreadyExists  ErrorCode = "ALREADY_EXISTS"  // 409: name/title collision
	ErrInternal       ErrorCode = "INTERNAL"        // 500
)

// SatchelError represents a structured error with code, status, and details.
type SatchelError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SatchelError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidation creates a 400 error for a malformed field value.
// The message carries the human-readable reason (bad phone/email/address/date).
func NewValidation(msg string) *SatchelError {
	return &SatchelError{
		Code:    ErrValidation,
		Status:  400,
		Message: msg,
	}
}

// NewInvalidRequest creates a 400 error for invalid operation parameters.
func NewInvalidRequest(msg string) *SatchelError {
	return &SatchelError{
		Code:    ErrInvalidRequest,
		Status:  400,
		Message: msg,
	}
}

// NewEmptyQuery creates a 400 error for a blank search term.
func NewEmptyQuery() *SatchelError {
	return &SatchelError{
		Code:    ErrEmptyQuery,
		Status:  400,
		Message: "search query must not be empty",
	}
}

// NewNotFound creates a 404 error for an absent contact, note, or phone.
func NewNotFound(kind, identifier string) *SatchelError {
	return &SatchelError{
		Code:    ErrNotFound,
		Status:  404,
		Message: fmt.Sprintf("%s not found: %s", kind, identifier),
		Details: map[string]any{"kind": kind, "identifier": identifier},
	}
}

// NewAlreadyExists creates a 409 error for a name/title collision.
func NewAlreadyExists(kind, key string) *SatchelError {
	return &SatchelError{
		Code:    ErrAlreadyExists,
		Status:  409,
		Message: fmt.Sprintf("%s with key %q already exists", kind, key),
		Details: map[string]any{"kind": kind, "key": key},
	}
}

// NewInternal creates a 500 error for unexpected internal errors.
// The user-facing message stays generic; the original error is kept in
// Details for logging.
func NewInternal(err error) *SatchelError {
	details := map[string]any{}
	if err != nil {
		details["internal_error"] = err.Error()
	}
	return &SatchelError{
		Code:    ErrInternal,
		Status:  500,
		Message: "an internal error occurred",
		Details: details,
	}
}

// Is checks if an error is (or wraps) a SatchelError with the given code.
func Is(err error, code ErrorCode) bool {
	var sErr *SatchelError
	if stderrors.As(err, &sErr) {
		return sErr.Code == code
	}
	return false
}
