// Package apperror defines the error kinds services return to handlers.
package apperror

import "errors"

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
)

// Error pairs an error kind with the message shown to API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Validation reports a missing or malformed request field.
func Validation(msg string) error {
	return &Error{Kind: ErrValidation, Message: msg}
}

// NotFound reports a reference to a record that does not exist.
func NotFound(msg string) error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Conflict reports a uniqueness violation.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Message: msg}
}

// Message returns the client-facing message of err, or "" when err does not
// carry one.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return ""
}
