package core

import "github.com/pkg/errors"

// FieldError ties an error message to a specific request field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError is a user-facing rejection: a bad placement, an edit on a
// repeat member, an out-of-range schedule. It wraps the sentinel that caused
// it so callers can match with errors.Is.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

func (err ValidationError) Unwrap() error { return err.Err }

type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
