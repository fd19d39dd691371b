package mesh

import (
	"errors"
	"fmt"
)

// ValidationError indicates a malformed or unsupported configuration. It is
// always fatal to the call that produced it and is raised before any
// collaborator interaction.
type ValidationError struct {
	err error
}

func (e ValidationError) Unwrap() error {
	return e.err
}

func (e ValidationError) Error() string {
	return e.err.Error()
}

// NewValidationErrorf returns a ValidationError with a formatted message.
func NewValidationErrorf(msg string, args ...interface{}) error {
	return ValidationError{err: fmt.Errorf(msg, args...)}
}

// IsValidationError returns whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}
