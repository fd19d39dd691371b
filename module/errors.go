package module

import (
	"errors"
	"fmt"
)

// ErrUnknownEndpoint is a sentinel error returned when resolving an
// endpoint the local registry has no metadata for.
var ErrUnknownEndpoint = fmt.Errorf("endpoint is not known to the local registry")

// ReadFailureError indicates that the actual state of an instance could not
// be fetched. It is fatal to the reconciliation call that triggered the
// read, since no diff is possible without actual state.
type ReadFailureError struct {
	err error
}

func (e ReadFailureError) Unwrap() error {
	return e.err
}

func (e ReadFailureError) Error() string {
	return e.err.Error()
}

// NewReadFailureErrorf returns a ReadFailureError with a formatted message.
func NewReadFailureErrorf(msg string, args ...interface{}) error {
	return ReadFailureError{err: fmt.Errorf(msg, args...)}
}

// IsReadFailureError returns whether err is or wraps a ReadFailureError.
func IsReadFailureError(err error) bool {
	var target ReadFailureError
	return errors.As(err, &target)
}
