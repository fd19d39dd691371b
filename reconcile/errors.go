package reconcile

import (
	"errors"
	"fmt"
)

// UnsupportedTransitionError indicates a desired configuration that cannot
// be converged to from the current instance state, e.g. narrowing a
// structured module to a bare opaque reference. It is fatal to the Update
// call that produced it.
type UnsupportedTransitionError struct {
	err error
}

func (e UnsupportedTransitionError) Unwrap() error {
	return e.err
}

func (e UnsupportedTransitionError) Error() string {
	return e.err.Error()
}

// NewUnsupportedTransitionErrorf returns an UnsupportedTransitionError with
// a formatted message.
func NewUnsupportedTransitionErrorf(msg string, args ...interface{}) error {
	return UnsupportedTransitionError{err: fmt.Errorf(msg, args...)}
}

// IsUnsupportedTransitionError returns whether err is or wraps an
// UnsupportedTransitionError.
func IsUnsupportedTransitionError(err error) bool {
	var target UnsupportedTransitionError
	return errors.As(err, &target)
}
