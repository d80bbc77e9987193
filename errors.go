package choice

import "github.com/pkg/errors"

// ErrInvalidProjection is the error kind for accessing a payload on the variant
// which does not hold it, e.g. calling Get on a Left.
var ErrInvalidProjection = errors.New("invalid projection")

// ErrEmptyAccess is raised for Get on an empty Maybe. It is an
// ErrInvalidProjection as well.
var ErrEmptyAccess = errors.WithMessage(ErrInvalidProjection, "empty access")

// Projection returns an error of kind ErrInvalidProjection with a message
// describing the failed access. It does not record a stack trace; Get adds
// one before panicking.
func Projection(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrInvalidProjection, format, args...)
}

// EmptyAccess returns an error of kind ErrEmptyAccess with a message.
func EmptyAccess(format string, args ...interface{}) error {
	return errors.WithMessagef(ErrEmptyAccess, format, args...)
}
