/*
Package result specializes Either to the result of a computation that may
fail: Result[T] is an Either[error, T].

From Elm:

    A `Result` is the result of a computation that may fail. This is a great
    way to manage errors in Elm.

    # Handling Errors
    @docs withDefault, toMaybe, fromMaybe, mapError

Results bridge to Go's (value, error) convention with Of and Unpack:

    r := result.Of(strconv.Atoi(s))
    n, err := result.Unpack(either.Map(r, double))

*/
package result

import (
	"github.com/npillmayer/choice"
	"github.com/npillmayer/choice/either"
	"github.com/npillmayer/choice/maybe"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'choice.result'.
func tracer() tracing.Trace {
	return tracing.Select("choice.result")
}

// Result is the outcome of a computation: Right(value) or Left(error).
//
// The zero value of a Result is a failure without an error. Unpack reports it
// as ErrZeroResult.
type Result[T any] = either.Either[error, T]

// ErrZeroResult marks a failed Result which does not carry an error, i.e. the
// zero value of Result, or a call to Err with a nil error.
var ErrZeroResult = errors.New("result: failure without error")

// Ok creates a successful Result.
func Ok[T any](x T) Result[T] {
	return either.Right[error](x)
}

// Err creates a failed Result. err must not be nil.
func Err[T any](err error) Result[T] {
	if err == nil {
		err = errors.Wrap(ErrZeroResult, "Err called with nil error")
		tracer().Errorf("%v", err)
		panic(err)
	}
	return either.Left[error, T](err)
}

// Of converts a (value, error) pair into a Result. A non-nil err makes a
// failed Result, discarding x.
func Of[T any](x T, err error) Result[T] {
	if err != nil {
		return Err[T](err)
	}
	return Ok(x)
}

// Try calls f and wraps its return values into a Result.
func Try[T any](f func() (T, error)) Result[T] {
	return Of(f())
}

// Unpack converts r back into Go's (value, error) convention. A failed
// Result never unpacks to a nil error: the zero Result yields ErrZeroResult.
func Unpack[T any](r Result[T]) (T, error) {
	if r.IsLeft() {
		var zero T
		if err := r.Left().Get(); err != nil {
			return zero, err
		}
		return zero, ErrZeroResult
	}
	return r.Get(), nil
}

// MapError applies f to the error of a failed Result. f must not return nil.
func MapError[T any](r Result[T], f func(error) error) Result[T] {
	return either.FlatMapLeft(r.Left(), choice.Compose(f, Err[T]))
}

// WithDefault returns the value of r, or def if r failed.
func WithDefault[T any](r Result[T], def T) T {
	return r.GetOrElse(def)
}

// ToMaybe drops the error of a failed Result.
func ToMaybe[T any](r Result[T]) maybe.Maybe[T] {
	return maybe.FromRight(r)
}

// FromMaybe converts Nothing into a failed Result with error err.
func FromMaybe[T any](m maybe.Maybe[T], err error) Result[T] {
	return maybe.Match(m, Ok[T], func() Result[T] { return Err[T](err) })
}
