package maybe

import (
	"fmt"

	"github.com/npillmayer/choice"
	"github.com/pkg/errors"
)

// Maybe holds an optional value of type T.
type Maybe[T any] struct {
	value T
	just  bool
}

// Just creates a Maybe holding x.
func Just[T any](x T) Maybe[T] {
	return Maybe[T]{value: x, just: true}
}

// Nothing returns the empty Maybe. All Nothing values of a type are equal.
func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Empty is a synonym for Nothing.
func Empty[T any]() Maybe[T] {
	return Maybe[T]{}
}

// When returns Just(x) if cond holds, Nothing otherwise.
func When[T any](cond bool, x T) Maybe[T] {
	if cond {
		return Just(x)
	}
	return Nothing[T]()
}

// Unless is When with a negated condition.
func Unless[T any](cond bool, x T) Maybe[T] {
	return When(!cond, x)
}

// Of converts Go's comma-ok idiom into a Maybe.
//
//     m := maybe.Of(dict["key"])    // won't compile, use:
//     v, ok := dict["key"]
//     m := maybe.Of(v, ok)
//
func Of[T any](x T, ok bool) Maybe[T] {
	return When(ok, x)
}

// FromPointer returns Just(*p), or Nothing for p == nil.
func FromPointer[T any](p *T) Maybe[T] {
	if p == nil {
		return Nothing[T]()
	}
	return Just(*p)
}

// --- API -------------------------------------------------------------------

// IsEmpty is true for Nothing.
func (m Maybe[T]) IsEmpty() bool {
	return !m.just
}

// IsJust is true if m holds a value.
func (m Maybe[T]) IsJust() bool {
	return m.just
}

// Get returns the value of m. Get on Nothing panics with an error of kind
// choice.ErrEmptyAccess.
func (m Maybe[T]) Get() T {
	v, err := m.TryGet()
	if err != nil {
		tracer().Errorf("maybe: %v", err)
		panic(errors.WithStack(err))
	}
	return v
}

// TryGet returns the value of m, or an error of kind choice.ErrEmptyAccess.
func (m Maybe[T]) TryGet() (T, error) {
	if !m.just {
		return m.value, choice.EmptyAccess("tried to get value of Nothing")
	}
	return m.value, nil
}

// Value returns the value of m in comma-ok style.
func (m Maybe[T]) Value() (T, bool) {
	return m.value, m.just
}

// GetOrElse returns the value of m, if present, otherwise def.
func (m Maybe[T]) GetOrElse(def T) T {
	if m.just {
		return m.value
	}
	return def
}

// OrNil returns a pointer to a copy of the value, or nil for Nothing.
func (m Maybe[T]) OrNil() *T {
	if m.just {
		v := m.value
		return &v
	}
	return nil
}

// OrElse returns m if it holds a value, alternative otherwise.
func (m Maybe[T]) OrElse(alternative Maybe[T]) Maybe[T] {
	if m.just {
		return m
	}
	return alternative
}

// Filter keeps the value of m if it satisfies pred.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.just && pred(m.value) {
		return m
	}
	return Nothing[T]()
}

// FilterNot keeps the value of m if it does not satisfy pred.
func (m Maybe[T]) FilterNot(pred func(T) bool) Maybe[T] {
	return m.Filter(choice.Not(pred))
}

// ForEach calls f with the value of m, if present.
func (m Maybe[T]) ForEach(f func(T)) {
	if m.just {
		f(m.value)
	}
}

// Exists is true if m holds a value satisfying pred.
func (m Maybe[T]) Exists(pred func(T) bool) bool {
	return m.just && pred(m.value)
}

// Forall is true if m is Nothing or its value satisfies pred.
func (m Maybe[T]) Forall(pred func(T) bool) bool {
	return !m.just || pred(m.value)
}

// String returns "Just(…)" or "Nothing" for debugging purposes.
func (m Maybe[T]) String() string {
	if m.just {
		return fmt.Sprintf("Just(%v)", m.value)
	}
	return "Nothing"
}

// --- Combinators -----------------------------------------------------------

// Match calls ifJust with the value of m, or ifNothing, and returns the result.
func Match[T, U any](m Maybe[T], ifJust func(T) U, ifNothing func() U) U {
	if m.just {
		return ifJust(m.value)
	}
	return ifNothing()
}

// Map applies f to the value of m. Nothing maps to Nothing.
func Map[T, U any](m Maybe[T], f func(T) U) Maybe[U] {
	if m.just {
		return Just(f(m.value))
	}
	return Nothing[U]()
}

// Replace substitutes val for the value of m. Nothing stays Nothing.
func Replace[T, U any](m Maybe[T], val U) Maybe[U] {
	return Map(m, choice.Constantly[T](val))
}

// Fold returns f applied to the value of m, or ifNothing. ifNothing is
// evaluated by the caller in any case; use Match for a lazily computed
// default.
func Fold[T, U any](m Maybe[T], f func(T) U, ifNothing U) U {
	return Map(m, f).GetOrElse(ifNothing)
}

// FlatMap applies f to the value of m and returns its result. Nothing maps to
// Nothing.
func FlatMap[T, U any](m Maybe[T], f func(T) Maybe[U]) Maybe[U] {
	return Fold(m, f, Nothing[U]())
}

// Flatten removes one level of nesting.
func Flatten[T any](m Maybe[Maybe[T]]) Maybe[T] {
	return m.GetOrElse(Nothing[T]())
}

// Contains is true if m holds value.
func Contains[T comparable](m Maybe[T], value T) bool {
	return m.Exists(func(x T) bool { return x == value })
}

// OneOf returns the first of ms holding a value, or Nothing.
func OneOf[T any](ms ...Maybe[T]) Maybe[T] {
	for _, m := range ms {
		if m.just {
			return m
		}
	}
	return Nothing[T]()
}
