package either

import (
	"fmt"

	"github.com/npillmayer/choice"
	"github.com/pkg/errors"
)

// Either is a value which is one of two alternatives.
//
// Haskell:
//
//     data Either a b = Left a | Right b
//
// The zero value is a Left holding the zero value of L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates an Either holding the left alternative l.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates an Either holding the right alternative r.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// When returns Right(right) if cond holds, Left(left) otherwise.
func When[L, R any](cond bool, right R, left L) Either[L, R] {
	if cond {
		return Right[L](right)
	}
	return Left[L, R](left)
}

// Unless is When with a negated condition.
func Unless[L, R any](cond bool, right R, left L) Either[L, R] {
	return When(!cond, right, left)
}

// --- Tags and access -------------------------------------------------------

// IsRight is true for a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft is true for a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// Get returns the right value. Calling Get on a Left panics with an error of
// kind choice.ErrInvalidProjection.
func (e Either[L, R]) Get() R {
	r, err := e.TryGet()
	if err != nil {
		tracer().Errorf("either: %v", err)
		panic(errors.WithStack(err))
	}
	return r
}

// TryGet returns the right value, or an error of kind
// choice.ErrInvalidProjection for a Left.
func (e Either[L, R]) TryGet() (R, error) {
	if !e.isRight {
		var r R
		return r, choice.Projection("tried to get right value of %s", e)
	}
	return e.right, nil
}

// GetOrElse returns the right value, if present, otherwise valIfLeft.
func (e Either[L, R]) GetOrElse(valIfLeft R) R {
	if e.isRight {
		return e.right
	}
	return valIfLeft
}

// OrNil returns a pointer to a copy of the right value, or nil for a Left.
func (e Either[L, R]) OrNil() *R {
	if e.isRight {
		r := e.right
		return &r
	}
	return nil
}

// Left returns the left projection of e.
func (e Either[L, R]) Left() LeftProjection[L, R] {
	return LeftProjection[L, R]{either: e}
}

// Swap exchanges the roles of left and right.
func (e Either[L, R]) Swap() Either[R, L] {
	return Either[R, L]{left: e.right, right: e.left, isRight: !e.isRight}
}

// --- Predicates and filtering ----------------------------------------------

// FilterOrElse keeps a Right if its value satisfies pred, and turns it into
// Left(orElse) otherwise. A Left is returned unchanged.
func (e Either[L, R]) FilterOrElse(pred func(R) bool, orElse L) Either[L, R] {
	if !e.isRight || pred(e.right) {
		return e
	}
	return Left[L, R](orElse)
}

// ForEach calls f with the right value. It does nothing for a Left.
func (e Either[L, R]) ForEach(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

// Exists is true if e is a Right and its value satisfies pred.
func (e Either[L, R]) Exists(pred func(R) bool) bool {
	return e.isRight && pred(e.right)
}

// Forall is true if e is a Left or its value satisfies pred.
func (e Either[L, R]) Forall(pred func(R) bool) bool {
	return !e.isRight || pred(e.right)
}

// String returns "Right(…)" or "Left(…)" for debugging purposes.
func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("Right(%v)", e.right)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}

// --- Combinators -----------------------------------------------------------

// Match calls onLeft or onRight, depending on the variant of e, and returns
// the result.
func Match[L, R, U any](e Either[L, R], onLeft func(L) U, onRight func(R) U) U {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// Fold is Match with the arguments reversed.
func Fold[L, R, U any](e Either[L, R], onRight func(R) U, onLeft func(L) U) U {
	return Match(e, onLeft, onRight)
}

// Map applies f to a right value. A Left is passed through.
func Map[L, R, U any](e Either[L, R], f func(R) U) Either[L, U] {
	if e.isRight {
		return Right[L](f(e.right))
	}
	return Left[L, U](e.left)
}

// Replace substitutes val for a right value. A Left is passed through.
func Replace[L, R, U any](e Either[L, R], val U) Either[L, U] {
	return Map(e, choice.Constantly[R](val))
}

// FlatMap applies f to a right value and returns its result. A Left is passed
// through.
func FlatMap[L, R, U any](e Either[L, R], f func(R) Either[L, U]) Either[L, U] {
	if e.isRight {
		return f(e.right)
	}
	return Left[L, U](e.left)
}

// Flatten removes one level of nesting.
func Flatten[L, R any](e Either[L, Either[L, R]]) Either[L, R] {
	return FlatMap(e, choice.Identity[Either[L, R]])
}

// Contains is true if e is a Right holding value.
func Contains[L any, R comparable](e Either[L, R], value R) bool {
	return e.Exists(func(r R) bool { return r == value })
}
