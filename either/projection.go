package either

import (
	"github.com/npillmayer/choice"
	"github.com/pkg/errors"
)

// LeftProjection offers the vocabulary of Either for the left value.
// It is created by Either.Left and wraps the Either it is projected from,
// never altering the payload. All operations leave a Right untouched.
type LeftProjection[L, R any] struct {
	either Either[L, R]
}

// Either returns the Either the projection has been created from.
func (p LeftProjection[L, R]) Either() Either[L, R] {
	return p.either
}

// Get returns the left value. Calling Get on the projection of a Right panics
// with an error of kind choice.ErrInvalidProjection.
func (p LeftProjection[L, R]) Get() L {
	l, err := p.TryGet()
	if err != nil {
		tracer().Errorf("either: %v", err)
		panic(errors.WithStack(err))
	}
	return l
}

// TryGet returns the left value, or an error of kind
// choice.ErrInvalidProjection for the projection of a Right.
func (p LeftProjection[L, R]) TryGet() (L, error) {
	if p.either.isRight {
		var l L
		return l, choice.Projection("tried to get left value of a left-projected %s", p.either)
	}
	return p.either.left, nil
}

// GetOrElse returns the left value, if present, otherwise valIfRight.
func (p LeftProjection[L, R]) GetOrElse(valIfRight L) L {
	return Match(p.either,
		choice.Identity[L],
		choice.Constantly[R](valIfRight),
	)
}

// OrNil returns a pointer to a copy of the left value, or nil for a Right.
func (p LeftProjection[L, R]) OrNil() *L {
	return Match(p.either,
		func(l L) *L { return &l },
		func(R) *L { return nil },
	)
}

// FilterOrElse keeps a Left if its value satisfies pred, and turns it into
// Right(orElse) otherwise. A Right is returned unchanged.
func (p LeftProjection[L, R]) FilterOrElse(pred func(L) bool, orElse R) Either[L, R] {
	return Match(p.either,
		func(l L) Either[L, R] {
			if pred(l) {
				return p.either
			}
			return Right[L](orElse)
		},
		func(R) Either[L, R] { return p.either },
	)
}

// ForEach calls f with the left value. It does nothing for a Right.
func (p LeftProjection[L, R]) ForEach(f func(L)) {
	Match(p.either,
		func(l L) struct{} { f(l); return struct{}{} },
		func(R) struct{} { return struct{}{} },
	)
}

// Exists is true if the projected Either is a Left satisfying pred.
func (p LeftProjection[L, R]) Exists(pred func(L) bool) bool {
	return Match(p.either, pred, choice.Constantly[R](false))
}

// Forall is true if the projected Either is a Right or its left value
// satisfies pred.
func (p LeftProjection[L, R]) Forall(pred func(L) bool) bool {
	return Match(p.either, pred, choice.Constantly[R](true))
}

// String is "Left(…)" or "Right(…)", as for the projected Either.
func (p LeftProjection[L, R]) String() string {
	return p.either.String()
}

// --- Combinators on the left projection ------------------------------------

// MapLeft applies f to a left value. A Right is passed through.
func MapLeft[L, R, U any](p LeftProjection[L, R], f func(L) U) Either[U, R] {
	return Match(p.either,
		func(l L) Either[U, R] { return Left[U, R](f(l)) },
		Right[U, R],
	)
}

// ReplaceLeft substitutes val for a left value. A Right is passed through.
func ReplaceLeft[L, R, U any](p LeftProjection[L, R], val U) Either[U, R] {
	return MapLeft(p, choice.Constantly[L](val))
}

// FlatMapLeft applies f to a left value and returns its result. A Right is
// passed through.
func FlatMapLeft[L, R, U any](p LeftProjection[L, R], f func(L) Either[U, R]) Either[U, R] {
	return Match(p.either, f, Right[U, R])
}

// FlattenLeft removes one level of nesting from a left value.
func FlattenLeft[L, R any](p LeftProjection[Either[L, R], R]) Either[L, R] {
	return FlatMapLeft(p, choice.Identity[Either[L, R]])
}

// ContainsLeft is true if the projected Either is a Left holding value.
func ContainsLeft[L comparable, R any](p LeftProjection[L, R], value L) bool {
	return p.Exists(func(l L) bool { return l == value })
}
