package maybe

import (
	"github.com/npillmayer/choice/either"
)

// ToEither converts Just(x) to Right(x) and Nothing to Left(leftValue).
func ToEither[L, T any](m Maybe[T], leftValue L) either.Either[L, T] {
	return Match(m,
		either.Right[L, T],
		func() either.Either[L, T] { return either.Left[L, T](leftValue) },
	)
}

// FromRight converts Right(r) to Just(r) and any Left to Nothing.
func FromRight[L, R any](e either.Either[L, R]) Maybe[R] {
	return either.Match(e, func(L) Maybe[R] { return Nothing[R]() }, Just[R])
}

// FromLeft converts Left(l) to Just(l) and any Right to Nothing.
func FromLeft[L, R any](e either.Either[L, R]) Maybe[L] {
	return either.Match(e, Just[L], func(R) Maybe[L] { return Nothing[L]() })
}
