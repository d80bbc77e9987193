/*
Package either implements a generic sum type of two alternatives.

An Either[L, R] holds either a Left value of type L or a Right value of type R.
By convention Right is the primary (successful) case, and all transformation
operations act on it, leaving a Left untouched:

    safeDivide := func(n int) either.Either[string, float64] {
        if n == 0 {
            return either.Left[string, float64]("division by zero")
        }
        return either.Right[string](3 / float64(n))
    }
    x := either.FlatMap(either.Right[string](6), safeDivide)   // Right(0.5)

The same vocabulary operates on the Left value through a LeftProjection:

    y := either.MapLeft(e.Left(), strings.ToUpper)

Go methods may not introduce type parameters of their own, therefore
operations changing a type argument (Map, FlatMap, Flatten, Fold, …) are
package level functions.

Get panics for a Left (and Left().Get() for a Right) with an error of kind
choice.ErrInvalidProjection.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package either

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'choice.either'.
func tracer() tracing.Trace {
	return tracing.Select("choice.either")
}
