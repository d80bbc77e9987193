/*
Package maybe implements an option type: a value or its absence.

A Maybe[T] is either Just(x) or Nothing. The zero value of Maybe[T] is
Nothing, which makes absence free of cost and lets Nothing values of the same
type compare equal:

    m := maybe.Of(os.LookupEnv("HOME"))
    home := maybe.Map(m, filepath.Clean).GetOrElse("/")

Calling Get on Nothing is a programming error and panics with an error of kind
choice.ErrEmptyAccess (which is a choice.ErrInvalidProjection, too).

From Elm:

    module Maybe exposing (Maybe(Just,Nothing), andThen, map, withDefault, oneOf)

    This library fills a bunch of important niches in Elm. A `Maybe` can help
    you with optional arguments, error handling, and records with optional fields.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'choice.maybe'.
func tracer() tracing.Trace {
	return tracing.Select("choice.maybe")
}
