/*
Package choice provides two closed sum types for Go generics, together with a
small vocabulary of combinators to work with them.

Sub-package either implements Either[L, R], a value which is one of two
alternatives, biased towards the right one. Sub-package maybe implements
Maybe[T], a value or its absence. Sub-package result specializes Either to
the familiar (value, error) case.

Clients should rarely need to inspect the variant tag. Instead they use

    Map, FlatMap, Flatten      // transform and chain
    Match, Fold                // total dispatch
    GetOrElse, OrNil           // default substitution
    Filter…, Exists, Forall    // predicates

All types are immutable values and may be shared between goroutines freely.

Error handling

Extracting a payload from the variant which does not hold it is a programming
error. It panics with an error wrapping ErrInvalidProjection; it never returns
a default value. Callers who want to check first use TryGet or switch on the
variant with Match.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package choice
