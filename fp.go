package choice

// Identity returns its argument unchanged.
func Identity[T any](a T) T {
	return a
}

// Unit returns unit for any input => the zero value for T.
func Unit[T any](_ T) T {
	var a T
	return a
}

// Const returns a function that produces a.
func Const[T any](a T) func() T {
	return func() T {
		return a
	}
}

// Constantly returns a function ignoring its argument and producing a.
func Constantly[A, T any](a T) func(A) T {
	return func(A) T {
		return a
	}
}

// Compose returns h = f . g
func Compose[A, B, C any](g func(a A) B, f func(b B) C) func(A) C {
	return func(a A) C {
		b := g(a)
		return f(b)
	}
}

// Not negates a predicate.
func Not[T any](pred func(T) bool) func(T) bool {
	return func(a T) bool {
		return !pred(a)
	}
}
