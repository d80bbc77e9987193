package maybe

// --- Matching --------------------------------------------------------------

// Matcher supports matching a Maybe in a switch statement:
//
//     var v int
//     switch m := x.Switch(); m {
//     case m.Just(&v):
//         …
//     case m.Nothing():
//         …
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

// Switch returns a Matcher for m.
func (m Maybe[T]) Switch() Matcher[T] {
	return &matcher[T]{m: m}
}

type matcher[T any] struct {
	m Maybe[T]
}

func (mm *matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.just {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm *matcher[T]) Nothing() Matcher[T] {
	if !mm.m.just {
		return mm
	}
	return nil
}
