package either

// --- Matching --------------------------------------------------------------

// Matcher supports matching an Either in a switch statement:
//
//     var n int
//     var s string
//     switch m := e.Switch(); m {
//     case m.Right(&n):
//         …
//     case m.Left(&s):
//         …
//     }
//
// A case extracts the payload into its argument (if non-nil) and matches only
// if e holds the respective variant.
type Matcher[L, R any] interface {
	Left(*L) Matcher[L, R]
	Right(*R) Matcher[L, R]
}

// Switch returns a Matcher for e.
func (e Either[L, R]) Switch() Matcher[L, R] {
	return &matcher[L, R]{e: e}
}

type matcher[L, R any] struct {
	e Either[L, R]
}

func (m *matcher[L, R]) Left(l *L) Matcher[L, R] {
	if m.e.isRight {
		return nil
	}
	if l != nil {
		*l = m.e.left
	}
	return m
}

func (m *matcher[L, R]) Right(r *R) Matcher[L, R] {
	if !m.e.isRight {
		return nil
	}
	if r != nil {
		*r = m.e.right
	}
	return m
}
