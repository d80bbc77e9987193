package maybe_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/choice"
	. "github.com/npillmayer/choice/maybe"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	pkgerrors "github.com/pkg/errors"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Switch(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Switch(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeHappyPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "choice.maybe")
	defer teardown()
	//
	maybeSome := Just(6.0)
	maybeNone := Nothing[float64]()
	neg := func(x float64) float64 { return -x }

	if n := Map(maybeSome, neg); n.Get() != -6 {
		t.Errorf("expected Just(6).Map(neg) to be -6, is %v", n)
	}
	if err := recoverError(func() { Map(maybeNone, neg).Get() }); !errors.Is(err, choice.ErrEmptyAccess) {
		t.Errorf("expected Get on Nothing to panic with empty access, got %v", err)
	}

	format := func(m Maybe[float64]) string {
		return Match(m,
			func(n float64) string { return "here is a number" },
			func() string { return "whoops" },
		)
	}
	if format(maybeSome) != "here is a number" || format(maybeNone) != "whoops" {
		t.Error("Match does not dispatch on the variant")
	}

	if maybeSome.GetOrElse(100) != 6 || maybeNone.GetOrElse(100) != 100 {
		t.Error("GetOrElse does not substitute default for Nothing only")
	}

	safeDivide := func(n, d float64) Maybe[float64] {
		return Unless(d == 0, n/d)
	}
	if r := FlatMap(maybeSome, func(n float64) Maybe[float64] { return safeDivide(3, n) }); r.Get() != 0.5 {
		t.Errorf("expected 3/6 to be 0.5, is %v", r)
	}
	if r := FlatMap(maybeNone, func(n float64) Maybe[float64] { return safeDivide(3, n) }); r != Empty[float64]() {
		t.Errorf("expected Nothing.FlatMap to be Nothing, is %v", r)
	}
	if r := FlatMap(maybeSome, func(float64) Maybe[float64] { return safeDivide(3, 0) }); r != Empty[float64]() {
		t.Errorf("expected flat-mapped inner Nothing to be Nothing, is %v", r)
	}
}

func TestNothingIsCanonical(t *testing.T) {
	var zero Maybe[string]
	if zero != Nothing[string]() || Nothing[string]() != Empty[string]() {
		t.Error("expected all Nothing values to be equal")
	}
	if !zero.IsEmpty() || zero.IsJust() {
		t.Error("expected zero Maybe to be empty")
	}
	if Map(Nothing[int](), func(int) string { return "x" }) != Empty[string]() {
		t.Error("expected Nothing to map to the canonical Nothing")
	}
	if Just("") == Nothing[string]() {
		t.Error("expected Just(\"\") to differ from Nothing")
	}
}

func TestWhenUnless(t *testing.T) {
	if When(false, 42) != Nothing[int]() {
		t.Error("expected When(false, 42) to be Nothing")
	}
	if When(true, 42).Get() != 42 {
		t.Error("expected When(true, 42) to hold 42")
	}
	if Unless(true, 42) != Nothing[int]() || Unless(false, 42).Get() != 42 {
		t.Error("expected Unless to negate When")
	}
}

func TestFilter(t *testing.T) {
	if Just(6).Filter(func(x int) bool { return x > 10 }) != Nothing[int]() {
		t.Error("expected Just(6).Filter(>10) to be Nothing")
	}
	if Just(6).Filter(func(x int) bool { return x > 0 }).Get() != 6 {
		t.Error("expected Just(6).Filter(>0) to be Just(6)")
	}
	if Just(6).FilterNot(func(x int) bool { return x > 0 }) != Nothing[int]() {
		t.Error("expected Just(6).FilterNot(>0) to be Nothing")
	}
	if Just(6).FilterNot(func(x int) bool { return x > 10 }).Get() != 6 {
		t.Error("expected Just(6).FilterNot(>10) to be Just(6)")
	}
	if Nothing[int]().Filter(func(int) bool { return true }) != Nothing[int]() {
		t.Error("expected filtered Nothing to stay Nothing")
	}
}

func TestFoldIsEager(t *testing.T) {
	double := func(n int) int { return 2 * n }
	if Fold(Just(4), double, -1) != 8 || Fold(Nothing[int](), double, -1) != -1 {
		t.Error("Fold does not equal Map + GetOrElse")
	}
}

func TestForEachAndQuantifiers(t *testing.T) {
	calls := 0
	Just(1).ForEach(func(int) { calls++ })
	Nothing[int]().ForEach(func(int) { calls += 10 })
	if calls != 1 {
		t.Errorf("expected one call, have %d", calls)
	}
	odd := func(n int) bool { return n%2 == 1 }
	if !Just(3).Exists(odd) || !Just(3).Forall(odd) || Just(2).Exists(odd) || Just(2).Forall(odd) {
		t.Error("quantifiers on Just do not apply predicate")
	}
	if Nothing[int]().Exists(odd) || !Nothing[int]().Forall(odd) {
		t.Error("expected vacuous truth for Nothing")
	}
	if !Contains(Just("a"), "a") || Contains(Just("a"), "b") || Contains(Nothing[string](), "") {
		t.Error("Contains does not compare the held value")
	}
}

func TestFlatten(t *testing.T) {
	if Flatten(Just(Just(1))).Get() != 1 {
		t.Error("expected Flatten(Just(Just(1))) to be Just(1)")
	}
	if Flatten(Just(Nothing[int]())) != Nothing[int]() {
		t.Error("expected Flatten(Just(Nothing)) to be Nothing")
	}
	if Flatten(Nothing[Maybe[int]]()) != Nothing[int]() {
		t.Error("expected Flatten(Nothing) to be Nothing")
	}
}

func TestAccessors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "choice.maybe")
	defer teardown()
	//
	if _, err := Nothing[int]().TryGet(); !errors.Is(err, choice.ErrInvalidProjection) {
		t.Errorf("expected TryGet on Nothing to be an invalid projection, is %v", err)
	}
	if v, err := Just(3).TryGet(); err != nil || v != 3 {
		t.Errorf("expected TryGet on Just(3) to succeed, got %d, %v", v, err)
	}
	if v, ok := Just("x").Value(); !ok || v != "x" {
		t.Error("expected Value to report Just(x)")
	}
	if _, ok := Nothing[string]().Value(); ok {
		t.Error("expected Value to report Nothing")
	}
	if p := Just(5).OrNil(); p == nil || *p != 5 {
		t.Errorf("expected pointer to 5, got %v", p)
	}
	if Nothing[int]().OrNil() != nil {
		t.Error("expected OrNil of Nothing to be nil")
	}
	n := 9
	if FromPointer(&n).Get() != 9 || FromPointer[int](nil) != Nothing[int]() {
		t.Error("FromPointer does not respect nil")
	}
	dict := map[string]int{"a": 1}
	v, ok := dict["a"]
	if Of(v, ok).Get() != 1 {
		t.Error("expected Of(dict[a]) to be Just(1)")
	}
	v, ok = dict["b"]
	if Of(v, ok) != Nothing[int]() {
		t.Error("expected Of(dict[b]) to be Nothing")
	}
}

func TestOrElseAndOneOf(t *testing.T) {
	if Nothing[int]().OrElse(Just(2)).Get() != 2 || Just(1).OrElse(Just(2)).Get() != 1 {
		t.Error("OrElse does not prefer the first present value")
	}
	if OneOf(Nothing[int](), Just(3), Just(4)).Get() != 3 {
		t.Error("expected OneOf to pick the first Just")
	}
	if OneOf[int]() != Nothing[int]() || OneOf(Nothing[int]()) != Nothing[int]() {
		t.Error("expected OneOf without values to be Nothing")
	}
}

func TestReplaceAndString(t *testing.T) {
	if Replace(Just(1), "one").Get() != "one" || Replace(Nothing[int](), "one") != Nothing[string]() {
		t.Error("Replace does not substitute a present value only")
	}
	if Just(6).String() != "Just(6)" || Nothing[int]().String() != "Nothing" {
		t.Errorf("unexpected debug output %q, %q", Just(6).String(), Nothing[int]().String())
	}
}

func TestCallbackPanicsPropagate(t *testing.T) {
	boom := errors.New("boom")
	err := recoverError(func() {
		Map(Just(1), func(int) int { panic(boom) })
	})
	if err != boom {
		t.Errorf("expected Map callback panic to propagate unchanged, got %v", err)
	}
	err = recoverError(func() {
		FlatMap(Just(1), func(int) Maybe[int] { panic(boom) })
	})
	if err != boom {
		t.Errorf("expected FlatMap callback panic to propagate unchanged, got %v", err)
	}
}

func TestEmptyAccessMessage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "choice.maybe")
	defer teardown()
	//
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	_, err := Nothing[error]().TryGet()
	if err == nil || err.Error() != "tried to get value of Nothing: empty access: invalid projection" {
		t.Errorf("unexpected TryGet error %v", err)
	}
	if _, ok := err.(stackTracer); ok {
		t.Errorf("expected TryGet error to carry no stack trace, is %#v", err)
	}
	err = recoverError(func() { Nothing[error]().Get() })
	if _, ok := err.(stackTracer); !ok || !errors.Is(err, choice.ErrEmptyAccess) {
		t.Errorf("expected Get to panic with a stack-carrying empty access, is %#v", err)
	}
}

// ---------------------------------------------------------------------------

func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	f()
	return nil
}
