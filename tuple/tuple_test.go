package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestValues(t *testing.T) {
	a, b, c := Mk3(1, "two", 3.0).Values()
	qt.Assert(t, qt.Equals(a, 1))
	qt.Assert(t, qt.Equals(b, "two"))
	qt.Assert(t, qt.Equals(c, 3.0))
	qt.Assert(t, qt.Equals(Mk1("x").Values(), "x"))
}

func TestSplitPreservesOrder(t *testing.T) {
	a, b := Split_2_3(Mk5("a", "b", "c", "d", "e"))
	qt.Assert(t, qt.Equals(a, Mk2("a", "b")))
	qt.Assert(t, qt.Equals(b, Mk3("c", "d", "e")))
}

func TestSplitEmpty(t *testing.T) {
	a, b := Split_0_2(Mk2(1, 2))
	qt.Assert(t, qt.Equals(a, T0{}))
	qt.Assert(t, qt.Equals(b, Mk2(1, 2)))

	c, d := Split_2_0(Mk2(1, 2))
	qt.Assert(t, qt.Equals(c, Mk2(1, 2)))
	qt.Assert(t, qt.Equals(d, T0{}))

	e, f := Split_0_0(T0{})
	qt.Assert(t, qt.Equals(e, f))
}

func TestConcatNested(t *testing.T) {
	// Tuples are not flattened when they are elements.
	x := Concat_1_1(Mk1(Mk2(1, 2)), Mk1(3))
	qt.Assert(t, qt.Equals(x, T2[T2[int, int], int]{V0: Mk2(1, 2), V1: 3}))
}
