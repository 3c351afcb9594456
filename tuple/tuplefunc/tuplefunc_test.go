package tuplefunc_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/fnzip/tuple"
	"github.com/rogpeppe/fnzip/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	f := tuplefunc.ToA_3(func(s string, n int, sep string) string {
		return strings.Repeat(s+sep, n)
	})
	qt.Assert(t, qt.Equals(f(tuple.Mk3("a", 3, ",")), "a,a,a,"))
}

func TestToAZero(t *testing.T) {
	calls := 0
	f := tuplefunc.ToA_0(func() int {
		calls++
		return calls
	})
	qt.Assert(t, qt.Equals(f(tuple.T0{}), 1))
	qt.Assert(t, qt.Equals(f(tuple.Mk0()), 2))
}

func TestFromA(t *testing.T) {
	f := tuplefunc.FromA_2(func(t tuple.T2[string, int]) string {
		return fmt.Sprintf("%s=%d", t.V0, t.V1)
	})
	qt.Assert(t, qt.Equals(f("x", 5), "x=5"))
}

func TestRoundTrip(t *testing.T) {
	sum := func(a, b, c, d int) int {
		return a*1000 + b*100 + c*10 + d
	}
	f := tuplefunc.FromA_4(tuplefunc.ToA_4(sum))
	qt.Assert(t, qt.Equals(f(1, 2, 3, 4), sum(1, 2, 3, 4)))
}

func TestLargest(t *testing.T) {
	f := tuplefunc.ToA_16(func(a0, a1, a2, a3, a4, a5, a6, a7, a8, a9, a10, a11, a12, a13, a14, a15 int) int {
		return a0 + a15
	})
	in := tuple.Mk16(1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2)
	qt.Assert(t, qt.Equals(f(in), 3))
}
