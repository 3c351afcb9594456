package fnzip

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/fnzip/tuple"
	"github.com/rogpeppe/fnzip/tuple/tuplefunc"
)

func inc(x int) int {
	return x + 1
}

func TestZip(t *testing.T) {
	c := qt.New(t)
	ab := Zip_1_1(math.Sqrt, inc)
	ya, yb := ab(4, 23)
	c.Assert(ya, qt.Equals, 2.0)
	c.Assert(yb, qt.Equals, 24)
}

func TestZipMatchesOperands(t *testing.T) {
	c := qt.New(t)
	join := func(a, b string) string {
		return a + b
	}
	repeat := func(s string, n int, sep string) string {
		return strings.Repeat(s+sep, n)
	}
	f := Zip_2_3(join, repeat)
	for _, test := range []struct {
		a0, a1 string
		b0     string
		b1     int
		b2     string
	}{
		{"x", "y", "ab", 2, "-"},
		{"", "", "", 0, ""},
		{"hello", " world", "z", 3, ","},
	} {
		x, y := f(test.a0, test.a1, test.b0, test.b1, test.b2)
		c.Check(x, qt.Equals, join(test.a0, test.a1))
		c.Check(y, qt.Equals, repeat(test.b0, test.b1, test.b2))
	}
}

func TestZipNoArguments(t *testing.T) {
	c := qt.New(t)
	f := Zip_0_0(func() string { return "left" }, func() int { return 99 })
	x, y := f()
	c.Assert(x, qt.Equals, "left")
	c.Assert(y, qt.Equals, 99)

	g := Zip_0_2(func() bool { return true }, func(a, b int) int { return a * b })
	ok, prod := g(6, 7)
	c.Assert(ok, qt.IsTrue)
	c.Assert(prod, qt.Equals, 42)
}

func TestZipOrdering(t *testing.T) {
	c := qt.New(t)
	var log []string
	f := Zip_1_1(
		func(s string) int {
			log = append(log, "left "+s)
			return len(s)
		},
		func(s string) int {
			log = append(log, "right "+s)
			return len(s)
		},
	)
	f("a", "bb")
	f("ccc", "d")
	c.Assert(log, qt.DeepEquals, []string{"left a", "right bb", "left ccc", "right d"})
}

func TestZipLeftPanicSkipsRight(t *testing.T) {
	c := qt.New(t)
	rightCalls := 0
	f := Zip_1_1(
		func(x int) int {
			panic(fmt.Sprintf("left failed with %d", x))
		},
		func(x int) int {
			rightCalls++
			return x
		},
	)
	c.Assert(func() { f(1, 2) }, qt.PanicMatches, "left failed with 1")
	c.Assert(rightCalls, qt.Equals, 0)
}

var errLeft = errors.New("left failed")

func TestZipE(t *testing.T) {
	c := qt.New(t)
	rightCalls := 0
	parse := func(s string) (int, error) {
		if s == "" {
			return 0, errLeft
		}
		return len(s), nil
	}
	double := func(x int) (int, error) {
		rightCalls++
		if x < 0 {
			return 0, fmt.Errorf("negative %d", x)
		}
		return x * 2, nil
	}
	f := ZipE_1_1(parse, double)

	x, y, err := f("abc", 5)
	c.Assert(err, qt.IsNil)
	c.Assert(x, qt.Equals, 3)
	c.Assert(y, qt.Equals, 10)
	c.Assert(rightCalls, qt.Equals, 1)

	x, y, err = f("", 5)
	c.Assert(err, qt.ErrorIs, errLeft)
	c.Assert(x, qt.Equals, 0)
	c.Assert(y, qt.Equals, 0)
	c.Assert(rightCalls, qt.Equals, 1)

	_, _, err = f("abc", -1)
	c.Assert(err, qt.ErrorMatches, "negative -1")
	c.Assert(rightCalls, qt.Equals, 2)
}

var (
	sqrtT = From(tuplefunc.ToA_1(math.Sqrt))
	incT  = From(tuplefunc.ToA_1(inc))
)

func TestZipFunc(t *testing.T) {
	c := qt.New(t)
	ab := ZipFunc_1_1(sqrtT, incT)
	c.Assert(ab.Call(tuple.Mk2(4.0, 23)), qt.Equals, tuple.Mk2(2.0, 24))
}

func TestZipFuncRepeatable(t *testing.T) {
	c := qt.New(t)
	ab := ZipFunc_1_1(sqrtT, incT)
	in := tuple.Mk2(9.0, 1)
	first := ab.Call(in)
	for range 3 {
		c.Assert(ab.Call(in), qt.Equals, first)
	}
	// A Func is also usable as a MutFunc and a OnceFunc.
	c.Assert(ab.CallMut(in), qt.Equals, first)
	c.Assert(ab.CallOnce(in), qt.Equals, first)
}

func TestZipFuncNested(t *testing.T) {
	c := qt.New(t)
	ab := ZipFunc_1_1(sqrtT, incT)
	neg := From(func(t tuple.T1[bool]) bool {
		return !t.V0
	})
	abc := ZipFunc_2_1(ab, neg)
	got := abc.Call(tuple.Mk3(16.0, 1, true))
	// Results are paired, never flattened.
	c.Assert(got, qt.Equals, tuple.Mk2(tuple.Mk2(4.0, 2), false))
}

func TestZipFuncSplitsArguments(t *testing.T) {
	c := qt.New(t)
	var left tuple.T2[string, int]
	var right tuple.T3[bool, float64, string]
	l := From(func(t tuple.T2[string, int]) int {
		left = t
		return 0
	})
	r := From(func(t tuple.T3[bool, float64, string]) int {
		right = t
		return 1
	})
	z := ZipFunc_2_3(l, r)
	got := z.Call(tuple.Mk5("a", 1, true, 2.5, "b"))
	c.Assert(got, qt.Equals, tuple.Mk2(0, 1))
	c.Assert(left, qt.Equals, tuple.Mk2("a", 1))
	c.Assert(right, qt.Equals, tuple.Mk3(true, 2.5, "b"))
}

func TestZipMut(t *testing.T) {
	c := qt.New(t)
	total := 0
	acc := Mut(func(t tuple.T1[int]) int {
		total += t.V0
		return total
	})
	z := ZipMut_1_1(acc, incT)
	c.Assert(z.CallMut(tuple.Mk2(2, 10)), qt.Equals, tuple.Mk2(2, 11))
	c.Assert(z.CallMut(tuple.Mk2(3, 20)), qt.Equals, tuple.Mk2(5, 21))
	c.Assert(z.CallOnce(tuple.Mk2(4, 30)), qt.Equals, tuple.Mk2(9, 31))
}

func TestZipMutAcceptsFunc(t *testing.T) {
	c := qt.New(t)
	// A Zipped value is strong enough to be a MutFunc operand.
	ab := ZipFunc_1_1(sqrtT, incT)
	n := 0
	count := Mut(func(tuple.T0) int {
		n++
		return n
	})
	z := ZipMut_2_0(ab, count)
	z.CallMut(tuple.Mk2(1.0, 1))
	got := z.CallMut(tuple.Mk2(4.0, 2))
	c.Assert(got, qt.Equals, tuple.Mk2(tuple.Mk2(2.0, 3), 2))
}

func TestZipOnce(t *testing.T) {
	c := qt.New(t)
	calls := 0
	l := Once(func(t tuple.T1[string]) string {
		calls++
		return strings.ToUpper(t.V0)
	})
	// Mixing disciplines yields the weakest.
	z := ZipOnce_1_1(l, incT)
	c.Assert(z.CallOnce(tuple.Mk2("abc", 1)), qt.Equals, tuple.Mk2("ABC", 2))
	c.Assert(calls, qt.Equals, 1)
	c.Assert(l.Used(), qt.IsTrue)
	c.Assert(func() {
		z.CallOnce(tuple.Mk2("def", 2))
	}, qt.PanicMatches, "fnzip: zipped once function called twice")
	c.Assert(calls, qt.Equals, 1)
}

func TestOnceCalledTwice(t *testing.T) {
	c := qt.New(t)
	f := Once(func(t tuple.T1[int]) int {
		return t.V0
	})
	c.Assert(f.Used(), qt.IsFalse)
	c.Assert(f.CallOnce(tuple.Mk1(5)), qt.Equals, 5)
	c.Assert(func() {
		f.CallOnce(tuple.Mk1(6))
	}, qt.PanicMatches, "fnzip: once function called twice")
}

func TestZipFuncLeftPanicSkipsRight(t *testing.T) {
	c := qt.New(t)
	rightCalls := 0
	l := From(func(t tuple.T1[int]) int {
		panic("boom")
	})
	r := From(func(t tuple.T1[int]) int {
		rightCalls++
		return t.V0
	})
	z := ZipFunc_1_1(l, r)
	c.Assert(func() { z.Call(tuple.Mk2(1, 2)) }, qt.PanicMatches, "boom")
	c.Assert(rightCalls, qt.Equals, 0)
}

func TestZipLargestArity(t *testing.T) {
	c := qt.New(t)
	sum := func(a0, a1, a2, a3, a4, a5, a6, a7 int) int {
		return a0 + a1 + a2 + a3 + a4 + a5 + a6 + a7
	}
	f := Zip_8_8(sum, sum)
	x, y := f(1, 2, 3, 4, 5, 6, 7, 8, 10, 20, 30, 40, 50, 60, 70, 80)
	c.Assert(x, qt.Equals, 36)
	c.Assert(y, qt.Equals, 360)
}

func BenchmarkZip(b *testing.B) {
	f := Zip_1_1(inc, inc)
	for i := range b.N {
		f(i, i)
	}
}

func BenchmarkDirect(b *testing.B) {
	f := func(x, y int) (int, int) {
		return inc(x), inc(y)
	}
	for i := range b.N {
		f(i, i)
	}
}

func BenchmarkZipFunc(b *testing.B) {
	z := ZipFunc_1_1(incT, incT)
	for i := range b.N {
		z.Call(tuple.Mk2(i, i))
	}
}
