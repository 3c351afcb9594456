package gen

import (
	"slices"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestPairsOrder(t *testing.T) {
	c := qt.New(t)
	c.Assert(slices.Collect(Pairs(2)), qt.DeepEquals, []Pair{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1},
		{2, 0},
	})
}

func TestPairsStop(t *testing.T) {
	c := qt.New(t)
	var got []Pair
	for p := range Pairs(16) {
		if p.N == 1 {
			break
		}
		got = append(got, p)
	}
	c.Assert(got, qt.HasLen, 17)
}

func TestPairFragments(t *testing.T) {
	c := qt.New(t)
	p := Pair{N: 2, M: 1}
	c.Assert(p.Name(), qt.Equals, "2_1")
	c.Assert(p.TypeParams("X", "Y"), qt.Equals, "A0, A1, B0, X, Y any")
	c.Assert(p.Params(), qt.Equals, "a0 A0, a1 A1, b0 B0")
	c.Assert(p.LeftArgs(), qt.Equals, "a0, a1")
	c.Assert(p.RightArgs(), qt.Equals, "b0")
	c.Assert(p.LeftTuple(), qt.Equals, "tuple.T2[A0, A1]")
	c.Assert(p.RightTuple(), qt.Equals, "tuple.T1[B0]")
	c.Assert(p.AllTuple(), qt.Equals, "tuple.T3[A0, A1, B0]")
	c.Assert(p.Split(), qt.Equals, "tuple.Split_2_1[A0, A1, B0]")

	empty := Pair{N: 0, M: 0}
	c.Assert(empty.TypeParams("LO", "RO"), qt.Equals, "LO, RO any")
	c.Assert(empty.LeftTuple(), qt.Equals, "tuple.T0")
	c.Assert(empty.Split(), qt.Equals, "tuple.Split_0_0")
}

func TestTupleFragments(t *testing.T) {
	c := qt.New(t)
	tp := Tuple{N: 2}
	c.Assert(tp.Decl(), qt.Equals, "T2[A0, A1 any]")
	c.Assert(tp.Type(), qt.Equals, "T2[A0, A1]")
	c.Assert(tp.QType(), qt.Equals, "tuple.T2[A0, A1]")
	c.Assert(tp.Fields(), qt.DeepEquals, []string{"V0 A0", "V1 A1"})
	c.Assert(tp.Results(), qt.Equals, "(A0, A1)")
	c.Assert(tp.Refs("t"), qt.Equals, "t.V0, t.V1")
	c.Assert(tp.Literal("tuple.", "a"), qt.Equals, "tuple.T2[A0, A1]{V0: a0, V1: a1}")
	c.Assert(Tuple{N: 1}.Results(), qt.Equals, "A0")
	c.Assert(Tuple{N: 0}.Decl(), qt.Equals, "T0")
}

func TestSplitFragments(t *testing.T) {
	c := qt.New(t)
	s := Split{N: 1, M: 2}
	c.Assert(s.TypeParamList(), qt.Equals, "[A0, A1, A2 any]")
	c.Assert(s.Whole(), qt.Equals, "T3[A0, A1, A2]")
	c.Assert(s.Prefix(), qt.Equals, "T1[A0]")
	c.Assert(s.Suffix(), qt.Equals, "T2[A1, A2]")
	c.Assert(s.SplitBody(), qt.Equals, "T1[A0]{V0: t.V0}, T2[A1, A2]{V0: t.V1, V1: t.V2}")
	c.Assert(s.ConcatBody(), qt.Equals, "T3[A0, A1, A2]{V0: a.V0, V1: b.V0, V2: b.V1}")
	c.Assert(s.Sample(1, 2), qt.Equals, `Mk2("1", 2)`)
	c.Assert(Split{}.TypeParamList(), qt.Equals, "")
}
