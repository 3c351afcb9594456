package fnzip

import (
	"sync/atomic"

	"github.com/rogpeppe/fnzip/tuple"
)

// ZippedOnce is the result of zipping two OnceFuncs with one of the
// ZipOnce_N_M functions. It takes the concatenation of both argument
// tuples and returns both results as a pair.
//
// It may be called only once, even when both operands would
// allow more calls.
type ZippedOnce[In, LI, LO, RI, RO any] struct {
	Left  OnceFunc[LI, LO]
	Right OnceFunc[RI, RO]

	used  atomic.Uintptr
	split func(In) (LI, RI)
}

func zipOnce[In, LI, LO, RI, RO any](l OnceFunc[LI, LO], r OnceFunc[RI, RO], split func(In) (LI, RI)) *ZippedOnce[In, LI, LO, RI, RO] {
	return &ZippedOnce[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// CallOnce calls z.Left with the leading elements of in and then z.Right
// with the trailing elements. It panics if called more than once.
func (z *ZippedOnce[In, LI, LO, RI, RO]) CallOnce(in In) tuple.T2[LO, RO] {
	if z.used.Add(1) != 1 {
		panic("fnzip: zipped once function called twice")
	}
	li, ri := z.split(in)
	lo := z.Left.CallOnce(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.CallOnce(ri)}
}

// ZippedMut is the result of zipping two MutFuncs with one of the
// ZipMut_N_M functions.
//
// Like its operands, a ZippedMut must not be called concurrently.
type ZippedMut[In, LI, LO, RI, RO any] struct {
	Left  MutFunc[LI, LO]
	Right MutFunc[RI, RO]

	split func(In) (LI, RI)
}

func zipMut[In, LI, LO, RI, RO any](l MutFunc[LI, LO], r MutFunc[RI, RO], split func(In) (LI, RI)) *ZippedMut[In, LI, LO, RI, RO] {
	return &ZippedMut[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// CallMut calls z.Left with the leading elements of in and then z.Right
// with the trailing elements.
func (z *ZippedMut[In, LI, LO, RI, RO]) CallMut(in In) tuple.T2[LO, RO] {
	li, ri := z.split(in)
	lo := z.Left.CallMut(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.CallMut(ri)}
}

// CallOnce implements OnceFunc by calling both operands' CallOnce methods.
func (z *ZippedMut[In, LI, LO, RI, RO]) CallOnce(in In) tuple.T2[LO, RO] {
	li, ri := z.split(in)
	lo := z.Left.CallOnce(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.CallOnce(ri)}
}

// Zipped is the result of zipping two Funcs with one of the
// ZipFunc_N_M functions. It is itself a Func, so it may be
// used as an operand to a further zip.
type Zipped[In, LI, LO, RI, RO any] struct {
	Left  Func[LI, LO]
	Right Func[RI, RO]

	split func(In) (LI, RI)
}

func zipFunc[In, LI, LO, RI, RO any](l Func[LI, LO], r Func[RI, RO], split func(In) (LI, RI)) Zipped[In, LI, LO, RI, RO] {
	return Zipped[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// Call calls z.Left with the leading elements of in and then z.Right
// with the trailing elements.
func (z Zipped[In, LI, LO, RI, RO]) Call(in In) tuple.T2[LO, RO] {
	li, ri := z.split(in)
	lo := z.Left.Call(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.Call(ri)}
}

// CallMut implements MutFunc.
func (z Zipped[In, LI, LO, RI, RO]) CallMut(in In) tuple.T2[LO, RO] {
	li, ri := z.split(in)
	lo := z.Left.CallMut(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.CallMut(ri)}
}

// CallOnce implements OnceFunc.
func (z Zipped[In, LI, LO, RI, RO]) CallOnce(in In) tuple.T2[LO, RO] {
	li, ri := z.split(in)
	lo := z.Left.CallOnce(li)
	return tuple.T2[LO, RO]{V0: lo, V1: z.Right.CallOnce(ri)}
}
