//go:build !fnzip_noasync

package fnzip

import (
	"context"
	"sync/atomic"

	"github.com/rogpeppe/fnzip/tuple"
)

// joinPair returns a Future that drives the future returned by left
// to completion before calling right at all. When left fails, right
// is never called and left's error is returned as is.
func joinPair[LO, RO any](left func() *Future[LO], right func() *Future[RO]) *Future[tuple.T2[LO, RO]] {
	return Suspend(func(ctx context.Context) (tuple.T2[LO, RO], error) {
		lo, err := left().Await(ctx)
		if err != nil {
			return tuple.T2[LO, RO]{}, err
		}
		ro, err := right().Await(ctx)
		if err != nil {
			return tuple.T2[LO, RO]{}, err
		}
		return tuple.T2[LO, RO]{V0: lo, V1: ro}, nil
	})
}

// AsyncZippedOnce is the result of zipping two AsyncOnceFuncs with
// one of the ZipAsyncOnce_N_M functions.
type AsyncZippedOnce[In, LI, LO, RI, RO any] struct {
	Left  AsyncOnceFunc[LI, LO]
	Right AsyncOnceFunc[RI, RO]

	used  atomic.Uintptr
	split func(In) (LI, RI)
}

func zipAsyncOnce[In, LI, LO, RI, RO any](l AsyncOnceFunc[LI, LO], r AsyncOnceFunc[RI, RO], split func(In) (LI, RI)) *AsyncZippedOnce[In, LI, LO, RI, RO] {
	return &AsyncZippedOnce[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// AsyncCallOnce returns a Future that, when awaited, calls and awaits
// z.Left and then z.Right. It panics if called more than once.
func (z *AsyncZippedOnce[In, LI, LO, RI, RO]) AsyncCallOnce(in In) *Future[tuple.T2[LO, RO]] {
	if z.used.Add(1) != 1 {
		panic("fnzip: zipped async once function called twice")
	}
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCallOnce(li) },
		func() *Future[RO] { return z.Right.AsyncCallOnce(ri) },
	)
}

// AsyncZippedMut is the result of zipping two AsyncMutFuncs with
// one of the ZipAsyncMut_N_M functions.
type AsyncZippedMut[In, LI, LO, RI, RO any] struct {
	Left  AsyncMutFunc[LI, LO]
	Right AsyncMutFunc[RI, RO]

	split func(In) (LI, RI)
}

func zipAsyncMut[In, LI, LO, RI, RO any](l AsyncMutFunc[LI, LO], r AsyncMutFunc[RI, RO], split func(In) (LI, RI)) *AsyncZippedMut[In, LI, LO, RI, RO] {
	return &AsyncZippedMut[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// AsyncCallMut returns a Future that, when awaited, calls and awaits
// z.Left and then z.Right.
func (z *AsyncZippedMut[In, LI, LO, RI, RO]) AsyncCallMut(in In) *Future[tuple.T2[LO, RO]] {
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCallMut(li) },
		func() *Future[RO] { return z.Right.AsyncCallMut(ri) },
	)
}

func (z *AsyncZippedMut[In, LI, LO, RI, RO]) AsyncCallOnce(in In) *Future[tuple.T2[LO, RO]] {
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCallOnce(li) },
		func() *Future[RO] { return z.Right.AsyncCallOnce(ri) },
	)
}

// AsyncZipped is the result of zipping two AsyncFuncs with
// one of the ZipAsync_N_M functions.
type AsyncZipped[In, LI, LO, RI, RO any] struct {
	Left  AsyncFunc[LI, LO]
	Right AsyncFunc[RI, RO]

	split func(In) (LI, RI)
}

func zipAsync[In, LI, LO, RI, RO any](l AsyncFunc[LI, LO], r AsyncFunc[RI, RO], split func(In) (LI, RI)) AsyncZipped[In, LI, LO, RI, RO] {
	return AsyncZipped[In, LI, LO, RI, RO]{
		Left:  l,
		Right: r,
		split: split,
	}
}

// AsyncCall returns a Future that, when awaited, calls and awaits
// z.Left and then z.Right.
func (z AsyncZipped[In, LI, LO, RI, RO]) AsyncCall(in In) *Future[tuple.T2[LO, RO]] {
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCall(li) },
		func() *Future[RO] { return z.Right.AsyncCall(ri) },
	)
}

func (z AsyncZipped[In, LI, LO, RI, RO]) AsyncCallMut(in In) *Future[tuple.T2[LO, RO]] {
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCallMut(li) },
		func() *Future[RO] { return z.Right.AsyncCallMut(ri) },
	)
}

func (z AsyncZipped[In, LI, LO, RI, RO]) AsyncCallOnce(in In) *Future[tuple.T2[LO, RO]] {
	li, ri := z.split(in)
	return joinPair(
		func() *Future[LO] { return z.Left.AsyncCallOnce(li) },
		func() *Future[RO] { return z.Right.AsyncCallOnce(ri) },
	)
}
