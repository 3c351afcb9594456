//go:build !fnzip_noasync

package fnzip

import "sync/atomic"

// AsyncOnceFunc is the asynchronous counterpart of OnceFunc.
// AsyncCallOnce returns a Future that must be awaited to
// observe the result.
type AsyncOnceFunc[In, Out any] interface {
	AsyncCallOnce(In) *Future[Out]
}

// AsyncMutFunc is the asynchronous counterpart of MutFunc.
type AsyncMutFunc[In, Out any] interface {
	AsyncOnceFunc[In, Out]
	AsyncCallMut(In) *Future[Out]
}

// AsyncFunc is the asynchronous counterpart of Func.
type AsyncFunc[In, Out any] interface {
	AsyncMutFunc[In, Out]
	AsyncCall(In) *Future[Out]
}

// AsyncCall implements AsyncFunc. The returned Future is
// already resolved.
func (f Fn[In, Out]) AsyncCall(in In) *Future[Out] {
	return Ready(f(in))
}

// AsyncCallMut implements AsyncMutFunc.
func (f Fn[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return Ready(f(in))
}

// AsyncCallOnce implements AsyncOnceFunc.
func (f Fn[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(f(in))
}

func (f *FnMut[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return Ready(f.CallMut(in))
}

func (f *FnMut[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(f.CallOnce(in))
}

func (f *FnOnce[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(f.CallOnce(in))
}

// AsyncFn adapts a function returning a Future to the AsyncFunc contract.
type AsyncFn[In, Out any] func(In) *Future[Out]

// FromAsync returns f as an AsyncFn.
func FromAsync[In, Out any](f func(In) *Future[Out]) AsyncFn[In, Out] {
	return f
}

func (f AsyncFn[In, Out]) AsyncCall(in In) *Future[Out] {
	return f(in)
}

func (f AsyncFn[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return f(in)
}

func (f AsyncFn[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return f(in)
}

// AsyncFnMut adapts a stateful function returning a Future to
// the AsyncMutFunc contract.
type AsyncFnMut[In, Out any] struct {
	f func(In) *Future[Out]
}

// AsyncMut returns an AsyncMutFunc that calls f.
func AsyncMut[In, Out any](f func(In) *Future[Out]) *AsyncFnMut[In, Out] {
	return &AsyncFnMut[In, Out]{f: f}
}

func (f *AsyncFnMut[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return f.f(in)
}

func (f *AsyncFnMut[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return f.f(in)
}

// AsyncFnOnce adapts a function returning a Future to the
// AsyncOnceFunc contract. Calling it a second time panics.
type AsyncFnOnce[In, Out any] struct {
	used atomic.Uintptr
	f    func(In) *Future[Out]
}

// AsyncOnce returns an AsyncOnceFunc that calls f at most once.
func AsyncOnce[In, Out any](f func(In) *Future[Out]) *AsyncFnOnce[In, Out] {
	return &AsyncFnOnce[In, Out]{f: f}
}

func (f *AsyncFnOnce[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	if f.used.Add(1) != 1 {
		panic("fnzip: async once function called twice")
	}
	fn := f.f
	f.f = nil
	return fn(in)
}

// Promoted is a synchronous Func treated as an AsyncFunc whose
// futures are resolved as soon as they are created.
type Promoted[In, Out any] struct {
	F Func[In, Out]
}

// Promote returns f as an AsyncFunc.
func Promote[In, Out any](f Func[In, Out]) Promoted[In, Out] {
	return Promoted[In, Out]{F: f}
}

func (p Promoted[In, Out]) AsyncCall(in In) *Future[Out] {
	return Ready(p.F.Call(in))
}

func (p Promoted[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return Ready(p.F.CallMut(in))
}

func (p Promoted[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(p.F.CallOnce(in))
}

// PromotedMut is a synchronous MutFunc treated as an AsyncMutFunc.
type PromotedMut[In, Out any] struct {
	F MutFunc[In, Out]
}

// PromoteMut returns f as an AsyncMutFunc.
func PromoteMut[In, Out any](f MutFunc[In, Out]) PromotedMut[In, Out] {
	return PromotedMut[In, Out]{F: f}
}

func (p PromotedMut[In, Out]) AsyncCallMut(in In) *Future[Out] {
	return Ready(p.F.CallMut(in))
}

func (p PromotedMut[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(p.F.CallOnce(in))
}

// PromotedOnce is a synchronous OnceFunc treated as an AsyncOnceFunc.
type PromotedOnce[In, Out any] struct {
	F OnceFunc[In, Out]
}

// PromoteOnce returns f as an AsyncOnceFunc.
func PromoteOnce[In, Out any](f OnceFunc[In, Out]) PromotedOnce[In, Out] {
	return PromotedOnce[In, Out]{F: f}
}

func (p PromotedOnce[In, Out]) AsyncCallOnce(in In) *Future[Out] {
	return Ready(p.F.CallOnce(in))
}
