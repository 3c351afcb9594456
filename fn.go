package fnzip

import "sync/atomic"

// Fn adapts an ordinary function taking a tuple to the Func contract.
// The function should not have observable side effects between calls;
// use Mut for functions that do.
type Fn[In, Out any] func(In) Out

// From returns f as an Fn. It exists so that the type
// parameters can be inferred from f.
func From[In, Out any](f func(In) Out) Fn[In, Out] {
	return f
}

// Call implements Func.
func (f Fn[In, Out]) Call(in In) Out {
	return f(in)
}

// CallMut implements MutFunc.
func (f Fn[In, Out]) CallMut(in In) Out {
	return f(in)
}

// CallOnce implements OnceFunc.
func (f Fn[In, Out]) CallOnce(in In) Out {
	return f(in)
}

// FnMut adapts a stateful function to the MutFunc contract.
// It deliberately does not implement Func.
type FnMut[In, Out any] struct {
	f func(In) Out
}

// Mut returns a MutFunc that calls f.
func Mut[In, Out any](f func(In) Out) *FnMut[In, Out] {
	return &FnMut[In, Out]{f: f}
}

func (f *FnMut[In, Out]) CallMut(in In) Out {
	return f.f(in)
}

func (f *FnMut[In, Out]) CallOnce(in In) Out {
	return f.f(in)
}

// FnOnce adapts a function to the OnceFunc contract. Calling it
// a second time panics.
type FnOnce[In, Out any] struct {
	used atomic.Uintptr
	f    func(In) Out
}

// Once returns a OnceFunc that calls f at most once.
func Once[In, Out any](f func(In) Out) *FnOnce[In, Out] {
	return &FnOnce[In, Out]{f: f}
}

// CallOnce implements OnceFunc. It panics if called more than once.
func (f *FnOnce[In, Out]) CallOnce(in In) Out {
	if f.used.Add(1) != 1 {
		panic("fnzip: once function called twice")
	}
	fn := f.f
	f.f = nil
	return fn(in)
}

// Used reports whether CallOnce has been called.
func (f *FnOnce[In, Out]) Used() bool {
	return f.used.Load() != 0
}
