//go:build !fnzip_noasync

package fnzip

import "context"

type futureState uint8

const (
	futurePending futureState = iota
	futureRunning
	futureDone
	futurePanicked
)

// Future represents a suspended computation producing a value of type T.
// Creating a Future does not run anything: the computation runs
// only when the Future is driven with Await.
//
// A Future is driven at most once. The outcome is remembered and
// returned by any later Await calls. Await must not be called
// concurrently.
//
// The zero Future is resolved with the zero value of T.
type Future[T any] struct {
	state futureState
	run   func(context.Context) (T, error)
	val   T
	err   error
}

// Suspend returns a Future that will call run when it is first awaited.
func Suspend[T any](run func(ctx context.Context) (T, error)) *Future[T] {
	return &Future[T]{run: run}
}

// Ready returns a Future that is already resolved with v.
func Ready[T any](v T) *Future[T] {
	return &Future[T]{
		state: futureDone,
		val:   v,
	}
}

// Failed returns a Future that is already resolved with err.
func Failed[T any](err error) *Future[T] {
	return &Future[T]{
		state: futureDone,
		err:   err,
	}
}

// Await drives f to completion and returns its outcome.
// The context is passed to the underlying computation, which
// decides for itself how to react to cancellation.
//
// Await panics if it is called from within f's own computation,
// or after an earlier Await panicked.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	switch f.state {
	case futureDone:
		return f.val, f.err
	case futureRunning:
		panic("fnzip: future awaited while it is being driven")
	case futurePanicked:
		panic("fnzip: future awaited after its computation panicked")
	}
	if f.run == nil {
		f.state = futureDone
		return f.val, nil
	}
	run := f.run
	f.run = nil
	f.state = futureRunning
	completed := false
	defer func() {
		if !completed {
			f.state = futurePanicked
		}
	}()
	f.val, f.err = run(ctx)
	completed = true
	f.state = futureDone
	return f.val, f.err
}

// Done reports whether f has been driven to completion.
func (f *Future[T]) Done() bool {
	return f.state == futureDone || f.state == futurePending && f.run == nil
}

// Then returns a Future that, when driven, drives f and then
// the Future returned by g. If f fails, g is not called.
func Then[A, B any](f *Future[A], g func(A) *Future[B]) *Future[B] {
	return Suspend(func(ctx context.Context) (B, error) {
		a, err := f.Await(ctx)
		if err != nil {
			return *new(B), err
		}
		return g(a).Await(ctx)
	})
}
