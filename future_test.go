//go:build !fnzip_noasync

package fnzip

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestFutureReady(t *testing.T) {
	c := qt.New(t)
	f := Ready("hello")
	c.Assert(f.Done(), qt.IsTrue)
	v, err := f.Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "hello")
}

func TestFutureFailed(t *testing.T) {
	c := qt.New(t)
	f := Failed[int](errBoom)
	c.Assert(f.Done(), qt.IsTrue)
	v, err := f.Await(context.Background())
	c.Assert(err, qt.Equals, errBoom)
	c.Assert(v, qt.Equals, 0)
}

func TestFutureZero(t *testing.T) {
	c := qt.New(t)
	var f Future[string]
	c.Assert(f.Done(), qt.IsTrue)
	v, err := f.Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "")
}

func TestFutureRunsOnce(t *testing.T) {
	c := qt.New(t)
	runs := 0
	f := Suspend(func(ctx context.Context) (int, error) {
		runs++
		return 42, nil
	})
	c.Assert(f.Done(), qt.IsFalse)
	c.Assert(runs, qt.Equals, 0)
	for range 3 {
		v, err := f.Await(context.Background())
		c.Assert(err, qt.IsNil)
		c.Assert(v, qt.Equals, 42)
	}
	c.Assert(runs, qt.Equals, 1)
	c.Assert(f.Done(), qt.IsTrue)
}

func TestFutureRemembersError(t *testing.T) {
	c := qt.New(t)
	runs := 0
	f := Suspend(func(ctx context.Context) (int, error) {
		runs++
		return 0, fmt.Errorf("attempt %d failed", runs)
	})
	_, err := f.Await(context.Background())
	c.Assert(err, qt.ErrorMatches, "attempt 1 failed")
	_, err = f.Await(context.Background())
	c.Assert(err, qt.ErrorMatches, "attempt 1 failed")
}

func TestFutureContext(t *testing.T) {
	c := qt.New(t)
	type key struct{}
	f := Suspend(func(ctx context.Context) (string, error) {
		return ctx.Value(key{}).(string), nil
	})
	v, err := f.Await(context.WithValue(context.Background(), key{}, "value"))
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "value")
}

func TestFutureAwaitWhileRunning(t *testing.T) {
	c := qt.New(t)
	var f *Future[int]
	f = Suspend(func(ctx context.Context) (int, error) {
		return f.Await(ctx)
	})
	c.Assert(func() {
		f.Await(context.Background())
	}, qt.PanicMatches, "fnzip: future awaited while it is being driven")
}

func TestFutureAwaitAfterPanic(t *testing.T) {
	c := qt.New(t)
	f := Suspend(func(ctx context.Context) (int, error) {
		panic("computation failed")
	})
	c.Assert(func() {
		f.Await(context.Background())
	}, qt.PanicMatches, "computation failed")
	c.Assert(f.Done(), qt.IsFalse)
	c.Assert(func() {
		f.Await(context.Background())
	}, qt.PanicMatches, "fnzip: future awaited after its computation panicked")
}

func TestThen(t *testing.T) {
	c := qt.New(t)
	var log []string
	f := Suspend(func(ctx context.Context) (int, error) {
		log = append(log, "first")
		return 7, nil
	})
	g := Then(f, func(n int) *Future[string] {
		log = append(log, "second")
		return Ready(strconv.Itoa(n * 6))
	})
	c.Assert(log, qt.HasLen, 0)
	v, err := g.Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, "42")
	c.Assert(log, qt.DeepEquals, []string{"first", "second"})
}

func TestThenShortCircuits(t *testing.T) {
	c := qt.New(t)
	called := false
	g := Then(Failed[int](errBoom), func(n int) *Future[int] {
		called = true
		return Ready(n)
	})
	_, err := g.Await(context.Background())
	c.Assert(err, qt.Equals, errBoom)
	c.Assert(called, qt.IsFalse)
}
