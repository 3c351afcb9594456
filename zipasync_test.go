//go:build !fnzip_noasync

package fnzip

import (
	"context"
	"errors"
	"math"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/rogpeppe/fnzip/tuple"
)

// asyncSqrt returns an AsyncFn that records its progress in log.
func asyncSqrt(log *[]string) AsyncFn[tuple.T1[float64], float64] {
	return FromAsync(func(t tuple.T1[float64]) *Future[float64] {
		*log = append(*log, "left called")
		return Suspend(func(ctx context.Context) (float64, error) {
			*log = append(*log, "left driven")
			return math.Sqrt(t.V0), nil
		})
	})
}

func asyncInc(log *[]string) AsyncFn[tuple.T1[int], int] {
	return FromAsync(func(t tuple.T1[int]) *Future[int] {
		*log = append(*log, "right called")
		return Suspend(func(ctx context.Context) (int, error) {
			*log = append(*log, "right driven")
			return t.V0 + 1, nil
		})
	})
}

func TestZipAsync(t *testing.T) {
	c := qt.New(t)
	var log []string
	ab := ZipAsync_1_1(asyncSqrt(&log), asyncInc(&log))
	f := ab.AsyncCall(tuple.Mk2(4.0, 23))
	// Nothing runs until the future is driven.
	c.Assert(f.Done(), qt.IsFalse)
	c.Assert(log, qt.HasLen, 0)

	got, err := f.Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(2.0, 24))
	c.Assert(f.Done(), qt.IsTrue)
	c.Assert(log, qt.DeepEquals, []string{
		"left called",
		"left driven",
		"right called",
		"right driven",
	})
}

func TestZipAsyncRepeatable(t *testing.T) {
	c := qt.New(t)
	var log []string
	ab := ZipAsync_1_1(asyncSqrt(&log), asyncInc(&log))
	ctx := context.Background()
	for _, call := range []func(tuple.T2[float64, int]) *Future[tuple.T2[float64, int]]{
		ab.AsyncCall,
		ab.AsyncCallMut,
		ab.AsyncCallOnce,
	} {
		got, err := call(tuple.Mk2(9.0, 1)).Await(ctx)
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, tuple.Mk2(3.0, 2))
	}
	c.Assert(log, qt.HasLen, 12)
}

func TestZipAsyncMixedWithSync(t *testing.T) {
	c := qt.New(t)
	var log []string
	// incT is synchronous; Fn values resolve their futures immediately.
	ab := ZipAsync_1_1(asyncSqrt(&log), incT)
	got, err := ab.AsyncCall(tuple.Mk2(4.0, 23)).Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(2.0, 24))

	ba := ZipAsync_1_1(incT, asyncSqrt(&log))
	got2, err := ba.AsyncCall(tuple.Mk2(23, 4.0)).Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got2, qt.Equals, tuple.Mk2(24, 2.0))
}

func TestZipAsyncPromoted(t *testing.T) {
	c := qt.New(t)
	var log []string
	ab := ZipFunc_1_1(sqrtT, incT)
	abc := ZipAsync_2_1(Promote(ab), asyncInc(&log))
	got, err := abc.AsyncCall(tuple.Mk3(16.0, 1, 7)).Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(tuple.Mk2(4.0, 2), 8))
}

var errBoom = errors.New("boom")

func TestZipAsyncLeftFailureSkipsRight(t *testing.T) {
	c := qt.New(t)
	rightCalls := 0
	l := FromAsync(func(t tuple.T1[int]) *Future[int] {
		return Failed[int](errBoom)
	})
	r := Mut(func(t tuple.T1[int]) int {
		rightCalls++
		return t.V0
	})
	z := ZipAsyncMut_1_1(l, r)
	_, err := z.AsyncCallMut(tuple.Mk2(1, 2)).Await(context.Background())
	c.Assert(err, qt.Equals, errBoom)
	c.Assert(rightCalls, qt.Equals, 0)
}

func TestZipAsyncRightFailure(t *testing.T) {
	c := qt.New(t)
	l := From(func(t tuple.T1[int]) int {
		return t.V0
	})
	r := FromAsync(func(t tuple.T1[int]) *Future[int] {
		return Failed[int](errBoom)
	})
	got, err := ZipAsync_1_1(l, r).AsyncCall(tuple.Mk2(1, 2)).Await(context.Background())
	c.Assert(err, qt.ErrorIs, errBoom)
	c.Assert(got, qt.Equals, tuple.T2[int, int]{})
}

func TestZipAsyncCancelled(t *testing.T) {
	c := qt.New(t)
	rightCalls := 0
	l := FromAsync(func(t tuple.T1[int]) *Future[int] {
		return Suspend(func(ctx context.Context) (int, error) {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			return t.V0, nil
		})
	})
	r := FromAsync(func(t tuple.T1[int]) *Future[int] {
		rightCalls++
		return Ready(t.V0)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f := ZipAsync_1_1(l, r).AsyncCall(tuple.Mk2(1, 2))
	_, err := f.Await(ctx)
	c.Assert(err, qt.ErrorIs, context.Canceled)
	c.Assert(rightCalls, qt.Equals, 0)

	// The outcome is remembered.
	_, err = f.Await(context.Background())
	c.Assert(err, qt.ErrorIs, context.Canceled)
	c.Assert(rightCalls, qt.Equals, 0)
}

func TestZipAsyncOnce(t *testing.T) {
	c := qt.New(t)
	var log []string
	l := AsyncOnce(func(t tuple.T1[string]) *Future[int] {
		return Ready(len(t.V0))
	})
	z := ZipAsyncOnce_1_1(l, asyncInc(&log))
	got, err := z.AsyncCallOnce(tuple.Mk2("abc", 1)).Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(3, 2))
	c.Assert(func() {
		z.AsyncCallOnce(tuple.Mk2("abc", 1))
	}, qt.PanicMatches, "fnzip: zipped async once function called twice")
	c.Assert(func() {
		l.AsyncCallOnce(tuple.Mk1("x"))
	}, qt.PanicMatches, "fnzip: async once function called twice")
}

func TestZipAsyncOnceFromSyncOnce(t *testing.T) {
	c := qt.New(t)
	l := Once(func(t tuple.T0) string {
		return "once"
	})
	z := ZipAsyncOnce_0_1(PromoteOnce[tuple.T0, string](l), incT)
	got, err := z.AsyncCallOnce(tuple.Mk1(1)).Await(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2("once", 2))
}

func TestZipAsyncMutState(t *testing.T) {
	c := qt.New(t)
	total := 0
	acc := AsyncMut(func(t tuple.T1[int]) *Future[int] {
		return Suspend(func(context.Context) (int, error) {
			total += t.V0
			return total, nil
		})
	})
	z := ZipAsyncMut_1_0(acc, PromoteMut(ZipMut_0_0(incZero, incZero)))
	ctx := context.Background()
	got, err := z.AsyncCallMut(tuple.Mk1(5)).Await(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(5, tuple.Mk2(1, 1)))
	got, err = z.AsyncCallMut(tuple.Mk1(6)).Await(ctx)
	c.Assert(err, qt.IsNil)
	c.Assert(got, qt.Equals, tuple.Mk2(11, tuple.Mk2(1, 1)))
}

var incZero = From(func(tuple.T0) int {
	return 1
})
