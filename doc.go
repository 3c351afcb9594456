// Package fnzip combines two functions into one whose arguments are the
// arguments of both, in order, and whose result is the pair of both results.
//
// For plain Go functions, use one of the Zip_N_M functions, where N is the
// number of arguments taken by the left function and M the number taken by
// the right one:
//
//	ab := fnzip.Zip_1_1(math.Sqrt, func(x int) int { return x + 1 })
//	ya, yb := ab(4, 23) // 2, 24
//
// The left function is always called, and returns, before the right one
// is called. If the left function panics the right function is not called.
// ZipE_N_M does the same for functions that return an error, and does
// not call the right function if the left one fails.
//
// # Calling disciplines
//
// Callables are also described by three interfaces taking a single tuple
// argument (see the tuple package):
//
//	OnceFunc  - may be called at most once (CallOnce)
//	MutFunc   - may be called repeatedly, but not concurrently (CallMut)
//	Func      - may be called repeatedly with no observable state change (Call)
//
// Each interface embeds the weaker one, so a Func may be used wherever a
// MutFunc or OnceFunc is required. ZipOnce_N_M, ZipMut_N_M and ZipFunc_N_M
// zip two callables of the given discipline; when the two operands differ,
// use the constructor for the weaker of the two.
//
// Each discipline has an asynchronous counterpart (AsyncOnceFunc,
// AsyncMutFunc, AsyncFunc) whose methods return a *Future. A Future does
// nothing until it is driven with Await. The ZipAsync* constructors drive the
// left future to completion before calling the right operand at all; the two
// operands never run concurrently. Fn values implement the asynchronous
// contracts too, so synchronous and asynchronous operands can be mixed.
// The asynchronous support may be left out of a build with the
// fnzip_noasync build tag.
//
// The Zip functions exist for every pair of arities whose sum is at most 16.
// Larger limits can be generated with the fnzipgen command.
package fnzip

//go:generate go run ./cmd/fnzipgen --max-arity 16
