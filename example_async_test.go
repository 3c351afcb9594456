//go:build !fnzip_noasync

package fnzip_test

import (
	"context"
	"fmt"

	"github.com/rogpeppe/fnzip"
	"github.com/rogpeppe/fnzip/tuple"
)

func Example_async() {
	fetch := fnzip.FromAsync(func(t tuple.T1[string]) *fnzip.Future[int] {
		return fnzip.Suspend(func(ctx context.Context) (int, error) {
			fmt.Println("fetching", t.V0)
			return len(t.V0), nil
		})
	})
	double := fnzip.From(func(t tuple.T1[int]) int {
		fmt.Println("doubling", t.V0)
		return t.V0 * 2
	})
	f := fnzip.ZipAsync_1_1(fetch, double).AsyncCall(tuple.Mk2("hello", 21))
	fmt.Println("created")
	r, err := f.Await(context.Background())
	fmt.Println(r.V0, r.V1, err)
	// Output:
	// created
	// fetching hello
	// doubling 21
	// 5 42 <nil>
}
