package fnzip_test

import (
	"fmt"
	"math"
	"strings"

	"github.com/rogpeppe/fnzip"
	"github.com/rogpeppe/fnzip/tuple"
	"github.com/rogpeppe/fnzip/tuple/tuplefunc"
)

func Example() {
	inc := func(x int) int {
		return x + 1
	}
	f := fnzip.Zip_1_1(math.Sqrt, inc)
	fmt.Println(f(4, 23))
	// Output:
	// 2 24
}

// This example zips a zipped function with a third function.
// The results nest rather than flatten.
func Example_nested() {
	sqrt := fnzip.From(tuplefunc.ToA_1(math.Sqrt))
	upper := fnzip.From(tuplefunc.ToA_1(strings.ToUpper))
	repeat := fnzip.From(tuplefunc.ToA_2(strings.Repeat))

	ab := fnzip.ZipFunc_1_1(sqrt, upper)
	abc := fnzip.ZipFunc_2_2(ab, repeat)
	r := abc.Call(tuple.Mk4(9.0, "go", "ab", 3))
	fmt.Println(r.V0.V0, r.V0.V1, r.V1)
	// Output:
	// 3 GO ababab
}
