package gen

const header = "// Code generated by fnzipgen. DO NOT EDIT.\n"

const asyncBuildTag = "//go:build !fnzip_noasync\n"

const tupleTemplate = `{{header}}
package tuple
{{range .Tuples}}{{if eq .N 0}}
// T0 holds no values.
type T0 struct{}

// Mk0 returns the empty tuple.
func Mk0() T0 {
	return T0{}
}
{{else}}
// {{.Name}} holds {{plural .N "value"}}.
type {{.Decl}} struct {
{{range .Fields}}	{{.}}
{{end}}}

// Mk{{.N}} returns a {{.Name}} holding the given values.
func Mk{{.N}}[{{.TypeParams}}]({{.ParamDecls "v"}}) {{.Type}} {
	return {{.Literal "" "v"}}
}

// Values returns the values held in t.
func (t {{.Type}}) Values() {{.Results}} {
	return {{.Refs "t"}}
}
{{end}}{{end}}{{range .Splits}}
// Split_{{.Name}} splits t into its first {{.N}} and last {{.M}} elements.
func Split_{{.Name}}{{.TypeParamList}}(t {{.Whole}}) ({{.Prefix}}, {{.Suffix}}) {
	return {{.SplitBody}}
}

// Concat_{{.Name}} returns the concatenation of a and b.
func Concat_{{.Name}}{{.TypeParamList}}(a {{.Prefix}}, b {{.Suffix}}) {{.Whole}} {
	return {{.ConcatBody}}
}
{{end}}`

const tupleTestTemplate = `{{header}}
package tuple

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestSplitConcat(t *testing.T) {
{{range .Splits}}	t.Run("{{.Name}}", func(t *testing.T) {
		x := {{.Sample 0 (add .N .M)}}
		a, b := Split_{{.Name}}(x)
		qt.Assert(t, qt.Equals(a, {{.Sample 0 .N}}))
		qt.Assert(t, qt.Equals(b, {{.Sample .N .M}}))
		qt.Assert(t, qt.Equals(Concat_{{.Name}}(a, b), x))
	})
{{end}}}
`

const tuplefuncTemplate = `{{header}}
package tuplefunc

import "github.com/rogpeppe/fnzip/tuple"
{{range .Tuples}}
// ToA_{{.N}} converts a function of {{plural .N "argument"}} to a function taking a {{.Name}}.
func ToA_{{.N}}[{{.TypeParams "R"}}](f func({{.Types}}) R) func({{.QType}}) R {
	return func(t {{.QType}}) R {
		return f({{.Refs "t"}})
	}
}

// FromA_{{.N}} converts a function taking a {{.Name}} to a function of {{plural .N "argument"}}.
func FromA_{{.N}}[{{.TypeParams "R"}}](f func({{.QType}}) R) func({{.Types}}) R {
	return func({{.ParamDecls "a"}}) R {
		return f({{.Literal "tuple." "a"}})
	}
}
{{end}}`

const zipTemplate = `{{header}}
package fnzip

import "github.com/rogpeppe/fnzip/tuple"
{{range .Pairs}}
// Zip_{{.Name}} zips a function of {{plural .N "argument"}} with a function of {{plural .M "argument"}}.
// The returned function calls l with its leading arguments and then r
// with its trailing arguments.
func Zip_{{.Name}}[{{.TypeParams "X" "Y"}}](l func({{.LeftTypes}}) X, r func({{.RightTypes}}) Y) func({{.AllTypes}}) (X, Y) {
	return func({{.Params}}) (X, Y) {
		x := l({{.LeftArgs}})
		return x, r({{.RightArgs}})
	}
}

// ZipE_{{.Name}} is like Zip_{{.Name}} for functions that can fail.
// If l fails, r is not called.
func ZipE_{{.Name}}[{{.TypeParams "X" "Y"}}](l func({{.LeftTypes}}) (X, error), r func({{.RightTypes}}) (Y, error)) func({{.AllTypes}}) (X, Y, error) {
	return func({{.Params}}) (X, Y, error) {
		x, err := l({{.LeftArgs}})
		if err != nil {
			return *new(X), *new(Y), err
		}
		y, err := r({{.RightArgs}})
		if err != nil {
			return *new(X), *new(Y), err
		}
		return x, y, nil
	}
}

// ZipOnce_{{.Name}} zips two OnceFuncs taking {{.N}} and {{.M}} arguments.
func ZipOnce_{{.Name}}[{{.TypeParams "LO" "RO"}}](l OnceFunc[{{.LeftTuple}}, LO], r OnceFunc[{{.RightTuple}}, RO]) *ZippedOnce[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipOnce(l, r, {{.Split}})
}

// ZipMut_{{.Name}} zips two MutFuncs taking {{.N}} and {{.M}} arguments.
func ZipMut_{{.Name}}[{{.TypeParams "LO" "RO"}}](l MutFunc[{{.LeftTuple}}, LO], r MutFunc[{{.RightTuple}}, RO]) *ZippedMut[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipMut(l, r, {{.Split}})
}

// ZipFunc_{{.Name}} zips two Funcs taking {{.N}} and {{.M}} arguments.
func ZipFunc_{{.Name}}[{{.TypeParams "LO" "RO"}}](l Func[{{.LeftTuple}}, LO], r Func[{{.RightTuple}}, RO]) Zipped[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipFunc(l, r, {{.Split}})
}
{{end}}`

const zipAsyncTemplate = `{{header}}
{{buildtag}}
package fnzip

import "github.com/rogpeppe/fnzip/tuple"
{{range .Pairs}}
// ZipAsyncOnce_{{.Name}} zips two AsyncOnceFuncs taking {{.N}} and {{.M}} arguments.
func ZipAsyncOnce_{{.Name}}[{{.TypeParams "LO" "RO"}}](l AsyncOnceFunc[{{.LeftTuple}}, LO], r AsyncOnceFunc[{{.RightTuple}}, RO]) *AsyncZippedOnce[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipAsyncOnce(l, r, {{.Split}})
}

// ZipAsyncMut_{{.Name}} zips two AsyncMutFuncs taking {{.N}} and {{.M}} arguments.
func ZipAsyncMut_{{.Name}}[{{.TypeParams "LO" "RO"}}](l AsyncMutFunc[{{.LeftTuple}}, LO], r AsyncMutFunc[{{.RightTuple}}, RO]) *AsyncZippedMut[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipAsyncMut(l, r, {{.Split}})
}

// ZipAsync_{{.Name}} zips two AsyncFuncs taking {{.N}} and {{.M}} arguments.
func ZipAsync_{{.Name}}[{{.TypeParams "LO" "RO"}}](l AsyncFunc[{{.LeftTuple}}, LO], r AsyncFunc[{{.RightTuple}}, RO]) AsyncZipped[{{.AllTuple}}, {{.LeftTuple}}, LO, {{.RightTuple}}, RO] {
	return zipAsync(l, r, {{.Split}})
}
{{end}}`
