package gen

import (
	"fmt"
	"iter"
	"strings"
)

// Pair describes the zip of a function of N arguments with
// a function of M arguments.
type Pair struct {
	N, M int
}

// Pairs returns every pair with N+M <= max, ordered by N and then by M.
func Pairs(max int) iter.Seq[Pair] {
	return func(yield func(Pair) bool) {
		for n := 0; n <= max; n++ {
			for m := 0; n+m <= max; m++ {
				if !yield(Pair{N: n, M: m}) {
					return
				}
			}
		}
	}
}

// Name returns the suffix used in generated identifiers, e.g. "2_1".
func (p Pair) Name() string {
	return fmt.Sprintf("%d_%d", p.N, p.M)
}

func (p Pair) left() []string  { return names("A", p.N) }
func (p Pair) right() []string { return names("B", p.M) }
func (p Pair) all() []string   { return append(p.left(), p.right()...) }

// TypeParams returns the type parameter list of a generated
// zip function, ending with the extra parameters.
func (p Pair) TypeParams(extra ...string) string {
	return strings.Join(append(p.all(), extra...), ", ") + " any"
}

func (p Pair) LeftTypes() string  { return strings.Join(p.left(), ", ") }
func (p Pair) RightTypes() string { return strings.Join(p.right(), ", ") }
func (p Pair) AllTypes() string   { return strings.Join(p.all(), ", ") }
func (p Pair) LeftArgs() string   { return strings.Join(names("a", p.N), ", ") }
func (p Pair) RightArgs() string  { return strings.Join(names("b", p.M), ", ") }

// Params returns the parameter declarations of the zipped function.
func (p Pair) Params() string {
	params := decls("a", p.left())
	return strings.Join(append(params, decls("b", p.right())...), ", ")
}

func (p Pair) LeftTuple() string  { return tupleType("tuple.", p.left()) }
func (p Pair) RightTuple() string { return tupleType("tuple.", p.right()) }
func (p Pair) AllTuple() string   { return tupleType("tuple.", p.all()) }

// Split returns the instantiated tuple split function for p.
func (p Pair) Split() string {
	return instantiate("tuple.Split_"+p.Name(), p.all())
}

// Tuple describes the tuple type holding N values.
type Tuple struct {
	N int
}

func (t Tuple) params() []string { return names("A", t.N) }

// Name returns the name of the tuple type, e.g. "T2".
func (t Tuple) Name() string {
	return fmt.Sprintf("T%d", t.N)
}

// Decl returns the name and type parameter list used to declare t.
func (t Tuple) Decl() string {
	if t.N == 0 {
		return t.Name()
	}
	return t.Name() + "[" + strings.Join(t.params(), ", ") + " any]"
}

// Type returns the instantiated, unqualified tuple type.
func (t Tuple) Type() string {
	return tupleType("", t.params())
}

// QType returns the instantiated tuple type as seen
// from outside the tuple package.
func (t Tuple) QType() string {
	return tupleType("tuple.", t.params())
}

// Fields returns the field declarations of t.
func (t Tuple) Fields() []string {
	fields := make([]string, t.N)
	for i, typ := range t.params() {
		fields[i] = fmt.Sprintf("V%d %s", i, typ)
	}
	return fields
}

// TypeParams returns the type parameter list of a function
// over t's element types, ending with the extra parameters.
func (t Tuple) TypeParams(extra ...string) string {
	return strings.Join(append(t.params(), extra...), ", ") + " any"
}

// Types returns t's element types as a list.
func (t Tuple) Types() string {
	return strings.Join(t.params(), ", ")
}

// Results returns t's element types as a result list.
func (t Tuple) Results() string {
	if t.N == 1 {
		return t.params()[0]
	}
	return "(" + t.Types() + ")"
}

// Args returns one argument name per value, e.g. "v0, v1".
func (t Tuple) Args(prefix string) string {
	return strings.Join(names(prefix, t.N), ", ")
}

// ParamDecls returns one parameter declaration per value.
func (t Tuple) ParamDecls(prefix string) string {
	return strings.Join(decls(prefix, t.params()), ", ")
}

// Refs returns the field selectors of the tuple variable v.
func (t Tuple) Refs(v string) string {
	return strings.Join(fieldRefs(v, 0, t.N), ", ")
}

// Literal returns a composite literal of t holding
// one argument per value.
func (t Tuple) Literal(qual, prefix string) string {
	return literal(tupleType(qual, t.params()), names(prefix, t.N))
}

// Split describes Split_N_M and Concat_N_M within the tuple package.
type Split struct {
	N, M int
}

func (s Split) params() []string { return names("A", s.N+s.M) }

func (s Split) Name() string {
	return fmt.Sprintf("%d_%d", s.N, s.M)
}

// TypeParamList returns the bracketed type parameter list,
// or nothing when both tuples are empty.
func (s Split) TypeParamList() string {
	if s.N+s.M == 0 {
		return ""
	}
	return "[" + strings.Join(s.params(), ", ") + " any]"
}

func (s Split) Whole() string  { return tupleType("", s.params()) }
func (s Split) Prefix() string { return tupleType("", s.params()[:s.N]) }
func (s Split) Suffix() string { return tupleType("", s.params()[s.N:]) }

// SplitBody returns the expressions returned by Split_N_M.
func (s Split) SplitBody() string {
	return literal(s.Prefix(), fieldRefs("t", 0, s.N)) + ", " +
		literal(s.Suffix(), fieldRefs("t", s.N, s.M))
}

// ConcatBody returns the expression returned by Concat_N_M.
func (s Split) ConcatBody() string {
	return literal(s.Whole(), append(fieldRefs("a", 0, s.N), fieldRefs("b", 0, s.M)...))
}

// Sample returns a tuple literal holding N+M test values,
// alternating between int and string elements.
func (s Split) Sample(start, n int) string {
	vals := make([]string, n)
	for i := range n {
		if (start+i)%2 == 0 {
			vals[i] = fmt.Sprint(start + i)
		} else {
			vals[i] = fmt.Sprintf("%q", fmt.Sprint(start+i))
		}
	}
	return fmt.Sprintf("Mk%d(%s)", n, strings.Join(vals, ", "))
}

func literal(typ string, exprs []string) string {
	fields := make([]string, len(exprs))
	for i, e := range exprs {
		fields[i] = fmt.Sprintf("V%d: %s", i, e)
	}
	return typ + "{" + strings.Join(fields, ", ") + "}"
}

func decls(prefix string, types []string) []string {
	ds := make([]string, len(types))
	for i, typ := range types {
		ds[i] = fmt.Sprintf("%s%d %s", prefix, i, typ)
	}
	return ds
}

func fieldRefs(v string, start, n int) []string {
	refs := make([]string, n)
	for i := range n {
		refs[i] = fmt.Sprintf("%s.V%d", v, start+i)
	}
	return refs
}

func names(prefix string, n int) []string {
	ns := make([]string, n)
	for i := range n {
		ns[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return ns
}

func tupleType(qual string, params []string) string {
	return instantiate(fmt.Sprintf("%sT%d", qual, len(params)), params)
}

func instantiate(name string, params []string) string {
	if len(params) == 0 {
		return name
	}
	return name + "[" + strings.Join(params, ", ") + "]"
}
