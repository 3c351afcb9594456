// Package tuple holds a collection of generic struct types
// that hold a specific number of values, together with the
// functions that split a tuple into a prefix and a suffix and
// concatenate two tuples back into one.
//
// For every pair of lengths N and M whose sum does not exceed
// the generated maximum, Split_N_M and Concat_N_M are inverses:
//
//	Concat_N_M(Split_N_M(t)) == t
//	Split_N_M(Concat_N_M(a, b)) == a, b
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple
