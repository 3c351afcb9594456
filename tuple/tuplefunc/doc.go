// Package tuplefunc provides functions that convert between multiple-argument
// functions and single-argument functions taking a tuple.
// This makes it trivial to pass arbitrary functions to generic operations
// that are designed to operate on single-argument functions, such as the
// capability contracts in the fnzip package.
//
// For functions with as many argument parameters as can be represented by
// the tuple package, this package provides a function to convert to and from those
// forms.
//
// The names of the functions in this package match the following regular expression:
//
//	(To|From)A_[0-9]+
//
// The number is the number of argument parameters. ToA converts from
// a multiple-argument function to a tuple-argument function; FromA
// converts back. So, for example:
//
//	ToA_3
//
// converts from (for some types A0, A1, A2 and R)
//
//	func(A0, A1, A2) R
//
// to:
//
//	func(tuple.T3[A0, A1, A2]) R
package tuplefunc
