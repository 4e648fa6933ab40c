// Package calc implements an interactive calculator language over float64.
//
// A statement is either an expression, like "1+2*3" or "(a+b)%c", or an
// assignment. "x=5" assigns a number to an existing constant or variable; if
// x is not a symbol yet, it declares x as a function with no arguments.
// "f(x,y)=x*y" declares a function; its arguments become variables, and
// referring to "f" later evaluates the body with whatever values x and y have
// at that time. There are no calls with arguments: "x=2" then "f" is how to
// compute f(2, y).
//
// The operators are = + - * / %, each with a rank. A statement splits first
// on the lowest-ranked operator outside parentheses, leftmost on ties, so
// "1+2*3" is 7 and "8-2-1" is 8-(2-1).
//
// Names that are not yet symbols become constants with value 0 when they
// appear in an expression, unless that is turned off with ImplicitConstants
// or WithImplicitConstants.
package calc
