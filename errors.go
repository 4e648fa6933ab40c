package calc

import (
	"errors"
	"strconv"
)

// Errors from symbol table operations and symbol resolution. They are wrapped
// in a *SymbolError naming the symbol.
var (
	ErrDuplicateSymbol          = errors.New("symbol already defined")
	ErrIllegalRedefinition      = errors.New("cannot redefine operator")
	ErrUndefinedSymbol          = errors.New("undefined symbol")
	ErrTypeMismatch             = errors.New("symbol has no numeric value")
	ErrCannotRemoveOperator     = errors.New("cannot remove operator")
	ErrNonNumericAssignment     = errors.New("can only assign numeric values to constants and variables")
	ErrUndefinedOrInvalidSymbol = errors.New("invalid syntax or undeclared symbol")
)

// Errors from the shape of a statement. They are wrapped in a
// *StatementError holding the offending text.
var (
	ErrEmptyStatement       = errors.New("statement may not be empty")
	ErrNoAssignmentOperator = errors.New("configuration must define exactly one assignment operator")
	ErrMultipleAssignments  = errors.New("statement may only have one assignment operator")
	ErrMalformedStatement   = errors.New("improperly formed statement")
	ErrInvalidSymbolName    = errors.New("improper symbol name (must use alphabetical characters only)")
	ErrMalformedSignature   = errors.New("improper function signature")
)

// Errors from evaluation. DivideByZeroError and RecursionError unwrap to
// them.
var (
	ErrDivideByZero = errors.New("division by zero")
	ErrRecursion    = errors.New("recursive function reference")
)

// SymbolError is an error concerning a particular symbol. It unwraps to one
// of the symbol sentinel errors.
type SymbolError struct {
	// Name is the symbol, or the token that failed to resolve to one.
	Name string
	// Err is the reason.
	Err error
}

func (err *SymbolError) Error() string {
	return err.Err.Error() + ": " + strconv.Quote(err.Name)
}

func (err *SymbolError) Unwrap() error {
	return err.Err
}

// StatementError is an error in the form of a statement or substatement. It
// unwraps to one of the statement sentinel errors.
type StatementError struct {
	// Statement is the text that was rejected. It may be a substring of the
	// statement the caller passed in.
	Statement string
	// Err is the reason.
	Err error
}

func (err *StatementError) Error() string {
	if err.Statement == "" {
		return err.Err.Error()
	}
	return err.Err.Error() + ": " + err.Statement
}

func (err *StatementError) Unwrap() error {
	return err.Err
}

// BracketError is an error indicating mismatched parentheses in the input.
type BracketError struct {
	// Col is the 1-based position of the offending parenthesis.
	Col int
	// Open is true if the parenthesis at Col is never closed, and false if it
	// is a close with no matching open.
	Open bool
}

func (err *BracketError) Error() string {
	if err.Open {
		return errpos(err.Col, "open parenthesis with no close parenthesis")
	}
	return errpos(err.Col, "close parenthesis with no open parenthesis")
}

// Pos returns the position of the unmatched parenthesis.
func (err *BracketError) Pos() int {
	return err.Col
}

// DivideByZeroError is an error from a division whose divisor is exactly 0.
type DivideByZeroError struct {
	// X is the dividend.
	X float64
}

func (err *DivideByZeroError) Error() string {
	return "division by zero: " + strconv.FormatFloat(err.X, 'g', -1, 64) + " / 0"
}

func (err *DivideByZeroError) Unwrap() error {
	return ErrDivideByZero
}

// RecursionError is an error from evaluating a function whose body refers
// back to itself, directly or through other functions.
type RecursionError struct {
	// Func is the function that was reached again.
	Func string
}

func (err *RecursionError) Error() string {
	return "function " + strconv.Quote(err.Func) + " refers to itself"
}

func (err *RecursionError) Unwrap() error {
	return ErrRecursion
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

func symerr(name string, err error) error {
	return &SymbolError{Name: name, Err: err}
}

func stmterr(s string, err error) error {
	return &StatementError{Statement: s, Err: err}
}

var (
	_ error = (*SymbolError)(nil)
	_ error = (*StatementError)(nil)
	_ error = (*BracketError)(nil)
	_ error = (*DivideByZeroError)(nil)
	_ error = (*RecursionError)(nil)
)
