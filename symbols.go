package calc

import (
	"strconv"
	"strings"
)

// Kind identifies the variant of a symbol.
type Kind int8

const (
	KindConstant Kind = iota
	KindVariable
	KindFunction
	KindOperator
)

func (k Kind) String() string {
	switch k {
	case KindConstant:
		return "constant"
	case KindVariable:
		return "variable"
	case KindFunction:
		return "function"
	case KindOperator:
		return "operator"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// OperatorKind is the operation an operator performs.
type OperatorKind int8

const (
	OpAssign OperatorKind = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (k OperatorKind) String() string {
	switch k {
	case OpAssign:
		return "assignment"
	case OpAdd:
		return "addition"
	case OpSub:
		return "subtraction"
	case OpMul:
		return "multiplication"
	case OpDiv:
		return "division"
	case OpMod:
		return "modulo"
	default:
		return "OperatorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbol is a named entry in a symbol table. The concrete types are
// *Constant, *Variable, *Function, and Operator.
type Symbol interface {
	// Name is the symbol's lookup key. For functions, this is the name
	// without the argument list.
	Name() string
	Kind() Kind

	symbol()
}

// Constant is a named value.
type Constant struct {
	name  string
	value float64
}

func (c *Constant) Name() string { return c.name }
func (c *Constant) Kind() Kind   { return KindConstant }
func (*Constant) symbol()        {}

// Variable is a named value which is also the independent variable of some
// function. Functions read variables from the table when they are evaluated,
// so assigning a variable changes the result of every function using it.
type Variable struct {
	name  string
	value float64
}

func (v *Variable) Name() string { return v.name }
func (v *Variable) Kind() Kind   { return KindVariable }
func (*Variable) symbol()        {}

// Signature is the declared form of a function, e.g. f(x,y).
type Signature struct {
	// Name is the dependent variable, which is also the function's key.
	Name string
	// Args are the independent variable names in declaration order.
	Args []string
}

func (s Signature) String() string {
	if len(s.Args) == 0 {
		return s.Name
	}
	return s.Name + "(" + strings.Join(s.Args, ",") + ")"
}

// Function is a user-defined single-expression function. Calling a function
// evaluates its body against the current table; no arguments are bound.
type Function struct {
	sig  Signature
	body Node
}

func (f *Function) Name() string { return f.sig.Name }
func (f *Function) Kind() Kind   { return KindFunction }
func (*Function) symbol()        {}

// Signature returns the function's declared signature.
func (f *Function) Signature() Signature {
	return Signature{Name: f.sig.Name, Args: append([]string(nil), f.sig.Args...)}
}

// Body returns the function's current body.
func (f *Function) Body() Node { return f.body }

func (f *Function) String() string {
	if f.body == nil {
		return f.sig.String()
	}
	return f.sig.String() + "=" + f.body.String()
}

// Operator is one of the fixed binary operators. Operators with lower Rank
// split a statement first, so they bind last.
type Operator struct {
	Char byte
	Rank int
	Op   OperatorKind
}

func (o Operator) Name() string { return string(o.Char) }
func (o Operator) Kind() Kind   { return KindOperator }
func (Operator) symbol()        {}

// DefaultOperators returns the standard operator set.
func DefaultOperators() []Operator {
	return []Operator{
		{'=', 0, OpAssign},
		{'+', 1, OpAdd},
		{'-', 2, OpSub},
		{'*', 3, OpMul},
		{'/', 4, OpDiv},
		{'%', 5, OpMod},
	}
}

var (
	_ Symbol = (*Constant)(nil)
	_ Symbol = (*Variable)(nil)
	_ Symbol = (*Function)(nil)
	_ Symbol = Operator{}
)
