package calc

import (
	"math"
	"strconv"
)

// Result is the outcome of evaluating a statement. When evaluation returns an
// error, the Result is the zero value and means nothing; in particular its
// Kind is not a description of the statement.
type Result struct {
	// Value is the numeric result. It is meaningless for assignments.
	Value float64
	// Kind is the kind of node that produced the value. Assignments produce
	// NodeAssignment and no value.
	Kind NodeKind
}

// HasValue returns whether the result is a number to display, as opposed to
// the completion of an assignment.
func (r Result) HasValue() bool {
	return r.Kind != NodeAssignment
}

func (r Result) String() string {
	if !r.HasValue() {
		return "assignment"
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// Eval evaluates a parsed statement against t. Assignments modify t.
func (e *Expr) Eval(t *Table) (Result, error) {
	return Eval(t, e.n)
}

// Eval evaluates a node against t. Any error stops evaluation and is returned
// unchanged.
func Eval(t *Table, n Node) (Result, error) {
	return eval(t, n, nil)
}

// eval evaluates n. active is the list of functions whose bodies are being
// evaluated, outermost first.
func eval(t *Table, n Node, active []string) (Result, error) {
	switch n := n.(type) {
	case *Number:
		return Result{Value: n.Value, Kind: NodeNumber}, nil
	case *ConstantRef:
		v, err := t.Value(n.Symbol.name)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v, Kind: NodeConstant}, nil
	case *VariableRef:
		v, err := t.Value(n.Symbol.name)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v, Kind: NodeVariable}, nil
	case *FunctionRef:
		name := n.Symbol.sig.Name
		f := t.functions[name]
		if f == nil {
			return Result{}, symerr(name, ErrUndefinedSymbol)
		}
		for _, a := range active {
			if a == name {
				return Result{}, &RecursionError{Func: name}
			}
		}
		r, err := eval(t, f.body, append(active, name))
		if err != nil {
			return Result{}, err
		}
		return Result{Value: r.Value, Kind: NodeFunction}, nil
	case *Arithmetic:
		l, err := eval(t, n.Left, active)
		if err != nil {
			return Result{}, err
		}
		r, err := eval(t, n.Right, active)
		if err != nil {
			return Result{}, err
		}
		v, err := arith(n.Op, l.Value, r.Value)
		if err != nil {
			return Result{}, err
		}
		return Result{Value: v, Kind: NodeArithmetic}, nil
	case *Assignment:
		switch target := n.Target.(type) {
		case *Constant, *Variable:
			r, err := eval(t, n.Value, active)
			if err != nil {
				return Result{}, err
			}
			if err := t.SetValue(target.Name(), r.Value); err != nil {
				return Result{}, err
			}
		case *Function:
			// The body must evaluate with the current values of its symbols
			// before it replaces the old one. It is stored as a tree, not as
			// the value. The function itself is active so that a body
			// referring back to it fails instead of recursing.
			if _, err := eval(t, n.Value, append(active, target.Name())); err != nil {
				return Result{}, err
			}
			if err := t.SetBody(target.Name(), n.Value); err != nil {
				return Result{}, err
			}
		default:
			panic("calc: invalid assignment target " + n.Target.Kind().String())
		}
		return Result{Kind: NodeAssignment}, nil
	case *SubExpression:
		return eval(t, n.Inner, active)
	default:
		panic("calc: invalid AST node " + n.Kind().String())
	}
}

// arith applies a binary operator.
func arith(op Operator, l, r float64) (float64, error) {
	switch op.Op {
	case OpAdd:
		return l + r, nil
	case OpSub:
		return l - r, nil
	case OpMul:
		return l * r, nil
	case OpDiv:
		if r == 0 {
			return 0, &DivideByZeroError{X: l}
		}
		return l / r, nil
	case OpMod:
		// No zero guard: x % 0 is NaN, as math.Mod gives.
		return math.Mod(l, r), nil
	default:
		panic("calc: invalid arithmetic operator " + op.Op.String())
	}
}
