package calc

import (
	"strconv"
	"strings"
)

// Node is a node in the expression tree of a statement. The concrete types
// are *Number, *ConstantRef, *VariableRef, *FunctionRef, *Arithmetic,
// *Assignment, and *SubExpression. Trees are not modified after parsing.
type Node interface {
	Kind() NodeKind
	String() string

	fmt(b *strings.Builder)
}

// NodeKind identifies the type of a node. It is also the origin reported
// with an evaluation result.
type NodeKind int8

const (
	NodeNumber NodeKind = iota
	NodeConstant
	NodeVariable
	NodeFunction
	NodeArithmetic
	NodeAssignment
	NodeSubExpression
)

func (k NodeKind) String() string {
	switch k {
	case NodeNumber:
		return "number"
	case NodeConstant:
		return "constant"
	case NodeVariable:
		return "variable"
	case NodeFunction:
		return "function"
	case NodeArithmetic:
		return "arithmetic"
	case NodeAssignment:
		return "assignment"
	case NodeSubExpression:
		return "subexpression"
	default:
		return "NodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Number is a numeric literal.
type Number struct {
	Value float64
	// Text is the literal as written.
	Text string
}

// ConstantRef is a reference to a constant.
type ConstantRef struct {
	Symbol *Constant
}

// VariableRef is a reference to a variable.
type VariableRef struct {
	Symbol *Variable
}

// FunctionRef is a reference to a function. Evaluating it evaluates the body
// the function has in the table at that time.
type FunctionRef struct {
	Symbol *Function
}

// Arithmetic is a binary operation.
type Arithmetic struct {
	Op          Operator
	Left, Right Node
}

// Assignment assigns Value to Target, which is a *Constant, *Variable, or
// *Function. For functions, Value is the body.
type Assignment struct {
	// Op is the table's assignment operator.
	Op     Operator
	Target Symbol
	Value  Node
}

// SubExpression is a parenthesized group.
type SubExpression struct {
	Inner Node
}

func (*Number) Kind() NodeKind        { return NodeNumber }
func (*ConstantRef) Kind() NodeKind   { return NodeConstant }
func (*VariableRef) Kind() NodeKind   { return NodeVariable }
func (*FunctionRef) Kind() NodeKind   { return NodeFunction }
func (*Arithmetic) Kind() NodeKind    { return NodeArithmetic }
func (*Assignment) Kind() NodeKind    { return NodeAssignment }
func (*SubExpression) Kind() NodeKind { return NodeSubExpression }

func (n *Number) String() string        { return nodestr(n) }
func (n *ConstantRef) String() string   { return nodestr(n) }
func (n *VariableRef) String() string   { return nodestr(n) }
func (n *FunctionRef) String() string   { return nodestr(n) }
func (n *Arithmetic) String() string    { return nodestr(n) }
func (n *Assignment) String() string    { return nodestr(n) }
func (n *SubExpression) String() string { return nodestr(n) }

func nodestr(n Node) string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Number) fmt(b *strings.Builder) {
	if n.Text != "" {
		b.WriteString(n.Text)
		return
	}
	b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))
}

func (n *ConstantRef) fmt(b *strings.Builder) { b.WriteString(n.Symbol.name) }
func (n *VariableRef) fmt(b *strings.Builder) { b.WriteString(n.Symbol.name) }
func (n *FunctionRef) fmt(b *strings.Builder) { b.WriteString(n.Symbol.sig.Name) }

func (n *Arithmetic) fmt(b *strings.Builder) {
	n.Left.fmt(b)
	b.WriteByte(n.Op.Char)
	n.Right.fmt(b)
}

func (n *Assignment) fmt(b *strings.Builder) {
	if f, ok := n.Target.(*Function); ok {
		b.WriteString(f.sig.String())
	} else {
		b.WriteString(n.Target.Name())
	}
	if n.Op.Char == 0 {
		b.WriteByte('=')
	} else {
		b.WriteByte(n.Op.Char)
	}
	n.Value.fmt(b)
}

func (n *SubExpression) fmt(b *strings.Builder) {
	b.WriteByte('(')
	n.Inner.fmt(b)
	b.WriteByte(')')
}

// unwrap removes any SubExpression layers around n.
func unwrap(n Node) Node {
	for {
		s, ok := n.(*SubExpression)
		if !ok {
			return n
		}
		n = s.Inner
	}
}

// walk calls f on n and each node below it, in order. Function references
// are not followed into their bodies.
func walk(n Node, f func(Node)) {
	f(n)
	switch n := n.(type) {
	case *Number, *ConstantRef, *VariableRef, *FunctionRef:
		// leaves
	case *Arithmetic:
		walk(n.Left, f)
		walk(n.Right, f)
	case *Assignment:
		walk(n.Value, f)
	case *SubExpression:
		walk(n.Inner, f)
	default:
		panic("calc: invalid node " + n.Kind().String())
	}
}
