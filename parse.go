package calc

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Statement = Assignment | Expr
// Assignment = Target '=' Expr
// Target = name | name '(' name { ',' name } ')'
// Expr = Value | Expr op Expr | '(' Expr ')'
// Value = number | name
//
// Expressions split on the operator of lowest rank outside parentheses, the
// leftmost one if several share that rank. Whitespace must already have been
// removed; see Format.

// Expr is a parsed statement that can be evaluated with the table it was
// parsed against.
type Expr struct {
	// n is the root node of the statement.
	n Node
}

// Parse parses a formatted statement. Parsing may declare symbols in t:
// the independent variables of a function signature, the function itself,
// and, unless disabled with ImplicitConstants, unknown names as constants.
// Declarations made before an error is found stay in t, so e.g. "k=q" with k
// a constant fails but declares q, and "m(u)=u+" fails but declares u and
// not m. Use OnDeclare to observe them.
func Parse(t *Table, statement string, opts ...ParseOption) (*Expr, error) {
	asgn, err := t.AssignmentOperator()
	if err != nil {
		return nil, err
	}
	p := parsectx{t: t, asgn: asgn, implicit: true}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	if statement == "" {
		return nil, stmterr("", ErrEmptyStatement)
	}
	if err := checkParens(statement); err != nil {
		return nil, err
	}
	// Enclosing parentheses around the whole statement carry no meaning, so
	// they are dropped instead of becoming a SubExpression.
	s, _ := stripParens(statement)
	if s == "" {
		return nil, stmterr(statement, ErrMalformedStatement)
	}
	n, err := p.parsestmt(s)
	if err != nil {
		return nil, err
	}
	return &Expr{n: n}, nil
}

// parse parses a substatement, keeping enclosing parentheses as
// SubExpression nodes.
func (p *parsectx) parse(s string) (Node, error) {
	inner, layers := stripParens(s)
	if inner == "" {
		return nil, stmterr(s, ErrMalformedStatement)
	}
	n, err := p.parsestmt(inner)
	if err != nil {
		return nil, err
	}
	for ; layers > 0; layers-- {
		n = &SubExpression{Inner: n}
	}
	return n, nil
}

// parsestmt parses a statement with no enclosing parentheses.
func (p *parsectx) parsestmt(s string) (Node, error) {
	if s == "" {
		return nil, stmterr(s, ErrMalformedStatement)
	}
	switch strings.Count(s, p.asgn.Name()) {
	case 0:
		return p.parsearith(s)
	case 1:
		return p.parseassign(s)
	default:
		return nil, stmterr(s, ErrMultipleAssignments)
	}
}

// parseassign parses an assignment to a constant, variable, or function.
func (p *parsectx) parseassign(s string) (Node, error) {
	lhs, rhs, _ := strings.Cut(s, p.asgn.Name())
	if lhs == "" || rhs == "" {
		return nil, stmterr(s, ErrMalformedStatement)
	}
	name := lhs
	if k := strings.IndexByte(lhs, '('); k >= 0 {
		name = lhs[:k]
	}
	// Check for operators before names so that e.g. +=1 reports the
	// redefinition instead of the invalid name.
	sym, ok := p.t.Lookup(name)
	if ok && sym.Kind() == KindOperator {
		return nil, symerr(name, ErrIllegalRedefinition)
	}
	if !validTarget(lhs) {
		return nil, stmterr(lhs, ErrInvalidSymbolName)
	}
	switch sym := sym.(type) {
	case *Constant, *Variable:
		v, err := p.parse(rhs)
		if err != nil {
			return nil, err
		}
		if _, ok := unwrap(v).(*Number); !ok {
			return nil, symerr(name, ErrNonNumericAssignment)
		}
		return &Assignment{Op: p.asgn, Target: sym, Value: v}, nil
	case *Function:
		return p.parsefunc(lhs, rhs, sym)
	default:
		return p.parsefunc(lhs, rhs, nil)
	}
}

// parsefunc parses a function declaration. If f is not nil, the resulting
// assignment replaces the body of f when evaluated and keeps its signature.
func (p *parsectx) parsefunc(lhs, rhs string, f *Function) (Node, error) {
	sig, err := parseSignature(lhs)
	if err != nil {
		return nil, err
	}
	for _, arg := range sig.Args {
		if p.t.IsDefined(arg) {
			continue
		}
		v, err := p.t.DefineVariable(arg, 0)
		if err != nil {
			return nil, err
		}
		p.declared(v)
	}
	q := *p
	if f == nil {
		q.decl = sig.Name
	}
	body, err := q.parse(rhs)
	if err != nil {
		return nil, err
	}
	if f != nil {
		// The new body replaces the old one only once it evaluates.
		return &Assignment{Op: p.asgn, Target: f, Value: body}, nil
	}
	f, err = p.t.DefineFunction(sig, body)
	if err != nil {
		return nil, err
	}
	p.declared(f)
	return &Assignment{Op: p.asgn, Target: f, Value: body}, nil
}

// parsearith parses a statement with no assignment.
func (p *parsectx) parsearith(s string) (Node, error) {
	k, op, ok := nextOperator(p.t, s, outermostParens(s))
	if !ok {
		return p.parsevalue(s)
	}
	if k == 0 || k == len(s)-1 {
		// Missing operand. Report the whole operation.
		return nil, stmterr(s, ErrMalformedStatement)
	}
	l, err := p.parse(s[:k])
	if err != nil {
		return nil, err
	}
	r, err := p.parse(s[k+1:])
	if err != nil {
		return nil, err
	}
	return &Arithmetic{Op: op, Left: l, Right: r}, nil
}

// parsevalue parses a number or a symbol reference.
func (p *parsectx) parsevalue(s string) (Node, error) {
	if numeric(s) {
		v, err := strconv.ParseFloat(s, 64)
		var ne *strconv.NumError
		switch {
		case err == nil:
			return &Number{Value: v, Text: s}, nil
		case errors.As(err, &ne) && ne.Err == strconv.ErrRange:
			// ParseFloat gives ±Inf or ±0 as appropriate.
			return &Number{Value: v, Text: s}, nil
		}
		return nil, symerr(s, ErrUndefinedOrInvalidSymbol)
	}
	sym, _ := p.t.Lookup(s)
	switch sym := sym.(type) {
	case *Constant:
		return &ConstantRef{Symbol: sym}, nil
	case *Variable:
		return &VariableRef{Symbol: sym}, nil
	case *Function:
		return &FunctionRef{Symbol: sym}, nil
	}
	if p.implicit && s != p.decl && validName(s) {
		c, err := p.t.DefineConstant(s, 0)
		if err != nil {
			return nil, err
		}
		p.declared(c)
		return &ConstantRef{Symbol: c}, nil
	}
	return nil, symerr(s, ErrUndefinedOrInvalidSymbol)
}

// parseSignature parses the target of a function declaration. lhs must
// already satisfy validTarget.
func parseSignature(lhs string) (Signature, error) {
	k := strings.IndexByte(lhs, '(')
	if k < 0 {
		return Signature{Name: lhs}, nil
	}
	sig := Signature{
		Name: lhs[:k],
		Args: strings.Split(lhs[k+1:len(lhs)-1], ","),
	}
	for i, arg := range sig.Args {
		if arg == sig.Name {
			return Signature{}, stmterr(lhs, ErrMalformedSignature)
		}
		for _, prev := range sig.Args[:i] {
			if arg == prev {
				return Signature{}, stmterr(lhs, ErrMalformedSignature)
			}
		}
	}
	return sig, nil
}

// validTarget returns whether s is a valid assignment target: a name, or a
// name followed by a parenthesized list of one or more comma-separated names.
func validTarget(s string) bool {
	k := strings.IndexByte(s, '(')
	if k < 0 {
		return validName(s)
	}
	if !validName(s[:k]) || s[len(s)-1] != ')' {
		return false
	}
	for _, arg := range strings.Split(s[k+1:len(s)-1], ",") {
		if !validName(arg) {
			return false
		}
	}
	return true
}

// validName returns whether s is a non-empty string of ASCII letters.
func validName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

// numeric returns whether s looks like a decimal number literal. Names like
// inf and nan, which strconv accepts, are not numbers here.
func numeric(s string) bool {
	if s == "" || (s[0] != '.' && (s[0] < '0' || s[0] > '9')) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9', c == '.', c == 'e', c == 'E':
		default:
			return false
		}
	}
	return true
}

// Root returns the root node of the statement.
func (e *Expr) Root() Node {
	return e.n
}

// Refs returns the names of the constants, variables, and functions the
// statement refers to, sorted and without duplicates. The target of an
// assignment is not included.
func (e *Expr) Refs() []string {
	seen := make(map[string]bool)
	walk(e.n, func(n Node) {
		switch n := n.(type) {
		case *ConstantRef:
			seen[n.Symbol.name] = true
		case *VariableRef:
			seen[n.Symbol.name] = true
		case *FunctionRef:
			seen[n.Symbol.sig.Name] = true
		}
	})
	r := make([]string, 0, len(seen))
	for k := range seen {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// String formats the parsed statement with whitespace removed and
// parenthesized groups kept.
func (e *Expr) String() string {
	return e.n.String()
}
