package calc

import "sort"

// Table holds every declared symbol by name. A name is defined in at most one
// of the four mappings. The operator mapping is fixed when the table is
// created.
//
// A Table is not safe for concurrent use. Hosts that share one between
// goroutines must serialize whole format/validate/parse/evaluate cycles.
type Table struct {
	constants map[string]*Constant
	variables map[string]*Variable
	functions map[string]*Function
	operators map[string]Operator
}

// NewTable creates a symbol table with the given operators. If none are
// given, the table uses DefaultOperators. NewTable does not check that the
// operators include an assignment; see AssignmentOperator.
func NewTable(ops ...Operator) *Table {
	if len(ops) == 0 {
		ops = DefaultOperators()
	}
	t := Table{
		constants: make(map[string]*Constant),
		variables: make(map[string]*Variable),
		functions: make(map[string]*Function),
		operators: make(map[string]Operator, len(ops)),
	}
	for _, op := range ops {
		t.operators[op.Name()] = op
	}
	return &t
}

// checkFree returns an error if name is defined in any mapping.
func (t *Table) checkFree(name string) error {
	if _, ok := t.operators[name]; ok {
		return symerr(name, ErrIllegalRedefinition)
	}
	if t.IsDefined(name) {
		return symerr(name, ErrDuplicateSymbol)
	}
	return nil
}

// DefineConstant declares a new constant.
func (t *Table) DefineConstant(name string, value float64) (*Constant, error) {
	if err := t.checkFree(name); err != nil {
		return nil, err
	}
	c := &Constant{name: name, value: value}
	t.constants[name] = c
	return c, nil
}

// DefineVariable declares a new variable.
func (t *Table) DefineVariable(name string, value float64) (*Variable, error) {
	if err := t.checkFree(name); err != nil {
		return nil, err
	}
	v := &Variable{name: name, value: value}
	t.variables[name] = v
	return v, nil
}

// DefineFunction declares a new function with the given signature and body.
func (t *Table) DefineFunction(sig Signature, body Node) (*Function, error) {
	if err := t.checkFree(sig.Name); err != nil {
		return nil, err
	}
	f := &Function{
		sig:  Signature{Name: sig.Name, Args: append([]string(nil), sig.Args...)},
		body: body,
	}
	t.functions[sig.Name] = f
	return f, nil
}

// Lookup returns the symbol with the given name, whatever its kind.
func (t *Table) Lookup(name string) (Symbol, bool) {
	if c := t.constants[name]; c != nil {
		return c, true
	}
	if v := t.variables[name]; v != nil {
		return v, true
	}
	if f := t.functions[name]; f != nil {
		return f, true
	}
	if op, ok := t.operators[name]; ok {
		return op, true
	}
	return nil, false
}

// IsDefined returns whether name is a symbol of any kind.
func (t *Table) IsDefined(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

// KindOf returns the kind of the named symbol.
func (t *Table) KindOf(name string) (Kind, error) {
	s, ok := t.Lookup(name)
	if !ok {
		return 0, symerr(name, ErrUndefinedSymbol)
	}
	return s.Kind(), nil
}

// Value returns the value of a constant or variable.
func (t *Table) Value(name string) (float64, error) {
	if c := t.constants[name]; c != nil {
		return c.value, nil
	}
	if v := t.variables[name]; v != nil {
		return v.value, nil
	}
	if t.IsDefined(name) {
		return 0, symerr(name, ErrTypeMismatch)
	}
	return 0, symerr(name, ErrUndefinedSymbol)
}

// SetValue assigns the value of an existing constant or variable.
func (t *Table) SetValue(name string, value float64) error {
	if c := t.constants[name]; c != nil {
		c.value = value
		return nil
	}
	if v := t.variables[name]; v != nil {
		v.value = value
		return nil
	}
	if t.IsDefined(name) {
		return symerr(name, ErrTypeMismatch)
	}
	return symerr(name, ErrUndefinedSymbol)
}

// SetBody replaces the body of an existing function. The signature is kept.
func (t *Table) SetBody(name string, body Node) error {
	if f := t.functions[name]; f != nil {
		f.body = body
		return nil
	}
	if t.IsDefined(name) {
		return symerr(name, ErrTypeMismatch)
	}
	return symerr(name, ErrUndefinedSymbol)
}

// Remove deletes a constant, variable, or function.
func (t *Table) Remove(name string) error {
	switch {
	case t.constants[name] != nil:
		delete(t.constants, name)
	case t.variables[name] != nil:
		delete(t.variables, name)
	case t.functions[name] != nil:
		delete(t.functions, name)
	default:
		if _, ok := t.operators[name]; ok {
			return symerr(name, ErrCannotRemoveOperator)
		}
		return symerr(name, ErrUndefinedSymbol)
	}
	return nil
}

// AssignmentOperator returns the table's assignment operator. It is an error
// for the table to have no assignment operator or more than one.
func (t *Table) AssignmentOperator() (Operator, error) {
	var r Operator
	n := 0
	for _, op := range t.operators {
		if op.Op == OpAssign {
			r = op
			n++
		}
	}
	if n != 1 {
		return Operator{}, stmterr("", ErrNoAssignmentOperator)
	}
	return r, nil
}

// Operator returns the operator written as c.
func (t *Table) Operator(c byte) (Operator, bool) {
	op, ok := t.operators[string(c)]
	return op, ok
}

// Constants returns the table's constants sorted by name.
func (t *Table) Constants() []*Constant {
	r := make([]*Constant, 0, len(t.constants))
	for _, c := range t.constants {
		r = append(r, c)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].name < r[j].name })
	return r
}

// Variables returns the table's variables sorted by name.
func (t *Table) Variables() []*Variable {
	r := make([]*Variable, 0, len(t.variables))
	for _, v := range t.variables {
		r = append(r, v)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].name < r[j].name })
	return r
}

// Functions returns the table's functions sorted by name.
func (t *Table) Functions() []*Function {
	r := make([]*Function, 0, len(t.functions))
	for _, f := range t.functions {
		r = append(r, f)
	}
	sort.Slice(r, func(i, j int) bool { return r[i].sig.Name < r[j].sig.Name })
	return r
}

// Operators returns the table's operators ordered by rank.
func (t *Table) Operators() []Operator {
	r := make([]Operator, 0, len(t.operators))
	for _, op := range t.operators {
		r = append(r, op)
	}
	sort.Slice(r, func(i, j int) bool {
		if r[i].Rank != r[j].Rank {
			return r[i].Rank < r[j].Rank
		}
		return r[i].Char < r[j].Char
	})
	return r
}
