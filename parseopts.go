package calc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	implicitopt bool
	declopt     func(Symbol)
)

// parsectx holds general data for parsing.
type parsectx struct {
	// t is the table symbols are resolved in and declared into.
	t *Table
	// asgn is the table's assignment operator.
	asgn Operator
	// implicit indicates that unknown names become new constants.
	implicit bool
	// decl is the name of a function whose body is being parsed and which is
	// not yet in the table. The body may not refer to it.
	decl string
	// declare is called with each symbol the parser adds to the table.
	declare func(Symbol)
}

func (p *parsectx) declared(s Symbol) {
	if p.declare != nil {
		p.declare(s)
	}
}

// ImplicitConstants sets whether a name that is not yet a symbol is declared
// as a new constant with value 0 when it appears in an expression. When off,
// such names are an error wrapping ErrUndefinedOrInvalidSymbol. The default
// is on.
func ImplicitConstants(on bool) ParseOption {
	return implicitopt(on)
}

func (o implicitopt) parseOption(p parsectx) parsectx {
	p.implicit = bool(o)
	return p
}

// OnDeclare sets a function to call with each symbol the parser declares:
// implicit constants, the independent variables of function signatures, and
// new functions. Parsing a statement is not free of side effects on the
// table; OnDeclare lets the caller report them.
func OnDeclare(f func(Symbol)) ParseOption {
	return declopt(f)
}

func (o declopt) parseOption(p parsectx) parsectx {
	p.declare = o
	return p
}
