package calc

import (
	"sort"
	"strconv"
)

// Calculator handles statements against one symbol table: it formats,
// validates, parses, and evaluates them, and reports declarations and errors
// to a Logger.
//
// A Calculator is not safe for concurrent use. Each call to Run, or each
// Format/Validate/Evaluate sequence, must finish before the next begins.
type Calculator struct {
	table    *Table
	log      Logger
	implicit bool
}

// Option is an option used when creating a calculator.
type Option func(*Calculator) error

// WithTable sets the symbol table. The default is NewTable().
func WithTable(t *Table) Option {
	return func(c *Calculator) error {
		c.table = t
		return nil
	}
}

// WithLogger sets the log sink. The default discards messages.
func WithLogger(l Logger) Option {
	return func(c *Calculator) error {
		c.log = l
		return nil
	}
}

// WithImplicitConstants sets the policy for unknown names in expressions. See
// ImplicitConstants.
func WithImplicitConstants(on bool) Option {
	return func(c *Calculator) error {
		c.implicit = on
		return nil
	}
}

// WithConstants declares constants in the table.
func WithConstants(vals map[string]float64) Option {
	return func(c *Calculator) error {
		names := make([]string, 0, len(vals))
		for k := range vals {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, name := range names {
			if !validName(name) {
				return stmterr(name, ErrInvalidSymbolName)
			}
			if _, err := c.table.DefineConstant(name, vals[name]); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithBuiltins declares builtin constants, computed with prec bits and
// rounded to float64. See Builtins for the available names.
func WithBuiltins(prec uint, names ...string) Option {
	return func(c *Calculator) error {
		for _, name := range names {
			v, ok := builtin(name, prec)
			if !ok {
				return symerr(name, ErrUndefinedSymbol)
			}
			if _, err := c.table.DefineConstant(name, v); err != nil {
				return err
			}
		}
		return nil
	}
}

// New creates a calculator. Options are applied in order, so WithTable must
// precede options that declare symbols. It is an error for the table not to
// have exactly one assignment operator.
func New(opts ...Option) (*Calculator, error) {
	c := Calculator{
		table:    NewTable(),
		log:      nopLogger{},
		implicit: true,
	}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return nil, err
		}
	}
	if _, err := c.table.AssignmentOperator(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Table returns the calculator's symbol table.
func (c *Calculator) Table() *Table {
	return c.table
}

// Format removes whitespace from a raw statement.
func (c *Calculator) Format(raw string) string {
	return Format(raw)
}

// Validate checks and parses a formatted statement. After parsing, every
// symbol the statement refers to is checked to still be in the table.
func (c *Calculator) Validate(s string) (*Expr, error) {
	if err := ValidatePreformat(c.table, s); err != nil {
		return nil, err
	}
	e, err := Parse(c.table, s, ImplicitConstants(c.implicit), OnDeclare(c.declared))
	if err != nil {
		return nil, err
	}
	var bad error
	walk(e.n, func(n Node) {
		if bad != nil {
			return
		}
		var name string
		var kind Kind
		switch n := n.(type) {
		case *ConstantRef:
			name, kind = n.Symbol.name, KindConstant
		case *VariableRef:
			name, kind = n.Symbol.name, KindVariable
		case *FunctionRef:
			name, kind = n.Symbol.sig.Name, KindFunction
		case *Assignment:
			name, kind = n.Target.Name(), n.Target.Kind()
		default:
			return
		}
		if k, err := c.table.KindOf(name); err != nil || k != kind {
			bad = symerr(name, ErrUndefinedSymbol)
		}
	})
	if bad != nil {
		return nil, bad
	}
	return e, nil
}

// Evaluate evaluates a statement returned from Validate.
func (c *Calculator) Evaluate(e *Expr) (Result, error) {
	return e.Eval(c.table)
}

// Log sends a message to the calculator's log sink.
func (c *Calculator) Log(msg string, kind LogKind) {
	c.log.Log(msg, kind)
}

// Run handles one raw statement: format, validate, evaluate. Declarations,
// errors, and numeric results are logged.
func (c *Calculator) Run(raw string) (Result, error) {
	s := c.Format(raw)
	e, err := c.Validate(s)
	if err != nil {
		c.Log(err.Error(), ErrorKind(err))
		return Result{}, err
	}
	r, err := c.Evaluate(e)
	if err != nil {
		c.Log(err.Error(), ErrorKind(err))
		return Result{}, err
	}
	if r.HasValue() {
		c.Log(strconv.FormatFloat(r.Value, 'g', -1, 64), LogResult)
	}
	return r, nil
}

// Clear removes a constant, variable, or function.
func (c *Calculator) Clear(name string) error {
	if err := c.table.Remove(name); err != nil {
		return err
	}
	c.Log("cleared "+strconv.Quote(name), LogInfo)
	return nil
}

func (c *Calculator) declared(s Symbol) {
	var msg string
	switch s := s.(type) {
	case *Function:
		msg = "function declared: " + s.sig.String()
	default:
		msg = s.Kind().String() + " declared: " + s.Name()
	}
	c.Log(msg, declKind(s))
}
