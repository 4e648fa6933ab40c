// Package repl handles lines typed at an interactive calculator: keyword
// commands and statements.
package repl

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/zephyrtronium/calc"
)

// topics is the help text for each help topic.
var topics = map[string]string{
	"help":     `Type "help [topic]" to display information about that topic, or "help" to list topics.`,
	"list":     `Type "list" to show all declared symbols and their values, or "list [constants|variables|functions|operators]" to show one kind.`,
	"clear":    `Type "clear [name]" to remove a constant, variable, or function.`,
	"exit":     `Type "exit" or "quit" to leave the calculator.`,
	"constant": `Declare a constant by using its name in an expression, or give it a value with "name = number".`,
	"variable": `Variables are the independent variables of functions. Give one a value with "name = number".`,
	"function": `Declare a function with "name(x, y) = expression". Its body is evaluated each time the name is used.`,
	"operator": `Operators cannot be redefined or cleared. Type "list operators" to show them.`,
}

// Session runs lines against a calculator. All output goes through the
// calculator's logger.
type Session struct {
	calc *calc.Calculator
	// verb formats numeric results.
	verb string
}

// New creates a session. verb is a fmt verb for results; if empty, results
// are printed in the shortest form that represents them exactly.
func New(c *calc.Calculator, verb string) *Session {
	return &Session{calc: c, verb: verb}
}

// Calculator returns the session's calculator.
func (s *Session) Calculator() *calc.Calculator {
	return s.calc
}

// IsKeyword returns whether line is a command rather than a statement.
func IsKeyword(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "exit", "quit", "help", "list", "clear":
		return true
	}
	return false
}

// Handle processes one line of input. It returns true if the line asks to
// end the session.
func (s *Session) Handle(line string) (exit bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "exit", "quit":
		return true
	case "help":
		s.help(fields[1:])
		return false
	case "list":
		s.list(fields[1:])
		return false
	case "clear":
		s.clear(fields[1:])
		return false
	}
	s.Statement(line)
	return false
}

// Statement runs one statement and reports its outcome. It returns the
// result and whether the statement succeeded.
func (s *Session) Statement(line string) (calc.Result, bool) {
	c := s.calc
	e, err := c.Validate(c.Format(line))
	if err != nil {
		c.Log(err.Error(), calc.ErrorKind(err))
		return calc.Result{}, false
	}
	r, err := c.Evaluate(e)
	if err != nil {
		c.Log(err.Error(), calc.ErrorKind(err))
		return calc.Result{}, false
	}
	if r.HasValue() {
		c.Log(s.format(r.Value), calc.LogResult)
	}
	return r, true
}

func (s *Session) format(v float64) string {
	if s.verb == "" {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return fmt.Sprintf(s.verb, v)
}

func (s *Session) help(args []string) {
	if len(args) == 0 {
		names := make([]string, 0, len(topics))
		for k := range topics {
			names = append(names, k)
		}
		sort.Strings(names)
		s.calc.Log("help topics: "+strings.Join(names, ", "), calc.LogTerminal)
		return
	}
	for _, a := range args {
		text, ok := topics[strings.ToLower(a)]
		if !ok {
			s.calc.Log("no help for "+strconv.Quote(a), calc.LogTerminal)
			continue
		}
		s.calc.Log(text, calc.LogTerminal)
	}
}

func (s *Session) list(args []string) {
	if len(args) == 0 {
		args = []string{"constants", "variables", "functions", "operators"}
	}
	t := s.calc.Table()
	for _, a := range args {
		var lines []string
		switch strings.ToLower(strings.TrimSuffix(a, "s")) {
		case "constant":
			for _, c := range t.Constants() {
				v, _ := t.Value(c.Name())
				lines = append(lines, c.Name()+" = "+s.format(v))
			}
		case "variable":
			for _, v := range t.Variables() {
				x, _ := t.Value(v.Name())
				lines = append(lines, v.Name()+" = "+s.format(x))
			}
		case "function":
			for _, f := range t.Functions() {
				lines = append(lines, f.String())
			}
		case "operator":
			for _, op := range t.Operators() {
				lines = append(lines, op.Name()+" "+op.Op.String()+" (rank "+strconv.Itoa(op.Rank)+")")
			}
		default:
			s.calc.Log("cannot list "+strconv.Quote(a), calc.LogTerminal)
			continue
		}
		if len(lines) == 0 {
			s.calc.Log("no "+a, calc.LogTerminal)
			continue
		}
		s.calc.Log(strings.Join(lines, "\n"), calc.LogTerminal)
	}
}

func (s *Session) clear(args []string) {
	if len(args) == 0 {
		s.calc.Log(topics["clear"], calc.LogTerminal)
		return
	}
	for _, name := range args {
		if err := s.calc.Clear(name); err != nil {
			s.calc.Log(err.Error(), calc.ErrorKind(err))
		}
	}
}
