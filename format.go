package calc

import (
	"strings"
	"unicode"
)

// Format prepares a raw statement for validation by removing all whitespace.
func Format(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
}

// ValidatePreformat checks the lexical requirements of a formatted statement
// before it is parsed: it must be non-empty, the table must have an
// assignment operator, and the statement may contain at most one of it.
func ValidatePreformat(t *Table, s string) error {
	if s == "" {
		return stmterr("", ErrEmptyStatement)
	}
	asgn, err := t.AssignmentOperator()
	if err != nil {
		return err
	}
	if strings.Count(s, asgn.Name()) > 1 {
		return stmterr(s, ErrMultipleAssignments)
	}
	return nil
}
