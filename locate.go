package calc

// span locates a substring of a statement.
type span struct {
	start, len int
}

func (s span) contains(i int) bool {
	return i >= s.start && i < s.start+s.len
}

// outermostParens returns the top-level parenthesized groups of s in order.
// Each span runs from an open parenthesis to its matching close, inclusive.
// A close parenthesis with no open is ignored.
func outermostParens(s string) []span {
	var r []span
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			if depth == 0 {
				start = i
			}
			depth++
		case ')':
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 {
				r = append(r, span{start, i - start + 1})
			}
		}
	}
	return r
}

// checkParens returns a *BracketError if the parentheses in s are unbalanced.
func checkParens(s string) error {
	var opens []int
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			opens = append(opens, i)
		case ')':
			if len(opens) == 0 {
				return &BracketError{Col: i + 1}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1] + 1, Open: true}
	}
	return nil
}

// nextOperator finds the operator to split s on: the operator of lowest rank
// outside all of spans, and the leftmost among those with that rank.
func nextOperator(t *Table, s string, spans []span) (int, Operator, bool) {
	k := -1
	var r Operator
	// Spans are ordered, so we only need to track the next one.
	sp := 0
	for i := 0; i < len(s); i++ {
		for sp < len(spans) && spans[sp].start+spans[sp].len <= i {
			sp++
		}
		if sp < len(spans) && spans[sp].contains(i) {
			continue
		}
		op, ok := t.Operator(s[i])
		if !ok {
			continue
		}
		if k < 0 || op.Rank < r.Rank {
			k, r = i, op
		}
	}
	return k, r, k >= 0
}

// enclosed returns whether s is entirely wrapped in one pair of matching
// parentheses.
func enclosed(s string) bool {
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return false
	}
	sp := outermostParens(s)
	return len(sp) > 0 && sp[0].start == 0 && sp[0].len == len(s)
}

// stripParens removes every layer of enclosing parentheses from s and reports
// how many it removed.
func stripParens(s string) (string, int) {
	n := 0
	for enclosed(s) {
		s = s[1 : len(s)-1]
		n++
	}
	return s, n
}
