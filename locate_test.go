package calc

import (
	"reflect"
	"testing"
)

func TestOutermostParens(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []span
	}{
		{"empty", "", nil},
		{"none", "1+2", nil},
		{"one", "(1)", []span{{0, 3}}},
		{"two", "(1)+(2)", []span{{0, 3}, {4, 3}}},
		{"nested", "((1+2)*3)", []span{{0, 9}}},
		{"inner", "1+(2*(3-4))+5", []span{{2, 9}}},
		{"stray-close", ")(1)", []span{{1, 3}}},
		{"unclosed", "(1+2", nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := outermostParens(c.src)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("%q: want %v, got %v", c.src, c.want, got)
			}
			for i := 1; i < len(got); i++ {
				if got[i-1].start+got[i-1].len > got[i].start {
					t.Errorf("%q: spans %v and %v overlap", c.src, got[i-1], got[i])
				}
			}
		})
	}
}

func TestNextOperator(t *testing.T) {
	cases := []struct {
		name string
		src  string
		idx  int
		op   byte
	}{
		{"none", "12", -1, 0},
		{"parens-only", "(1+2)", -1, 0},
		{"add-first", "1+2*3", 1, '+'},
		{"add-last", "1*2+3", 3, '+'},
		{"leftmost-tie", "8-2-1", 1, '-'},
		{"rank-over-position", "5-2+1", 3, '+'},
		{"skip-parens", "(1+2)*3", 5, '*'},
		{"mul-before-div", "2*3/4%5", 1, '*'},
		{"div-before-mod", "a%b/c", 3, '/'},
		{"assign", "x=1+2", 1, '='},
	}
	tbl := NewTable()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			k, op, ok := nextOperator(tbl, c.src, outermostParens(c.src))
			if ok != (c.idx >= 0) {
				t.Fatalf("%q: want found=%t, got %t", c.src, c.idx >= 0, ok)
			}
			if !ok {
				return
			}
			if k != c.idx || op.Char != c.op {
				t.Errorf("%q: want %c at %d, got %c at %d", c.src, c.op, c.idx, op.Char, k)
			}
		})
	}
}

func TestCheckParens(t *testing.T) {
	cases := []struct {
		src  string
		col  int
		open bool
	}{
		{"", 0, false},
		{"(a)(b)", 0, false},
		{"((a))", 0, false},
		{"(()", 1, true},
		{"())", 3, false},
		{")(", 1, false},
		{"1+(2", 3, true},
	}
	for _, c := range cases {
		err := checkParens(c.src)
		if c.col == 0 {
			if err != nil {
				t.Errorf("%q: unexpected error %v", c.src, err)
			}
			continue
		}
		be, ok := err.(*BracketError)
		if !ok {
			t.Errorf("%q: want *BracketError, got %#v", c.src, err)
			continue
		}
		if be.Pos() != c.col || be.Open != c.open {
			t.Errorf("%q: want col %d open %t, got %+v", c.src, c.col, c.open, be)
		}
	}
}

func TestStripParens(t *testing.T) {
	cases := []struct {
		src, want string
		n         int
	}{
		{"1", "1", 0},
		{"(1)", "1", 1},
		{"((1))", "1", 2},
		{"(1)+(2)", "(1)+(2)", 0},
		{"((1)+(2))", "(1)+(2)", 1},
		{"()", "", 1},
	}
	for _, c := range cases {
		got, n := stripParens(c.src)
		if got != c.want || n != c.n {
			t.Errorf("%q: want %q after %d, got %q after %d", c.src, c.want, c.n, got, n)
		}
	}
}
