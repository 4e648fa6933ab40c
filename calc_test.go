package calc_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/zephyrtronium/calc"
)

type logged struct {
	msg  string
	kind calc.LogKind
}

func recorder(into *[]logged) calc.Logger {
	return calc.LoggerFunc(func(msg string, kind calc.LogKind) {
		*into = append(*into, logged{msg, kind})
	})
}

func TestCalculatorLog(t *testing.T) {
	cases := []struct {
		name string
		src  []string
		want []logged
	}{
		{
			name: "result",
			src:  []string{"1+2"},
			want: []logged{{"3", calc.LogResult}},
		},
		{
			name: "implicit",
			src:  []string{"a*2"},
			want: []logged{{"constant declared: a", calc.LogConstantDeclaration}, {"0", calc.LogResult}},
		},
		{
			name: "function",
			src:  []string{"f(x)=x"},
			want: []logged{
				{"variable declared: x", calc.LogVariableDeclaration},
				{"function declared: f(x)", calc.LogFunctionDeclaration},
			},
		},
		{
			name: "assignment-silent",
			src:  []string{"f(x)=x", "x=2"},
			want: []logged{
				{"variable declared: x", calc.LogVariableDeclaration},
				{"function declared: f(x)", calc.LogFunctionDeclaration},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var got []logged
			cl, err := calc.New(calc.WithLogger(recorder(&got)))
			if err != nil {
				t.Fatal(err)
			}
			for _, s := range c.src {
				if _, err := cl.Run(s); err != nil {
					t.Fatalf("%q: %v", s, err)
				}
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("want %v, got %v", c.want, got)
			}
		})
	}
}

func TestCalculatorLogErrors(t *testing.T) {
	cases := []struct {
		src  string
		kind calc.LogKind
	}{
		{"5/0", calc.LogDivideByZero},
		{"+=1", calc.LogIllegalDeclaration},
		{"x1=1", calc.LogIllegalDeclaration},
		{"f(x,x)=1", calc.LogIllegalDeclaration},
		{"1+", calc.LogSyntaxError},
		{"(1+2", calc.LogSyntaxError},
		{"1x", calc.LogSyntaxError},
		{"", calc.LogParseError},
		{"x=y=1", calc.LogParseError},
	}
	for _, c := range cases {
		var got []logged
		cl, err := calc.New(calc.WithLogger(recorder(&got)))
		if err != nil {
			t.Fatal(err)
		}
		_, err = cl.Run(c.src)
		if err == nil {
			t.Errorf("%q: no error", c.src)
			continue
		}
		if len(got) == 0 {
			t.Errorf("%q: nothing logged", c.src)
			continue
		}
		last := got[len(got)-1]
		if last.kind != c.kind || last.msg != err.Error() {
			t.Errorf("%q: want %v %q, got %v %q", c.src, c.kind, err.Error(), last.kind, last.msg)
		}
		if !last.kind.IsError() {
			t.Errorf("%q: %v is not an error kind", c.src, last.kind)
		}
	}
}

func TestCalculatorClear(t *testing.T) {
	var got []logged
	cl, err := calc.New(calc.WithLogger(recorder(&got)))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Run("k=1"); err != nil {
		t.Fatal(err)
	}
	got = nil
	if err := cl.Clear("k"); err != nil {
		t.Fatal(err)
	}
	if want := []logged{{`cleared "k"`, calc.LogInfo}}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
	if err := cl.Clear("k"); !errors.Is(err, calc.ErrUndefinedSymbol) {
		t.Errorf("clearing again: want undefined, got %v", err)
	}
	if err := cl.Clear("="); !errors.Is(err, calc.ErrCannotRemoveOperator) {
		t.Errorf("clearing =: want cannot remove operator, got %v", err)
	}
}

func TestCalculatorNoImplicit(t *testing.T) {
	cl, err := calc.New(calc.WithImplicitConstants(false))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Run("a+1"); !errors.Is(err, calc.ErrUndefinedOrInvalidSymbol) {
		t.Errorf("want undefined or invalid, got %v", err)
	}
	if cl.Table().IsDefined("a") {
		t.Error("a was declared")
	}
	// Signatures still declare their variables.
	if _, err := cl.Run("f(x)=x*2"); err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Run("x=4"); err != nil {
		t.Fatal(err)
	}
	if r, err := cl.Run("f"); err != nil || r.Value != 8 {
		t.Errorf("f: want 8, got %v, %v", r, err)
	}
}

func TestNew(t *testing.T) {
	noasgn := calc.NewTable(calc.Operator{Char: '+', Rank: 1, Op: calc.OpAdd})
	cases := []struct {
		name string
		opts []calc.Option
		err  error
	}{
		{"default", nil, nil},
		{"constants", []calc.Option{calc.WithConstants(map[string]float64{"g": 9.8, "c": 3e8})}, nil},
		{"bad-constant", []calc.Option{calc.WithConstants(map[string]float64{"g0": 9.8})}, calc.ErrInvalidSymbolName},
		{"op-constant", []calc.Option{calc.WithConstants(map[string]float64{"+": 1})}, calc.ErrInvalidSymbolName},
		{"dup-constant", []calc.Option{
			calc.WithConstants(map[string]float64{"g": 9.8}),
			calc.WithConstants(map[string]float64{"g": 10}),
		}, calc.ErrDuplicateSymbol},
		{"builtins", []calc.Option{calc.WithBuiltins(64, calc.Builtins()...)}, nil},
		{"bad-builtin", []calc.Option{calc.WithBuiltins(64, "tau")}, calc.ErrUndefinedSymbol},
		{"no-assignment", []calc.Option{calc.WithTable(noasgn)}, calc.ErrNoAssignmentOperator},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cl, err := calc.New(c.opts...)
			if c.err == nil {
				if err != nil || cl == nil {
					t.Errorf("unexpected error %v", err)
				}
				return
			}
			if !errors.Is(err, c.err) {
				t.Errorf("want %v, got %v", c.err, err)
			}
		})
	}
}

func TestBuiltins(t *testing.T) {
	cl, err := calc.New(calc.WithBuiltins(256, "pi", "e", "phi"))
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		want float64
	}{
		{"pi", math.Pi},
		{"e", math.E},
		{"phi", math.Phi},
	}
	for _, c := range cases {
		v, err := cl.Table().Value(c.name)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if math.Abs(v-c.want) > 1e-15 {
			t.Errorf("%s: want %.17g, got %.17g", c.name, c.want, v)
		}
	}
	// Builtins are ordinary constants and may be assigned.
	if _, err := cl.Run("pi=3"); err != nil {
		t.Fatal(err)
	}
	if v, _ := cl.Table().Value("pi"); v != 3 {
		t.Errorf("pi: want 3 after assignment, got %g", v)
	}
}

func TestCustomOperators(t *testing.T) {
	tbl := calc.NewTable(
		calc.Operator{Char: ':', Rank: 0, Op: calc.OpAssign},
		calc.Operator{Char: '+', Rank: 1, Op: calc.OpAdd},
		calc.Operator{Char: 'x', Rank: 3, Op: calc.OpMul},
	)
	cl, err := calc.New(calc.WithTable(tbl))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Run("f(a):a+1"); err != nil {
		t.Fatal(err)
	}
	if _, err := cl.Run("a:2"); err != nil {
		t.Fatal(err)
	}
	r, err := cl.Run("2xf")
	if err != nil {
		t.Fatal(err)
	}
	if r.Value != 6 {
		t.Errorf("2xf: want 6, got %g", r.Value)
	}
	if _, err := cl.Run("2=3"); err == nil {
		t.Error("= is not an operator but 2=3 succeeded")
	}
}
