package calc

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// builtins are constants that may be declared when a calculator is created.
// Each computes its value to the precision of out.
var builtins = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		one := new(big.Float).SetPrec(out.Prec()).SetInt64(1)
		return bigfloat.Exp(out, one)
	},
	"phi": func(out *big.Float) *big.Float {
		five := new(big.Float).SetPrec(out.Prec()).SetInt64(5)
		out.Sqrt(five)
		out.Add(out, big.NewFloat(1))
		return out.Quo(out, big.NewFloat(2))
	},
}

// Builtins returns the names of the constants available to WithBuiltins.
func Builtins() []string {
	return []string{"e", "phi", "pi"}
}

// builtin computes a builtin constant with prec bits of precision and rounds
// it to the nearest float64.
func builtin(name string, prec uint) (float64, bool) {
	f := builtins[name]
	if f == nil {
		return 0, false
	}
	if prec < 53 {
		prec = 53
	}
	r := f(new(big.Float).SetPrec(prec))
	v, _ := r.Float64()
	return v, true
}
