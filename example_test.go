package calc_test

import (
	"fmt"

	"github.com/zephyrtronium/calc"
)

func ExampleCalculator() {
	c, _ := calc.New()
	for _, s := range []string{"f(x) = x*x + 1", "x = 3", "f", "f % 4"} {
		r, err := c.Run(s)
		switch {
		case err != nil:
			fmt.Println(err)
		case !r.HasValue():
			fmt.Println("ok")
		default:
			fmt.Println(r, r.Kind)
		}
	}

	// Output:
	// ok
	// ok
	// 10 function
	// 2 arithmetic
}

func ExampleParse() {
	t := calc.NewTable()
	e, err := calc.Parse(t, calc.Format("(a + b) * 2"), calc.OnDeclare(func(s calc.Symbol) {
		fmt.Println("declared", s.Kind(), s.Name())
	}))
	if err != nil {
		panic(err)
	}
	fmt.Println(e, e.Refs())

	// Output:
	// declared constant a
	// declared constant b
	// (a+b)*2 [a b]
}
