package main

import (
	"fmt"
	"io"
	"math"

	"github.com/sirkon/gcontainers/internal/exprtree"
)

type exprCommand struct{}

func (c *exprCommand) Run(rc *runContext) error {
	w := rc.out

	expr := exprtree.Add(
		exprtree.Num(3),
		exprtree.Mul(
			exprtree.Add(exprtree.Num(5), exprtree.Num(9)),
			exprtree.Num(2),
		),
	)
	fmt.Fprintln(w, `Testing "3 + (5 + 9) * 2":`)
	describeExpr(w, expr)

	cloned := exprtree.Clone(expr)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing cloning:")
	describeExpr(w, cloned)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing functions:")
	describeExpr(w, exprtree.Cos(
		exprtree.Mul(
			exprtree.Pow(exprtree.Sqrt(exprtree.Num(81)), exprtree.Num(0.5)),
			exprtree.Neg(exprtree.Num(math.Pi)),
		),
	))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing division by zero:")
	describeExpr(w, exprtree.Div(exprtree.Num(5), exprtree.Num(0)))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Testing incomplete expression:")
	describeExpr(w, exprtree.Sub(exprtree.Num(1), nil))

	return nil
}

func describeExpr(w io.Writer, e exprtree.Expr) {
	fmt.Fprintln(w, "Infix notation:", exprtree.Infix(e))
	fmt.Fprintln(w, "Normal Polish notation:", exprtree.Prefix(e))
	fmt.Fprintln(w, "Reverse Polish notation:", exprtree.Postfix(e))

	v, err := exprtree.Eval(e)
	if err != nil {
		fmt.Fprintln(w, "Error: Invalid expression.")
		return
	}

	fmt.Fprintln(w, "Result:", v)
	if issue := exprtree.Diagnose(v); issue != 0 {
		fmt.Fprintln(w, "Numerical error(s) detected:", issue)
	}
}
