package exprtree

import (
	"math"
	"strings"

	"github.com/sirkon/errors"
)

const (
	// ErrorIncompleteExpression ошибка вычисления выражения с отсутствующими узлами.
	ErrorIncompleteExpression errors.Const = "incomplete expression"
)

// Eval вычисление значения выражения.
// Численные проблемы (деление на ноль, выход из области определения) ошибкой
// не считаются, для их выявления есть Diagnose.
func Eval(e Expr) (float64, error) {
	if !IsComplete(e) {
		return 0, errors.Wrap(ErrorIncompleteExpression, "evaluate").Str("expression", Infix(e))
	}

	return eval(e), nil
}

func eval(e Expr) float64 {
	switch v := e.(type) {
	case *Number:
		return v.Value
	case *Unary:
		x := eval(v.Arg)
		switch v.Op {
		case OpNeg:
			return -x
		case OpSin:
			return math.Sin(x)
		case OpCos:
			return math.Cos(x)
		case OpSqrt:
			return math.Sqrt(x)
		}
	case *Binary:
		x, y := eval(v.Left), eval(v.Right)
		switch v.Op {
		case OpAdd:
			return x + y
		case OpSub:
			return x - y
		case OpMul:
			return x * y
		case OpDiv:
			return x / y
		case OpPow:
			return math.Pow(x, y)
		}
	}

	panic(unknownNode(e))
}

// Issue численные проблемы результата вычисления.
type Issue uint8

// Виды численных проблем.
const (
	// IssueDomain результат не определён: аргумент вне области определения.
	IssueDomain Issue = 1 << iota
	// IssueInfinite результат бесконечен: деление на ноль или переполнение.
	IssueInfinite
)

// Diagnose выявление численных проблем в результате вычисления.
func Diagnose(v float64) Issue {
	var res Issue
	if math.IsNaN(v) {
		res |= IssueDomain
	}
	if math.IsInf(v, 0) {
		res |= IssueInfinite
	}

	return res
}

func (i Issue) String() string {
	if i == 0 {
		return "none"
	}

	var parts []string
	if i&IssueDomain != 0 {
		parts = append(parts, "domain error")
	}
	if i&IssueInfinite != 0 {
		parts = append(parts, "the result is undefined or infinite")
	}

	return strings.Join(parts, ", ")
}
