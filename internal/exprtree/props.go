package exprtree

import (
	"strconv"

	"github.com/sirkon/errors"
)

// MaxPrecedence приоритет чисел и функций.
const MaxPrecedence = 20

// Arity количество дочерних узлов.
func Arity(e Expr) int {
	switch e.(type) {
	case *Unary:
		return 1
	case *Binary:
		return 2
	default:
		return 0
	}
}

// Child дочерний узел с данным номером или nil, если его нет.
func Child(e Expr, i int) Expr {
	switch v := e.(type) {
	case *Unary:
		if i == 0 {
			return v.Arg
		}
	case *Binary:
		switch i {
		case 0:
			return v.Left
		case 1:
			return v.Right
		}
	}

	return nil
}

// IsComplete проверка, что у выражения и всех его потомков есть все дочерние узлы.
func IsComplete(e Expr) bool {
	if isMissing(e) {
		return false
	}

	switch v := e.(type) {
	case *Number:
		return true
	case *Unary:
		return IsComplete(v.Arg)
	case *Binary:
		return IsComplete(v.Left) && IsComplete(v.Right)
	default:
		panic(unknownNode(e))
	}
}

// Precedence приоритет узла в инфиксной записи: узел с большим приоритетом
// связывает операнды сильнее.
func Precedence(e Expr) int {
	switch v := e.(type) {
	case *Unary:
		if v.Op == OpNeg {
			return 12
		}
	case *Binary:
		switch v.Op {
		case OpAdd, OpSub:
			return 8
		case OpMul, OpDiv:
			return 10
		}
	}

	return MaxPrecedence
}

// Token имя узла в записи выражения.
func Token(e Expr) string {
	switch v := e.(type) {
	case *Number:
		return strconv.FormatFloat(v.Value, 'g', 6, 64)
	case *Unary:
		switch v.Op {
		case OpNeg:
			return "-"
		case OpSin:
			return "sin"
		case OpCos:
			return "cos"
		case OpSqrt:
			return "sqrt"
		}
	case *Binary:
		switch v.Op {
		case OpAdd:
			return "+"
		case OpSub:
			return "-"
		case OpMul:
			return "*"
		case OpDiv:
			return "/"
		case OpPow:
			return "pow"
		}
	}

	panic(unknownNode(e))
}

// Clone полная копия дерева выражения, отсутствующие узлы остаются nil.
func Clone(e Expr) Expr {
	if isMissing(e) {
		return nil
	}

	switch v := e.(type) {
	case *Number:
		return &Number{Value: v.Value}
	case *Unary:
		return &Unary{Op: v.Op, Arg: Clone(v.Arg)}
	case *Binary:
		return &Binary{Op: v.Op, Left: Clone(v.Left), Right: Clone(v.Right)}
	default:
		panic(unknownNode(e))
	}
}

// isMissing узла нет: nil или типизированный nil-указатель варианта.
func isMissing(e Expr) bool {
	switch v := e.(type) {
	case nil:
		return true
	case *Number:
		return v == nil
	case *Unary:
		return v == nil
	case *Binary:
		return v == nil
	default:
		return false
	}
}

// isFunction узел записывается как вызов функции.
func isFunction(e Expr) bool {
	switch v := e.(type) {
	case *Unary:
		return v.Op != OpNeg
	case *Binary:
		return v.Op == OpPow
	default:
		return false
	}
}

func unknownNode(e Expr) error {
	return errors.Newf("unknown expression node %T", e)
}
