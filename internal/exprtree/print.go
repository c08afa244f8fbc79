package exprtree

import (
	"strings"
)

const placeholder = "#"

// Infix инфиксная запись выражения, отсутствующие узлы записываются как #.
func Infix(e Expr) string {
	var b strings.Builder
	writeInfix(&b, e)
	return b.String()
}

// Prefix прямая польская запись: оператор, затем операнды в скобках.
func Prefix(e Expr) string {
	var b strings.Builder
	writePrefix(&b, e)
	return b.String()
}

// Postfix обратная польская запись: операнды в скобках, затем оператор.
func Postfix(e Expr) string {
	var b strings.Builder
	writePostfix(&b, e)
	return b.String()
}

func writeInfix(b *strings.Builder, e Expr) {
	if isMissing(e) {
		b.WriteString(placeholder)
		return
	}

	switch {
	case isFunction(e):
		b.WriteString(Token(e))
		b.WriteByte('(')
		for i := 0; i < Arity(e); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			writeInfix(b, Child(e, i))
		}
		b.WriteByte(')')
	case Arity(e) == 1:
		b.WriteString(Token(e))
		writeOperand(b, e, Child(e, 0), false)
	case Arity(e) == 2:
		writeOperand(b, e, Child(e, 0), false)
		b.WriteByte(' ')
		b.WriteString(Token(e))
		b.WriteByte(' ')
		writeOperand(b, e, Child(e, 1), true)
	default:
		b.WriteString(Token(e))
	}
}

// writeOperand запись операнда оператора в скобках, если он связывает слабее
// оператора. Правый операнд вычитания и деления с тем же приоритетом тоже
// берётся в скобки, иначе теряется порядок вычисления.
func writeOperand(b *strings.Builder, parent, child Expr, right bool) {
	parens := !isMissing(child) && Precedence(child) < Precedence(parent)
	if !parens && right && !isMissing(child) && Precedence(child) == Precedence(parent) {
		if v, ok := parent.(*Binary); ok && (v.Op == OpSub || v.Op == OpDiv) {
			parens = true
		}
	}

	if parens {
		b.WriteByte('(')
	}
	writeInfix(b, child)
	if parens {
		b.WriteByte(')')
	}
}

func writePrefix(b *strings.Builder, e Expr) {
	if isMissing(e) {
		b.WriteString(placeholder)
		return
	}

	b.WriteString(Token(e))
	if Arity(e) == 0 {
		return
	}

	b.WriteString(" (")
	writeChildren(b, e, writePrefix)
	b.WriteByte(')')
}

func writePostfix(b *strings.Builder, e Expr) {
	if isMissing(e) {
		b.WriteString(placeholder)
		return
	}

	if Arity(e) > 0 {
		b.WriteByte('(')
		writeChildren(b, e, writePostfix)
		b.WriteString(") ")
	}
	b.WriteString(Token(e))
}

func writeChildren(b *strings.Builder, e Expr, write func(*strings.Builder, Expr)) {
	for i := 0; i < Arity(e); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		write(b, Child(e, i))
	}
}
