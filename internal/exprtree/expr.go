// Package exprtree алгебраические выражения в виде дерева.
//
// Узлы образуют закрытое множество вариантов: число, унарная операция и
// бинарная операция. Все алгоритмы (вычисление, печать, копирование)
// реализованы разбором варианта. Дочерний узел может отсутствовать (nil),
// такое выражение считается неполным: его можно печатать, но не вычислять.
package exprtree

// Expr узел выражения: *Number, *Unary или *Binary.
type Expr interface {
	isExpr()
}

// Number числовой литерал.
type Number struct {
	Value float64
}

// Unary унарная операция или функция одного аргумента.
type Unary struct {
	Op  UnaryOp
	Arg Expr
}

// Binary бинарная операция или функция двух аргументов.
type Binary struct {
	Op    BinaryOp
	Left  Expr
	Right Expr
}

func (*Number) isExpr() {}
func (*Unary) isExpr()  {}
func (*Binary) isExpr() {}

// UnaryOp вид унарного узла.
type UnaryOp int

// Виды унарных узлов.
const (
	OpNeg UnaryOp = iota
	OpSin
	OpCos
	OpSqrt
)

// BinaryOp вид бинарного узла.
type BinaryOp int

// Виды бинарных узлов.
const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

// Num конструктор числа.
func Num(v float64) Expr { return &Number{Value: v} }

// Neg конструктор отрицания.
func Neg(x Expr) Expr { return &Unary{Op: OpNeg, Arg: x} }

// Sin конструктор синуса.
func Sin(x Expr) Expr { return &Unary{Op: OpSin, Arg: x} }

// Cos конструктор косинуса.
func Cos(x Expr) Expr { return &Unary{Op: OpCos, Arg: x} }

// Sqrt конструктор квадратного корня.
func Sqrt(x Expr) Expr { return &Unary{Op: OpSqrt, Arg: x} }

// Add конструктор сложения.
func Add(x, y Expr) Expr { return &Binary{Op: OpAdd, Left: x, Right: y} }

// Sub конструктор вычитания.
func Sub(x, y Expr) Expr { return &Binary{Op: OpSub, Left: x, Right: y} }

// Mul конструктор умножения.
func Mul(x, y Expr) Expr { return &Binary{Op: OpMul, Left: x, Right: y} }

// Div конструктор деления.
func Div(x, y Expr) Expr { return &Binary{Op: OpDiv, Left: x, Right: y} }

// Pow конструктор возведения в степень.
func Pow(x, y Expr) Expr { return &Binary{Op: OpPow, Left: x, Right: y} }
