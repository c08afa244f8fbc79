package exprtree

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/gcontainers/internal/testlog"
)

func TestNotations(t *testing.T) {
	tests := []struct {
		name    string
		expr    Expr
		infix   string
		prefix  string
		postfix string
	}{
		{
			name:    "operators",
			expr:    Add(Num(3), Mul(Add(Num(5), Num(9)), Num(2))),
			infix:   "3 + (5 + 9) * 2",
			prefix:  "+ (3 * (+ (5 9) 2))",
			postfix: "(3 ((5 9) + 2) *) +",
		},
		{
			name:    "functions",
			expr:    Cos(Mul(Pow(Sqrt(Num(81)), Num(0.5)), Neg(Num(math.Pi)))),
			infix:   "cos(pow(sqrt(81), 0.5) * -3.14159)",
			prefix:  "cos (* (pow (sqrt (81) 0.5) - (3.14159)))",
			postfix: "((((81) sqrt 0.5) pow (3.14159) -) *) cos",
		},
		{
			name:    "negated sum",
			expr:    Neg(Add(Num(1), Num(2))),
			infix:   "-(1 + 2)",
			prefix:  "- (+ (1 2))",
			postfix: "((1 2) +) -",
		},
		{
			name:    "right operand of subtraction",
			expr:    Sub(Num(5), Sub(Num(3), Num(1))),
			infix:   "5 - (3 - 1)",
			prefix:  "- (5 - (3 1))",
			postfix: "(5 (3 1) -) -",
		},
		{
			name:    "left operand of subtraction",
			expr:    Sub(Sub(Num(5), Num(3)), Num(1)),
			infix:   "5 - 3 - 1",
			prefix:  "- (- (5 3) 1)",
			postfix: "((5 3) - 1) -",
		},
		{
			name:    "incomplete",
			expr:    Div(Num(1), Sin(nil)),
			infix:   "1 / sin(#)",
			prefix:  "/ (1 sin (#))",
			postfix: "(1 (#) sin) /",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := []string{Infix(tt.expr), Prefix(tt.expr), Postfix(tt.expr)}
			want := []string{tt.infix, tt.prefix, tt.postfix}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("unexpected notations (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		name  string
		expr  Expr
		want  float64
		issue Issue
	}{
		{name: "operators", expr: Add(Num(3), Mul(Add(Num(5), Num(9)), Num(2))), want: 31},
		{name: "functions", expr: Cos(Mul(Pow(Sqrt(Num(81)), Num(0.5)), Neg(Num(math.Pi)))), want: -1},
		{name: "sin", expr: Sin(Div(Num(math.Pi), Num(2))), want: 1},
		{name: "subtraction", expr: Sub(Num(5), Sub(Num(3), Num(1))), want: 3},
		{name: "division by zero", expr: Div(Num(5), Num(0)), want: math.Inf(1), issue: IssueInfinite},
		{name: "domain", expr: Sqrt(Num(-1)), want: math.NaN(), issue: IssueDomain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Eval(tt.expr)
			if testlog.Check(t, err) {
				return
			}

			if !cmp.Equal(tt.want, got, cmp.Comparer(approxEqual)) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
			if issue := Diagnose(got); issue != tt.issue {
				t.Errorf("expected issue %q, got %q", tt.issue, issue)
			}
		})
	}

	t.Run("incomplete", func(t *testing.T) {
		if _, err := Eval(Add(Num(1), nil)); err != nil {
			if !errors.Is(err, ErrorIncompleteExpression) {
				testlog.Error(t, err)
				return
			}
			testlog.Log(t, err)
			return
		}

		t.Error("incomplete expression must not be evaluated")
	})

	t.Run("typed nil children", func(t *testing.T) {
		exprs := []Expr{
			&Binary{Op: OpAdd, Left: Num(1), Right: (*Number)(nil)},
			&Unary{Op: OpSin, Arg: (*Unary)(nil)},
			&Binary{Op: OpMul, Left: (*Binary)(nil), Right: Num(2)},
			(*Number)(nil),
		}
		for _, e := range exprs {
			if IsComplete(e) {
				t.Errorf("%s must be incomplete", Infix(e))
				continue
			}
			if _, err := Eval(e); !errors.Is(err, ErrorIncompleteExpression) {
				t.Errorf("%s: expected incomplete expression error, got %v", Infix(e), err)
			}
		}

		e := &Binary{Op: OpSub, Left: Num(1), Right: (*Unary)(nil)}
		got := []string{Infix(e), Prefix(e), Postfix(e)}
		if diff := cmp.Diff([]string{"1 - #", "- (1 #)", "(1 #) -"}, got); diff != "" {
			t.Errorf("unexpected notations (-want +got):\n%s", diff)
		}
		if Clone(e).(*Binary).Right != nil {
			t.Error("clone must turn a typed nil child into nil")
		}
	})
}

func TestStructure(t *testing.T) {
	e := Pow(Num(2), Neg(nil))

	if Arity(e) != 2 || Arity(Child(e, 1)) != 1 || Arity(Child(e, 0)) != 0 {
		t.Error("unexpected arity")
	}
	if Child(e, 2) != nil || Child(Child(e, 1), 0) != nil || Child(Child(e, 0), 0) != nil {
		t.Error("missing children must be nil")
	}
	if IsComplete(e) || IsComplete(nil) || !IsComplete(Child(e, 0)) {
		t.Error("unexpected completeness")
	}
	if Precedence(e) != MaxPrecedence || Precedence(Child(e, 1)) != 12 {
		t.Error("unexpected precedence")
	}
}

func TestClone(t *testing.T) {
	src := Pow(Sqrt(Num(81)), Sub(Num(1), nil))
	dst := Clone(src)
	deepequal.SideBySide(t, "clone", src, dst)

	dst.(*Binary).Right.(*Binary).Right = Num(7)
	dst.(*Binary).Left.(*Unary).Arg.(*Number).Value = 16
	if diff := cmp.Diff("pow(sqrt(81), 1 - #)", Infix(src)); diff != "" {
		t.Errorf("clone mutation changed the source (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff("pow(sqrt(16), 1 - 7)", Infix(dst)); diff != "" {
		t.Errorf("unexpected clone (-want +got):\n%s", diff)
	}
}

func TestIssueString(t *testing.T) {
	deepequal.SideBySide(
		t,
		"issue descriptions",
		[]string{"none", "domain error", "the result is undefined or infinite", "domain error, the result is undefined or infinite"},
		[]string{Issue(0).String(), IssueDomain.String(), IssueInfinite.String(), (IssueDomain | IssueInfinite).String()},
	)
}

func approxEqual(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}

	return math.Abs(a-b) < 1e-9
}
