package mathhook_test

import (
	"testing"

	mathhook "github.com/AhmedMashour/mathhook"
)

// ============================================================
// Engine-level properties
// ============================================================

func TestSimplify_Idempotent(t *testing.T) {
	x, y := mathhook.S("x"), mathhook.S("y")
	exprs := []mathhook.Expr{
		mathhook.AddOf(mathhook.MulOf(mathhook.N(2), x), mathhook.MulOf(mathhook.N(3), x)),
		mathhook.MulOf(x, x, y, mathhook.N(0)),
		mathhook.PowOf(mathhook.PowOf(x, mathhook.N(2)), mathhook.F(1, 2)),
		mathhook.SinOf(mathhook.MulOf(mathhook.N(-1), x)),
		mathhook.AddOf(mathhook.F(1, 3), mathhook.F(1, 3), y),
		mathhook.PowOf(mathhook.N(0), mathhook.N(0)),
	}
	for _, e := range exprs {
		once := mathhook.Simplify(e)
		twice := mathhook.Simplify(once)
		if !once.Equal(twice) {
			t.Errorf("not idempotent for %s: %s vs %s", e.String(), once.String(), twice.String())
		}
	}
}

func TestSimplify_LeavesUnchanged(t *testing.T) {
	for _, e := range []mathhook.Expr{mathhook.N(7), mathhook.S("q"), mathhook.Pi, mathhook.Undefined} {
		if got := mathhook.Simplify(e); got != e {
			t.Errorf("leaf %s must come back as the same node", e.String())
		}
	}
}

func TestSimplify_DeepCanonical(t *testing.T) {
	x := mathhook.S("x")
	got := simplifyStr(mathhook.AddOf(
		mathhook.MulOf(x, mathhook.N(2)),
		mathhook.MulOf(mathhook.N(3), x),
		mathhook.N(1),
		mathhook.MulOf(mathhook.N(-1), mathhook.N(1)),
	))
	if got != "5*x" {
		t.Errorf("want 5*x, got %s", got)
	}
}

func TestSimplify_FunctionInverse(t *testing.T) {
	x := mathhook.S("x")
	if got := simplifyStr(mathhook.LnOf(mathhook.ExpOf(x))); got != "x" {
		t.Errorf("ln(exp(x)): want x, got %s", got)
	}
	if got := simplifyStr(mathhook.ExpOf(mathhook.LnOf(x))); got != "x" {
		t.Errorf("exp(ln(x)): want x, got %s", got)
	}
}

// ============================================================
// Compound forms recurse without being interpreted
// ============================================================

func TestSimplify_Equation(t *testing.T) {
	got := mathhook.Simplify(mathhook.Eq(
		mathhook.AddOf(mathhook.S("x"), mathhook.N(0)),
		mathhook.MulOf(mathhook.N(2), mathhook.N(3)),
	))
	if got.String() != "x = 6" {
		t.Errorf("want x = 6, got %s", got.String())
	}
}

func TestEquation_Residual(t *testing.T) {
	eq := mathhook.Eq(mathhook.S("x"), mathhook.N(5))
	if got := eq.Residual().String(); got != "-5 + x" {
		t.Errorf("want -5 + x, got %s", got)
	}
}

func TestSimplify_Piecewise(t *testing.T) {
	x := mathhook.S("x")
	got := mathhook.Simplify(mathhook.PiecewiseOf(
		mathhook.Piece{
			Value: mathhook.AddOf(x, mathhook.N(0)),
			Cond:  mathhook.Eq(x, mathhook.AddOf(mathhook.N(1), mathhook.N(1))),
		},
	))
	if got.String() != "piecewise{(x if x = 2)}" {
		t.Errorf("want piecewise{(x if x = 2)}, got %s", got.String())
	}
}

func TestSimplify_Interval(t *testing.T) {
	got := mathhook.Simplify(mathhook.IntervalOf(
		mathhook.AddOf(mathhook.N(1), mathhook.N(1)), mathhook.N(4), false, true,
	))
	if got.String() != "[2, 4)" {
		t.Errorf("want [2, 4), got %s", got.String())
	}
}

func TestSimplify_Set(t *testing.T) {
	got := mathhook.Simplify(mathhook.SetOf(
		mathhook.AddOf(mathhook.N(1), mathhook.N(2)), mathhook.S("x"),
	))
	if got.String() != "{3, x}" {
		t.Errorf("want {3, x}, got %s", got.String())
	}
}

func TestSimplify_Matrix(t *testing.T) {
	got := mathhook.Simplify(mathhook.MatrixFromSlice(1, 2, []mathhook.Expr{
		mathhook.AddOf(mathhook.S("x"), mathhook.N(0)),
		mathhook.MulOf(mathhook.N(2), mathhook.N(3)),
	}))
	if got.String() != "[[x, 6]]" {
		t.Errorf("want [[x, 6]], got %s", got.String())
	}
}

func TestSimplify_Calc(t *testing.T) {
	x := mathhook.S("x")
	got := mathhook.Simplify(mathhook.DerivativeOf(
		mathhook.AddOf(x, mathhook.N(0)), x,
	))
	if got.String() != "Derivative(x, x)" {
		t.Errorf("calculus nodes stay unevaluated, got %s", got.String())
	}
}

// ============================================================
// Substitution and traversal
// ============================================================

func TestSub_ThenSimplify(t *testing.T) {
	x := mathhook.S("x")
	e := mathhook.AddOf(mathhook.PowOf(x, mathhook.N(2)), x)
	got := mathhook.Simplify(mathhook.Sub(e, "x", mathhook.N(3)))
	if got.String() != "12" {
		t.Errorf("x^2 + x at x=3: want 12, got %s", got.String())
	}
}

func TestSub_OtherSymbolsUntouched(t *testing.T) {
	e := mathhook.AddOf(mathhook.S("x"), mathhook.S("y"))
	got := mathhook.Simplify(mathhook.Sub(e, "x", mathhook.N(1)))
	if got.String() != "1 + y" {
		t.Errorf("want 1 + y, got %s", got.String())
	}
}

func TestFreeSymbols(t *testing.T) {
	e := mathhook.AddOf(
		mathhook.MulOf(mathhook.S("x"), mathhook.S("y")),
		mathhook.SinOf(mathhook.S("x")),
		mathhook.Pi,
	)
	syms := mathhook.FreeSymbols(e)
	if syms.Size() != 2 {
		t.Fatalf("want 2 free symbols, got %d", syms.Size())
	}
	if !syms.Contains("x") || !syms.Contains("y") {
		t.Error("free symbols must be {x, y}")
	}
}

func TestWalk_VisitsEveryNode(t *testing.T) {
	e := mathhook.AddOf(mathhook.S("x"), mathhook.PowOf(mathhook.S("y"), mathhook.N(2)))
	count := 0
	mathhook.Walk(e, func(mathhook.Expr) { count++ })
	// Add, x, Pow, y, 2.
	if count != 5 {
		t.Errorf("want 5 nodes visited, got %d", count)
	}
}
