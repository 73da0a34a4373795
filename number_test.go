package mathhook_test

import (
	"testing"

	mathhook "github.com/AhmedMashour/mathhook"
)

// ============================================================
// Num tests
// ============================================================

func TestNum_Integer(t *testing.T) {
	n := mathhook.N(42)
	if n.String() != "42" {
		t.Errorf("want 42, got %s", n.String())
	}
}

func TestNum_RationalReduced(t *testing.T) {
	n := mathhook.F(6, 4)
	if n.String() != "3/2" {
		t.Errorf("rationals must be auto-reduced: want 3/2, got %s", n.String())
	}
}

func TestNum_NegativeRational(t *testing.T) {
	n := mathhook.F(-1, 3)
	if n.String() != "-1/3" {
		t.Errorf("want -1/3, got %s", n.String())
	}
}

func TestNum_Float(t *testing.T) {
	n := mathhook.NFloat(0.5)
	if !n.IsApprox() {
		t.Error("NFloat must be approximate")
	}
	if n.String() != "0.5" {
		t.Errorf("want 0.5, got %s", n.String())
	}
}

func TestNum_LaTeX_Rational(t *testing.T) {
	n := mathhook.F(2, 5)
	if n.LaTeX() != `\frac{2}{5}` {
		t.Errorf("want \\frac{2}{5}, got %s", n.LaTeX())
	}
}

func TestNum_Equal(t *testing.T) {
	if !mathhook.N(3).Equal(mathhook.N(3)) {
		t.Error("N(3) should equal N(3)")
	}
	if mathhook.N(3).Equal(mathhook.N(4)) {
		t.Error("N(3) should not equal N(4)")
	}
	if mathhook.N(1).Equal(mathhook.S("x")) {
		t.Error("N(1) should not equal S(x)")
	}
}

func TestNum_ExactVsApproxNotEqual(t *testing.T) {
	if mathhook.N(1).Equal(mathhook.NFloat(1)) {
		t.Error("exact 1 and approximate 1.0 are structurally distinct")
	}
}

func TestNum_Predicates(t *testing.T) {
	if !mathhook.N(0).IsZero() || mathhook.N(1).IsZero() {
		t.Error("IsZero misbehaves")
	}
	if !mathhook.N(1).IsOne() || !mathhook.F(3, 3).IsOne() {
		t.Error("IsOne misbehaves")
	}
	if !mathhook.F(1, 2).IsPositive() || !mathhook.N(-2).IsNegative() {
		t.Error("sign predicates misbehave")
	}
	if !mathhook.N(7).IsInteger() || mathhook.F(1, 2).IsInteger() {
		t.Error("IsInteger misbehaves")
	}
}

// ============================================================
// Sym tests
// ============================================================

func TestSym_String(t *testing.T) {
	if mathhook.S("x").String() != "x" {
		t.Errorf("want x, got %s", mathhook.S("x").String())
	}
}

func TestSym_Equal(t *testing.T) {
	if !mathhook.S("x").Equal(mathhook.S("x")) {
		t.Error("S(x) should equal S(x)")
	}
	if mathhook.S("x").Equal(mathhook.S("y")) {
		t.Error("S(x) should not equal S(y)")
	}
}

// ============================================================
// Constant tests
// ============================================================

func TestConstant_Lookup(t *testing.T) {
	if mathhook.ConstantByName("pi") != mathhook.Pi {
		t.Error("ConstantByName(pi) should return Pi")
	}
	if mathhook.ConstantByName("bogus") != nil {
		t.Error("unknown constant name should return nil")
	}
}

func TestConstant_Unchanged(t *testing.T) {
	got := mathhook.Simplify(mathhook.Pi)
	if !got.Equal(mathhook.Pi) {
		t.Errorf("constants simplify to themselves, got %s", got.String())
	}
}
