package main

import (
	"math"
	"testing"

	mathhook "github.com/AhmedMashour/mathhook"
)

func TestEvalFloat_Polynomial(t *testing.T) {
	e, err := Parse("x^2 + 2*x + 1")
	if err != nil {
		t.Fatal(err)
	}
	got, err := evalFloat(mathhook.Simplify(e), map[string]float64{"x": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got != 16 {
		t.Errorf("want 16, got %g", got)
	}
}

func TestEvalFloat_Functions(t *testing.T) {
	e, err := Parse("sin(x)^2 + cos(x)^2")
	if err != nil {
		t.Fatal(err)
	}
	got, err := evalFloat(mathhook.Simplify(e), map[string]float64{"x": 0.7})
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(got-1) > 1e-12 {
		t.Errorf("sin^2 + cos^2 should be 1, got %g", got)
	}
}

func TestEvalFloat_Constants(t *testing.T) {
	got, err := evalFloat(mathhook.Pi, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != math.Pi {
		t.Errorf("want math.Pi, got %g", got)
	}
}

func TestEvalFloat_Rational(t *testing.T) {
	got, err := evalFloat(mathhook.F(1, 4), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0.25 {
		t.Errorf("want 0.25, got %g", got)
	}
}

func TestEvalFloat_UnboundVariable(t *testing.T) {
	if _, err := evalFloat(mathhook.S("y"), map[string]float64{"x": 1}); err == nil {
		t.Error("unbound variables must error")
	}
}

func TestEvalFloat_NonRealConstant(t *testing.T) {
	if _, err := evalFloat(mathhook.I, nil); err == nil {
		t.Error("the imaginary unit has no real value")
	}
}

func TestEvalFloat_UnknownFunction(t *testing.T) {
	if _, err := evalFloat(mathhook.FuncOf("mystery", mathhook.N(1)), nil); err == nil {
		t.Error("unknown functions must error")
	}
}
