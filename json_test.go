package mathhook_test

import (
	"encoding/json"
	"testing"

	mathhook "github.com/AhmedMashour/mathhook"
)

func roundTrip(t *testing.T, e mathhook.Expr) mathhook.Expr {
	t.Helper()
	doc, err := mathhook.ToJSON(e)
	if err != nil {
		t.Fatalf("ToJSON(%s): %v", e.String(), err)
	}
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := mathhook.FromJSON(data)
	if err != nil {
		t.Fatalf("FromJSON(%s): %v", doc, err)
	}
	return got
}

func TestJSON_RoundTrip(t *testing.T) {
	x := mathhook.S("x")
	exprs := []mathhook.Expr{
		mathhook.N(42),
		mathhook.F(-3, 7),
		mathhook.Pi,
		x,
		mathhook.Simplify(mathhook.AddOf(mathhook.N(1), x, mathhook.PowOf(x, mathhook.N(2)))),
		mathhook.Simplify(mathhook.MulOf(mathhook.N(2), x, mathhook.S("y"))),
		mathhook.SinOf(mathhook.AddOf(x, mathhook.Pi)),
		mathhook.Eq(mathhook.PowOf(x, mathhook.N(2)), mathhook.N(4)),
		mathhook.IntervalOf(mathhook.N(0), mathhook.Inf, false, true),
		mathhook.SetOf(mathhook.N(1), mathhook.N(2), x),
		mathhook.MatrixFromSlice(2, 2, []mathhook.Expr{
			mathhook.N(1), x, mathhook.N(0), mathhook.PowOf(x, mathhook.N(2)),
		}),
		mathhook.DerivativeOf(mathhook.SinOf(x), x),
		mathhook.PiecewiseOf(
			mathhook.Piece{Value: x, Cond: mathhook.Eq(x, mathhook.N(0))},
			mathhook.Piece{Value: mathhook.N(1), Cond: mathhook.S("otherwise")},
		),
	}
	for _, e := range exprs {
		got := roundTrip(t, e)
		if !got.Equal(e) {
			t.Errorf("round trip changed %s into %s", e.String(), got.String())
		}
	}
}

func TestJSON_ApproxFlagSurvives(t *testing.T) {
	got := roundTrip(t, mathhook.NFloat(0.5))
	n, ok := got.(*mathhook.Num)
	if !ok {
		t.Fatalf("want a Num, got %T", got)
	}
	if !n.IsApprox() {
		t.Error("approx flag must survive the round trip")
	}
	if mathhook.N(1).Equal(roundTrip(t, mathhook.NFloat(1))) {
		t.Error("round-tripped approximate 1.0 must stay distinct from exact 1")
	}
}

func TestJSON_RawTreeNeedsSimplify(t *testing.T) {
	// Deserialization mirrors parsing: the tree comes back raw.
	doc := `{"type":"add","terms":[
		{"type":"num","value":"2"},
		{"type":"num","value":"3"}]}`
	var data map[string]interface{}
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		t.Fatal(err)
	}
	e, err := mathhook.FromJSON(data)
	if err != nil {
		t.Fatal(err)
	}
	if e.String() != "2 + 3" {
		t.Errorf("want raw 2 + 3, got %s", e.String())
	}
	if got := mathhook.Simplify(e).String(); got != "5" {
		t.Errorf("want 5 after Simplify, got %s", got)
	}
}

func TestJSON_Errors(t *testing.T) {
	bad := []string{
		`{"type":"bogus"}`,
		`{"value":"2"}`,
		`{"type":"num","value":"not-a-number"}`,
		`{"type":"const","name":"gamma"}`,
		`{"type":"pow","base":{"type":"sym","name":"x"}}`,
		`{"type":"matrix","rows":2,"cols":2,"entries":[{"type":"num","value":"1"}]}`,
		`{"type":"calc","op":"Wave","args":[]}`,
	}
	for _, doc := range bad {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(doc), &data); err != nil {
			t.Fatal(err)
		}
		if _, err := mathhook.FromJSON(data); err == nil {
			t.Errorf("want an error for %s", doc)
		}
	}
}
