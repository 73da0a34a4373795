package mathhook

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// JSON serialization of expression trees. FromJSON produces raw trees, like
// a parser would; callers re-simplify.

// ToJSON renders e as a JSON document.
func ToJSON(e Expr) (string, error) {
	b, err := json.Marshal(toJSON(e))
	return string(b), err
}

func toJSON(e Expr) map[string]interface{} {
	switch v := e.(type) {
	case *Num:
		m := map[string]interface{}{"type": "num", "value": v.val.RatString()}
		if v.approx {
			m["approx"] = true
		}
		return m
	case *Sym:
		return map[string]interface{}{"type": "sym", "name": v.name}
	case *Constant:
		return map[string]interface{}{"type": "const", "name": v.name}
	case *Add:
		return map[string]interface{}{"type": "add", "terms": toJSONAll(v.terms)}
	case *Mul:
		return map[string]interface{}{"type": "mul", "factors": toJSONAll(v.factors)}
	case *Pow:
		return map[string]interface{}{"type": "pow", "base": toJSON(v.base), "exp": toJSON(v.exp)}
	case *Func:
		return map[string]interface{}{"type": "func", "name": v.name, "args": toJSONAll(v.args)}
	case *Equation:
		return map[string]interface{}{"type": "equation", "lhs": toJSON(v.lhs), "rhs": toJSON(v.rhs)}
	case *Piecewise:
		pieces := make([]map[string]interface{}, len(v.pieces))
		for i, p := range v.pieces {
			pieces[i] = map[string]interface{}{"value": toJSON(p.Value), "cond": toJSON(p.Cond)}
		}
		return map[string]interface{}{"type": "piecewise", "pieces": pieces}
	case *Interval:
		return map[string]interface{}{
			"type": "interval",
			"lo":   toJSON(v.lo), "hi": toJSON(v.hi),
			"openLo": v.openLo, "openHi": v.openHi,
		}
	case *SetExpr:
		return map[string]interface{}{"type": "set", "elems": toJSONAll(v.elems)}
	case *Matrix:
		entries := make([]map[string]interface{}, 0, v.rows*v.cols)
		for i := 0; i < v.rows; i++ {
			for j := 0; j < v.cols; j++ {
				entries = append(entries, toJSON(v.data[i][j]))
			}
		}
		return map[string]interface{}{"type": "matrix", "rows": v.rows, "cols": v.cols, "entries": entries}
	case *Calc:
		return map[string]interface{}{"type": "calc", "op": v.op.String(), "args": toJSONAll(v.args)}
	}
	return map[string]interface{}{"type": "unknown"}
}

func toJSONAll(es []Expr) []map[string]interface{} {
	out := make([]map[string]interface{}, len(es))
	for i, e := range es {
		out[i] = toJSON(e)
	}
	return out
}

// FromJSON rebuilds an expression from a decoded JSON object.
func FromJSON(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typ, _ := data["type"].(string)
	if typ == "" {
		return nil, fmt.Errorf("missing or invalid 'type' field")
	}

	switch typ {
	case "num":
		val, _ := data["value"].(string)
		if val == "" {
			return nil, fmt.Errorf("num: 'value' must be a non-empty string")
		}
		r := new(big.Rat)
		if _, ok := r.SetString(val); !ok {
			return nil, fmt.Errorf("num: invalid value %q", val)
		}
		approx, _ := data["approx"].(bool)
		return &Num{val: r, approx: approx}, nil

	case "sym":
		name, err := jsonString(data, typ, "name")
		if err != nil {
			return nil, err
		}
		return S(name), nil

	case "const":
		name, err := jsonString(data, typ, "name")
		if err != nil {
			return nil, err
		}
		c := ConstantByName(name)
		if c == nil {
			return nil, fmt.Errorf("const: unknown constant %q", name)
		}
		return c, nil

	case "add":
		terms, err := jsonExprs(data, typ, "terms")
		if err != nil {
			return nil, err
		}
		return AddOf(terms...), nil

	case "mul":
		factors, err := jsonExprs(data, typ, "factors")
		if err != nil {
			return nil, err
		}
		return MulOf(factors...), nil

	case "pow":
		base, err := jsonExpr(data, typ, "base")
		if err != nil {
			return nil, err
		}
		exp, err := jsonExpr(data, typ, "exp")
		if err != nil {
			return nil, err
		}
		return PowOf(base, exp), nil

	case "func":
		name, err := jsonString(data, typ, "name")
		if err != nil {
			return nil, err
		}
		args, err := jsonExprs(data, typ, "args")
		if err != nil {
			return nil, err
		}
		return FuncOf(name, args...), nil

	case "equation":
		lhs, err := jsonExpr(data, typ, "lhs")
		if err != nil {
			return nil, err
		}
		rhs, err := jsonExpr(data, typ, "rhs")
		if err != nil {
			return nil, err
		}
		return Eq(lhs, rhs), nil

	case "piecewise":
		raw, ok := data["pieces"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("piecewise: 'pieces' must be an array")
		}
		pieces := make([]Piece, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("piecewise: pieces[%d] must be an object", i)
			}
			val, err := jsonExpr(m, "piecewise", "value")
			if err != nil {
				return nil, err
			}
			cond, err := jsonExpr(m, "piecewise", "cond")
			if err != nil {
				return nil, err
			}
			pieces[i] = Piece{Value: val, Cond: cond}
		}
		return PiecewiseOf(pieces...), nil

	case "interval":
		lo, err := jsonExpr(data, typ, "lo")
		if err != nil {
			return nil, err
		}
		hi, err := jsonExpr(data, typ, "hi")
		if err != nil {
			return nil, err
		}
		openLo, _ := data["openLo"].(bool)
		openHi, _ := data["openHi"].(bool)
		return IntervalOf(lo, hi, openLo, openHi), nil

	case "set":
		elems, err := jsonExprs(data, typ, "elems")
		if err != nil {
			return nil, err
		}
		return SetOf(elems...), nil

	case "matrix":
		rows, ok1 := data["rows"].(float64)
		cols, ok2 := data["cols"].(float64)
		if !ok1 || !ok2 || rows < 0 || cols < 0 {
			return nil, fmt.Errorf("matrix: 'rows' and 'cols' must be non-negative numbers")
		}
		entries, err := jsonExprs(data, typ, "entries")
		if err != nil {
			return nil, err
		}
		if len(entries) != int(rows)*int(cols) {
			return nil, fmt.Errorf("matrix: want %d entries, got %d", int(rows)*int(cols), len(entries))
		}
		return MatrixFromSlice(int(rows), int(cols), entries), nil

	case "calc":
		opName, err := jsonString(data, typ, "op")
		if err != nil {
			return nil, err
		}
		op, ok := calcOpByName(opName)
		if !ok {
			return nil, fmt.Errorf("calc: unknown op %q", opName)
		}
		args, err := jsonExprs(data, typ, "args")
		if err != nil {
			return nil, err
		}
		return &Calc{op: op, args: args}, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

func calcOpByName(name string) (CalcOp, bool) {
	for _, op := range []CalcOp{OpDerivative, OpIntegral, OpLimit, OpSum, OpProduct} {
		if op.String() == name {
			return op, true
		}
	}
	return 0, false
}

func jsonString(data map[string]interface{}, typ, field string) (string, error) {
	s, ok := data[field].(string)
	if !ok || s == "" {
		return "", fmt.Errorf("%s: %q must be a non-empty string", typ, field)
	}
	return s, nil
}

func jsonExpr(data map[string]interface{}, typ, field string) (Expr, error) {
	m, ok := data[field].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: %q must be an object", typ, field)
	}
	e, err := FromJSON(m)
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
	}
	return e, nil
}

func jsonExprs(data map[string]interface{}, typ, field string) ([]Expr, error) {
	raw, ok := data[field].([]interface{})
	if !ok {
		return nil, fmt.Errorf("%s: %q must be an array", typ, field)
	}
	out := make([]Expr, len(raw))
	for i, it := range raw {
		m, ok := it.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %s[%d] must be an object", typ, field, i)
		}
		e, err := FromJSON(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s[%d]: %w", typ, field, i, err)
		}
		out[i] = e
	}
	return out, nil
}
