package main

import (
	"fmt"
	"math"

	mathhook "github.com/AhmedMashour/mathhook"
)

// Floating-point evaluation for plotting. Numeric approximation is kept out
// of the kernel on purpose; the sampler here is a consumer like any other.

var floatFuncs = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

var floatConsts = map[string]float64{
	"pi": math.Pi,
	"E":  math.E,
	"oo": math.Inf(1),
}

// evalFloat numerically evaluates e with the given variable bindings.
func evalFloat(e mathhook.Expr, binds map[string]float64) (float64, error) {
	switch v := e.(type) {
	case *mathhook.Num:
		return v.Float64(), nil
	case *mathhook.Sym:
		if f, ok := binds[v.Name()]; ok {
			return f, nil
		}
		return 0, fmt.Errorf("unbound variable %q", v.Name())
	case *mathhook.Constant:
		if f, ok := floatConsts[v.Name()]; ok {
			return f, nil
		}
		return 0, fmt.Errorf("constant %q has no real value", v.Name())
	case *mathhook.Add:
		sum := 0.0
		for _, t := range v.Terms() {
			f, err := evalFloat(t, binds)
			if err != nil {
				return 0, err
			}
			sum += f
		}
		return sum, nil
	case *mathhook.Mul:
		prod := 1.0
		for _, t := range v.Factors() {
			f, err := evalFloat(t, binds)
			if err != nil {
				return 0, err
			}
			prod *= f
		}
		return prod, nil
	case *mathhook.Pow:
		base, err := evalFloat(v.Base(), binds)
		if err != nil {
			return 0, err
		}
		exp, err := evalFloat(v.Exponent(), binds)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	case *mathhook.Func:
		args := v.Args()
		fn, ok := floatFuncs[v.FuncName()]
		if !ok || len(args) != 1 {
			return 0, fmt.Errorf("cannot evaluate %s numerically", v.FuncName())
		}
		arg, err := evalFloat(args[0], binds)
		if err != nil {
			return 0, err
		}
		return fn(arg), nil
	}
	return 0, fmt.Errorf("cannot evaluate %s numerically", e.String())
}
