package mathhook

import (
	set "github.com/hashicorp/go-set/v2"
)

// Kind identifies a node variant. The set is closed: the simplifier dispatches
// on it with an exhaustive type switch, and the canonical order ranks kinds in
// this declaration order (numbers first, then symbols, then compounds).
type Kind uint8

const (
	KindNumber Kind = iota
	KindConstant
	KindSymbol
	KindPow
	KindMul
	KindAdd
	KindFunc
	KindEquation
	KindPiecewise
	KindInterval
	KindSet
	KindMatrix
	KindCalc
)

// Expr is an immutable expression tree node. Children are shared by
// reference; no operation mutates a node in place.
type Expr interface {
	Kind() Kind
	String() string
	LaTeX() string
	Equal(other Expr) bool
}

// Sym is a symbolic variable.
type Sym struct{ name string }

// S returns the symbol with the given name.
func S(name string) *Sym { return &Sym{name: name} }

func (s *Sym) Kind() Kind     { return KindSymbol }
func (s *Sym) Name() string   { return s.name }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }
func (s *Sym) Equal(other Expr) bool {
	o, ok := other.(*Sym)
	return ok && s.name == o.name
}

// children returns the direct sub-expressions of e, nil for leaves.
func children(e Expr) []Expr {
	switch v := e.(type) {
	case *Add:
		return v.terms
	case *Mul:
		return v.factors
	case *Pow:
		return []Expr{v.base, v.exp}
	case *Func:
		return v.args
	case *Equation:
		return []Expr{v.lhs, v.rhs}
	case *Piecewise:
		out := make([]Expr, 0, 2*len(v.pieces))
		for _, p := range v.pieces {
			out = append(out, p.Value, p.Cond)
		}
		return out
	case *Interval:
		return []Expr{v.lo, v.hi}
	case *SetExpr:
		return v.elems
	case *Matrix:
		out := make([]Expr, 0, v.rows*v.cols)
		for _, row := range v.data {
			out = append(out, row...)
		}
		return out
	case *Calc:
		return v.args
	}
	return nil
}

// Walk calls fn on e and every sub-expression, pre-order.
func Walk(e Expr, fn func(Expr)) {
	fn(e)
	for _, c := range children(e) {
		Walk(c, fn)
	}
}

// FreeSymbols returns the set of symbol names occurring in e.
func FreeSymbols(e Expr) *set.Set[string] {
	out := set.New[string](4)
	Walk(e, func(x Expr) {
		if s, ok := x.(*Sym); ok {
			out.Insert(s.name)
		}
	})
	return out
}

// Sub replaces every occurrence of the named symbol with value, returning a
// new tree. The result is raw; callers re-simplify.
func Sub(e Expr, name string, value Expr) Expr {
	switch v := e.(type) {
	case *Num, *Constant:
		return e
	case *Sym:
		if v.name == name {
			return value
		}
		return e
	case *Add:
		return AddOf(subAll(v.terms, name, value)...)
	case *Mul:
		return MulOf(subAll(v.factors, name, value)...)
	case *Pow:
		return PowOf(Sub(v.base, name, value), Sub(v.exp, name, value))
	case *Func:
		return FuncOf(v.name, subAll(v.args, name, value)...)
	case *Equation:
		return Eq(Sub(v.lhs, name, value), Sub(v.rhs, name, value))
	case *Piecewise:
		pieces := make([]Piece, len(v.pieces))
		for i, p := range v.pieces {
			pieces[i] = Piece{Value: Sub(p.Value, name, value), Cond: Sub(p.Cond, name, value)}
		}
		return PiecewiseOf(pieces...)
	case *Interval:
		return IntervalOf(Sub(v.lo, name, value), Sub(v.hi, name, value), v.openLo, v.openHi)
	case *SetExpr:
		return SetOf(subAll(v.elems, name, value)...)
	case *Matrix:
		out := NewMatrix(v.rows, v.cols)
		for i := 0; i < v.rows; i++ {
			for j := 0; j < v.cols; j++ {
				out.data[i][j] = Sub(v.data[i][j], name, value)
			}
		}
		return out
	case *Calc:
		return &Calc{op: v.op, args: subAll(v.args, name, value)}
	}
	return e
}

func subAll(es []Expr, name string, value Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = Sub(e, name, value)
	}
	return out
}
