package mathhook

import "strings"

// Compound forms the core carries but does not interpret: simplification
// recurses into their children and reassembles the same tag. Their semantics
// belong to the solver, calculus and set modules consuming this package.

// Equation is the relation lhs = rhs.
type Equation struct{ lhs, rhs Expr }

// Eq builds an equation.
func Eq(lhs, rhs Expr) *Equation { return &Equation{lhs: lhs, rhs: rhs} }

func (e *Equation) Kind() Kind     { return KindEquation }
func (e *Equation) LHS() Expr      { return e.lhs }
func (e *Equation) RHS() Expr      { return e.rhs }
func (e *Equation) String() string { return e.lhs.String() + " = " + e.rhs.String() }
func (e *Equation) LaTeX() string  { return e.lhs.LaTeX() + " = " + e.rhs.LaTeX() }

func (e *Equation) Equal(other Expr) bool {
	o, ok := other.(*Equation)
	return ok && e.lhs.Equal(o.lhs) && e.rhs.Equal(o.rhs)
}

// Residual returns lhs - rhs in canonical form.
func (e *Equation) Residual() Expr {
	return Simplify(AddOf(e.lhs, MulOf(N(-1), e.rhs)))
}

// Piece is one branch of a piecewise expression.
type Piece struct {
	Value Expr
	Cond  Expr
}

// Piecewise selects among values by condition. Branch selection is a solver
// concern; the core only keeps both sides canonical.
type Piecewise struct{ pieces []Piece }

func PiecewiseOf(pieces ...Piece) *Piecewise { return &Piecewise{pieces: pieces} }

func (p *Piecewise) Kind() Kind     { return KindPiecewise }
func (p *Piecewise) Pieces() []Piece { return p.pieces }

func (p *Piecewise) Equal(other Expr) bool {
	o, ok := other.(*Piecewise)
	if !ok || len(p.pieces) != len(o.pieces) {
		return false
	}
	for i := range p.pieces {
		if !p.pieces[i].Value.Equal(o.pieces[i].Value) || !p.pieces[i].Cond.Equal(o.pieces[i].Cond) {
			return false
		}
	}
	return true
}

func (p *Piecewise) String() string {
	parts := make([]string, len(p.pieces))
	for i, pc := range p.pieces {
		parts[i] = "(" + pc.Value.String() + " if " + pc.Cond.String() + ")"
	}
	return "piecewise{" + strings.Join(parts, ", ") + "}"
}

func (p *Piecewise) LaTeX() string {
	var sb strings.Builder
	sb.WriteString(`\begin{cases}`)
	for i, pc := range p.pieces {
		if i > 0 {
			sb.WriteString(` \\ `)
		}
		sb.WriteString(pc.Value.LaTeX())
		sb.WriteString(` & `)
		sb.WriteString(pc.Cond.LaTeX())
	}
	sb.WriteString(`\end{cases}`)
	return sb.String()
}

// Interval is a real interval with open/closed endpoints.
type Interval struct {
	lo, hi         Expr
	openLo, openHi bool
}

func IntervalOf(lo, hi Expr, openLo, openHi bool) *Interval {
	return &Interval{lo: lo, hi: hi, openLo: openLo, openHi: openHi}
}

func (iv *Interval) Kind() Kind { return KindInterval }
func (iv *Interval) Lo() Expr   { return iv.lo }
func (iv *Interval) Hi() Expr   { return iv.hi }
func (iv *Interval) Open() (lo, hi bool) { return iv.openLo, iv.openHi }

func (iv *Interval) Equal(other Expr) bool {
	o, ok := other.(*Interval)
	return ok && iv.openLo == o.openLo && iv.openHi == o.openHi &&
		iv.lo.Equal(o.lo) && iv.hi.Equal(o.hi)
}

func (iv *Interval) String() string {
	l, r := "[", "]"
	if iv.openLo {
		l = "("
	}
	if iv.openHi {
		r = ")"
	}
	return l + iv.lo.String() + ", " + iv.hi.String() + r
}

func (iv *Interval) LaTeX() string {
	l, r := "[", "]"
	if iv.openLo {
		l = "("
	}
	if iv.openHi {
		r = ")"
	}
	return `\left` + l + iv.lo.LaTeX() + ", " + iv.hi.LaTeX() + `\right` + r
}

// SetExpr is a finite expression set. Membership semantics are a consumer
// concern; elements are kept in given order, only canonicalized.
type SetExpr struct{ elems []Expr }

func SetOf(elems ...Expr) *SetExpr { return &SetExpr{elems: elems} }

func (s *SetExpr) Kind() Kind     { return KindSet }
func (s *SetExpr) Elems() []Expr  { return s.elems }

func (s *SetExpr) Equal(other Expr) bool {
	o, ok := other.(*SetExpr)
	if !ok || len(s.elems) != len(o.elems) {
		return false
	}
	for i := range s.elems {
		if !s.elems[i].Equal(o.elems[i]) {
			return false
		}
	}
	return true
}

func (s *SetExpr) String() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = e.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (s *SetExpr) LaTeX() string {
	parts := make([]string, len(s.elems))
	for i, e := range s.elems {
		parts[i] = e.LaTeX()
	}
	return `\left\{` + strings.Join(parts, ", ") + `\right\}`
}

// CalcOp tags an uninterpreted calculus operator node.
type CalcOp uint8

const (
	OpDerivative CalcOp = iota
	OpIntegral
	OpLimit
	OpSum
	OpProduct
)

func (op CalcOp) String() string {
	switch op {
	case OpDerivative:
		return "Derivative"
	case OpIntegral:
		return "Integral"
	case OpLimit:
		return "Limit"
	case OpSum:
		return "Sum"
	case OpProduct:
		return "Product"
	}
	return "Calc"
}

// Calc is a calculus-operator placeholder: derivative, integral, limit, sum
// or product, held unevaluated. The calculus module interprets it; the core
// only canonicalizes its operands.
type Calc struct {
	op   CalcOp
	args []Expr
}

func DerivativeOf(f Expr, v *Sym) *Calc  { return &Calc{op: OpDerivative, args: []Expr{f, v}} }
func IntegralOf(f Expr, v *Sym) *Calc    { return &Calc{op: OpIntegral, args: []Expr{f, v}} }
func LimitOf(f Expr, v *Sym, to Expr) *Calc { return &Calc{op: OpLimit, args: []Expr{f, v, to}} }
func SumOf(f Expr, v *Sym, lo, hi Expr) *Calc {
	return &Calc{op: OpSum, args: []Expr{f, v, lo, hi}}
}
func ProductOf(f Expr, v *Sym, lo, hi Expr) *Calc {
	return &Calc{op: OpProduct, args: []Expr{f, v, lo, hi}}
}

func (c *Calc) Kind() Kind   { return KindCalc }
func (c *Calc) Op() CalcOp   { return c.op }
func (c *Calc) Args() []Expr { return c.args }

func (c *Calc) Equal(other Expr) bool {
	o, ok := other.(*Calc)
	if !ok || c.op != o.op || len(c.args) != len(o.args) {
		return false
	}
	for i := range c.args {
		if !c.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (c *Calc) String() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.String()
	}
	return c.op.String() + "(" + strings.Join(parts, ", ") + ")"
}

func (c *Calc) LaTeX() string {
	parts := make([]string, len(c.args))
	for i, a := range c.args {
		parts[i] = a.LaTeX()
	}
	return `\operatorname{` + c.op.String() + `}\left(` + strings.Join(parts, ", ") + `\right)`
}
