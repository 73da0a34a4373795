package mathhook

// Engine canonicalizes expressions. It holds the injected function registry
// and the exact-power evaluation bound; it has no other state, so one engine
// may serve any number of concurrent Simplify calls.
type Engine struct {
	// Registry supplies function identities. Read-only once the engine is
	// in use.
	Registry *Registry
	// MaxExactPower bounds |n| for exact evaluation of number^n. Larger
	// exponents stay symbolic.
	MaxExactPower int64
}

// NewEngine returns an engine using reg. A nil reg means no function rules.
func NewEngine(reg *Registry) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	return &Engine{Registry: reg, MaxExactPower: 4096}
}

var defaultEngine = NewEngine(DefaultRegistry())

// Simplify reduces e to canonical form using the default engine and the
// standard function identities.
func Simplify(e Expr) Expr { return defaultEngine.Simplify(e) }

// Simplify reduces e to canonical form. It is total: no error, no panic on a
// well-formed tree, and idempotent: Simplify(Simplify(e)) equals Simplify(e)
// structurally.
//
// Post-order: children are simplified first, then the rule for the node kind
// is applied to the already-simplified children. Compound forms the core does
// not interpret (equations, piecewise, intervals, sets, matrices, calculus
// placeholders) recurse and reassemble their tag unchanged.
func (en *Engine) Simplify(e Expr) Expr {
	switch v := e.(type) {
	case *Num, *Sym:
		return e
	case *Constant:
		// No numeric identity is applied; constants stay symbolic.
		return e
	case *Add:
		return en.simplifyAdd(en.simplifyAll(v.terms))
	case *Mul:
		return en.simplifyMul(en.simplifyAll(v.factors))
	case *Pow:
		return en.simplifyPow(en.Simplify(v.base), en.Simplify(v.exp))
	case *Func:
		return en.simplifyFunc(v.name, en.simplifyAll(v.args))
	case *Equation:
		return &Equation{lhs: en.Simplify(v.lhs), rhs: en.Simplify(v.rhs)}
	case *Piecewise:
		pieces := make([]Piece, len(v.pieces))
		for i, p := range v.pieces {
			pieces[i] = Piece{Value: en.Simplify(p.Value), Cond: en.Simplify(p.Cond)}
		}
		return &Piecewise{pieces: pieces}
	case *Interval:
		return &Interval{
			lo: en.Simplify(v.lo), hi: en.Simplify(v.hi),
			openLo: v.openLo, openHi: v.openHi,
		}
	case *SetExpr:
		return &SetExpr{elems: en.simplifyAll(v.elems)}
	case *Matrix:
		out := NewMatrix(v.rows, v.cols)
		for i := 0; i < v.rows; i++ {
			for j := 0; j < v.cols; j++ {
				out.data[i][j] = en.Simplify(v.data[i][j])
			}
		}
		return out
	case *Calc:
		return &Calc{op: v.op, args: en.simplifyAll(v.args)}
	}
	return e
}

func (en *Engine) simplifyAll(es []Expr) []Expr {
	out := make([]Expr, len(es))
	for i, e := range es {
		out[i] = en.Simplify(e)
	}
	return out
}
