package mathhook

import "strings"

// Mul is an ordered product of factors. Canonical products are flattened,
// sorted, have at most one numeric factor (first), and no repeated base.
type Mul struct{ factors []Expr }

// MulOf builds a raw product. Simplify establishes canonical form.
func MulOf(factors ...Expr) Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return &Mul{factors: factors}
}

func (m *Mul) Kind() Kind      { return KindMul }
func (m *Mul) Factors() []Expr { return m.factors }

func (m *Mul) Equal(other Expr) bool {
	o, ok := other.(*Mul)
	if !ok || len(m.factors) != len(o.factors) {
		return false
	}
	for i := range m.factors {
		if !m.factors[i].Equal(o.factors[i]) {
			return false
		}
	}
	return true
}

func (m *Mul) String() string {
	if len(m.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if f.Kind() == KindAdd {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}
	return strings.Join(parts, "*")
}

func (m *Mul) LaTeX() string {
	parts := make([]string, len(m.factors))
	for i, f := range m.factors {
		if f.Kind() == KindAdd {
			parts[i] = `\left(` + f.LaTeX() + `\right)`
		} else {
			parts[i] = f.LaTeX()
		}
	}
	return strings.Join(parts, " ")
}

// simplifyMul consumes already-simplified factors and returns one canonical
// expression, never a nested product.
func (en *Engine) simplifyMul(factors []Expr) Expr {
	flat := make([]Expr, 0, len(factors))
	for _, f := range factors {
		if inner, ok := f.(*Mul); ok {
			flat = append(flat, inner.factors...)
		} else {
			flat = append(flat, f)
		}
	}

	// Undefined absorbs, and 0 times an infinite factor is undefined, not
	// zero. Only after that scan does the unconditional 0*x -> 0 hold.
	infinite := false
	for _, f := range flat {
		if isUndefined(f) {
			return Undefined
		}
		if isInfinite(f) {
			infinite = true
		}
	}

	coeff := N(1)
	rest := make([]Expr, 0, len(flat))
	for _, f := range flat {
		if n, ok := f.(*Num); ok {
			coeff = numMul(coeff, n)
		} else {
			rest = append(rest, f)
		}
	}
	if coeff.IsZero() {
		if infinite {
			return Undefined
		}
		return N(0)
	}

	// Group by base, summing exponents; x * x^2 -> x^3. A recombined power
	// can collapse back into a product ((x*y)^2 * (x*y)^-1 -> x*y); those
	// factors re-enter the grouping so no base survives twice.
	type group struct {
		base Expr
		exps []Expr
	}
	out := make([]Expr, 0, len(rest))
	for {
		var order []string
		groups := map[string]*group{}
		for _, f := range rest {
			base, exp := splitPow(f)
			k := base.String()
			g, seen := groups[k]
			if !seen {
				g = &group{base: base}
				groups[k] = g
				order = append(order, k)
			}
			g.exps = append(g.exps, exp)
		}

		out = out[:0]
		var spliced []Expr
		for _, k := range order {
			g := groups[k]
			exp := g.exps[0]
			if len(g.exps) > 1 {
				exp = en.simplifyAdd(g.exps)
			}
			f := en.simplifyPow(g.base, exp)
			switch v := f.(type) {
			case *Num:
				// A combined power can evaluate, e.g. 2^x * 2^(1-x).
				coeff = numMul(coeff, v)
			case *Mul:
				spliced = append(spliced, v.factors...)
			default:
				if isUndefined(f) {
					return Undefined
				}
				out = append(out, f)
			}
		}
		if spliced == nil {
			break
		}
		// Spliced factors are children of a canonical product, so each is
		// strictly shallower than the power it came from; the loop bottoms
		// out.
		rest = append(spliced, out...)
	}
	if coeff.IsZero() {
		if infinite {
			return Undefined
		}
		return N(0)
	}
	sortExprs(out)

	if len(out) == 0 {
		return coeff
	}
	if coeff.IsOne() {
		if len(out) == 1 {
			return out[0]
		}
		return &Mul{factors: out}
	}
	factorsOut := make([]Expr, 0, len(out)+1)
	factorsOut = append(factorsOut, coeff)
	factorsOut = append(factorsOut, out...)
	return &Mul{factors: factorsOut}
}

// splitPow decomposes a factor into base and exponent. A factor that is not a
// power has implicit exponent 1.
func splitPow(f Expr) (base, exp Expr) {
	if p, ok := f.(*Pow); ok {
		return p.base, p.exp
	}
	return f, N(1)
}
