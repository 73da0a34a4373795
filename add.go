package mathhook

import "strings"

// Add is an ordered sum of terms. Canonical sums are flattened, sorted, and
// contain no like terms and no zero.
type Add struct{ terms []Expr }

// AddOf builds a raw sum. Simplify establishes canonical form.
func AddOf(terms ...Expr) Expr {
	if len(terms) == 1 {
		return terms[0]
	}
	return &Add{terms: terms}
}

func (a *Add) Kind() Kind    { return KindAdd }
func (a *Add) Terms() []Expr { return a.terms }

func (a *Add) Equal(other Expr) bool {
	o, ok := other.(*Add)
	if !ok || len(a.terms) != len(o.terms) {
		return false
	}
	for i := range a.terms {
		if !a.terms[i].Equal(o.terms[i]) {
			return false
		}
	}
	return true
}

func (a *Add) String() string {
	if len(a.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

func (a *Add) LaTeX() string {
	parts := make([]string, len(a.terms))
	for i, t := range a.terms {
		parts[i] = t.LaTeX()
	}
	return strings.Join(parts, " + ")
}

// simplifyAdd consumes already-simplified terms and returns one canonical
// expression, never a nested sum.
func (en *Engine) simplifyAdd(terms []Expr) Expr {
	// Flatten sums produced by raw construction.
	flat := make([]Expr, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	for _, t := range flat {
		if isUndefined(t) {
			return Undefined
		}
	}

	// Fold numeric terms eagerly; group the rest by structurally identical
	// base, summing coefficients.
	type group struct {
		base  Expr
		coeff *Num
	}
	sum := N(0)
	var order []string
	groups := map[string]*group{}
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			sum = numAdd(sum, n)
			continue
		}
		coeff, base := splitCoeff(t)
		k := base.String()
		g, seen := groups[k]
		if !seen {
			g = &group{base: base, coeff: N(0)}
			groups[k] = g
			order = append(order, k)
		}
		g.coeff = numAdd(g.coeff, coeff)
	}

	out := make([]Expr, 0, len(order)+1)
	if !sum.IsZero() {
		out = append(out, sum)
	}
	for _, k := range order {
		g := groups[k]
		if g.coeff.IsZero() {
			continue
		}
		out = append(out, scaleTerm(g.coeff, g.base))
	}
	sortExprs(out)

	switch len(out) {
	case 0:
		return N(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

// splitCoeff decomposes a non-numeric term into coefficient × base. A term
// with no leading numeric factor has coefficient 1.
func splitCoeff(t Expr) (*Num, Expr) {
	m, ok := t.(*Mul)
	if !ok || len(m.factors) == 0 {
		return N(1), t
	}
	n, ok := m.factors[0].(*Num)
	if !ok {
		return N(1), t
	}
	rest := m.factors[1:]
	if len(rest) == 1 {
		return n, rest[0]
	}
	return n, &Mul{factors: rest}
}

// scaleTerm reassembles coeff × base without re-simplifying: both parts are
// already canonical and base carries no numeric factor.
func scaleTerm(coeff *Num, base Expr) Expr {
	if coeff.IsOne() {
		return base
	}
	if m, ok := base.(*Mul); ok {
		factors := make([]Expr, 0, len(m.factors)+1)
		factors = append(factors, coeff)
		factors = append(factors, m.factors...)
		return &Mul{factors: factors}
	}
	return &Mul{factors: []Expr{coeff, base}}
}
