package mathhook

// Pow is base^exponent.
type Pow struct{ base, exp Expr }

// PowOf builds a raw power. Simplify establishes canonical form.
func PowOf(base, exp Expr) Expr { return &Pow{base: base, exp: exp} }

func (p *Pow) Kind() Kind     { return KindPow }
func (p *Pow) Base() Expr     { return p.base }
func (p *Pow) Exponent() Expr { return p.exp }

func (p *Pow) Equal(other Expr) bool {
	o, ok := other.(*Pow)
	return ok && p.base.Equal(o.base) && p.exp.Equal(o.exp)
}

func (p *Pow) String() string {
	return powParen(p.base) + "^" + powParen(p.exp)
}

func (p *Pow) LaTeX() string {
	base := p.base.LaTeX()
	switch p.base.Kind() {
	case KindAdd, KindMul, KindPow:
		base = `\left(` + base + `\right)`
	default:
		if n, ok := p.base.(*Num); ok && (n.IsNegative() || !n.IsInteger()) {
			base = `\left(` + base + `\right)`
		}
	}
	return base + "^{" + p.exp.LaTeX() + "}"
}

// powParen renders a power operand, parenthesizing anything that would bind
// ambiguously next to ^.
func powParen(e Expr) string {
	s := e.String()
	switch e.Kind() {
	case KindAdd, KindMul, KindPow:
		return "(" + s + ")"
	case KindNumber:
		n := e.(*Num)
		if n.IsNegative() || !n.IsInteger() {
			return "(" + s + ")"
		}
	}
	return s
}

// simplifyPow consumes a pre-simplified base and exponent. Resolution order,
// first match wins:
//
//	x^1 -> x, 1^x -> 1, x^0 -> 1 (but 0^0 -> nan), 0^positive -> 0,
//	0^negative -> zoo, exact integer powers evaluated, (b^n)^m collapsed
//	for integer m, otherwise the canonical power node.
func (en *Engine) simplifyPow(base, exp Expr) Expr {
	if isUndefined(base) || isUndefined(exp) {
		return Undefined
	}
	if n, ok := exp.(*Num); ok && n.IsOne() {
		return base
	}
	if n, ok := base.(*Num); ok && n.IsOne() {
		return N(1)
	}
	if n, ok := exp.(*Num); ok && n.IsZero() {
		if b, ok := base.(*Num); ok && b.IsZero() {
			// 0^0 stays undefined, same convention as 0*oo.
			return Undefined
		}
		return N(1)
	}
	if b, ok := base.(*Num); ok && b.IsZero() {
		if n, ok := exp.(*Num); ok {
			if n.IsPositive() {
				return N(0)
			}
			if n.IsNegative() {
				return ComplexInf
			}
		}
		return &Pow{base: base, exp: exp}
	}
	if b, ok := base.(*Num); ok {
		if n, ok := exp.(*Num); ok && n.IsInteger() {
			if e := n.val.Num(); e.IsInt64() {
				ev := e.Int64()
				if ev <= en.MaxExactPower && ev >= -en.MaxExactPower {
					r := numPowInt(b, ev)
					// Contamination flows through the exponent too:
					// 2^2.0 is approximate 4, never exact.
					r.approx = r.approx || n.approx
					return r
				}
			}
		}
	}
	if inner, ok := base.(*Pow); ok {
		// (b^a)^m = b^(a*m) is domain-safe only for integer m; fractional
		// outer exponents must keep the nested form.
		if n, ok := exp.(*Num); ok && n.IsInteger() && !n.approx {
			newExp := en.simplifyMul([]Expr{inner.exp, exp})
			return en.simplifyPow(inner.base, newExp)
		}
	}
	return &Pow{base: base, exp: exp}
}
