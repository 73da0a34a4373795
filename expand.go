package mathhook

// Expand distributes products over sums and unrolls small positive integer
// powers of sums, then canonicalizes. It is purely structural distribution;
// no identities beyond the ring axioms are applied.
func Expand(e Expr) Expr { return Simplify(expandExpr(Simplify(e))) }

const maxExpandPower = 10

func expandExpr(e Expr) Expr {
	switch v := e.(type) {
	case *Mul:
		result := Expr(N(1))
		for _, f := range v.factors {
			result = expandMul(result, expandExpr(f))
		}
		return result
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = expandExpr(t)
		}
		return Simplify(AddOf(terms...))
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsInteger() && !n.approx {
			if e := n.val.Num(); e.IsInt64() {
				ev := e.Int64()
				if ev >= 0 && ev <= maxExpandPower {
					result := Expr(N(1))
					base := expandExpr(v.base)
					for i := int64(0); i < ev; i++ {
						result = expandMul(result, base)
					}
					return result
				}
			}
		}
		return Simplify(PowOf(expandExpr(v.base), expandExpr(v.exp)))
	}
	return e
}

// expandMul multiplies two already-expanded expressions, distributing over any
// sum on either side. Products of sums never reach Simplify whole, so the
// x*x -> x^2 regrouping cannot fold a distributed product back into a power.
func expandMul(a, b Expr) Expr {
	if ad, ok := a.(*Add); ok {
		terms := make([]Expr, len(ad.terms))
		for i, t := range ad.terms {
			terms[i] = expandMul(t, b)
		}
		return Simplify(AddOf(terms...))
	}
	if bd, ok := b.(*Add); ok {
		terms := make([]Expr, len(bd.terms))
		for i, t := range bd.terms {
			terms[i] = expandMul(a, t)
		}
		return Simplify(AddOf(terms...))
	}
	return Simplify(MulOf(a, b))
}
