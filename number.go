package mathhook

import (
	"math/big"
	"strconv"
)

// Num is an exact number: an arbitrary-precision rational, auto-reduced by
// big.Rat. The approx flag marks float contamination; once set it propagates
// through every arithmetic operation and is never cleared.
type Num struct {
	val    *big.Rat
	approx bool
}

// N returns the exact integer n.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// F returns the exact rational p/q, reduced.
func F(p, q int64) *Num {
	if q == 0 {
		panic("mathhook: denominator is zero")
	}
	return &Num{val: new(big.Rat).SetFrac(big.NewInt(p), big.NewInt(q))}
}

// NFloat returns an approximate number holding f.
func NFloat(f float64) *Num {
	r := new(big.Rat).SetFloat64(f)
	if r == nil {
		// NaN/Inf have sentinel constants; a float literal that is not
		// finite degrades to the Undefined policy at simplify time.
		r = new(big.Rat)
	}
	return &Num{val: r, approx: true}
}

// NumFromRat wraps an exact rational value.
func NumFromRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

func (n *Num) Kind() Kind       { return KindNumber }
func (n *Num) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool      { return n.val.Num().Cmp(n.val.Denom()) == 0 }
func (n *Num) IsNegOne() bool   { return n.val.Cmp(ratNegOne) == 0 }
func (n *Num) IsInteger() bool  { return n.val.IsInt() }
func (n *Num) IsApprox() bool   { return n.approx }
func (n *Num) IsPositive() bool { return n.val.Sign() > 0 }
func (n *Num) IsNegative() bool { return n.val.Sign() < 0 }
func (n *Num) Sign() int        { return n.val.Sign() }
func (n *Num) Rat() *big.Rat    { return new(big.Rat).Set(n.val) }
func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }

var ratNegOne = big.NewRat(-1, 1)

func (n *Num) Equal(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.approx == o.approx && n.val.Cmp(o.val) == 0
}

func (n *Num) String() string {
	if n.approx {
		return strconv.FormatFloat(n.Float64(), 'g', -1, 64)
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.approx {
		return n.String()
	}
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return sign + `\frac{` + v.Num().String() + `}{` + v.Denom().String() + `}`
}

// Exact arithmetic. Approximation is contagious: any approx operand makes the
// result approx.

func numAdd(a, b *Num) *Num {
	return &Num{val: new(big.Rat).Add(a.val, b.val), approx: a.approx || b.approx}
}

func numMul(a, b *Num) *Num {
	return &Num{val: new(big.Rat).Mul(a.val, b.val), approx: a.approx || b.approx}
}

func numNeg(a *Num) *Num {
	return &Num{val: new(big.Rat).Neg(a.val), approx: a.approx}
}

func numCmp(a, b *Num) int { return a.val.Cmp(b.val) }

// numPowInt raises a to an integer power by exact big.Int exponentiation.
// The caller guarantees a != 0 when e < 0.
func numPowInt(a *Num, e int64) *Num {
	neg := e < 0
	if neg {
		e = -e
	}
	exp := big.NewInt(e)
	num := new(big.Int).Exp(a.val.Num(), exp, nil)
	den := new(big.Int).Exp(a.val.Denom(), exp, nil)
	r := new(big.Rat).SetFrac(num, den)
	if neg {
		r.Inv(r)
	}
	return &Num{val: r, approx: a.approx}
}
