package mathhook

import (
	"sort"
	"strings"
)

// Compare defines the canonical total order over expressions: negative when
// a sorts before b, zero when the two trees are structurally identical.
//
// Tie-break ladder: kind rank first (numbers, constants, symbols, then
// compounds), then numeric value, constant/symbol name, and finally recursive
// element-by-element comparison of child sequences. Nodes with no natural
// ordering fall back to their rendered form, which is deterministic once the
// children are canonical.
func Compare(a, b Expr) int {
	if ka, kb := a.Kind(), b.Kind(); ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}
	switch x := a.(type) {
	case *Num:
		y := b.(*Num)
		if c := numCmp(x, y); c != 0 {
			return c
		}
		// Exact sorts before approximate at equal value.
		return boolCmp(x.approx, y.approx)
	case *Constant:
		return strings.Compare(x.name, b.(*Constant).name)
	case *Sym:
		return strings.Compare(x.name, b.(*Sym).name)
	case *Pow:
		y := b.(*Pow)
		if c := Compare(x.base, y.base); c != 0 {
			return c
		}
		return Compare(x.exp, y.exp)
	case *Mul:
		return compareSeqs(x.factors, b.(*Mul).factors)
	case *Add:
		return compareSeqs(x.terms, b.(*Add).terms)
	case *Func:
		y := b.(*Func)
		if c := strings.Compare(x.name, y.name); c != 0 {
			return c
		}
		return compareSeqs(x.args, y.args)
	case *Equation:
		y := b.(*Equation)
		if c := Compare(x.lhs, y.lhs); c != 0 {
			return c
		}
		return Compare(x.rhs, y.rhs)
	case *Calc:
		y := b.(*Calc)
		if x.op != y.op {
			if x.op < y.op {
				return -1
			}
			return 1
		}
		return compareSeqs(x.args, y.args)
	case *SetExpr:
		return compareSeqs(x.elems, b.(*SetExpr).elems)
	case *Interval:
		y := b.(*Interval)
		if c := Compare(x.lo, y.lo); c != 0 {
			return c
		}
		return Compare(x.hi, y.hi)
	}
	// Piecewise, Matrix: structural fallback.
	return strings.Compare(a.String(), b.String())
}

func compareSeqs(a, b []Expr) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func boolCmp(a, b bool) int {
	switch {
	case a == b:
		return 0
	case b:
		return -1
	}
	return 1
}

// sortExprs sorts es in place under the canonical order.
func sortExprs(es []Expr) {
	sort.SliceStable(es, func(i, j int) bool { return Compare(es[i], es[j]) < 0 })
}
