// Package mathhook is a canonical-form symbolic expression core for Go.
//
// Design goals:
//   - Immutable expression trees with structural sharing
//   - Exact rational arithmetic (math/big.Rat), floats only by contamination
//   - One canonical form: every mathematically equal input simplifies to one
//     structurally identical tree
//   - Deterministic total ordering of commutative operands
//   - Function identities supplied by an injected registry, never hardcoded
//
// Simplify is total: it never returns an error and never panics on a
// well-formed tree. Domain-invalid results are represented by the Undefined
// and ComplexInf sentinels rather than raised.
//
// Constructors build raw, possibly non-canonical trees; Simplify (or an
// Engine) establishes canonical form. Parsers, solvers and formatters are
// consumers of this package and live outside it.
package mathhook
