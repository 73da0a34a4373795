package mathhook

// Rule inspects already-simplified arguments and either returns a replacement
// expression (which the engine re-simplifies) or reports that it does not
// apply. Rules must be pure: same arguments, same answer.
type Rule func(args []Expr) (Expr, bool)

// Registry maps function names to their simplification rules. It is built
// once, then read-only: concurrent Simplify calls share it without locks.
// Rules for a name are tried in registration order; first match wins.
type Registry struct {
	rules map[string][]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: map[string][]Rule{}}
}

// Register appends a rule for the named function. Not safe to call
// concurrently with Simplify; populate the registry before handing it to an
// Engine.
func (r *Registry) Register(name string, rule Rule) {
	r.rules[name] = append(r.rules[name], rule)
}

// Apply runs the registered rules for name against args. A nil registry has
// no rules; a zero-value Engine must still simplify without panicking.
func (r *Registry) Apply(name string, args []Expr) (Expr, bool) {
	if r == nil {
		return nil, false
	}
	for _, rule := range r.rules[name] {
		if res, ok := rule(args); ok {
			return res, true
		}
	}
	return nil, false
}

// Has reports whether any rule is registered for name.
func (r *Registry) Has(name string) bool { return r != nil && len(r.rules[name]) > 0 }

// DefaultRegistry returns a registry carrying the standard identities for the
// elementary functions. Callers wanting a different rule set build their own.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Value identities at distinguished points.
	r.Register("sin", atArg(N(0), N(0)))
	r.Register("cos", atArg(N(0), N(1)))
	r.Register("tan", atArg(N(0), N(0)))
	r.Register("sin", atArg(Pi, N(0)))
	r.Register("tan", atArg(Pi, N(0)))
	r.Register("cos", atArg(Pi, N(-1)))
	r.Register("sinh", atArg(N(0), N(0)))
	r.Register("cosh", atArg(N(0), N(1)))
	r.Register("tanh", atArg(N(0), N(0)))
	r.Register("exp", atArg(N(0), N(1)))
	r.Register("exp", atArg(N(1), E))
	r.Register("ln", atArg(N(1), N(0)))
	r.Register("ln", atArg(E, N(1)))

	// Parity: odd functions pull a negation out, even functions drop it.
	for _, name := range []string{"sin", "tan", "sinh", "tanh"} {
		r.Register(name, oddRule(name))
	}
	r.Register("cos", evenRule("cos"))
	r.Register("cosh", evenRule("cosh"))
	r.Register("abs", evenRule("abs"))

	// Inverse pairs.
	r.Register("ln", unary(func(arg Expr) (Expr, bool) {
		if inner, ok := arg.(*Func); ok && inner.name == "exp" && len(inner.args) == 1 {
			return inner.args[0], true
		}
		return nil, false
	}))
	r.Register("exp", unary(func(arg Expr) (Expr, bool) {
		if inner, ok := arg.(*Func); ok && inner.name == "ln" && len(inner.args) == 1 {
			return inner.args[0], true
		}
		return nil, false
	}))

	// Exact numeric cases.
	r.Register("abs", unary(func(arg Expr) (Expr, bool) {
		if n, ok := arg.(*Num); ok {
			if n.IsNegative() {
				return numNeg(n), true
			}
			return n, true
		}
		return nil, false
	}))
	r.Register("sign", unary(func(arg Expr) (Expr, bool) {
		if n, ok := arg.(*Num); ok {
			return N(int64(n.Sign())), true
		}
		return nil, false
	}))

	return r
}

// unary adapts a single-argument rule body, declining other arities.
func unary(body func(arg Expr) (Expr, bool)) Rule {
	return func(args []Expr) (Expr, bool) {
		if len(args) != 1 {
			return nil, false
		}
		return body(args[0])
	}
}

// atArg maps f(point) to value.
func atArg(point, value Expr) Rule {
	return unary(func(arg Expr) (Expr, bool) {
		if arg.Equal(point) {
			return value, true
		}
		return nil, false
	})
}

// oddRule rewrites f(-x) to -f(x).
func oddRule(name string) Rule {
	return unary(func(arg Expr) (Expr, bool) {
		inner, ok := splitNegation(arg)
		if !ok {
			return nil, false
		}
		return MulOf(N(-1), FuncOf(name, inner)), true
	})
}

// evenRule rewrites f(-x) to f(x).
func evenRule(name string) Rule {
	return unary(func(arg Expr) (Expr, bool) {
		inner, ok := splitNegation(arg)
		if !ok {
			return nil, false
		}
		return FuncOf(name, inner), true
	})
}

// splitNegation recognizes a canonical negated expression: a product with a
// negative leading numeric factor. It returns the expression with that sign
// removed.
func splitNegation(e Expr) (Expr, bool) {
	m, ok := e.(*Mul)
	if !ok || len(m.factors) == 0 {
		return nil, false
	}
	n, ok := m.factors[0].(*Num)
	if !ok || !n.IsNegative() {
		return nil, false
	}
	pos := numNeg(n)
	rest := m.factors[1:]
	if pos.IsOne() {
		if len(rest) == 1 {
			return rest[0], true
		}
		return &Mul{factors: rest}, true
	}
	return scaleTerm(pos, mulOfRest(rest)), true
}

func mulOfRest(rest []Expr) Expr {
	if len(rest) == 1 {
		return rest[0]
	}
	return &Mul{factors: rest}
}
