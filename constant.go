package mathhook

// Constant is a named symbolic constant. The set is fixed; instances are the
// package-level singletons below, and Equal compares by name so deserialized
// copies behave identically.
type Constant struct {
	name  string
	latex string
}

var (
	// Pi is the circle constant π.
	Pi = &Constant{name: "pi", latex: `\pi`}
	// E is Euler's number.
	E = &Constant{name: "E", latex: `e`}
	// I is the imaginary unit. Complex arithmetic is a peer module's
	// concern; the core only carries i symbolically.
	I = &Constant{name: "I", latex: `i`}
	// Inf is positive real infinity.
	Inf = &Constant{name: "oo", latex: `\infty`}
	// ComplexInf is complex infinity (unsigned infinite magnitude).
	ComplexInf = &Constant{name: "zoo", latex: `\tilde{\infty}`}
	// Undefined is the sentinel for domain-invalid results such as 0/0.
	// It absorbs every arithmetic operation it appears in.
	Undefined = &Constant{name: "nan", latex: `\text{NaN}`}
)

var constantsByName = map[string]*Constant{
	"pi":  Pi,
	"E":   E,
	"I":   I,
	"oo":  Inf,
	"zoo": ComplexInf,
	"nan": Undefined,
}

// ConstantByName returns the named constant, or nil if the name is unknown.
func ConstantByName(name string) *Constant { return constantsByName[name] }

func (c *Constant) Kind() Kind     { return KindConstant }
func (c *Constant) Name() string   { return c.name }
func (c *Constant) String() string { return c.name }
func (c *Constant) LaTeX() string  { return c.latex }

func (c *Constant) Equal(other Expr) bool {
	o, ok := other.(*Constant)
	return ok && c.name == o.name
}

// isUndefined reports whether e is the Undefined sentinel.
func isUndefined(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && c.name == Undefined.name
}

// isInfinite reports whether e is one of the infinity constants.
func isInfinite(e Expr) bool {
	c, ok := e.(*Constant)
	return ok && (c.name == Inf.name || c.name == ComplexInf.name)
}
