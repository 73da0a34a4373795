package mathhook

import "strings"

// Func is a named function applied to an ordered argument list. The core
// attaches no meaning to the name; identities come from the Registry.
type Func struct {
	name string
	args []Expr
}

// FuncOf builds a raw function application.
func FuncOf(name string, args ...Expr) Expr {
	return &Func{name: name, args: args}
}

// Convenience constructors for the common unary functions.
func SinOf(arg Expr) Expr  { return FuncOf("sin", arg) }
func CosOf(arg Expr) Expr  { return FuncOf("cos", arg) }
func TanOf(arg Expr) Expr  { return FuncOf("tan", arg) }
func ExpOf(arg Expr) Expr  { return FuncOf("exp", arg) }
func LnOf(arg Expr) Expr   { return FuncOf("ln", arg) }
func AbsOf(arg Expr) Expr  { return FuncOf("abs", arg) }
func SignOf(arg Expr) Expr { return FuncOf("sign", arg) }

// SqrtOf is sugar for arg^(1/2); square roots are power nodes.
func SqrtOf(arg Expr) Expr { return PowOf(arg, F(1, 2)) }

func (f *Func) Kind() Kind     { return KindFunc }
func (f *Func) FuncName() string { return f.name }
func (f *Func) Args() []Expr   { return f.args }

func (f *Func) Equal(other Expr) bool {
	o, ok := other.(*Func)
	if !ok || f.name != o.name || len(f.args) != len(o.args) {
		return false
	}
	for i := range f.args {
		if !f.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

func (f *Func) String() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

func (f *Func) LaTeX() string {
	parts := make([]string, len(f.args))
	for i, a := range f.args {
		parts[i] = a.LaTeX()
	}
	inner := strings.Join(parts, ", ")
	switch f.name {
	case "sin", "cos", "tan", "exp", "ln", "sinh", "cosh", "tanh":
		return `\` + f.name + `\left(` + inner + `\right)`
	case "abs":
		return `\left|` + inner + `\right|`
	}
	return `\operatorname{` + f.name + `}\left(` + inner + `\right)`
}

// simplifyFunc consumes pre-simplified arguments. A registry rule may rewrite
// the application; its result is re-simplified because a rule can produce a
// reducible tree. With no applicable rule the node is reassembled as is.
func (en *Engine) simplifyFunc(name string, args []Expr) Expr {
	for _, a := range args {
		if isUndefined(a) {
			return Undefined
		}
	}
	if res, ok := en.Registry.Apply(name, args); ok {
		return en.Simplify(res)
	}
	return &Func{name: name, args: args}
}
