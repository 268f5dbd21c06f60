package eqn

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Expr is a node in a symbolic expression tree. Trees are immutable
// once built; the host framework interprets them, this package only
// constructs, prints and validates them.
type Expr interface {
	Children() []Expr
	String() string
}

type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	}
	return "?"
}

// Scalar is a constant leaf.
type Scalar struct {
	Value float64
}

func (s Scalar) Children() []Expr { return nil }
func (s Scalar) String() string   { return strconv.FormatFloat(s.Value, 'g', -1, 64) }

// TimeRef is the independent time variable.
type TimeRef struct{}

func (TimeRef) Children() []Expr { return nil }
func (TimeRef) String() string   { return "t" }

// ParamRef references a named entry in a parameter table.
type ParamRef struct {
	Name string
}

func (p ParamRef) Children() []Expr { return nil }
func (p ParamRef) String() string   { return p.Name }

// FuncParamRef references a parameter that is a function of its
// arguments, e.g. an electrolyte conductivity evaluated at a
// concentration and temperature.
type FuncParamRef struct {
	Name string
	Args []Expr
}

func (f FuncParamRef) Children() []Expr { return f.Args }

func (f FuncParamRef) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", f.Name, strings.Join(args, ", "))
}

// VarRef references a variable declared on the model.
type VarRef struct {
	Name string
}

func (v VarRef) Children() []Expr { return nil }
func (v VarRef) String() string   { return v.Name }

// BinaryExpr combines two subtrees with an arithmetic operator.
type BinaryExpr struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (b BinaryExpr) Children() []Expr { return []Expr{b.Left, b.Right} }

func (b BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// NegExpr is unary negation.
type NegExpr struct {
	X Expr
}

func (n NegExpr) Children() []Expr { return []Expr{n.X} }
func (n NegExpr) String() string   { return fmt.Sprintf("-(%s)", n.X) }

// GradExpr is the spatial gradient of its operand.
type GradExpr struct {
	X Expr
}

func (g GradExpr) Children() []Expr { return []Expr{g.X} }
func (g GradExpr) String() string   { return fmt.Sprintf("grad(%s)", g.X) }

// DivergenceExpr is the spatial divergence of its operand.
type DivergenceExpr struct {
	X Expr
}

func (d DivergenceExpr) Children() []Expr { return []Expr{d.X} }
func (d DivergenceExpr) String() string   { return fmt.Sprintf("div(%s)", d.X) }

// BoundaryValueExpr evaluates its operand at one edge of its domain.
type BoundaryValueExpr struct {
	X    Expr
	Side Side
}

func (b BoundaryValueExpr) Children() []Expr { return []Expr{b.X} }

func (b BoundaryValueExpr) String() string {
	return fmt.Sprintf("boundary(%s, %s)", b.X, b.Side)
}

// BroadcastExpr lifts a scalar quantity onto a spatial domain.
type BroadcastExpr struct {
	X      Expr
	Domain Domain
}

func (b BroadcastExpr) Children() []Expr { return []Expr{b.X} }

func (b BroadcastExpr) String() string {
	return fmt.Sprintf("broadcast(%s, %s)", b.X, b.Domain)
}

// RestrictExpr restricts a multi-domain quantity to one of its domains.
type RestrictExpr struct {
	X      Expr
	Domain Domain
}

func (r RestrictExpr) Children() []Expr { return []Expr{r.X} }

func (r RestrictExpr) String() string {
	return fmt.Sprintf("restrict(%s, %s)", r.X, r.Domain)
}

// ConcatExpr joins per-domain pieces into one quantity spanning the
// pieces' domains in order.
type ConcatExpr struct {
	Parts []Expr
}

func (c ConcatExpr) Children() []Expr { return c.Parts }

func (c ConcatExpr) String() string {
	parts := make([]string, len(c.Parts))
	for i, p := range c.Parts {
		parts[i] = p.String()
	}
	return fmt.Sprintf("concat(%s)", strings.Join(parts, ", "))
}

// Constructors. Model definitions read better through these than
// through struct literals.

func C(v float64) Expr { return Scalar{Value: v} }

func T() Expr { return TimeRef{} }

func Param(name string) Expr { return ParamRef{Name: name} }

func Var(name string) Expr { return VarRef{Name: name} }

func Neg(x Expr) Expr { return NegExpr{X: x} }

func Grad(x Expr) Expr { return GradExpr{X: x} }

func Divergence(x Expr) Expr { return DivergenceExpr{X: x} }

func Pow(base, exp Expr) Expr { return BinaryExpr{Op: OpPow, Left: base, Right: exp} }

func Sub(a, b Expr) Expr { return BinaryExpr{Op: OpSub, Left: a, Right: b} }

func DivBy(num, den Expr) Expr { return BinaryExpr{Op: OpDiv, Left: num, Right: den} }

func Concat(parts ...Expr) Expr { return ConcatExpr{Parts: parts} }

func Function(name string, args ...Expr) Expr {
	return FuncParamRef{Name: name, Args: args}
}

// Add folds its operands left to right; it requires at least two.
func Add(terms ...Expr) Expr {
	e := terms[0]
	for _, t := range terms[1:] {
		e = BinaryExpr{Op: OpAdd, Left: e, Right: t}
	}
	return e
}

// Mul folds its operands left to right; it requires at least two.
func Mul(factors ...Expr) Expr {
	e := factors[0]
	for _, f := range factors[1:] {
		e = BinaryExpr{Op: OpMul, Left: e, Right: f}
	}
	return e
}

func BoundaryValue(x Expr, side Side) Expr {
	return BoundaryValueExpr{X: x, Side: side}
}

func Broadcast(x Expr, d Domain) Expr {
	return BroadcastExpr{X: x, Domain: d}
}

func Restrict(x Expr, d Domain) Expr {
	return RestrictExpr{X: x, Domain: d}
}

// Walk visits e and its descendants depth-first. Returning false from
// fn stops descent below that node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil {
		return
	}
	if !fn(e) {
		return
	}
	for _, c := range e.Children() {
		Walk(c, fn)
	}
}

// Params returns the sorted set of parameter names referenced anywhere
// in the expression.
func Params(e Expr) []string {
	seen := map[string]bool{}
	Walk(e, func(n Expr) bool {
		switch p := n.(type) {
		case ParamRef:
			seen[p.Name] = true
		case FuncParamRef:
			seen[p.Name] = true
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Vars returns the sorted set of variable names referenced anywhere in
// the expression.
func Vars(e Expr) []string {
	seen := map[string]bool{}
	Walk(e, func(n Expr) bool {
		if v, ok := n.(VarRef); ok {
			seen[v.Name] = true
		}
		return true
	})
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
