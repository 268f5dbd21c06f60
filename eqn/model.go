package eqn

import "sort"

// Domain identifies a spatial region of the cell. Domain names match
// the conventions used by the host framework's meshes.
type Domain string

const (
	NegativeElectrode Domain = "negative electrode"
	Separator         Domain = "separator"
	PositiveElectrode Domain = "positive electrode"
)

// WholeCell is the domain sequence spanned by electrolyte quantities.
var WholeCell = []Domain{NegativeElectrode, Separator, PositiveElectrode}

// Side identifies an edge of a variable's domain.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// BCKind distinguishes boundary condition types.
type BCKind int

const (
	Neumann BCKind = iota
	Dirichlet
)

func (k BCKind) String() string {
	if k == Dirichlet {
		return "Dirichlet"
	}
	return "Neumann"
}

// Variable declares a model state. A variable with no domains depends
// on time only. Names follow the "Quantity [unit]" convention shared
// with parameter tables.
type Variable struct {
	Name    string
	Domains []Domain
}

// Spatial reports whether the variable varies over the cell.
func (v Variable) Spatial() bool { return len(v.Domains) > 0 }

// BoundaryCondition fixes a variable's flux or value at one edge.
type BoundaryCondition struct {
	Kind  BCKind
	Value Expr
}

// BoundaryConditions holds the two edge conditions of a spatial
// variable.
type BoundaryConditions struct {
	Left  BoundaryCondition
	Right BoundaryCondition
}

// Event is a solve-termination condition; the host stops integrating
// when the expression crosses zero from above.
type Event struct {
	Name string
	Expr Expr
}

// Model is a named bundle of symbolic governing equations. It has no
// behaviour of its own beyond construction, inspection and validation;
// discretizing and solving it is the host framework's job.
//
// RHS maps a variable name to the right-hand side of its d/dt
// equation. Algebraic maps a variable name to a residual that the host
// drives to zero. Outputs are derived quantities worth reporting,
// keyed by the same naming convention as variables.
type Model struct {
	name string

	Variables          map[string]Variable
	RHS                map[string]Expr
	Algebraic          map[string]Expr
	InitialConditions  map[string]Expr
	BoundaryConditions map[string]BoundaryConditions
	Outputs            map[string]Expr
	Events             []Event
}

// NewModel returns an empty model shell ready for declarations.
func NewModel(name string) *Model {
	return &Model{
		name:               name,
		Variables:          make(map[string]Variable),
		RHS:                make(map[string]Expr),
		Algebraic:          make(map[string]Expr),
		InitialConditions:  make(map[string]Expr),
		BoundaryConditions: make(map[string]BoundaryConditions),
		Outputs:            make(map[string]Expr),
	}
}

func (m *Model) Name() string { return m.name }

// Declare registers a variable and returns a reference to it for use
// in equations.
func (m *Model) Declare(name string, domains ...Domain) Expr {
	m.Variables[name] = Variable{Name: name, Domains: domains}
	return Var(name)
}

// VariableNames returns the declared variable names, sorted.
func (m *Model) VariableNames() []string {
	names := make([]string, 0, len(m.Variables))
	for name := range m.Variables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// OutputNames returns the output quantity names, sorted.
func (m *Model) OutputNames() []string {
	names := make([]string, 0, len(m.Outputs))
	for name := range m.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Parameters returns the sorted set of parameter names referenced by
// any equation, condition, output or event of the model.
func (m *Model) Parameters() []string {
	seen := map[string]bool{}
	collect := func(e Expr) {
		for _, p := range Params(e) {
			seen[p] = true
		}
	}
	for _, e := range m.RHS {
		collect(e)
	}
	for _, e := range m.Algebraic {
		collect(e)
	}
	for _, e := range m.InitialConditions {
		collect(e)
	}
	for _, bc := range m.BoundaryConditions {
		collect(bc.Left.Value)
		collect(bc.Right.Value)
	}
	for _, e := range m.Outputs {
		collect(e)
	}
	for _, ev := range m.Events {
		collect(ev.Expr)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
