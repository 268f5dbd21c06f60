package eqn

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ParameterTable is the view of a parameter set that validation needs.
// parameters.Values satisfies it.
type ParameterTable interface {
	Has(name string) bool
	Value(name string) (float64, bool)
	Eval(name string, args ...float64) (float64, error)
}

const (
	lowerCutoffKey = "Lower voltage cut-off [V]"
	upperCutoffKey = "Upper voltage cut-off [V]"

	initialConcentrationKey = "Initial concentration in electrolyte [mol.m-3]"
	referenceTemperatureKey = "Reference temperature [K]"
)

// Validate checks a model for structural completeness: every equation
// keyed to a declared variable, every governed variable initialised,
// every spatial variable bounded on both edges, every variable
// reference resolvable. All problems found are reported, joined.
func (m *Model) Validate() error {
	var errs []error

	governed := map[string]bool{}
	for name := range m.RHS {
		governed[name] = true
		if _, ok := m.Variables[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: rhs equation for %q", ErrUndeclaredVariable, name))
		}
	}
	for name := range m.Algebraic {
		if governed[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateEquation, name))
		}
		governed[name] = true
		if _, ok := m.Variables[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: algebraic equation for %q", ErrUndeclaredVariable, name))
		}
	}

	for _, name := range m.VariableNames() {
		v := m.Variables[name]
		if !governed[name] {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUngovernedVariable, name))
			continue
		}
		if _, ok := m.InitialConditions[name]; !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingInitialCondition, name))
		}
		if v.Spatial() {
			bc, ok := m.BoundaryConditions[name]
			if !ok {
				errs = append(errs, fmt.Errorf("%w: %q", ErrMissingBoundaryCondition, name))
			} else {
				if bc.Left.Value == nil {
					errs = append(errs, fmt.Errorf("%w: %q (left)", ErrMissingBoundaryCondition, name))
				}
				if bc.Right.Value == nil {
					errs = append(errs, fmt.Errorf("%w: %q (right)", ErrMissingBoundaryCondition, name))
				}
			}
		}
	}

	for name := range m.BoundaryConditions {
		v, ok := m.Variables[name]
		if !ok {
			errs = append(errs, fmt.Errorf("%w: boundary conditions for %q", ErrUndeclaredVariable, name))
		} else if !v.Spatial() {
			errs = append(errs, fmt.Errorf("eqn: boundary conditions on time-only variable %q", name))
		}
	}

	for _, name := range m.unknownVarRefs() {
		errs = append(errs, fmt.Errorf("%w: reference to %q", ErrUndeclaredVariable, name))
	}

	return errors.Join(errs...)
}

// unknownVarRefs collects variable references that resolve to no
// declaration, across every expression the model holds.
func (m *Model) unknownVarRefs() []string {
	seen := map[string]bool{}
	check := func(e Expr) {
		for _, name := range Vars(e) {
			if _, ok := m.Variables[name]; !ok {
				seen[name] = true
			}
		}
	}
	for _, e := range m.RHS {
		check(e)
	}
	for _, e := range m.Algebraic {
		check(e)
	}
	for _, e := range m.InitialConditions {
		check(e)
	}
	for _, bc := range m.BoundaryConditions {
		check(bc.Left.Value)
		check(bc.Right.Value)
	}
	for _, e := range m.Outputs {
		check(e)
	}
	for _, ev := range m.Events {
		check(ev.Expr)
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidatePair checks a model against a parameter table: structure
// first, then that every referenced parameter exists, that function
// parameters evaluate finite at nominal arguments, and that voltage
// cut-offs are ordered.
//
// Function parameters are probed at the set's initial electrolyte
// concentration and reference temperature (falling back to 1.0 and
// 298.15 K when the set omits those entries).
func ValidatePair(m *Model, table ParameterTable) error {
	var errs []error

	if err := m.Validate(); err != nil {
		errs = append(errs, err)
	}

	nominalC := 1.0
	if c, ok := table.Value(initialConcentrationKey); ok {
		nominalC = c
	}
	nominalT := 298.15
	if temp, ok := table.Value(referenceTemperatureKey); ok {
		nominalT = temp
	}

	arity := funcParamArity(m)
	for _, name := range m.Parameters() {
		if !table.Has(name) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrMissingParameter, name))
			continue
		}
		n := arity[name]
		args := make([]float64, n)
		for i := range args {
			args[i] = nominalT
		}
		if n > 1 {
			args[0] = nominalC
		}
		v, err := table.Eval(name, args...)
		if err != nil {
			errs = append(errs, fmt.Errorf("eqn: parameter %q: %w", name, err))
			continue
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%w: %q", ErrNonFiniteParameter, name))
		}
	}

	lo, hasLo := table.Value(lowerCutoffKey)
	hi, hasHi := table.Value(upperCutoffKey)
	if hasLo && hasHi && lo >= hi {
		errs = append(errs, fmt.Errorf("%w: lower %.3g >= upper %.3g", ErrVoltageCutoffs, lo, hi))
	}

	return errors.Join(errs...)
}

// funcParamArity maps each function-parameter name to the argument
// count it is called with in the model's equations.
func funcParamArity(m *Model) map[string]int {
	arity := map[string]int{}
	record := func(e Expr) {
		Walk(e, func(n Expr) bool {
			if f, ok := n.(FuncParamRef); ok {
				arity[f.Name] = len(f.Args)
			}
			return true
		})
	}
	for _, e := range m.RHS {
		record(e)
	}
	for _, e := range m.Algebraic {
		record(e)
	}
	for _, e := range m.InitialConditions {
		record(e)
	}
	for _, bc := range m.BoundaryConditions {
		record(bc.Left.Value)
		record(bc.Right.Value)
	}
	for _, e := range m.Outputs {
		record(e)
	}
	for _, ev := range m.Events {
		record(ev.Expr)
	}
	return arity
}
