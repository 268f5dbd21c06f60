package eqn

import "errors"

// Validation errors. Wrapped with context by the validators, matched
// with errors.Is in callers and tests.
var (
	// ErrUndeclaredVariable indicates an equation keyed to, or
	// referencing, a variable the model never declared.
	ErrUndeclaredVariable = errors.New("eqn: undeclared variable")

	// ErrDuplicateEquation indicates a variable governed by both a
	// differential and an algebraic equation.
	ErrDuplicateEquation = errors.New("eqn: variable has both rhs and algebraic equation")

	// ErrUngovernedVariable indicates a declared variable with no
	// governing equation.
	ErrUngovernedVariable = errors.New("eqn: variable has no governing equation")

	// ErrMissingInitialCondition indicates a governed variable with no
	// initial condition.
	ErrMissingInitialCondition = errors.New("eqn: missing initial condition")

	// ErrMissingBoundaryCondition indicates a spatial variable with no
	// boundary condition pair.
	ErrMissingBoundaryCondition = errors.New("eqn: missing boundary condition")

	// ErrMissingParameter indicates an equation referencing a parameter
	// absent from the paired parameter table.
	ErrMissingParameter = errors.New("eqn: parameter not in parameter set")

	// ErrNonFiniteParameter indicates a parameter function returning
	// NaN or Inf at nominal arguments.
	ErrNonFiniteParameter = errors.New("eqn: parameter evaluates non-finite")

	// ErrVoltageCutoffs indicates voltage cut-offs that are absent or
	// out of order.
	ErrVoltageCutoffs = errors.New("eqn: invalid voltage cut-offs")
)
