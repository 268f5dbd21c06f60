package eqn

import (
	"errors"
	"math"
	"testing"
)

// tableStub is a minimal ParameterTable for validation tests.
type tableStub map[string]float64

func (s tableStub) Has(name string) bool { _, ok := s[name]; return ok }

func (s tableStub) Value(name string) (float64, bool) {
	v, ok := s[name]
	return v, ok
}

func (s tableStub) Eval(name string, _ ...float64) (float64, error) {
	v, ok := s[name]
	if !ok {
		return 0, errors.New("no such parameter")
	}
	return v, nil
}

func goodModel() *Model {
	m := NewModel("test model")
	q := m.Declare("Charge [C]")
	m.RHS["Charge [C]"] = Param("Current [A]")
	m.InitialConditions["Charge [C]"] = C(0)
	m.Outputs["Charge [C]"] = q
	return m
}

func TestValidateGoodModel(t *testing.T) {
	if err := goodModel().Validate(); err != nil {
		t.Fatalf("expected valid model, got %v", err)
	}
}

func TestValidateMissingInitialCondition(t *testing.T) {
	m := goodModel()
	delete(m.InitialConditions, "Charge [C]")

	err := m.Validate()
	if !errors.Is(err, ErrMissingInitialCondition) {
		t.Errorf("expected ErrMissingInitialCondition, got %v", err)
	}
}

func TestValidateUngoverned(t *testing.T) {
	m := goodModel()
	m.Declare("Orphan [V]")

	err := m.Validate()
	if !errors.Is(err, ErrUngovernedVariable) {
		t.Errorf("expected ErrUngovernedVariable, got %v", err)
	}
}

func TestValidateUndeclaredEquationKey(t *testing.T) {
	m := goodModel()
	m.RHS["Ghost [V]"] = C(0)

	err := m.Validate()
	if !errors.Is(err, ErrUndeclaredVariable) {
		t.Errorf("expected ErrUndeclaredVariable, got %v", err)
	}
}

func TestValidateUndeclaredReference(t *testing.T) {
	m := goodModel()
	m.Outputs["Voltage [V]"] = Var("Ghost [V]")

	err := m.Validate()
	if !errors.Is(err, ErrUndeclaredVariable) {
		t.Errorf("expected ErrUndeclaredVariable, got %v", err)
	}
}

func TestValidateDuplicateEquation(t *testing.T) {
	m := goodModel()
	m.Algebraic["Charge [C]"] = Var("Charge [C]")

	err := m.Validate()
	if !errors.Is(err, ErrDuplicateEquation) {
		t.Errorf("expected ErrDuplicateEquation, got %v", err)
	}
}

func TestValidateSpatialBoundaryConditions(t *testing.T) {
	m := NewModel("spatial")
	m.Declare("Concentration [mol.m-3]", NegativeElectrode, Separator, PositiveElectrode)
	m.RHS["Concentration [mol.m-3]"] = Divergence(Grad(Var("Concentration [mol.m-3]")))
	m.InitialConditions["Concentration [mol.m-3]"] = C(1000)

	err := m.Validate()
	if !errors.Is(err, ErrMissingBoundaryCondition) {
		t.Fatalf("expected ErrMissingBoundaryCondition, got %v", err)
	}

	m.BoundaryConditions["Concentration [mol.m-3]"] = BoundaryConditions{
		Left:  BoundaryCondition{Kind: Neumann, Value: C(0)},
		Right: BoundaryCondition{Kind: Neumann, Value: C(0)},
	}
	if err := m.Validate(); err != nil {
		t.Errorf("expected valid model after adding conditions, got %v", err)
	}
}

func TestValidatePairMissingParameter(t *testing.T) {
	m := goodModel()
	table := tableStub{}

	err := ValidatePair(m, table)
	if !errors.Is(err, ErrMissingParameter) {
		t.Errorf("expected ErrMissingParameter, got %v", err)
	}
}

func TestValidatePairNonFinite(t *testing.T) {
	m := goodModel()
	table := tableStub{
		"Current [A]":               math.Inf(1),
		"Lower voltage cut-off [V]": 0,
		"Upper voltage cut-off [V]": 3,
	}

	err := ValidatePair(m, table)
	if !errors.Is(err, ErrNonFiniteParameter) {
		t.Errorf("expected ErrNonFiniteParameter, got %v", err)
	}
}

func TestValidatePairCutoffOrder(t *testing.T) {
	m := goodModel()
	table := tableStub{
		"Current [A]":               300,
		"Lower voltage cut-off [V]": 3,
		"Upper voltage cut-off [V]": 0,
	}

	err := ValidatePair(m, table)
	if !errors.Is(err, ErrVoltageCutoffs) {
		t.Errorf("expected ErrVoltageCutoffs, got %v", err)
	}
}

func TestValidatePairGood(t *testing.T) {
	m := goodModel()
	table := tableStub{
		"Current [A]":               300,
		"Lower voltage cut-off [V]": 0,
		"Upper voltage cut-off [V]": 3,
	}

	if err := ValidatePair(m, table); err != nil {
		t.Errorf("expected valid pairing, got %v", err)
	}
}
