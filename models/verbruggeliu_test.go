package models

import (
	"testing"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

func TestVerbruggeLiuValidates(t *testing.T) {
	if err := VerbruggeLiu().Validate(); err != nil {
		t.Fatalf("model invalid: %v", err)
	}
}

func TestVerbruggeLiuVariables(t *testing.T) {
	m := VerbruggeLiu()

	tests := []struct {
		name    string
		domains int
	}{
		{"Discharge capacity [A.h]", 0},
		{"Electrolyte concentration [mol.m-3]", 3},
		{"Electrolyte potential [V]", 3},
		{"Negative electrode potential difference [V]", 1},
		{"Positive electrode potential difference [V]", 1},
	}

	if len(m.Variables) != len(tests) {
		t.Errorf("expected %d variables, got %d", len(tests), len(m.Variables))
	}
	for _, tt := range tests {
		v, ok := m.Variables[tt.name]
		if !ok {
			t.Errorf("missing variable %q", tt.name)
			continue
		}
		if len(v.Domains) != tt.domains {
			t.Errorf("%q: expected %d domains, got %d", tt.name, tt.domains, len(v.Domains))
		}
	}
}

func TestVerbruggeLiuElectrolytePotentialIsAlgebraic(t *testing.T) {
	m := VerbruggeLiu()

	if _, ok := m.Algebraic["Electrolyte potential [V]"]; !ok {
		t.Fatal("electrolyte potential should be an algebraic constraint")
	}
	if _, ok := m.RHS["Electrolyte potential [V]"]; ok {
		t.Error("electrolyte potential must not also have a differential equation")
	}

	bc := m.BoundaryConditions["Electrolyte potential [V]"]
	if bc.Left.Kind != eqn.Dirichlet {
		t.Errorf("left potential condition should be Dirichlet, got %s", bc.Left.Kind)
	}
	if bc.Right.Kind != eqn.Neumann {
		t.Errorf("right potential condition should be Neumann, got %s", bc.Right.Kind)
	}
}

func TestVerbruggeLiuConcentrationNoFluxBoundaries(t *testing.T) {
	m := VerbruggeLiu()

	bc := m.BoundaryConditions["Electrolyte concentration [mol.m-3]"]
	for side, cond := range map[string]eqn.BoundaryCondition{"left": bc.Left, "right": bc.Right} {
		if cond.Kind != eqn.Neumann {
			t.Errorf("%s concentration condition should be Neumann, got %s", side, cond.Kind)
		}
		if cond.Value.String() != "0" {
			t.Errorf("%s concentration flux should vanish, got %s", side, cond.Value)
		}
	}
}

func TestVerbruggeLiuOutputs(t *testing.T) {
	m := VerbruggeLiu()

	wanted := []string{
		"Time [s]",
		"Current [A]",
		"Voltage [V]",
		"Battery voltage [V]",
		"Electrolyte concentration [mol.m-3]",
		"Electrolyte potential [V]",
		"Negative electrode potential [V]",
		"Positive electrode potential [V]",
		"Negative electrode interfacial current density [A.m-3]",
		"Positive electrode interfacial current density [A.m-3]",
	}
	for _, name := range wanted {
		if _, ok := m.Outputs[name]; !ok {
			t.Errorf("missing output %q", name)
		}
	}
}

func TestVerbruggeLiuClosedByPorousSets(t *testing.T) {
	m := VerbruggeLiu()

	for name, set := range map[string]parameters.Values{
		"iamrod2024":    parameters.Iamrod2024(),
		"verbrugge2005": parameters.Verbrugge2005(),
	} {
		if err := eqn.ValidatePair(m, set); err != nil {
			t.Errorf("%s does not close the model: %v", name, err)
		}
	}
}

func TestVerbruggeLiuNotClosedByLumpedSet(t *testing.T) {
	err := eqn.ValidatePair(VerbruggeLiu(), parameters.Zubieta1998())
	if err == nil {
		t.Fatal("lumped set should not close the porous-electrode model")
	}
}
