package models

import (
	"testing"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

func TestSingleParticleValidates(t *testing.T) {
	if err := SingleParticle().Validate(); err != nil {
		t.Fatalf("single particle model invalid: %v", err)
	}
}

func TestSingleParticleStructure(t *testing.T) {
	m := SingleParticle()

	for name, v := range m.Variables {
		if v.Spatial() {
			t.Errorf("variable %q should be time-only in the reduced model", name)
		}
	}
	if len(m.BoundaryConditions) != 0 {
		t.Errorf("reduced model should need no boundary conditions, got %d", len(m.BoundaryConditions))
	}
	for _, name := range []string{"Voltage [V]", "Ohmic resistance [Ohm]", "Battery voltage [V]"} {
		if _, ok := m.Outputs[name]; !ok {
			t.Errorf("missing output %q", name)
		}
	}
}

func TestSingleParticleClosedByPorousSets(t *testing.T) {
	m := SingleParticle()

	for name, set := range map[string]parameters.Values{
		"iamrod2024":    parameters.Iamrod2024(),
		"verbrugge2005": parameters.Verbrugge2005(),
	} {
		if err := eqn.ValidatePair(m, set); err != nil {
			t.Errorf("%s does not close the single particle model: %v", name, err)
		}
	}
}

func TestSingleParticleOppositeElectrodeSigns(t *testing.T) {
	m := SingleParticle()

	// Discharge drives the two potential differences toward each
	// other: only the positive electrode equation carries the minus.
	if _, ok := m.RHS["Positive electrode potential difference [V]"].(eqn.NegExpr); !ok {
		t.Error("positive electrode rhs should be negated")
	}
	if _, ok := m.RHS["Negative electrode potential difference [V]"].(eqn.NegExpr); ok {
		t.Error("negative electrode rhs should not be negated")
	}
}
