package supercapacitors

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

func TestRegisteredNames(t *testing.T) {
	wantModels := []string{"reservoir", "single-particle", "verbrugge-liu"}
	if got := Models(); !reflect.DeepEqual(got, wantModels) {
		t.Errorf("Models: got %v, want %v", got, wantModels)
	}

	wantSets := []string{"iamrod2024", "verbrugge2005", "zubieta1998"}
	if got := ParameterSets(); !reflect.DeepEqual(got, wantSets) {
		t.Errorf("ParameterSets: got %v, want %v", got, wantSets)
	}
}

func TestNewModel(t *testing.T) {
	for _, name := range Models() {
		m, err := NewModel(name)
		if err != nil {
			t.Fatalf("NewModel(%q): %v", name, err)
		}
		if err := m.Validate(); err != nil {
			t.Errorf("model %q invalid: %v", name, err)
		}
	}

	_, err := NewModel("dmfc")
	if !errors.Is(err, ErrUnknownModel) {
		t.Errorf("expected ErrUnknownModel, got %v", err)
	}
}

func TestGetParameterValues(t *testing.T) {
	for _, name := range ParameterSets() {
		set, err := GetParameterValues(name)
		if err != nil {
			t.Fatalf("GetParameterValues(%q): %v", name, err)
		}
		if set.Chemistry() != "supercapacitor" {
			t.Errorf("set %q: chemistry %q", name, set.Chemistry())
		}
	}

	_, err := GetParameterValues("nonexistent")
	if !errors.Is(err, ErrUnknownParameterSet) {
		t.Errorf("expected ErrUnknownParameterSet, got %v", err)
	}
}

func TestGetParameterValuesReturnsFreshCopies(t *testing.T) {
	a, _ := GetParameterValues("iamrod2024")
	a["Current function [A]"] = 1.0

	b, _ := GetParameterValues("iamrod2024")
	if v, _ := b.Value("Current function [A]"); v == 1.0 {
		t.Error("mutating one copy leaked into the registry")
	}
}

func TestRegisterModel(t *testing.T) {
	build := func() *eqn.Model {
		m := eqn.NewModel("constant charge")
		m.Declare("Charge [C]")
		m.RHS["Charge [C]"] = eqn.Param("Current [A]")
		m.InitialConditions["Charge [C]"] = eqn.C(0)
		return m
	}

	if err := RegisterModel("test-constant-charge", build); err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		delete(modelBuilders, "test-constant-charge")
		mu.Unlock()
	})

	if _, err := NewModel("test-constant-charge"); err != nil {
		t.Errorf("lookup after register: %v", err)
	}

	err := RegisterModel("reservoir", build)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestRegisterParameterSet(t *testing.T) {
	load := func() parameters.Values {
		return parameters.Values{"chemistry": "supercapacitor"}
	}

	if err := RegisterParameterSet("test-set", load); err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(func() {
		mu.Lock()
		delete(parameterSets, "test-set")
		mu.Unlock()
	})

	err := RegisterParameterSet("iamrod2024", load)
	if !errors.Is(err, ErrDuplicateName) {
		t.Errorf("expected ErrDuplicateName, got %v", err)
	}
}

func TestNominalPairingsValidate(t *testing.T) {
	// Every registered model must validate against at least one
	// registered parameter set.
	for _, model := range Models() {
		m, err := NewModel(model)
		if err != nil {
			t.Fatal(err)
		}
		closed := false
		for _, set := range ParameterSets() {
			values, err := GetParameterValues(set)
			if err != nil {
				t.Fatal(err)
			}
			if eqn.ValidatePair(m, values) == nil {
				closed = true
				break
			}
		}
		if !closed {
			t.Errorf("no registered parameter set closes model %q", model)
		}
	}
}
