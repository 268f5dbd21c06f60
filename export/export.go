// Package export serializes parameter sets and model summaries for
// consumption on the host side.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

// ParameterSet is the serializable form of a parameter table.
// Function-valued entries cannot cross a file boundary, so only their
// names are carried.
type ParameterSet struct {
	Name      string             `json:"name" yaml:"name"`
	Chemistry string             `json:"chemistry" yaml:"chemistry"`
	Citations []string           `json:"citations,omitempty" yaml:"citations,omitempty"`
	Constants map[string]float64 `json:"constants" yaml:"constants"`
	Functions []string           `json:"functions,omitempty" yaml:"functions,omitempty"`
}

// Snapshot flattens a parameter table for serialization.
func Snapshot(name string, values parameters.Values) ParameterSet {
	snap := ParameterSet{
		Name:      name,
		Chemistry: values.Chemistry(),
		Constants: make(map[string]float64),
	}
	for _, key := range values.Names() {
		switch e := values[key].(type) {
		case float64:
			snap.Constants[key] = e
		case parameters.Func:
			snap.Functions = append(snap.Functions, key)
		case []string:
			if key == "citations" {
				snap.Citations = append(snap.Citations, e...)
			}
		}
	}
	sort.Strings(snap.Functions)
	return snap
}

// WriteJSON writes the snapshot as indented JSON.
func WriteJSON(w io.Writer, snap ParameterSet) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(snap)
}

// WriteYAML writes the snapshot as yaml.
func WriteYAML(w io.Writer, snap ParameterSet) error {
	return yaml.NewEncoder(w).Encode(snap)
}

// WriteCSV writes the snapshot's constants as name,value rows, sorted
// by name. Function entries appear with the value "function".
func WriteCSV(w io.Writer, snap ParameterSet) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"parameter", "value"}); err != nil {
		return err
	}

	names := make([]string, 0, len(snap.Constants))
	for name := range snap.Constants {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value := strconv.FormatFloat(snap.Constants[name], 'g', -1, 64)
		if err := cw.Write([]string{name, value}); err != nil {
			return err
		}
	}
	for _, name := range snap.Functions {
		if err := cw.Write([]string{name, "function"}); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// ModelSummary is the serializable shape of a model definition: what
// it declares and references, without the equation trees themselves.
type ModelSummary struct {
	Name         string              `json:"name"`
	Variables    map[string][]string `json:"variables"`
	Differential int                 `json:"differential_equations"`
	Algebraic    int                 `json:"algebraic_equations"`
	Outputs      []string            `json:"outputs"`
	Parameters   []string            `json:"parameters"`
	Events       []string            `json:"events,omitempty"`
}

// Summarize extracts a model's summary.
func Summarize(m *eqn.Model) ModelSummary {
	summary := ModelSummary{
		Name:         m.Name(),
		Variables:    make(map[string][]string),
		Differential: len(m.RHS),
		Algebraic:    len(m.Algebraic),
		Outputs:      m.OutputNames(),
		Parameters:   m.Parameters(),
	}
	for _, name := range m.VariableNames() {
		domains := []string{}
		for _, d := range m.Variables[name].Domains {
			domains = append(domains, string(d))
		}
		summary.Variables[name] = domains
	}
	for _, ev := range m.Events {
		summary.Events = append(summary.Events, ev.Name)
	}
	return summary
}

// WriteModelJSON writes a model summary as indented JSON.
func WriteModelJSON(w io.Writer, m *eqn.Model) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Summarize(m))
}

// Format names a supported export format.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	CSV  Format = "csv"
)

// Write dispatches on format.
func Write(w io.Writer, format Format, snap ParameterSet) error {
	switch format {
	case JSON:
		return WriteJSON(w, snap)
	case YAML:
		return WriteYAML(w, snap)
	case CSV:
		return WriteCSV(w, snap)
	default:
		return fmt.Errorf("export: unsupported format %q", format)
	}
}
