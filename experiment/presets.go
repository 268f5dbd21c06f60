package experiment

import (
	"fmt"
	"sort"
)

// Presets are the nominal protocols each model ships with, keyed by
// registered model name. They keep the cell inside the parameter
// sets' voltage windows.
var Presets = map[string][]string{
	"reservoir": {
		"Discharge at 10 A for 60 s",
		"Rest for 30 s",
		"Charge at 10 A for 60 s",
	},
	"single-particle": {
		"Discharge at 100 A for 10 s",
		"Rest for 5 s",
		"Charge at 100 A for 10 s",
	},
	"verbrugge-liu": {
		"Discharge at 300 A for 10 s",
		"Rest for 5 s",
	},
}

// Nominal returns the parsed preset protocol for a model.
func Nominal(model string) (*Experiment, error) {
	descs, ok := Presets[model]
	if !ok {
		return nil, fmt.Errorf("experiment: no preset for model %q", model)
	}
	return New(descs)
}

// PresetModels returns the model names with a preset, sorted.
func PresetModels() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
