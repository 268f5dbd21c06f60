// Package experiment describes the cycling protocols a model is
// driven with. Descriptions parse into typed steps that the host
// framework turns into current/voltage schedules; nothing here runs
// them.
package experiment

import (
	"fmt"
	"strings"
)

type StepType int

const (
	Discharge StepType = iota
	Charge
	Rest
	Hold
)

func (s StepType) String() string {
	switch s {
	case Discharge:
		return "Discharge"
	case Charge:
		return "Charge"
	case Rest:
		return "Rest"
	case Hold:
		return "Hold"
	}
	return "Unknown"
}

// Step is one stage of a protocol. Current steps end after Duration
// seconds or, when UntilVoltage is set, at the cut voltage. Hold steps
// keep the cell at Voltage for Duration seconds.
type Step struct {
	Type         StepType
	Current      float64 // A
	Voltage      float64 // V
	Duration     float64 // s, zero when the step ends on voltage
	UntilVoltage bool
}

// String renders the step back into its description form.
func (s Step) String() string {
	switch s.Type {
	case Rest:
		return fmt.Sprintf("Rest for %g s", s.Duration)
	case Hold:
		return fmt.Sprintf("Hold at %g V for %g s", s.Voltage, s.Duration)
	default:
		if s.UntilVoltage {
			return fmt.Sprintf("%s at %g A until %g V", s.Type, s.Current, s.Voltage)
		}
		return fmt.Sprintf("%s at %g A for %g s", s.Type, s.Current, s.Duration)
	}
}

// Experiment is an ordered protocol plus a sampling-period hint for
// the host's output times.
type Experiment struct {
	Steps  []Step
	Period float64 // s
}

// New parses the step descriptions into an experiment.
func New(descriptions []string) (*Experiment, error) {
	if len(descriptions) == 0 {
		return nil, fmt.Errorf("experiment: no steps")
	}
	steps := make([]Step, 0, len(descriptions))
	for i, d := range descriptions {
		step, err := ParseStep(d)
		if err != nil {
			return nil, fmt.Errorf("experiment: step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return &Experiment{Steps: steps, Period: 1.0}, nil
}

// Duration sums the known step durations in seconds. Voltage-
// terminated steps contribute nothing; the host decides when they end.
func (e *Experiment) Duration() float64 {
	total := 0.0
	for _, s := range e.Steps {
		total += s.Duration
	}
	return total
}

func (e *Experiment) String() string {
	descs := make([]string, len(e.Steps))
	for i, s := range e.Steps {
		descs[i] = s.String()
	}
	return strings.Join(descs, "; ")
}
