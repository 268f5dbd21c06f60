package experiment

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	currentStepRe = regexp.MustCompile(`^(Discharge|Charge) at (\S+) A (for (\S+) (s|min|h)|until (\S+) V)$`)
	restStepRe    = regexp.MustCompile(`^Rest for (\S+) (s|min|h)$`)
	holdStepRe    = regexp.MustCompile(`^Hold at (\S+) V for (\S+) (s|min|h)$`)
)

// ParseStep parses a single protocol step description, e.g.
//
//	Discharge at 300 A for 10 s
//	Charge at 100 A until 2.7 V
//	Rest for 30 min
//	Hold at 2.5 V for 1 h
func ParseStep(desc string) (Step, error) {
	desc = strings.TrimSpace(desc)

	if m := currentStepRe.FindStringSubmatch(desc); m != nil {
		step := Step{Type: Discharge}
		if m[1] == "Charge" {
			step.Type = Charge
		}
		current, err := positiveValue(m[2], "current")
		if err != nil {
			return Step{}, err
		}
		step.Current = current

		if m[6] != "" {
			v, err := parseValue(m[6], "voltage")
			if err != nil {
				return Step{}, err
			}
			step.Voltage = v
			step.UntilVoltage = true
			return step, nil
		}
		d, err := parseDuration(m[4], m[5])
		if err != nil {
			return Step{}, err
		}
		step.Duration = d
		return step, nil
	}

	if m := restStepRe.FindStringSubmatch(desc); m != nil {
		d, err := parseDuration(m[1], m[2])
		if err != nil {
			return Step{}, err
		}
		return Step{Type: Rest, Duration: d}, nil
	}

	if m := holdStepRe.FindStringSubmatch(desc); m != nil {
		v, err := parseValue(m[1], "voltage")
		if err != nil {
			return Step{}, err
		}
		d, err := parseDuration(m[2], m[3])
		if err != nil {
			return Step{}, err
		}
		return Step{Type: Hold, Voltage: v, Duration: d}, nil
	}

	return Step{}, fmt.Errorf("unrecognized step %q", desc)
}

func parseValue(s, what string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, s)
	}
	return v, nil
}

func positiveValue(s, what string) (float64, error) {
	v, err := parseValue(s, what)
	if err != nil {
		return 0, err
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %g", what, v)
	}
	return v, nil
}

func parseDuration(s, unit string) (float64, error) {
	v, err := positiveValue(s, "duration")
	if err != nil {
		return 0, err
	}
	switch unit {
	case "min":
		v *= 60
	case "h":
		v *= 3600
	}
	return v, nil
}
