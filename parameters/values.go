package parameters

import (
	"fmt"
	"sort"
)

// Func is a parameter that depends on its arguments, typically a
// concentration and a temperature.
type Func func(args ...float64) float64

// Values is a flat parameter table. Entries are float64, Func, string
// or []string; models only ever reference the numeric ones.
type Values map[string]any

// Has reports whether the table holds an entry under name.
func (v Values) Has(name string) bool {
	_, ok := v[name]
	return ok
}

// Value returns the constant under name. The second return is false
// when the entry is absent or not a constant.
func (v Values) Value(name string) (float64, bool) {
	f, ok := v[name].(float64)
	return f, ok
}

// Eval evaluates the entry under name: constants ignore the arguments,
// functions receive them.
func (v Values) Eval(name string, args ...float64) (float64, error) {
	switch e := v[name].(type) {
	case float64:
		return e, nil
	case Func:
		return e(args...), nil
	case nil:
		return 0, fmt.Errorf("parameters: no entry %q", name)
	default:
		return 0, fmt.Errorf("parameters: entry %q is %T, not numeric", name, e)
	}
}

// Function returns the entry under name as a Func, wrapping constants.
func (v Values) Function(name string) (Func, error) {
	switch e := v[name].(type) {
	case float64:
		return func(...float64) float64 { return e }, nil
	case Func:
		return e, nil
	case nil:
		return nil, fmt.Errorf("parameters: no entry %q", name)
	default:
		return nil, fmt.Errorf("parameters: entry %q is %T, not numeric", name, e)
	}
}

// Chemistry returns the table's chemistry tag, if any.
func (v Values) Chemistry() string {
	s, _ := v["chemistry"].(string)
	return s
}

// Names returns the table's keys, sorted.
func (v Values) Names() []string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge returns a copy of the table with entries from override laid on
// top. Neither input is modified.
func (v Values) Merge(override Values) Values {
	out := make(Values, len(v)+len(override))
	for name, e := range v {
		out[name] = e
	}
	for name, e := range override {
		out[name] = e
	}
	return out
}
