package supercapacitors

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/models"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

// Version of the content module.
const Version = "0.1.0"

var (
	// ErrUnknownModel indicates a model name with no registration.
	ErrUnknownModel = errors.New("supercapacitors: unknown model")

	// ErrUnknownParameterSet indicates a parameter-set name with no
	// registration.
	ErrUnknownParameterSet = errors.New("supercapacitors: unknown parameter set")

	// ErrDuplicateName indicates a registration under a name already
	// taken.
	ErrDuplicateName = errors.New("supercapacitors: name already registered")
)

var (
	mu sync.RWMutex

	modelBuilders = map[string]func() *eqn.Model{
		"reservoir":       models.Reservoir,
		"single-particle": models.SingleParticle,
		"verbrugge-liu":   models.VerbruggeLiu,
	}

	parameterSets = map[string]func() parameters.Values{
		"iamrod2024":    parameters.Iamrod2024,
		"verbrugge2005": parameters.Verbrugge2005,
		"zubieta1998":   parameters.Zubieta1998,
	}
)

// Models returns the registered model names, sorted.
func Models() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(modelBuilders))
	for name := range modelBuilders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewModel builds a fresh instance of the named model.
func NewModel(name string) (*eqn.Model, error) {
	mu.RLock()
	build, ok := modelBuilders[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, name)
	}
	return build(), nil
}

// ParameterSets returns the registered parameter-set names, sorted.
func ParameterSets() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(parameterSets))
	for name := range parameterSets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetParameterValues builds a fresh copy of the named parameter set.
func GetParameterValues(name string) (parameters.Values, error) {
	mu.RLock()
	load, ok := parameterSets[name]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownParameterSet, name)
	}
	return load(), nil
}

// RegisterModel makes a model available under name. Names are taken
// first come, first served.
func RegisterModel(name string, build func() *eqn.Model) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := modelBuilders[name]; ok {
		return fmt.Errorf("%w: model %q", ErrDuplicateName, name)
	}
	modelBuilders[name] = build
	return nil
}

// RegisterParameterSet makes a parameter set available under name.
func RegisterParameterSet(name string, load func() parameters.Values) error {
	mu.Lock()
	defer mu.Unlock()
	if _, ok := parameterSets[name]; ok {
		return fmt.Errorf("%w: parameter set %q", ErrDuplicateName, name)
	}
	parameterSets[name] = load
	return nil
}
