package experiment

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config pairs a model with a parameter set and a protocol, the way a
// host-side run is described on disk.
type Config struct {
	Model        string             `yaml:"model"`
	ParameterSet string             `yaml:"parameter_set"`
	Steps        []string           `yaml:"steps"`
	Period       float64            `yaml:"period"`
	Overrides    map[string]float64 `yaml:"overrides,omitempty"`
}

// DefaultConfig describes the reservoir nominal run.
func DefaultConfig() *Config {
	return &Config{
		Model:        "reservoir",
		ParameterSet: "zubieta1998",
		Steps:        Presets["reservoir"],
		Period:       1.0,
	}
}

// Load reads a config from a yaml file. A config that names a model
// but no steps gets that model's nominal preset; a missing model means
// the reservoir. The parameter set is never guessed — Validate reports
// it when absent.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if cfg.Model == "" {
		cfg.Model = "reservoir"
	}
	if len(cfg.Steps) == 0 {
		cfg.Steps = Presets[cfg.Model]
	}
	if cfg.Period == 0 {
		cfg.Period = 1.0
	}
	return cfg, nil
}

// Save writes a config as yaml.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Experiment parses the config's steps.
func (c *Config) Experiment() (*Experiment, error) {
	e, err := New(c.Steps)
	if err != nil {
		return nil, err
	}
	if c.Period > 0 {
		e.Period = c.Period
	}
	return e, nil
}

// Validate checks the config names something runnable.
func (c *Config) Validate() error {
	if c.Model == "" {
		return fmt.Errorf("experiment: config missing model")
	}
	if c.ParameterSet == "" {
		return fmt.Errorf("experiment: config missing parameter set")
	}
	if len(c.Steps) == 0 {
		return fmt.Errorf("experiment: config has no steps")
	}
	_, err := c.Experiment()
	return err
}
