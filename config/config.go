package config

import (
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/sonido-dissonance/algorithms/dissonance"
	"github.com/RyanBlaney/sonido-dissonance/algorithms/tuning"
	"github.com/RyanBlaney/sonido-dissonance/logging"
)

// Config configures chord scoring from the command line or a config file
type Config struct {
	Model       string  `json:"model" yaml:"model"`             // registered model name
	Aggregation string  `json:"aggregation" yaml:"aggregation"` // "sum", "max", "mean", "rms", "median"
	Partials    int     `json:"partials" yaml:"partials"`       // partials per harmonic tone
	Profile     string  `json:"profile" yaml:"profile"`         // "exponential", "inverse", "constant"
	Epsilon     float64 `json:"epsilon" yaml:"epsilon"`         // silence threshold on amplitude
	LogLevel    string  `json:"log_level" yaml:"log_level"`

	Curve CurveConfig `json:"curve" yaml:"curve"`
}

// CurveConfig configures the ratio sweep of a dissonance curve
type CurveConfig struct {
	From  float64 `json:"from" yaml:"from"`   // lowest interval ratio
	To    float64 `json:"to" yaml:"to"`       // highest interval ratio
	Steps int     `json:"steps" yaml:"steps"` // number of points, at least 2
}

// Default returns the configuration used when no file or flag overrides it
func Default() *Config {
	return &Config{
		Model:       dissonance.DefaultModel,
		Aggregation: "sum",
		Partials:    6,
		Profile:     string(tuning.DefaultProfile),
		Epsilon:     dissonance.DefaultEpsilon,
		LogLevel:    "info",
		Curve: CurveConfig{
			From:  1.0,
			To:    2.3,
			Steps: 1000,
		},
	}
}

// Load reads a YAML (or JSON) file over the defaults. Keys missing from the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field against the supported values
func (c *Config) Validate() error {
	if !slices.Contains(dissonance.SupportedModels(), c.Model) {
		return fmt.Errorf("invalid model: %s (must be one of %v)", c.Model, dissonance.SupportedModels())
	}

	if _, err := dissonance.AggregationByName(c.Aggregation); err != nil {
		return fmt.Errorf("invalid aggregation: %s (must be one of %v)", c.Aggregation, dissonance.GetSupportedAggregations())
	}

	if c.Partials < 1 {
		return fmt.Errorf("partials must be positive: %d", c.Partials)
	}

	if _, err := tuning.ProfileByName(c.Profile); err != nil {
		return fmt.Errorf("invalid profile: %s (must be one of %v)", c.Profile, tuning.GetSupportedProfiles())
	}

	if c.Epsilon < 0 {
		return fmt.Errorf("epsilon must not be negative: %g", c.Epsilon)
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if c.Curve.Steps < 2 {
		return fmt.Errorf("curve steps must be at least 2: %d", c.Curve.Steps)
	}
	if c.Curve.From <= 0 || c.Curve.To < c.Curve.From {
		return fmt.Errorf("curve range must satisfy 0 < from <= to: [%g, %g]", c.Curve.From, c.Curve.To)
	}

	return nil
}

// Options translates the configuration into chord evaluation options
func (c *Config) Options(logger logging.Logger) ([]dissonance.Option, error) {
	agg, err := dissonance.AggregationByName(c.Aggregation)
	if err != nil {
		return nil, err
	}
	return []dissonance.Option{
		dissonance.WithModelName(c.Model),
		dissonance.WithAggregation(agg),
		dissonance.WithEpsilon(c.Epsilon),
		dissonance.WithLogger(logger),
	}, nil
}
