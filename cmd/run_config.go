package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	sim "github.com/inference-sim/sampling-sim/sim"
)

// envPrefix namespaces every environment override, e.g. SAMPLING_SIM_INTERVAL.
const envPrefix = "SAMPLING_SIM_"

// RunConfig is the full set of run options. It can be read from a YAML file
// (--config), overridden from SAMPLING_SIM_* environment variables, and
// finally overridden by explicitly set flags.
type RunConfig struct {
	Interval   float64 `yaml:"interval" env:"INTERVAL"`       // mean sample interval
	SampleDist string  `yaml:"sample_dist" env:"SAMPLE_DIST"` // sample distribution family
	SampleCV   float64 `yaml:"sample_cv" env:"SAMPLE_CV"`
	Events     float64 `yaml:"events" env:"EVENTS"`         // mean event inter-arrival
	EventDist  string  `yaml:"event_dist" env:"EVENT_DIST"` // event distribution family
	EventCV    float64 `yaml:"event_cv" env:"EVENT_CV"`
	Length     float64 `yaml:"length" env:"LENGTH"`           // mean event length
	LengthDist string  `yaml:"length_dist" env:"LENGTH_DIST"` // event length distribution family
	LengthCV   float64 `yaml:"length_cv" env:"LENGTH_CV"`
	Run        int     `yaml:"run" env:"RUN"` // events to generate
	CSV        bool    `yaml:"csv" env:"CSV"` // write the per-event trace
	OutputDir  string  `yaml:"output_dir" env:"OUTPUT_DIR"`
	Seed       int64   `yaml:"seed" env:"SEED"`
	LogLevel   string  `yaml:"log" env:"LOG"`
}

// DefaultRunConfig returns the built-in defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Interval:   10.0,
		SampleDist: "Exponential",
		SampleCV:   1.0,
		Events:     10.0,
		EventDist:  "Exponential",
		EventCV:    1.0,
		Length:     5.0,
		LengthDist: "Exponential",
		LengthCV:   1.0,
		Run:        1000000,
		CSV:        false,
		OutputDir:  ".",
		Seed:       42,
		LogLevel:   "warn",
	}
}

// LoadRunConfigFile overlays the YAML file at path onto base.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadRunConfigFile(path string, base RunConfig) (RunConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading run config: %w", err)
	}
	cfg := base
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("parsing run config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields of cfg from SAMPLING_SIM_* environment variables.
// Unset variables leave the field untouched.
func ApplyEnv(cfg *RunConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SimConfig converts the run options into the engine configuration.
func (c RunConfig) SimConfig() sim.Config {
	return sim.NewConfig(
		sim.NewSourceConfig(c.SampleDist, c.Interval, c.SampleCV),
		sim.NewSourceConfig(c.EventDist, c.Events, c.EventCV),
		sim.NewSourceConfig(c.LengthDist, c.Length, c.LengthCV),
		c.Run,
	)
}
