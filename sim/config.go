package sim

import "math"

// SourceConfig selects the distribution family and parameters for one interval source.
type SourceConfig struct {
	Family string  // distribution family name, case-insensitive (e.g. "exponential", "dirac")
	Mean   float64 // mean interval, the reciprocal of the rate (must be > 0)
	CV     float64 // coefficient of variation for shaped families (gamma, weibull, lognormal); 0 = default 1
}

// Rate returns the reciprocal of the mean interval.
func (c SourceConfig) Rate() float64 {
	return 1.0 / c.Mean
}

// Config groups everything the engine needs to run one simulation.
type Config struct {
	Sample    SourceConfig // probe inter-arrival gaps
	Event     SourceConfig // event inter-arrival gaps
	Length    SourceConfig // event durations
	RunLength int          // number of events to generate (must be > 0)
}

// NewSourceConfig creates a SourceConfig. No defaults are injected.
func NewSourceConfig(family string, mean, cv float64) SourceConfig {
	return SourceConfig{Family: family, Mean: mean, CV: cv}
}

// NewConfig creates a Config. No defaults are injected.
func NewConfig(sample, event, length SourceConfig, runLength int) Config {
	return Config{Sample: sample, Event: event, Length: length, RunLength: runLength}
}

// Validate checks the run length and every source's parameters.
// All failures wrap ErrInvalidConfiguration.
func (c Config) Validate() error {
	if c.RunLength <= 0 {
		return configErrorf("run length must be positive, got %d", c.RunLength)
	}
	sources := []struct {
		name string
		cfg  SourceConfig
	}{
		{SourceSample, c.Sample},
		{SourceEvent, c.Event},
		{SourceLength, c.Length},
	}
	for _, s := range sources {
		if err := s.cfg.validate(s.name); err != nil {
			return err
		}
	}
	return nil
}

func (c SourceConfig) validate(name string) error {
	if c.Family == "" {
		return configErrorf("%s distribution family is empty", name)
	}
	if math.IsNaN(c.Mean) || math.IsInf(c.Mean, 0) || c.Mean <= 0 {
		return configErrorf("%s mean interval must be finite and positive, got %v", name, c.Mean)
	}
	if math.IsNaN(c.CV) || math.IsInf(c.CV, 0) || c.CV < 0 {
		return configErrorf("%s coefficient of variation must be finite and non-negative, got %v", name, c.CV)
	}
	return nil
}
