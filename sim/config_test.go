package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSourceConfig_FieldEquivalence(t *testing.T) {
	got := NewSourceConfig("gamma", 4, 2)
	want := SourceConfig{Family: "gamma", Mean: 4, CV: 2}
	assert.Equal(t, want, got)
}

func TestNewConfig_FieldEquivalence(t *testing.T) {
	sample := NewSourceConfig("exponential", 10, 0)
	event := NewSourceConfig("dirac", 10, 0)
	length := NewSourceConfig("uniform", 5, 0)
	got := NewConfig(sample, event, length, 100)
	want := Config{Sample: sample, Event: event, Length: length, RunLength: 100}
	assert.Equal(t, want, got)
}

func TestNewConfig_ZeroValues_NoDefaults(t *testing.T) {
	// Zero-value arguments must NOT inject non-zero defaults
	got := NewConfig(SourceConfig{}, SourceConfig{}, SourceConfig{}, 0)
	assert.Equal(t, Config{}, got)
}

func TestSourceConfig_Rate_IsReciprocalOfMean(t *testing.T) {
	assert.Equal(t, 0.1, NewSourceConfig("exponential", 10, 0).Rate())
	assert.Equal(t, 4.0, NewSourceConfig("exponential", 0.25, 0).Rate())
}

func TestConfig_Validate(t *testing.T) {
	valid := fixedConfig(10, 10, 5, 1000)
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"zero run length", func(c *Config) { c.RunLength = 0 }, true},
		{"empty family", func(c *Config) { c.Sample.Family = "" }, true},
		{"zero mean", func(c *Config) { c.Event.Mean = 0 }, true},
		{"infinite mean", func(c *Config) { c.Length.Mean = math.Inf(1) }, true},
		{"negative cv", func(c *Config) { c.Length.CV = -1 }, true},
		{"positive cv", func(c *Config) { c.Length.CV = 2 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidConfiguration), "got %v", err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
