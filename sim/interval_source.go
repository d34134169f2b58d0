package sim

import "math/rand/v2"

// IntervalSource produces the next positive gap between two points in simulated time.
// Implementations live in sim/interval; the engine only depends on this capability.
type IntervalSource interface {
	// Next returns the next interval. Must be finite and > 0.
	Next() float64
}

// Sources bundles the three independent interval sources an Engine pulls from.
type Sources struct {
	Event  IntervalSource // gap between one event's end and the next event's start
	Length IntervalSource // event duration
	Sample IntervalSource // gap between consecutive probes
}

// NewIntervalSourceFunc builds an IntervalSource from a SourceConfig and a random source.
// Set by sim/interval's init(). Production code imports sim/interval directly;
// package sim's tests get it through interval_import_test.go.
var NewIntervalSourceFunc func(cfg SourceConfig, src rand.Source) (IntervalSource, error)
