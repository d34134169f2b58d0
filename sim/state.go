package sim

import "github.com/inference-sim/sampling-sim/sim/trace"

// SimulationState is everything the engine mutates during a run.
// It is created once per engine, written only by Engine.Run, and read-only
// once Run has returned.
type SimulationState struct {
	// CurrentTime is the sampler's clock; it only moves when a probe is taken.
	CurrentTime float64
	// EventCount is the number of events generated so far (the tally).
	EventCount int
	// SampleCount is the number of probes taken so far.
	SampleCount int
	// PendingEventStart and PendingEventEnd hold the most recently generated event's window.
	PendingEventStart float64
	PendingEventEnd   float64
	// Records holds one record per generated event, in generation order.
	Records []trace.EventRecord
}

// NewSimulationState returns the initial state: clock at 0, no counters, no records.
func NewSimulationState() *SimulationState {
	return &SimulationState{
		Records: make([]trace.EventRecord, 0),
	}
}

// Summary computes the detection statistics for the state's records and counters.
func (s *SimulationState) Summary() trace.Summary {
	return trace.Summarize(s.Records, s.EventCount, s.SampleCount)
}
