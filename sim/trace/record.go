// Package trace provides per-event detection records, their CSV export, and
// the summary statistics computed from them.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// EventRecord captures the outcome of one generated event.
// Records are immutable once appended to a simulation's record sequence.
type EventRecord struct {
	Start      float64  // simulated time the event becomes active
	Finish     float64  // simulated time the event ends (> Start)
	Detected   bool     // a probe landed inside [Start, Finish]
	DetectTime float64  // probe time that resolved the outcome (hit, overshoot, or clock at lag miss)
	Delay      *float64 // DetectTime - Start when Detected; nil otherwise
}

// NewHit returns a detected record whose delay is detectTime - start.
func NewHit(start, finish, detectTime float64) EventRecord {
	delay := detectTime - start
	return EventRecord{
		Start:      start,
		Finish:     finish,
		Detected:   true,
		DetectTime: detectTime,
		Delay:      &delay,
	}
}

// NewMiss returns an undetected record. Misses never carry a delay.
func NewMiss(start, finish, detectTime float64) EventRecord {
	return EventRecord{
		Start:      start,
		Finish:     finish,
		DetectTime: detectTime,
	}
}

// HasDelay reports whether the delay field is present.
func (r EventRecord) HasDelay() bool {
	return r.Delay != nil
}

// DelayOrZero returns the delay, treating an absent delay as 0.
func (r EventRecord) DelayOrZero() float64 {
	if r.Delay == nil {
		return 0
	}
	return *r.Delay
}
