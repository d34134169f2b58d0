package sim

import "testing"

// fixedSource returns the same value on every call.
type fixedSource float64

func (s fixedSource) Next() float64 { return float64(s) }

// sequenceSource replays values in order, repeating the last one once exhausted.
type sequenceSource struct {
	values []float64
	i      int
}

func (s *sequenceSource) Next() float64 {
	v := s.values[s.i]
	if s.i < len(s.values)-1 {
		s.i++
	}
	return v
}

// fixedConfig returns a valid Config whose means match the given fixed gaps.
func fixedConfig(sampleGap, eventGap, duration float64, runLength int) Config {
	return NewConfig(
		NewSourceConfig("dirac", sampleGap, 0),
		NewSourceConfig("dirac", eventGap, 0),
		NewSourceConfig("dirac", duration, 0),
		runLength,
	)
}

// mustRunFixed runs an engine over fixed sources and fails the test on error.
func mustRunFixed(t *testing.T, sampleGap, eventGap, duration float64, runLength int) *SimulationState {
	t.Helper()
	engine, err := NewEngine(fixedConfig(sampleGap, eventGap, duration, runLength), Sources{
		Event:  fixedSource(eventGap),
		Length: fixedSource(duration),
		Sample: fixedSource(sampleGap),
	})
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	state, err := engine.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return state
}
