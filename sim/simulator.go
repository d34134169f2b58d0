// sim/simulator.go
package sim

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sampling-sim/sim/trace"
)

// Engine runs the generate/detect loop.
//
// Two independent clocks are reconciled here: events are generated back to back
// from PendingEventEnd, while CurrentTime only advances when a probe is taken.
// An event may therefore end before the sampler catches up to it (lag miss), or
// fall entirely between two probes (overshoot miss). Each generated event gets
// exactly one record.
type Engine struct {
	cfg     Config
	sources Sources
	state   *SimulationState
	// detectedThisEvent is true once a probe has hit the pending event window.
	detectedThisEvent bool
}

// NewEngine validates cfg and creates an Engine pulling from the given sources.
func NewEngine(cfg Config, sources Sources) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if sources.Event == nil || sources.Length == nil || sources.Sample == nil {
		return nil, configErrorf("all three interval sources are required")
	}
	if cfg.Sample.Mean > cfg.Length.Mean {
		logrus.Warnf("mean sample interval %v exceeds mean event length %v; expect a low detection rate",
			cfg.Sample.Mean, cfg.Length.Mean)
	}
	return &Engine{
		cfg:     cfg,
		sources: sources,
		state:   NewSimulationState(),
	}, nil
}

// NewEngineFromConfig builds the three interval sources through NewIntervalSourceFunc,
// each drawing from its own RNG subsystem, and creates an Engine.
func NewEngineFromConfig(cfg Config, rng *PartitionedRNG) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if NewIntervalSourceFunc == nil {
		panic("NewIntervalSourceFunc not registered: import sim/interval to register it " +
			"(add: import _ \"github.com/inference-sim/sampling-sim/sim/interval\")")
	}
	build := func(name string, sc SourceConfig) (IntervalSource, error) {
		src, err := NewIntervalSourceFunc(sc, rng.ForSubsystem(name))
		if err != nil {
			return nil, fmt.Errorf("building %s source: %w", name, err)
		}
		return src, nil
	}
	var sources Sources
	var err error
	if sources.Event, err = build(SubsystemEvent, cfg.Event); err != nil {
		return nil, err
	}
	if sources.Length, err = build(SubsystemLength, cfg.Length); err != nil {
		return nil, err
	}
	if sources.Sample, err = build(SubsystemSample, cfg.Sample); err != nil {
		return nil, err
	}
	return NewEngine(cfg, sources)
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns the engine's state. Callers must not mutate it.
func (e *Engine) State() *SimulationState {
	return e.state
}

// Run generates events until EventCount reaches the run length.
// On an IntervalError the run aborts and the partial state is returned with the error.
// Calling Run on a finished engine is a no-op.
func (e *Engine) Run() (*SimulationState, error) {
	logrus.Infof("Starting simulation: run length %d", e.cfg.RunLength)
	for e.state.EventCount < e.cfg.RunLength {
		ready, err := e.materializeEvent()
		if err != nil {
			return e.state, err
		}
		if !ready {
			break
		}
		if err := e.sampleWindow(); err != nil {
			return e.state, err
		}
	}
	logrus.Infof("Simulation ended at time %v: %d events, %d samples, %d records",
		e.state.CurrentTime, e.state.EventCount, e.state.SampleCount, len(e.state.Records))
	return e.state, nil
}

// materializeEvent generates events back to back until one ends after the
// sampler's clock, recording a lag miss for every event that does not.
// Every draw consumes one unit of run length. Returns false when the budget
// ran out on a lag miss, leaving no event for the sampler.
func (e *Engine) materializeEvent() (bool, error) {
	s := e.state
	end := s.PendingEventEnd
	for {
		gap, err := e.draw(SourceEvent, e.sources.Event)
		if err != nil {
			return false, err
		}
		duration, err := e.draw(SourceLength, e.sources.Length)
		if err != nil {
			return false, err
		}
		start := end + gap
		end = start + duration
		if !(end > start) {
			return false, e.intervalError(SourceLength, duration, "does not advance past event start")
		}
		s.EventCount++
		s.PendingEventStart, s.PendingEventEnd = start, end

		if end > s.CurrentTime {
			e.detectedThisEvent = false
			return true, nil
		}

		// The window closed before the sampler got there.
		s.Records = append(s.Records, trace.NewMiss(start, end, s.CurrentTime))
		logrus.Debugf("[t=%v] event %d [%v, %v] missed: ended before sampler", s.CurrentTime, s.EventCount, start, end)
		if s.EventCount >= e.cfg.RunLength {
			return false, nil
		}
	}
}

// sampleWindow takes probes until the clock reaches the pending event's end.
// The first probe at or after the event start decides the outcome: a hit if it
// lands inside the window, an overshoot miss otherwise.
func (e *Engine) sampleWindow() error {
	s := e.state
	for s.CurrentTime < s.PendingEventEnd {
		gap, err := e.draw(SourceSample, e.sources.Sample)
		if err != nil {
			return err
		}
		next := s.CurrentTime + gap
		if !(next > s.CurrentTime) {
			return e.intervalError(SourceSample, gap, "does not advance the clock")
		}
		s.CurrentTime = next
		s.SampleCount++

		if e.detectedThisEvent || s.CurrentTime < s.PendingEventStart {
			continue
		}
		if s.CurrentTime <= s.PendingEventEnd {
			e.detectedThisEvent = true
			s.Records = append(s.Records, trace.NewHit(s.PendingEventStart, s.PendingEventEnd, s.CurrentTime))
			logrus.Debugf("[t=%v] event %d detected, delay %v", s.CurrentTime, s.EventCount, s.CurrentTime-s.PendingEventStart)
		} else {
			s.Records = append(s.Records, trace.NewMiss(s.PendingEventStart, s.PendingEventEnd, s.CurrentTime))
			logrus.Debugf("[t=%v] event %d missed: probe overshot [%v, %v]", s.CurrentTime, s.EventCount, s.PendingEventStart, s.PendingEventEnd)
		}
	}
	return nil
}

// draw pulls one value from src and enforces the positive, finite contract.
func (e *Engine) draw(name string, src IntervalSource) (float64, error) {
	v := src.Next()
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, e.intervalError(name, v, "not finite")
	}
	if v <= 0 {
		return 0, e.intervalError(name, v, "not positive")
	}
	return v, nil
}

func (e *Engine) intervalError(name string, v float64, reason string) error {
	return &IntervalError{
		Source:      name,
		Value:       v,
		Reason:      reason,
		CurrentTime: e.state.CurrentTime,
		EventCount:  e.state.EventCount,
		SampleCount: e.state.SampleCount,
	}
}
