// Package sim provides the discrete-event engine that decides whether a
// randomly timed sampler detects randomly timed events.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - state.go: SimulationState, the clock, counters and record sequence
//   - simulator.go: the Engine and its generate/detect loop
//   - interval_source.go: the IntervalSource capability the engine pulls gaps from
//
// # Architecture
//
// The sim package defines interfaces and bridge types; implementations live in
// sub-packages:
//   - sim/interval/: distribution families (exponential, dirac, uniform, gamma, weibull, lognormal)
//   - sim/trace/: EventRecord, CSV trace export and summary statistics
//
// sim/interval registers its constructor via init(), setting the package-level
// factory variable NewIntervalSourceFunc used by NewEngineFromConfig.
//
// # Time model
//
// Events are generated back to back, each starting one event gap after the
// previous event's end. The sampler clock (CurrentTime) advances only by
// sample gaps. An event is detected by the first probe at or after its start
// if that probe is not past its end; otherwise it is a miss. Events that end
// before the sampler clock reaches them are lag misses, recorded with the
// clock time as DetectTime.
package sim
