package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration marks a run that can never start: a non-positive
	// run length, a non-positive mean interval, or an unknown distribution family.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInterval marks an interval source that produced a value which
	// would stall or reverse simulated time.
	ErrInvalidInterval = errors.New("invalid interval")
)

// Source names used in IntervalError.
const (
	SourceEvent  = "event"
	SourceLength = "length"
	SourceSample = "sample"
)

// IntervalError reports the source that broke the positive-interval contract,
// together with the engine counters at the point of failure.
type IntervalError struct {
	Source      string
	Value       float64
	Reason      string
	CurrentTime float64
	EventCount  int
	SampleCount int
}

func (e *IntervalError) Error() string {
	return fmt.Sprintf("%s source produced %v (%s) at time=%v events=%d samples=%d",
		e.Source, e.Value, e.Reason, e.CurrentTime, e.EventCount, e.SampleCount)
}

// Unwrap lets errors.Is match ErrInvalidInterval.
func (e *IntervalError) Unwrap() error {
	return ErrInvalidInterval
}

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfiguration, fmt.Sprintf(format, args...))
}
