package trace

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates detection statistics from a finished record sequence.
type Summary struct {
	Events        int     // generated events (tally)
	Samples       int     // probes taken
	Detected      int     // records with Detected == true
	TallyPercent  float64 // Detected * 100 / Events; NaN when Events == 0
	SamplePercent float64 // Detected * 100 / Samples; NaN when Samples == 0
	MeanDelay     float64 // mean delay over detected records; NaN when Detected == 0
	DelayDefined  bool    // false when there were no detections
}

// Summarize computes aggregate statistics from a record sequence and the
// engine's event and sample counters. It never panics on zero denominators:
// the affected ratios are NaN instead.
func Summarize(records []EventRecord, events, samples int) Summary {
	summary := Summary{
		Events:        events,
		Samples:       samples,
		TallyPercent:  math.NaN(),
		SamplePercent: math.NaN(),
		MeanDelay:     math.NaN(),
	}

	delays := make([]float64, 0, len(records))
	for _, r := range records {
		if r.Detected {
			summary.Detected++
			delays = append(delays, r.DelayOrZero())
		}
	}

	if events > 0 {
		summary.TallyPercent = float64(summary.Detected) * 100.0 / float64(events)
	}
	if samples > 0 {
		summary.SamplePercent = float64(summary.Detected) * 100.0 / float64(samples)
	}
	if summary.Detected > 0 {
		summary.MeanDelay = stat.Mean(delays, nil)
		summary.DelayDefined = true
	}
	return summary
}
