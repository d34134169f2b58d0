package sim

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/inference-sim/sampling-sim/sim/trace"
)

// PrintReport writes the run configuration and detection statistics, one
// "label = value" line each. Undefined ratios are printed as "undefined".
// Output depends only on cfg and summary, so repeated calls are identical.
func PrintReport(w io.Writer, cfg Config, summary trace.Summary) error {
	lines := []struct {
		label string
		value string
	}{
		{"S Dist", cfg.Sample.Family},
		{"S Interval", formatStat(cfg.Sample.Mean)},
		{"E Dist", cfg.Event.Family},
		{"E Interval", formatStat(cfg.Event.Mean)},
		{"E L Dist", cfg.Length.Family},
		{"E Length", formatStat(cfg.Length.Mean)},
		{"Samples", fmt.Sprintf("%d", summary.Samples)},
		{"Tally", fmt.Sprintf("%d", summary.Events)},
		{"Detected", fmt.Sprintf("%d", summary.Detected)},
		{"Tally %", formatStat(summary.TallyPercent)},
		{"Sample %", formatStat(summary.SamplePercent)},
		{"Delay", formatStat(summary.MeanDelay)},
	}

	var b strings.Builder
	for _, l := range lines {
		fmt.Fprintf(&b, "%-10s = %s\n", l.label, l.value)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "undefined"
	}
	return fmt.Sprintf("%v", v)
}
