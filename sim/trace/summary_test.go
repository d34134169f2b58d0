package trace

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize_EmptyTrace_NaNRatios(t *testing.T) {
	// GIVEN no records and zero counters
	// WHEN summarized
	summary := Summarize(nil, 0, 0)

	// THEN counts are zero and every ratio is undefined
	assert.Equal(t, 0, summary.Detected)
	assert.True(t, math.IsNaN(summary.TallyPercent))
	assert.True(t, math.IsNaN(summary.SamplePercent))
	assert.True(t, math.IsNaN(summary.MeanDelay))
	assert.False(t, summary.DelayDefined)
}

func TestSummarize_MixedRecords_CorrectCounts(t *testing.T) {
	// GIVEN two hits and two misses over 4 events and 10 samples
	records := []EventRecord{
		NewHit(1, 3, 1.5),
		NewMiss(4, 5, 6),
		NewHit(7, 9, 8),
		NewMiss(10, 10.5, 12),
	}

	// WHEN summarized
	summary := Summarize(records, 4, 10)

	// THEN detected counts and percentages follow from the counters
	assert.Equal(t, 2, summary.Detected)
	assert.InDelta(t, 50.0, summary.TallyPercent, 1e-12)
	assert.InDelta(t, 20.0, summary.SamplePercent, 1e-12)

	// THEN mean delay = (0.5 + 1) / 2
	assert.True(t, summary.DelayDefined)
	assert.InDelta(t, 0.75, summary.MeanDelay, 1e-12)
}

func TestSummarize_NoDetections_DelayUndefined(t *testing.T) {
	// GIVEN only misses
	records := []EventRecord{NewMiss(1, 1.5, 100), NewMiss(2.5, 3, 100)}

	// WHEN summarized
	summary := Summarize(records, 2, 1)

	// THEN the tally ratios are zero but the mean delay is undefined
	assert.Equal(t, 0, summary.Detected)
	assert.Equal(t, 0.0, summary.TallyPercent)
	assert.Equal(t, 0.0, summary.SamplePercent)
	assert.False(t, summary.DelayDefined)
	assert.True(t, math.IsNaN(summary.MeanDelay))
}

func TestSummarize_SameInputTwice_IdenticalOutput(t *testing.T) {
	records := []EventRecord{NewHit(2, 4, 3), NewMiss(5, 6, 7)}

	first := Summarize(records, 2, 5)
	second := Summarize(records, 2, 5)

	assert.Equal(t, first, second)
}
