// Package stats reduces a sequence of nanosecond timings to summary
// statistics.
package stats

import (
	"errors"
	"math"
)

// ErrNoSamples is returned when there is nothing to summarize.
var ErrNoSamples = errors.New("no samples to summarize")

// Stats holds the summary of a sample set, in floating-point nanoseconds.
// Truncation to integer nanoseconds happens at the formatting boundary,
// not here.
type Stats struct {
	Mean float64 `json:"mean_ns"`
	Min  float64 `json:"min_ns"`
	Max  float64 `json:"max_ns"`
	Std  float64 `json:"std_ns"`
}

// Summarize computes mean, min, max and population standard deviation
// (divisor N, not N-1) over the samples, in execution order or any other.
func Summarize(samples []int64) (Stats, error) {
	if len(samples) == 0 {
		return Stats{}, ErrNoSamples
	}

	min, max := samples[0], samples[0]
	var sum float64
	for _, s := range samples {
		sum += float64(s)
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	mean := sum / float64(len(samples))

	var sqSum float64
	for _, s := range samples {
		d := float64(s) - mean
		sqSum += d * d
	}

	return Stats{
		Mean: mean,
		Min:  float64(min),
		Max:  float64(max),
		Std:  math.Sqrt(sqSum / float64(len(samples))),
	}, nil
}
