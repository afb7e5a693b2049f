// Package runner drives the sequential benchmark loop.
package runner

import (
	"fmt"
	"time"
)

// Workload is one unit of work to benchmark. Any error it returns aborts
// the benchmark.
type Workload func() error

// Progress is notified after each completed round. It is a side channel
// only and has no effect on the returned samples.
type Progress func(round, total int)

// Runner executes a workload N times and captures per-round wall-clock
// timings.
type Runner struct {
	// now is the monotonic clock source, replaceable in tests.
	now func() time.Time

	// progress, if set, is called after every round.
	progress Progress
}

func New() *Runner {
	return &Runner{now: time.Now}
}

// WithProgress returns the runner with a per-round progress sink attached.
func (r *Runner) WithProgress(p Progress) *Runner {
	r.progress = p
	return r
}

// Run invokes the workload exactly rounds times, strictly sequentially,
// and returns one integer nanosecond sample per round in execution order.
// Rounds never run concurrently: the workload may mutate external state
// that assumes serialized invocations, and each sample must measure one
// isolated call.
//
// A workload error propagates unmodified; completed rounds are discarded
// and no samples are returned. There is no per-round timeout: a hung
// workload hangs the benchmark.
func (r *Runner) Run(w Workload, rounds int) ([]int64, error) {
	if rounds < 1 {
		return nil, fmt.Errorf("rounds must be at least 1, got %d", rounds)
	}

	samples := make([]int64, 0, rounds)
	for i := 1; i <= rounds; i++ {
		start := r.now()
		if err := w(); err != nil {
			return nil, err
		}
		samples = append(samples, r.now().Sub(start).Nanoseconds())

		if r.progress != nil {
			r.progress(i, rounds)
		}
	}
	return samples, nil
}
