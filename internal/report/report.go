// Package report assembles the final benchmark output from summary
// statistics and raw samples.
package report

import (
	"encoding/json"
	"fmt"

	"ubench/internal/format"
	"ubench/internal/stats"
)

// Options selects the output shape and duration formatting.
type Options struct {
	Unit        format.Unit
	SignDigits  int
	Pretty      bool
	ListTimings bool
}

// Record is the structured report variant. Times is present only when
// per-round timings were requested.
type Record struct {
	Mean  string   `json:"mean"`
	Min   string   `json:"min"`
	Max   string   `json:"max"`
	Std   string   `json:"std"`
	Times []string `json:"times,omitempty"`
}

// Report is a two-variant sum: either a pretty one-line summary or a
// structured record. Exactly one of Summary and Record is set.
type Report struct {
	Summary string
	Record  *Record
}

// MarshalJSON renders whichever variant is populated.
func (r Report) MarshalJSON() ([]byte, error) {
	if r.Record != nil {
		return json.Marshal(r.Record)
	}
	return json.Marshal(r.Summary)
}

// Build formats the four aggregate statistics and composes the report.
//
// Pretty mode produces "<mean> +/- <std>" and takes precedence over
// ListTimings. In ListTimings mode the per-round samples are formatted
// with the same unit but with rounding disabled: rounding an individual
// measurement would be misleading, rounding the aggregates is not.
func Build(st stats.Stats, samples []int64, opts Options) Report {
	mean := format.Format(st.Mean, opts.Unit, opts.SignDigits)
	std := format.Format(st.Std, opts.Unit, opts.SignDigits)

	if opts.Pretty {
		return Report{Summary: fmt.Sprintf("%s +/- %s", mean, std)}
	}

	rec := &Record{
		Mean: mean,
		Min:  format.Format(st.Min, opts.Unit, opts.SignDigits),
		Max:  format.Format(st.Max, opts.Unit, opts.SignDigits),
		Std:  std,
	}

	if opts.ListTimings {
		rec.Times = make([]string, len(samples))
		for i, s := range samples {
			rec.Times[i] = format.Format(float64(s), opts.Unit, 0)
		}
	}

	return Report{Record: rec}
}
