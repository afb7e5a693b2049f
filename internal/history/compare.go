package history

import "fmt"

// Comparison is the percentage change between two recorded runs.
type Comparison struct {
	Prev     Run
	Curr     Run
	MeanDiff float64 // percentage change of mean, negative is faster
	MaxDiff  float64 // percentage change of max
}

// Compare computes the percentage deltas from prev to curr.
func Compare(prev, curr Run) Comparison {
	c := Comparison{Prev: prev, Curr: curr}
	if prev.MeanNs > 0 {
		c.MeanDiff = (curr.MeanNs - prev.MeanNs) / prev.MeanNs * 100
	}
	if prev.MaxNs > 0 {
		c.MaxDiff = (curr.MaxNs - prev.MaxNs) / prev.MaxNs * 100
	}
	return c
}

// Status classifies the mean delta against a percentage threshold:
// slower beyond the threshold is a regression, faster beyond it an
// improvement.
func (c Comparison) Status(threshold float64) string {
	switch {
	case c.MeanDiff > threshold:
		return "FAIL"
	case c.MeanDiff < -threshold:
		return "IMPR"
	default:
		return "PASS"
	}
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s: %+.2f%% mean", c.Curr.Command, c.MeanDiff)
}
