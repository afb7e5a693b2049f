// Package format renders raw nanosecond counts as human-readable durations.
package format

import (
	"fmt"
	"math"
	"strings"
)

// Unit is a fixed output unit for formatted durations. The zero value
// selects multi-unit decomposition instead of a fixed unit.
type Unit string

const (
	UnitNone Unit = ""
	UnitNs   Unit = "ns"
	UnitUs   Unit = "µs"
	UnitMs   Unit = "ms"
	UnitSec  Unit = "sec"
	UnitMin  Unit = "min"
)

// unitDivisors maps each unit to its size in nanoseconds.
var unitDivisors = map[Unit]float64{
	UnitNs:  1,
	UnitUs:  1e3,
	UnitMs:  1e6,
	UnitSec: 1e9,
	UnitMin: 60e9,
}

// ParseUnit validates a --units token. The empty string selects
// multi-unit decomposition. "us" is accepted as an ASCII spelling of "µs".
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "":
		return UnitNone, nil
	case "ns":
		return UnitNs, nil
	case "us", "µs":
		return UnitUs, nil
	case "ms":
		return UnitMs, nil
	case "sec":
		return UnitSec, nil
	case "min":
		return UnitMin, nil
	}
	return UnitNone, fmt.Errorf("invalid unit %q (must be one of ns, us, ms, sec, min)", s)
}

// RoundSig rounds x so that only the first digits significant digits are
// retained, zeroing the rest. Ties round half away from zero. digits <= 0
// disables rounding.
func RoundSig(x float64, digits int) float64 {
	if digits <= 0 || x == 0 {
		return x
	}
	magnitude := int(math.Floor(math.Log10(math.Abs(x))))
	if magnitude-digits+1 < 0 {
		// Requested precision is finer than one nanosecond; formatting
		// truncates to integer nanoseconds, so rounding is a no-op.
		return x
	}
	scale := math.Pow(10, float64(magnitude-digits+1))
	return math.Round(x/scale) * scale
}

// decomposition order, largest unit first.
var decompose = []struct {
	label string
	size  int64
}{
	{"min", 60e9},
	{"sec", 1e9},
	{"ms", 1e6},
	{"µs", 1e3},
	{"ns", 1},
}

// Format renders a nanosecond count. Significant-digit rounding is applied
// to the raw magnitude first, then the value is truncated to integer
// nanoseconds; the unit breakdown is sensitive to the rounded boundary, so
// the order matters. With a fixed unit the result is a single decimal
// string with two fractional digits ("104.90 ms"); without one the value
// is decomposed into its non-zero components ("1ms 259µs").
func Format(ns float64, unit Unit, signDigits int) string {
	n := int64(RoundSig(ns, signDigits))

	if unit != UnitNone {
		return fmt.Sprintf("%.2f %s", float64(n)/unitDivisors[unit], unit)
	}

	if n == 0 {
		return "0ns"
	}

	var parts []string
	for _, d := range decompose {
		if v := n / d.size; v > 0 {
			parts = append(parts, fmt.Sprintf("%d%s", v, d.label))
			n -= v * d.size
		}
	}
	return strings.Join(parts, " ")
}
