package format

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Matches one component of a decomposed duration, e.g. "259µs".
var componentRe = regexp.MustCompile(`^(\d+)(ns|µs|us|ms|sec|min)$`)

// Parse is the inverse of Format. It accepts both output shapes: the
// fixed-unit form ("104.90 ms") and the decomposed form ("1ms 259µs"),
// and returns the nanosecond magnitude. Sub-nanosecond precision in the
// fixed-unit form is truncated.
func Parse(s string) (int64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty duration %q", s)
	}

	// Fixed-unit form: a bare decimal followed by a unit token.
	if len(fields) == 2 {
		if v, err := strconv.ParseFloat(fields[0], 64); err == nil {
			unit, err := ParseUnit(fields[1])
			if err != nil || unit == UnitNone {
				return 0, fmt.Errorf("invalid duration %q: unknown unit %q", s, fields[1])
			}
			return int64(math.Round(v * unitDivisors[unit])), nil
		}
	}

	// Decomposed form: each field is <integer><unit>.
	var total int64
	for _, f := range fields {
		m := componentRe.FindStringSubmatch(f)
		if m == nil {
			return 0, fmt.Errorf("invalid duration component %q in %q", f, s)
		}
		v, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid duration component %q in %q: %w", f, s, err)
		}
		unit, _ := ParseUnit(m[2])
		total += v * int64(unitDivisors[unit])
	}
	return total, nil
}
