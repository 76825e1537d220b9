package util

import (
	"math"
	"strconv"
	"strings"
)

// ParseCount coerces a raw cell value to a non-error integer count. Plain
// integers parse as-is, plain decimals truncate toward zero, and anything
// else (blank, "n/a", "12.5abc") coerces to 0. Messy exports are expected;
// coercion failures are deliberately silent.
func ParseCount(input string) int {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// ParseFloat also accepts "NaN" and "inf"; int() on those is
	// implementation-defined, so they coerce to 0 like any other garbage.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}
