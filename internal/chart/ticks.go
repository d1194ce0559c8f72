package chart

import (
	"math"
	"strconv"
)

// maxTicks bounds a single tick set. Denser sets are not drawn at all.
// It sits well above the 2151 unit-spaced marks the widest wavelength
// range can ask for.
const maxTicks = 100000

// multiples returns every multiple of step inside [lo, hi] (either order),
// ascending. It returns nil for a non-positive step or a set larger than
// maxTicks.
func multiples(lo, hi, step float64) []float64 {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	eps := step * 1e-9
	first := math.Ceil((lo - eps) / step)
	last := math.Floor((hi + eps) / step)
	if last < first || last-first+1 > maxTicks {
		return nil
	}

	ticks := make([]float64, 0, int(last-first)+1)
	for k := first; k <= last; k++ {
		ticks = append(ticks, k*step)
	}
	return ticks
}

// decimals is the number of fractional digits needed to print multiples
// of step, capped at 6.
func decimals(step float64) int {
	for d := 0; d < 6; d++ {
		scaled := step * math.Pow10(d)
		if math.Abs(scaled-math.Round(scaled)) < 1e-9*math.Max(1, scaled) {
			return d
		}
	}
	return 6
}

// formatTick prints v with the given number of fractional digits and
// never as "-0".
func formatTick(v float64, digits int) string {
	s := strconv.FormatFloat(v, 'f', digits, 64)
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == 0 {
		return strconv.FormatFloat(0, 'f', digits, 64)
	}
	return s
}
