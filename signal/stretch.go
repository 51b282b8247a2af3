// SPDX-License-Identifier: MIT

package signal

import "math"

// Stretch resamples x to round(len(x)*factor) samples (at least 1) by
// linear interpolation, keeping both endpoints. factor > 1 slows the series
// down, factor < 1 speeds it up.
//
// Returns nil for empty x or a factor that is not finite and > 0.
// Complexity: O(len(result)).
func Stretch(x []float64, factor float64) []float64 {
	if len(x) == 0 || factor <= 0 || math.IsInf(factor, 0) || math.IsNaN(factor) {
		return nil
	}
	n := int(math.Round(float64(len(x)) * factor))
	if n < 1 {
		n = 1
	}
	out := make([]float64, n)
	if n == 1 || len(x) == 1 {
		for i := range out {
			out[i] = x[0]
		}
		return out
	}

	scale := float64(len(x)-1) / float64(n-1)
	for i := range out {
		pos := float64(i) * scale
		lo := int(pos)
		if lo >= len(x)-1 {
			out[i] = x[len(x)-1]
			continue
		}
		frac := pos - float64(lo)
		out[i] = x[lo] + (x[lo+1]-x[lo])*frac
	}

	return out
}
