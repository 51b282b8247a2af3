// SPDX-License-Identifier: MIT

package signal

import "math"

// tau is 2π.
const tau = 2.0 * math.Pi

// Chirp returns a length-n linear chirp: frequency sweeps from f0 to f1.
// Model:
//   - fi  = f0 + (f1 − f0) * i/(n−1)  (cycles/sample)
//   - θᵢ₊₁ = θᵢ + τ * fi               (phase accumulator, τ=2π)
//   - yᵢ  = A * sin(θᵢ) + trend*i + noise
//
// Returns nil if n < 1.
func Chirp(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(opts...)
	rng := rngFrom(c, seed)

	out := make([]float64, n)
	theta := 0.0 // phase accumulator starts at 0 for reproducibility
	var t, fi, val float64
	for i := 0; i < n; i++ {
		// Linear interpolation factor t in [0,1].
		t = 0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		fi = c.f0 + (c.f1-c.f0)*t
		theta += tau * fi

		val = c.amp*math.Sin(theta) + c.trend*float64(i)
		if c.sigma > 0 {
			val += c.sigma * rng.NormFloat64()
		}
		out[i] = val
	}

	return out
}
