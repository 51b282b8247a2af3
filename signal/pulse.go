// SPDX-License-Identifier: MIT

package signal

import "math"

// Pulse returns a length-n pulse train with optional trend and noise.
// Shape:
//   - Rectangular: y ∈ {0, A}, on while the phase fraction < duty.
//   - Triangular:  y ∈ [0, A] via 1 − |2*frac − 1| (no trig).
//
// The frequency is f0 from WithFrequencies, default 0.125 cycles/sample.
// Returns nil if n < 1.
func Pulse(n int, seed int64, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	c := newConfig(append([]Option{func(c *config) { c.f0 = defBaseFreq }}, opts...)...)
	rng := rngFrom(c, seed)

	out := make([]float64, n)
	var frac, base float64
	for i := 0; i < n; i++ {
		// Phase fraction in [0,1): (i*f0) mod 1.
		frac = math.Mod(float64(i)*c.f0, 1)
		switch {
		case c.triangular:
			base = c.amp * (1 - math.Abs(2*frac-1))
		case frac < c.duty:
			base = c.amp
		default:
			base = 0
		}
		base += c.trend * float64(i)
		if c.sigma > 0 {
			base += c.sigma * rng.NormFloat64()
		}
		out[i] = base
	}

	return out
}
