// SPDX-License-Identifier: MIT

package signal

import (
	"fmt"
	"math/rand"
)

// Deterministic defaults (named, no magic numbers).
const (
	defAmp      = 1.0   // amplitude A > 0
	defChirpF0  = 0.02  // chirp start frequency (cycles/sample) > 0
	defChirpF1  = 0.25  // chirp end frequency (cycles/sample) > 0
	defBaseFreq = 0.125 // pulse frequency (cycles/sample) > 0; period ≈ 8
	defDuty     = 0.5   // rectangular duty cycle in [0,1]
)

// Option customizes a generator by mutating its config before synthesis.
type Option func(*config)

// config aggregates every generator knob. Passed by value once resolved.
type config struct {
	amp        float64    // amplitude > 0
	f0, f1     float64    // chirp sweep / pulse uses f0 only
	duty       float64    // rectangular duty in [0,1]
	triangular bool       // pulse shape
	sigma      float64    // Gaussian noise sigma ≥ 0
	trend      float64    // linear trend increment per sample
	rng        *rand.Rand // shared stream; nil → local rand seeded per call
}

func newConfig(opts ...Option) config {
	c := config{
		amp:  defAmp,
		f0:   defChirpF0,
		f1:   defChirpF1,
		duty: defDuty,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return c
}

// rngFrom returns cfg.rng if present (shared stream), else a local rand
// seeded by 'seed'. This keeps determinism across composed calls.
func rngFrom(c config, seed int64) *rand.Rand {
	if c.rng != nil {
		return c.rng
	}

	return rand.New(rand.NewSource(seed))
}

// WithAmplitude sets the peak amplitude. Panics on a ≤ 0.
func WithAmplitude(a float64) Option {
	if a <= 0 {
		panic(fmt.Sprintf("signal: WithAmplitude(%g)", a))
	}

	return func(c *config) { c.amp = a }
}

// WithFrequencies sets the chirp sweep f0 → f1; for Pulse only f0 is used.
// Panics unless both are > 0.
func WithFrequencies(f0, f1 float64) Option {
	if f0 <= 0 || f1 <= 0 {
		panic(fmt.Sprintf("signal: WithFrequencies(%g, %g)", f0, f1))
	}

	return func(c *config) { c.f0, c.f1 = f0, f1 }
}

// WithDuty sets the rectangular pulse duty cycle. Panics outside [0,1].
func WithDuty(d float64) Option {
	if d < 0 || d > 1 {
		panic(fmt.Sprintf("signal: WithDuty(%g)", d))
	}

	return func(c *config) { c.duty = d }
}

// WithTriangular switches Pulse to the triangular shape.
func WithTriangular() Option {
	return func(c *config) { c.triangular = true }
}

// WithNoise adds Gaussian noise of standard deviation sigma. Panics on sigma < 0.
func WithNoise(sigma float64) Option {
	if sigma < 0 {
		panic(fmt.Sprintf("signal: WithNoise(%g)", sigma))
	}

	return func(c *config) { c.sigma = sigma }
}

// WithTrend adds k*i to sample i.
func WithTrend(k float64) Option {
	return func(c *config) { c.trend = k }
}

// WithRand shares one RNG stream across generator calls. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("signal: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}
