// SPDX-License-Identifier: MIT

// Package signal generates deterministic 1-D fixtures for alignment tests,
// benchmarks and demos.
//
// Generators:
//
//   - Chirp: linear frequency sweep f0 → f1 (cycles/sample).
//   - Pulse: rectangular (duty cycle) or triangular pulse train.
//   - Stretch: resamples a series to a new length by linear interpolation,
//     the simplest way to fabricate a time-warped copy of a reference.
//
// Contract:
//
//   - Generators return a slice of length n, or nil on invalid input.
//     They never panic on data; option constructors panic on meaningless
//     arguments (negative noise, duty outside [0,1]) to surface programmer
//     errors early.
//   - Strict determinism per (n, seed, options). No global state.
//   - O(n) time and memory.
//
// Example:
//
//	ref := signal.Chirp(200, 1)
//	slow := signal.Stretch(ref, 1.3)   // 260 samples, same shape
//	al, _ := dtw.AlignScalars(ref, slow)
package signal
