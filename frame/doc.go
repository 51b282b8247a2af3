// SPDX-License-Identifier: MIT

// Package frame models ordered sample sequences whose LAST axis is time.
//
// A Sequence of shape [d1, ..., dk, L] holds L frames, each frame being the
// sub-array of shape [d1, ..., dk] obtained by fixing the time index:
//
//	scalars   shape [L]        → frames of rank 0 (one element)
//	vectors   shape [d, L]     → frames of shape [d]
//	images    shape [h, w, L]  → frames of shape [h, w]
//
// Storage is a flat row-major []float64, so the time index is the fastest
// moving one and a frame is a strided slice of the backing array. Frame is a
// read-only view over that slice: extracting it never copies.
//
// Usage:
//
//	seq, err := frame.FromVectors([][]float64{{0, 1}, {1, 1}, {2, 0}}) // shape [2, 3]
//	f, err := seq.Frame(1)                                            // view of {1, 1}
//	vals := f.AppendTo(nil)                                           // []float64{1, 1}
//
// Complexity:
//
//   - Frame(t): O(1), no allocation beyond the shape header.
//   - AppendTo: O(frame length).
package frame
