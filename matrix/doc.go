// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major float64 table used by the
// alignment engine.
//
// The package provides:
//
//   - Matrix, a minimal bounds-checked interface (Rows, Cols, At, Set, Clone).
//   - Dense, a flat-slice implementation with O(1) indexing and cache-friendly
//     row access (Row) for dynamic-programming sweeps.
//
// Dense backs the DTW accumulated-cost table (L1×L2) and the 2×n link time
// coordinates. Public indexers never panic: out-of-range access returns
// ErrOutOfRange, matched with errors.Is.
package matrix
