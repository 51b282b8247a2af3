// SPDX-License-Identifier: MIT

// Package dtw aligns two frame sequences with Dynamic Time Warping (DTW).
//
// 🚀 What is DTW?
//
//	DTW finds the monotone, non-skipping correspondence between two
//	sequences that minimizes the accumulated frame distance. It is the
//	standard tool for comparing series recorded at different speeds or
//	sampling rates:
//	  • Speech & audio alignment
//	  • Sensor and motion-capture comparison
//	  • Gesture / signature matching
//
// ✨ Pipeline:
//
//	sequences ─► CostMatrix (Frame views + DistanceFunc) ─► Traceback ─► Alignment
//
//   - CostMatrix fills a dense L1×L2 accumulated-cost table:
//     cost(0,0)=d(0,0); the first row/column are running sums; every other
//     cell is d(i,j) + min(cost(i-1,j), cost(i-1,j-1), cost(i,j-1)).
//   - Traceback walks back from (L1-1, L2-1), preferring on ties the diagonal,
//     then the column-predecessor (i,j-1), then the row-predecessor (i-1,j),
//     and finishes with a straight run along row 0 or column 0.
//   - Align does both and reports the total cost cost(L1-1, L2-1).
//
// ⚙️ Usage:
//
//	a, _ := frame.FromScalars([]float64{0, 1, 2})
//	b, _ := frame.FromScalars([]float64{0, 1, 1, 2})
//	al, err := dtw.Align(a, b)                              // squared Euclidean
//	al, err = dtw.Align(a, b, dtw.WithDistance(dtw.Manhattan))
//
// Distances must be non-negative. A strategy returning negative values can
// make a cell tie with its predecessors and the traceback will no longer
// reproduce the optimal path; this is a precondition, not something the
// engine detects.
//
// Performance:
//
//   - Time:   O(L1·L2) distance evaluations
//   - Memory: O(L1·L2), the table is always fully materialized
package dtw
