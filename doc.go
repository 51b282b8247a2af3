// Package warp is a small toolkit for aligning time series with Dynamic
// Time Warping and turning the alignment into drawable links.
//
// 🚀 What is warp?
//
//	A dense, deterministic DTW engine for sequences of frames:
//		• Frames: scalar, vector or higher-rank values per time step
//		• Distances: squared Euclidean by default, plus Euclidean, Manhattan,
//		  Chebyshev and absolute difference, or any func you supply
//		• Cost matrix: full accumulated-cost table, kept for inspection
//		• Traceback: optimal path with a fixed diagonal > left > up tie-break
//		• Links: evenly spaced correspondence segments on a shared time axis
//		• Rendering: gonum/plot figures of both sequences and their links
//
// Under the hood:
//
//	frame/  - Sequence and Frame: the time axis is the last axis
//	matrix/ - Dense row-major float64 table behind the cost matrix
//	dtw/    - distance strategies, CostMatrix, Traceback, Align
//	link/   - Link, Select, TimeAxis: path sampling for plots
//	signal/ - deterministic chirp / pulse generators and time stretching
//	render/ - gonum/plot adapter for link sets
//	cmd/warpplot - CLI: align, plot and demo
//
// Quick example:
//
//	a = [0, 1, 2]
//	b = [0, 2]
//
//	al, _ := dtw.AlignScalars(a, b)
//	// al.Cost == 1, al.Pairs() == [{0 0} {1 0} {2 1}]
//
//	go get github.com/katalvlaran/warp
package warp
