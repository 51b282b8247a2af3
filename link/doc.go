// SPDX-License-Identifier: MIT

// Package link turns a DTW alignment into plot-ready correspondence links.
//
// For two sequences a and b, Link aligns them, selects a subset of the
// aligned pairs and returns, for each selected pair (I[l], J[l]):
//
//   - X: the pair of time coordinates (t[I[l]], t[J[l]]) with t[k] = k/sr on
//     a shared axis of length max(L1, L2), stored as a 2×n matrix;
//   - Y: the two frames a[I[l]] and b[J[l]] stacked along a new axis of size
//     2, stored as a Sequence of shape frameShape ++ [2, n] whose trailing
//     axis runs over links.
//
// Drawing is left to the caller: a line from (X(0,l), a-value) to
// (X(1,l), b-value) per link and per frame component. See Set.Segment.
//
// Selection: n = 0 (default) keeps every aligned pair; otherwise pairs are
// taken every k/n positions along a path of k pairs, ceil(k/(k/n)) of them,
// starting at the first pair and ending on the last. See Select.
package link
