// SPDX-License-Identifier: MIT

// Package render draws a link.Set with gonum/plot.
//
// The picture holds the two sequences as lines over the shared time axis
// t[k] = k/sr, with b shifted vertically so the curves do not overlap, and
// one thin segment per link joining a[I[l]] to b[J[l]]. For vector frames a
// single component is drawn (WithComponent).
//
// Plot returns the *plot.Plot for callers that want to style or save it
// themselves; Links saves straight to a file whose extension selects the
// format (png, svg, pdf, ...).
package render
