// SPDX-License-Identifier: MIT

package link

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/matrix"
)

// Sentinel errors for link reconstruction.
var (
	// ErrBadSamplingRate is returned for a sampling rate that is not finite and > 0.
	ErrBadSamplingRate = errors.New("link: sampling rate must be finite and > 0")

	// ErrBadLinkCount is returned for a negative link count.
	ErrBadLinkCount = errors.New("link: link count must be >= 0")
)

// Option configures Link via functional arguments. Invalid values are
// recorded and surfaced when Link is invoked.
type Option func(*Options)

// Options holds the sampling parameters.
type Options struct {
	// SamplingRate converts indices to time: t[k] = k / SamplingRate.
	SamplingRate float64

	// LinkCount is the number of links to emit; 0 means one per aligned pair.
	LinkCount int

	// AlignOptions are forwarded to dtw.Align.
	AlignOptions []dtw.Option

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a sampling rate of 1 and LinkCount 0 (all pairs).
func DefaultOptions() Options {
	return Options{SamplingRate: 1}
}

// WithSamplingRate sets time-axis units per sample.
func WithSamplingRate(sr float64) Option {
	return func(o *Options) {
		if sr <= 0 || math.IsNaN(sr) || math.IsInf(sr, 0) {
			o.err = fmt.Errorf("%w: got %g", ErrBadSamplingRate, sr)

			return
		}
		o.SamplingRate = sr
	}
}

// WithLinkCount sets the desired number of links (0 = all).
func WithLinkCount(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadLinkCount, n)

			return
		}
		o.LinkCount = n
	}
}

// WithAlignOptions forwards options (distance, hooks) to the aligner.
func WithAlignOptions(opts ...dtw.Option) Option {
	return func(o *Options) {
		o.AlignOptions = append(o.AlignOptions, opts...)
	}
}

// Set is the link reconstruction result.
//   - X:         2×n time coordinates; row 0 for a, row 1 for b.
//   - Y:         frame values, shape frameShape ++ [2, n].
//   - Indices:   the selected positions along the alignment path.
//   - Alignment: the full alignment the links were sampled from.
type Set struct {
	X         *matrix.Dense
	Y         *frame.Sequence
	Indices   []int
	Alignment *dtw.Alignment
}

// Len returns the number of links n.
func (s *Set) Len() int {
	return len(s.Indices)
}

// Segment returns the endpoints of link l for one frame component
// (row-major index into the frame; 0 for scalar frames):
// (x[0], y[0]) on sequence a and (x[1], y[1]) on sequence b.
func (s *Set) Segment(l, component int) (x, y [2]float64, err error) {
	f, err := s.Y.Frame(l)
	if err != nil {
		return x, y, err
	}
	if x[0], err = s.X.At(0, l); err != nil {
		return x, y, err
	}
	if x[1], err = s.X.At(1, l); err != nil {
		return x, y, err
	}
	if y[0], err = f.At(component * 2); err != nil {
		return x, y, err
	}
	if y[1], err = f.At(component*2 + 1); err != nil {
		return x, y, err
	}

	return x, y, nil
}
