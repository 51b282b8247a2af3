// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot/vg"
)

// Sentinel errors for rendering.
var (
	// ErrNilSet is returned when the link set or one of the sequences is nil.
	ErrNilSet = errors.New("render: nil link set or sequence")

	// ErrBadComponent is returned for a frame component outside the frame.
	ErrBadComponent = errors.New("render: component out of range")

	// ErrBadOption is returned for a meaningless option argument.
	ErrBadOption = errors.New("render: invalid option")
)

// Default figure size, matching a wide strip chart.
const (
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

// Option configures Plot and Links.
type Option func(*Options)

// Options holds the drawing parameters.
type Options struct {
	Title        string
	Width        vg.Length
	Height       vg.Length
	SamplingRate float64 // must match the rate the links were built with
	Component    int     // row-major frame component to draw
	Offset       float64 // vertical shift applied to b
	AutoOffset   bool    // derive Offset from the value ranges
	ColorA       color.Color
	ColorB       color.Color
	ColorLink    color.Color

	err error
}

// DefaultOptions returns a 10x4 inch figure at sampling rate 1 with an
// automatic offset.
func DefaultOptions() Options {
	return Options{
		Title:        "DTW alignment",
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		SamplingRate: 1,
		AutoOffset:   true,
		ColorA:       color.RGBA{R: 31, G: 119, B: 180, A: 255},
		ColorB:       color.RGBA{R: 214, G: 39, B: 40, A: 255},
		ColorLink:    color.Gray{Y: 140},
	}
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(o *Options) { o.Title = title }
}

// WithSize sets the saved figure size.
func WithSize(w, h vg.Length) Option {
	return func(o *Options) {
		if w <= 0 || h <= 0 {
			o.err = fmt.Errorf("%w: size %v x %v", ErrBadOption, w, h)

			return
		}
		o.Width, o.Height = w, h
	}
}

// WithSamplingRate sets the time-axis rate used for the two curves.
func WithSamplingRate(sr float64) Option {
	return func(o *Options) {
		if sr <= 0 || math.IsNaN(sr) || math.IsInf(sr, 0) {
			o.err = fmt.Errorf("%w: sampling rate %g", ErrBadOption, sr)

			return
		}
		o.SamplingRate = sr
	}
}

// WithComponent selects the frame component drawn for vector frames.
func WithComponent(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: %d", ErrBadComponent, k)

			return
		}
		o.Component = k
	}
}

// WithOffset fixes the vertical shift applied to b.
func WithOffset(dy float64) Option {
	return func(o *Options) {
		o.Offset = dy
		o.AutoOffset = false
	}
}

// WithColors overrides the colours of a, b and the links. Nil keeps the default.
func WithColors(a, b, links color.Color) Option {
	return func(o *Options) {
		if a != nil {
			o.ColorA = a
		}
		if b != nil {
			o.ColorB = b
		}
		if links != nil {
			o.ColorLink = links
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
