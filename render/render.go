// SPDX-License-Identifier: MIT

package render

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/link"
)

// Plot builds the alignment figure for a, b and the links in set.
func Plot(a, b *frame.Sequence, set *link.Set, opts ...Option) (*plot.Plot, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	return build(a, b, set, o)
}

// Links renders the figure and saves it to path.
func Links(a, b *frame.Sequence, set *link.Set, path string, opts ...Option) error {
	o, err := resolve(opts)
	if err != nil {
		return err
	}
	p, err := build(a, b, set, o)
	if err != nil {
		return err
	}
	if err = p.Save(o.Width, o.Height, path); err != nil {
		return fmt.Errorf("save links plot: %w", err)
	}

	return nil
}

func build(a, b *frame.Sequence, set *link.Set, o Options) (*plot.Plot, error) {
	if a == nil || b == nil || set == nil || set.X == nil || set.Y == nil {
		return nil, ErrNilSet
	}
	if a.Len() == 0 || b.Len() == 0 {
		return nil, frame.ErrEmptySequence
	}
	if o.Component >= a.FrameLen() {
		return nil, fmt.Errorf("%w: %d of %d", ErrBadComponent, o.Component, a.FrameLen())
	}

	va, err := component(a, o.Component)
	if err != nil {
		return nil, err
	}
	vb, err := component(b, o.Component)
	if err != nil {
		return nil, err
	}
	dy := o.Offset
	if o.AutoOffset {
		dy = autoOffset(va, vb)
	}

	p := plot.New()
	p.Title.Text = o.Title
	p.X.Label.Text = "Time"
	p.Y.Label.Text = "Value"

	// Links first so the curves draw on top.
	for l := 0; l < set.Len(); l++ {
		x, y, err := set.Segment(l, o.Component)
		if err != nil {
			return nil, err
		}
		seg, err := plotter.NewLine(plotter.XYs{{X: x[0], Y: y[0]}, {X: x[1], Y: y[1] + dy}})
		if err != nil {
			return nil, err
		}
		seg.Color = o.ColorLink
		seg.Width = vg.Points(0.5)
		seg.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(seg)
	}

	lineA, err := plotter.NewLine(curve(va, o.SamplingRate, 0))
	if err != nil {
		return nil, err
	}
	lineA.Color = o.ColorA
	lineA.Width = vg.Points(1.5)

	lineB, err := plotter.NewLine(curve(vb, o.SamplingRate, dy))
	if err != nil {
		return nil, err
	}
	lineB.Color = o.ColorB
	lineB.Width = vg.Points(1.5)

	p.Add(lineA, lineB)
	p.Legend.Add("a", lineA)
	p.Legend.Add("b", lineB)
	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10

	return p, nil
}

// component extracts one frame component over time.
func component(s *frame.Sequence, k int) ([]float64, error) {
	frames := s.Frames()
	out := make([]float64, len(frames))
	for t, f := range frames {
		v, err := f.At(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadComponent, err)
		}
		out[t] = v
	}

	return out, nil
}

// curve places v on t[k] = k/sr shifted by dy.
func curve(v []float64, sr, dy float64) plotter.XYs {
	pts := make(plotter.XYs, len(v))
	for k, y := range v {
		pts[k] = plotter.XY{X: float64(k) / sr, Y: y + dy}
	}

	return pts
}

// autoOffset lifts b just above a, leaving a gap of 10% of the combined
// span (or 0.1 when every value is equal).
func autoOffset(a, b []float64) float64 {
	lo := min(floats.Min(a), floats.Min(b))
	hi := max(floats.Max(a), floats.Max(b))
	span := hi - lo
	if span == 0 {
		span = 1
	}

	return floats.Max(a) - floats.Min(b) + 0.1*span
}
