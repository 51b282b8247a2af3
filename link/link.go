// SPDX-License-Identifier: MIT

package link

import (
	"fmt"

	"github.com/katalvlaran/warp/dtw"
	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/matrix"
)

// Link aligns a and b with dtw.Align and samples correspondence links.
//
// Stage 1 (Validate): options, non-empty inputs, equal frame shapes (the
// two frames of a link are stacked, so they must match).
// Stage 2 (Align): cost matrix + traceback, path length K.
// Stage 3 (Sample): pick links per Select and map them to X and Y.
//
// Errors: ErrBadSamplingRate, ErrBadLinkCount, dtw.ErrShapeMismatch and
// anything dtw.Align returns.
func Link(a, b *frame.Sequence, opts ...Option) (*Set, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkInputs(a, b); err != nil {
		return nil, err
	}
	al, err := dtw.Align(a, b, o.AlignOptions...)
	if err != nil {
		return nil, err
	}

	return sample(a, b, al, o)
}

// FromAlignment samples links from an alignment computed earlier for a and b.
// AlignOptions are ignored.
func FromAlignment(a, b *frame.Sequence, al *dtw.Alignment, opts ...Option) (*Set, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if err = checkInputs(a, b); err != nil {
		return nil, err
	}
	if al == nil {
		return nil, fmt.Errorf("%w: nil alignment", dtw.ErrInvalidPath)
	}
	if err = al.Path.Validate(a.Len(), b.Len()); err != nil {
		return nil, err
	}

	return sample(a, b, al, o)
}

// Select returns the path positions kept for n links out of k aligned pairs.
//
// n == 0 keeps all of 0..k-1. Otherwise positions are spaced by
// step = k/n (integer division, at least 1) and there are
// count = ceil(k/step) of them: m*step for m = 0..count-2, then k-1, so the
// last link always lands on the last aligned pair. The final gap is between
// step and 2*step-1. When count is 1 only position 0 is kept.
//
// Complexity: O(count).
func Select(k, n int) []int {
	if k <= 0 {
		return nil
	}
	if n <= 0 {
		n = k
	}
	step := max(k/n, 1)
	count := (k + step - 1) / step
	if count == 1 {
		return []int{0}
	}

	out := make([]int, count)
	for m := 0; m < count-1; m++ {
		out[m] = m * step
	}
	out[count-1] = k - 1

	return out
}

// TimeAxis returns t[k] = k / sr for k = 0..length-1.
func TimeAxis(length int, sr float64) []float64 {
	t := make([]float64, length)
	for k := range t {
		t[k] = float64(k) / sr
	}

	return t
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

func checkInputs(a, b *frame.Sequence) error {
	if a.Len() == 0 || b.Len() == 0 {
		return dtw.ErrEmptySequence
	}
	sa, sb := a.FrameShape(), b.FrameShape()
	if len(sa) != len(sb) {
		return fmt.Errorf("%w: frames %v vs %v", dtw.ErrShapeMismatch, sa, sb)
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return fmt.Errorf("%w: frames %v vs %v", dtw.ErrShapeMismatch, sa, sb)
		}
	}

	return nil
}

// sample maps the selected path positions to X (time) and Y (values).
func sample(a, b *frame.Sequence, al *dtw.Alignment, o Options) (*Set, error) {
	idx := Select(al.Path.Len(), o.LinkCount)
	n := len(idx)
	t := TimeAxis(max(a.Len(), b.Len()), o.SamplingRate)

	x, err := matrix.NewDense(2, n)
	if err != nil {
		return nil, err
	}

	fs := a.FrameShape()
	width := a.FrameLen()
	fa, fb := a.Frames(), b.Frames()
	// Y is row-major over fs ++ [2, n]: element (k, side, l) at (k*2+side)*n + l.
	data := make([]float64, width*2*n)
	for l, pos := range idx {
		i, j := al.Path.I[pos], al.Path.J[pos]
		if err = x.Set(0, l, t[i]); err != nil {
			return nil, err
		}
		if err = x.Set(1, l, t[j]); err != nil {
			return nil, err
		}
		for k := 0; k < width; k++ {
			va, err := fa[i].At(k)
			if err != nil {
				return nil, err
			}
			vb, err := fb[j].At(k)
			if err != nil {
				return nil, err
			}
			data[(k*2)*n+l] = va
			data[(k*2+1)*n+l] = vb
		}
	}
	y, err := frame.New(append(fs, 2, n), data)
	if err != nil {
		return nil, err
	}

	return &Set{X: x, Y: y, Indices: idx, Alignment: al}, nil
}
