// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"strings"
)

// Sequence is an immutable N-d array whose trailing axis is time.
// shape[len(shape)-1] is the number of frames L (L ≥ 1); the leading
// dimensions form the frame shape and are identical for every time index.
type Sequence struct {
	shape []int     // full shape, time axis last
	data  []float64 // row-major backing storage, len == product(shape)
}

// New builds a Sequence of the given shape over a private copy of data.
// Stage 1 (Validate): rank ≥ 1, every dimension > 0, len(data) == product.
// Stage 2 (Prepare): copy shape and data so callers cannot mutate the view.
// Complexity: O(len(data)).
func New(shape []int, data []float64) (*Sequence, error) {
	if len(shape) == 0 {
		return nil, fmt.Errorf("%w: rank 0 has no time axis", ErrBadShape)
	}
	if shape[len(shape)-1] == 0 {
		return nil, ErrEmptySequence
	}
	size := 1
	for axis, d := range shape {
		if d <= 0 {
			return nil, fmt.Errorf("%w: dimension %d is %d", ErrBadShape, axis, d)
		}
		size *= d
	}
	if len(data) != size {
		return nil, fmt.Errorf("%w: shape %v needs %d values, got %d", ErrBadShape, shape, size, len(data))
	}

	s := &Sequence{
		shape: append([]int(nil), shape...),
		data:  make([]float64, size),
	}
	copy(s.data, data)

	return s, nil
}

// FromScalars wraps a 1-D series; each frame is a rank-0 scalar.
func FromScalars(values []float64) (*Sequence, error) {
	if len(values) == 0 {
		return nil, ErrEmptySequence
	}

	return New([]int{len(values)}, values)
}

// FromVectors converts time-major rows (rows[t] is the frame at time t) into
// a Sequence of shape [d, L]. All rows must share the same width d ≥ 1.
func FromVectors(rows [][]float64) (*Sequence, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrEmptySequence
	}
	d := len(rows[0])
	if d == 0 {
		return nil, fmt.Errorf("%w: frame width is 0", ErrBadShape)
	}

	// Transpose into the trailing-time layout: data[k*n + t] = rows[t][k].
	data := make([]float64, d*n)
	for t, row := range rows {
		if len(row) != d {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrRaggedFrames, t, len(row), d)
		}
		for k, v := range row {
			data[k*n+t] = v
		}
	}

	return &Sequence{shape: []int{d, n}, data: data}, nil
}

// Len returns the number of frames (length of the time axis).
// The zero Sequence has no frames.
func (s *Sequence) Len() int {
	if s == nil || len(s.shape) == 0 {
		return 0
	}

	return s.shape[len(s.shape)-1]
}

// Shape returns a copy of the full shape, time axis last.
func (s *Sequence) Shape() []int {
	return append([]int(nil), s.shape...)
}

// FrameShape returns a copy of the per-frame shape (empty for scalars).
func (s *Sequence) FrameShape() []int {
	if len(s.shape) == 0 {
		return []int{}
	}

	return append([]int{}, s.shape[:len(s.shape)-1]...)
}

// FrameLen returns the number of elements in one frame.
func (s *Sequence) FrameLen() int {
	if s.Len() == 0 {
		return 0
	}

	return len(s.data) / s.Len()
}

// Frame returns the read-only view at time index t.
// Returns ErrOutOfRange if t ∉ [0, Len()).
// Complexity: O(1).
func (s *Sequence) Frame(t int) (Frame, error) {
	if t < 0 || t >= s.Len() {
		return Frame{}, fmt.Errorf("%w: time index %d, length %d", ErrOutOfRange, t, s.Len())
	}

	return s.frameAt(t), nil
}

// Frames returns every frame view in time order.
// Complexity: O(L) views, no element copies.
func (s *Sequence) Frames() []Frame {
	out := make([]Frame, s.Len())
	for t := range out {
		out[t] = s.frameAt(t)
	}

	return out
}

// At reads one element addressed by a full index (time index last).
func (s *Sequence) At(idx ...int) (float64, error) {
	if len(idx) != len(s.shape) {
		return 0, fmt.Errorf("%w: got %d indices for rank %d", ErrOutOfRange, len(idx), len(s.shape))
	}
	flat := 0
	for axis, i := range idx {
		if i < 0 || i >= s.shape[axis] {
			return 0, fmt.Errorf("%w: index %d on axis %d (size %d)", ErrOutOfRange, i, axis, s.shape[axis])
		}
		flat = flat*s.shape[axis] + i
	}

	return s.data[flat], nil
}

// Values returns a copy of the row-major backing data.
func (s *Sequence) Values() []float64 {
	return append([]float64(nil), s.data...)
}

// String implements fmt.Stringer, printing frames in time order.
func (s *Sequence) String() string {
	var b strings.Builder
	b.WriteString("[")
	for t, f := range s.Frames() {
		if t > 0 {
			b.WriteString(" ")
		}
		b.WriteString(f.String())
	}
	b.WriteString("]")

	return b.String()
}

// frameAt builds the view without bounds checks; t must be valid.
func (s *Sequence) frameAt(t int) Frame {
	return Frame{
		shape:  s.shape[:len(s.shape)-1],
		data:   s.data,
		offset: t,
		stride: s.Len(),
		n:      len(s.data) / s.Len(),
	}
}
