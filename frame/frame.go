// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"strconv"
	"strings"
)

// Frame is a read-only, shape-preserving view of one time index of a
// Sequence. Element k of the frame (row-major over the frame shape) lives at
// data[offset + k*stride]. The zero Frame has no elements.
type Frame struct {
	shape  []int     // frame shape, shared with the owning Sequence; never mutated
	data   []float64 // owning Sequence storage
	offset int       // time index
	stride int       // sequence length L
	n      int       // number of elements
}

// Len returns the number of elements (1 for a scalar frame).
func (f Frame) Len() int { return f.n }

// Rank returns the number of frame dimensions (0 for scalars).
func (f Frame) Rank() int { return len(f.shape) }

// Shape returns a copy of the frame shape.
func (f Frame) Shape() []int { return append([]int{}, f.shape...) }

// At returns element k in row-major frame order.
func (f Frame) At(k int) (float64, error) {
	if k < 0 || k >= f.n {
		return 0, fmt.Errorf("%w: element %d, frame length %d", ErrOutOfRange, k, f.n)
	}

	return f.data[f.offset+k*f.stride], nil
}

// Scalar returns the single value of a rank-0 frame.
func (f Frame) Scalar() (float64, error) {
	if len(f.shape) != 0 || f.n != 1 {
		return 0, fmt.Errorf("%w: shape %v", ErrNotScalar, f.shape)
	}

	return f.data[f.offset], nil
}

// AppendTo appends the frame elements to dst in row-major order and returns
// the extended slice. Pass dst[:0] of a reused buffer to avoid allocations.
func (f Frame) AppendTo(dst []float64) []float64 {
	for k := 0; k < f.n; k++ {
		dst = append(dst, f.data[f.offset+k*f.stride])
	}

	return dst
}

// SameShape reports whether f and o have identical frame shapes.
func (f Frame) SameShape(o Frame) bool {
	if len(f.shape) != len(o.shape) {
		return false
	}
	for i := range f.shape {
		if f.shape[i] != o.shape[i] {
			return false
		}
	}

	return true
}

// String prints a scalar as a bare number and anything else as a flat list.
func (f Frame) String() string {
	if f.n == 1 && len(f.shape) == 0 {
		return strconv.FormatFloat(f.data[f.offset], 'g', -1, 64)
	}
	parts := make([]string, f.n)
	for k := range parts {
		parts[k] = strconv.FormatFloat(f.data[f.offset+k*f.stride], 'g', -1, 64)
	}

	return "(" + strings.Join(parts, " ") + ")"
}
