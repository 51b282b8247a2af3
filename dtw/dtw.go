// SPDX-License-Identifier: MIT

package dtw

import (
	"github.com/katalvlaran/warp/frame"
)

// Align computes the DTW alignment of a and b.
// Returns the optimal path, the total cost cost(L1-1, L2-1) and the table.
//
// Errors:
//   - ErrEmptySequence    - a or b is nil or has no frames.
//   - ErrOptionViolation  - an invalid Option was supplied.
//   - ErrShapeMismatch    - frames the distance cannot compare.
//   - ErrInvalidCost      - the distance returned NaN.
//   - any error returned by a custom DistanceFunc, unmodified.
//
// Example:
//
//	al, err := Align(a, b, WithDistance(Manhattan))
//	fmt.Println(al.Cost, al.Pairs())
func Align(a, b *frame.Sequence, opts ...Option) (*Alignment, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	cost, err := CostMatrix(a, b, o.Distance)
	if err != nil {
		return nil, err
	}
	path, err := traceback(cost, o.OnStep)
	if err != nil {
		return nil, err
	}
	total, err := cost.At(cost.Rows()-1, cost.Cols()-1)
	if err != nil {
		return nil, err
	}

	return &Alignment{Path: path, Cost: total, Matrix: cost}, nil
}

// AlignScalars is Align for plain 1-D series.
func AlignScalars(a, b []float64, opts ...Option) (*Alignment, error) {
	sa, err := frame.FromScalars(a)
	if err != nil {
		return nil, err
	}
	sb, err := frame.FromScalars(b)
	if err != nil {
		return nil, err
	}

	return Align(sa, sb, opts...)
}
