// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/warp/frame"
)

// DistanceFunc scores two frames. It must be pure and should return a
// non-negative value; any error it returns is passed to the caller as is.
type DistanceFunc func(a, b frame.Frame) (float64, error)

// SquaredEuclidean is the default distance: the sum of squared elementwise
// differences, i.e. the inner product of (a-b) with itself. It is defined
// for every frame rank and requires equal shapes.
func SquaredEuclidean(a, b frame.Frame) (float64, error) {
	if !a.SameShape(b) {
		return 0, shapeError(a, b)
	}
	// Single-element frames skip the scratch buffers.
	if a.Len() == 1 {
		x, _ := a.At(0)
		y, _ := b.At(0)
		d := x - y

		return d * d, nil
	}
	x, y := a.AppendTo(make([]float64, 0, a.Len())), b.AppendTo(make([]float64, 0, b.Len()))
	floats.SubTo(x, x, y)

	return floats.Dot(x, x), nil
}

// Euclidean is the L2 norm of a-b.
func Euclidean(a, b frame.Frame) (float64, error) {
	return lpDistance(a, b, 2)
}

// Manhattan is the L1 norm of a-b.
func Manhattan(a, b frame.Frame) (float64, error) {
	return lpDistance(a, b, 1)
}

// Chebyshev is the L∞ norm of a-b (largest absolute elementwise difference).
func Chebyshev(a, b frame.Frame) (float64, error) {
	return lpDistance(a, b, math.Inf(1))
}

// AbsoluteDifference is |a-b| for rank-0 (scalar) frames only.
func AbsoluteDifference(a, b frame.Frame) (float64, error) {
	x, err := a.Scalar()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	y, err := b.Scalar()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}

	return math.Abs(x - y), nil
}

// lpDistance delegates to floats.Distance after the shape check.
func lpDistance(a, b frame.Frame, p float64) (float64, error) {
	if !a.SameShape(b) {
		return 0, shapeError(a, b)
	}
	x, y := a.AppendTo(make([]float64, 0, a.Len())), b.AppendTo(make([]float64, 0, b.Len()))

	return floats.Distance(x, y, p), nil
}

func shapeError(a, b frame.Frame) error {
	return fmt.Errorf("%w: %v vs %v", ErrShapeMismatch, a.Shape(), b.Shape())
}

// DistanceByName looks up a built-in strategy: sqeuclidean, euclidean,
// manhattan, chebyshev or abs. The empty name selects SquaredEuclidean.
func DistanceByName(name string) (DistanceFunc, error) {
	switch name {
	case "", "sqeuclidean":
		return SquaredEuclidean, nil
	case "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	case "chebyshev":
		return Chebyshev, nil
	case "abs":
		return AbsoluteDifference, nil
	default:
		return nil, fmt.Errorf("%w: unknown distance %q", ErrOptionViolation, name)
	}
}
