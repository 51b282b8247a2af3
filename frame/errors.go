// SPDX-License-Identifier: MIT

package frame

import "errors"

// Sentinel errors. Every message is prefixed with "frame: ..." and callers
// match them with errors.Is.
var (
	// ErrEmptySequence is returned when the time axis has length 0 or the
	// sequence itself is nil.
	ErrEmptySequence = errors.New("frame: sequence must have at least one frame")

	// ErrBadShape is returned for non-positive dimensions or when the data
	// length does not equal the product of the shape.
	ErrBadShape = errors.New("frame: invalid shape")

	// ErrRaggedFrames is returned by FromVectors when rows differ in width.
	ErrRaggedFrames = errors.New("frame: frames differ in shape")

	// ErrOutOfRange indicates a time or element index outside valid bounds.
	ErrOutOfRange = errors.New("frame: index out of range")

	// ErrNotScalar is returned by Frame.Scalar on frames with rank > 0.
	ErrNotScalar = errors.New("frame: frame is not a scalar")
)
