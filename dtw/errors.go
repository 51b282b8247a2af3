// SPDX-License-Identifier: MIT

package dtw

import (
	"errors"

	"github.com/katalvlaran/warp/frame"
)

var (
	// ErrEmptySequence indicates one or both inputs have no frames.
	// It is the frame package sentinel so errors.Is matches either origin.
	ErrEmptySequence = frame.ErrEmptySequence

	// ErrShapeMismatch indicates frames whose shapes the distance cannot compare.
	ErrShapeMismatch = errors.New("dtw: frame shapes are incompatible")

	// ErrInvalidCost indicates a distance returned NaN, which has no order.
	ErrInvalidCost = errors.New("dtw: distance returned NaN")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dtw: invalid option supplied")

	// ErrInvalidPath is returned by Path.Validate for broken path invariants.
	ErrInvalidPath = errors.New("dtw: invalid alignment path")
)
