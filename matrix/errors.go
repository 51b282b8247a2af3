// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All methods MUST return these sentinels and tests MUST check them via
// errors.Is. No method panics on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for easy grepping. Context is
// added by wrapping at the call site: fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
