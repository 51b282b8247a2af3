// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/warp/matrix"
)

// Move names the step taken by the traceback to reach a cell.
type Move int

const (
	// Diagonal steps from (i,j) to (i-1,j-1).
	Diagonal Move = iota

	// Left steps from (i,j) to the column-predecessor (i,j-1).
	Left

	// Up steps from (i,j) to the row-predecessor (i-1,j).
	Up
)

// String returns the lower-case move name.
func (m Move) String() string {
	switch m {
	case Diagonal:
		return "diagonal"
	case Left:
		return "left"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("move(%d)", int(m))
	}
}

// Option configures Align and Traceback via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when the operation is invoked.
type Option func(*Options)

// Options holds the distance strategy and callbacks.
type Options struct {
	// Distance scores a pair of frames. Defaults to SquaredEuclidean.
	Distance DistanceFunc

	// OnStep is called for every cell the traceback moves to, in backward
	// order, with the move that reached it.
	OnStep func(i, j int, move Move)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with SquaredEuclidean distance and a
// no-op OnStep hook.
func DefaultOptions() Options {
	return Options{
		Distance: SquaredEuclidean,
		OnStep:   func(int, int, Move) {},
	}
}

// WithDistance substitutes the distance strategy. A nil fn is a violation.
func WithDistance(fn DistanceFunc) Option {
	return func(o *Options) {
		if fn == nil {
			o.err = fmt.Errorf("%w: nil DistanceFunc", ErrOptionViolation)

			return
		}
		o.Distance = fn
	}
}

// WithOnStep registers a traceback callback.
func WithOnStep(fn func(i, j int, move Move)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// resolve applies opts over DefaultOptions and returns the first recorded error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}

// Coord is one aligned index pair: frame I of the first sequence matched
// with frame J of the second.
type Coord struct {
	I, J int
}

// Path is an alignment path as two equal-length index sequences, in
// chronological order from (0,0) to (L1-1, L2-1).
type Path struct {
	I []int
	J []int
}

// Len returns the number of aligned pairs K.
func (p Path) Len() int { return len(p.I) }

// Pairs returns the path as Coord values.
func (p Path) Pairs() []Coord {
	out := make([]Coord, len(p.I))
	for k := range out {
		out[k] = Coord{I: p.I[k], J: p.J[k]}
	}

	return out
}

// Validate checks the path invariants against sequence lengths n and m:
// equal lengths, anchored at (0,0) and (n-1,m-1), and every step advancing
// each index by 0 or 1 with at least one advancing.
func (p Path) Validate(n, m int) error {
	k := len(p.I)
	if k == 0 || k != len(p.J) {
		return fmt.Errorf("%w: lengths %d and %d", ErrInvalidPath, len(p.I), len(p.J))
	}
	if p.I[0] != 0 || p.J[0] != 0 {
		return fmt.Errorf("%w: starts at (%d,%d)", ErrInvalidPath, p.I[0], p.J[0])
	}
	if p.I[k-1] != n-1 || p.J[k-1] != m-1 {
		return fmt.Errorf("%w: ends at (%d,%d), want (%d,%d)", ErrInvalidPath, p.I[k-1], p.J[k-1], n-1, m-1)
	}
	for l := 1; l < k; l++ {
		di, dj := p.I[l]-p.I[l-1], p.J[l]-p.J[l-1]
		if di < 0 || di > 1 || dj < 0 || dj > 1 || di+dj == 0 {
			return fmt.Errorf("%w: step %d moves by (%d,%d)", ErrInvalidPath, l, di, dj)
		}
	}

	return nil
}

// Alignment is the outcome of Align.
//   - Path:   the optimal alignment path.
//   - Cost:   accumulated cost at (L1-1, L2-1), the DTW distance.
//   - Matrix: the full accumulated-cost table, retained for inspection.
type Alignment struct {
	Path   Path
	Cost   float64
	Matrix *matrix.Dense
}

// Pairs is shorthand for a.Path.Pairs().
func (a *Alignment) Pairs() []Coord {
	return a.Path.Pairs()
}
