// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"

	"github.com/katalvlaran/warp/matrix"
)

// Traceback recovers the optimal path from a filled accumulated-cost table.
//
// Starting at (rows-1, cols-1), while both indices are positive it moves to
// the cheapest of the diagonal (i-1,j-1), column-predecessor (i,j-1) and
// row-predecessor (i-1,j). Ties go to the diagonal, then the
// column-predecessor, then the row-predecessor. Once row 0 or column 0 is
// reached the rest of the path is a straight run to (0,0). The result is
// returned in chronological order.
//
// Only WithOnStep is meaningful here; the distance option is ignored.
// A nil table yields matrix.ErrNilMatrix, an empty one matrix.ErrBadShape.
//
// Complexity: O(rows + cols).
func Traceback(cost matrix.Matrix, opts ...Option) (Path, error) {
	if cost == nil {
		return Path{}, matrix.ErrNilMatrix
	}
	if cost.Rows() < 1 || cost.Cols() < 1 {
		return Path{}, fmt.Errorf("%w: %dx%d cost table", matrix.ErrBadShape, cost.Rows(), cost.Cols())
	}
	o, err := resolve(opts)
	if err != nil {
		return Path{}, err
	}

	return traceback(cost, o.OnStep)
}

func traceback(cost matrix.Matrix, onStep func(i, j int, move Move)) (Path, error) {
	i, j := cost.Rows()-1, cost.Cols()-1
	capacity := cost.Rows() + cost.Cols() - 1 // longest possible path
	p := Path{I: make([]int, 0, capacity), J: make([]int, 0, capacity)}
	p.I, p.J = append(p.I, i), append(p.J, j)

	for i > 0 && j > 0 {
		move, err := predecessor(cost, i, j)
		if err != nil {
			return Path{}, err
		}
		switch move {
		case Diagonal:
			i, j = i-1, j-1
		case Left:
			j--
		case Up:
			i--
		}
		p.I, p.J = append(p.I, i), append(p.J, j)
		onStep(i, j, move)
	}
	// Boundary completion: at most one of these loops runs.
	for j > 0 {
		j--
		p.I, p.J = append(p.I, i), append(p.J, j)
		onStep(i, j, Left)
	}
	for i > 0 {
		i--
		p.I, p.J = append(p.I, i), append(p.J, j)
		onStep(i, j, Up)
	}

	// reverse path in-place
	for l, r := 0, len(p.I)-1; l < r; l, r = l+1, r-1 {
		p.I[l], p.I[r] = p.I[r], p.I[l]
		p.J[l], p.J[r] = p.J[r], p.J[l]
	}

	return p, nil
}

// predecessor picks the move out of (i,j), i>0 && j>0. Strict comparisons in
// priority order make earlier candidates win ties.
func predecessor(cost matrix.Matrix, i, j int) (Move, error) {
	diag, err := cost.At(i-1, j-1)
	if err != nil {
		return 0, err
	}
	left, err := cost.At(i, j-1)
	if err != nil {
		return 0, err
	}
	up, err := cost.At(i-1, j)
	if err != nil {
		return 0, err
	}

	move, best := Diagonal, diag
	if left < best {
		move, best = Left, left
	}
	if up < best {
		move = Up
	}

	return move, nil
}
