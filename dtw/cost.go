// SPDX-License-Identifier: MIT

package dtw

import (
	"fmt"
	"math"

	"github.com/katalvlaran/warp/frame"
	"github.com/katalvlaran/warp/matrix"
)

// CostMatrix fills the dense accumulated-cost table for a and b.
//
// Algorithm (0-based, n = a.Len(), m = b.Len()):
//  1. cost(0,0) = d(0,0)
//  2. cost(i,0) = cost(i-1,0) + d(i,0)          for i = 1..n-1
//  3. cost(0,j) = cost(0,j-1) + d(0,j)          for j = 1..m-1
//  4. cost(i,j) = d(i,j) + min(cost(i-1,j), cost(i-1,j-1), cost(i,j-1))
//
// Each cell depends only on cells above and to the left, so the table is
// swept row by row. Frames are extracted once per sequence as views.
//
// A nil dist selects SquaredEuclidean. Errors returned by dist are passed
// back unmodified; a NaN distance yields ErrInvalidCost.
//
// Complexity: O(n·m) time and memory.
func CostMatrix(a, b *frame.Sequence, dist DistanceFunc) (*matrix.Dense, error) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return nil, ErrEmptySequence
	}
	if dist == nil {
		dist = SquaredEuclidean
	}
	fa, fb := a.Frames(), b.Frames()

	d := func(i, j int) (float64, error) {
		v, err := dist(fa[i], fb[j])
		if err != nil {
			return 0, err // strategy errors propagate as is
		}
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%w: at (%d,%d)", ErrInvalidCost, i, j)
		}

		return v, nil
	}

	cost, err := matrix.NewDense(n, m)
	if err != nil {
		return nil, err
	}

	// Row 0: cost(0,0) then the running sum along the first row.
	prev, err := cost.Row(0)
	if err != nil {
		return nil, err
	}
	if prev[0], err = d(0, 0); err != nil {
		return nil, err
	}
	var v float64
	for j := 1; j < m; j++ {
		if v, err = d(0, j); err != nil {
			return nil, err
		}
		prev[j] = prev[j-1] + v
	}

	// Rows 1..n-1: column-0 running sum, then the interior recurrence.
	for i := 1; i < n; i++ {
		cur, err := cost.Row(i)
		if err != nil {
			return nil, err
		}
		if v, err = d(i, 0); err != nil {
			return nil, err
		}
		cur[0] = prev[0] + v
		for j := 1; j < m; j++ {
			if v, err = d(i, j); err != nil {
				return nil, err
			}
			cur[j] = v + min3(prev[j], prev[j-1], cur[j-1])
		}
		prev = cur
	}

	return cost, nil
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
