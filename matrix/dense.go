// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// denseErrorf wraps a sentinel with Dense method context.
//
// MAIN DESCRIPTION:
//   - Attach method name and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return the wrapped error; errors.Is still matches the sentinel.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// Compile-time check: *Dense satisfies Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: allocate a zero-filled row-major buffer of rows*cols.
//
// Behavior highlights:
//   - No panics on user errors; empty 0×N or N×0 tables are rejected.
//
// Inputs:
//   - rows: positive number of rows.
//   - cols: positive number of columns.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns row i as a slice that ALIASES the matrix storage.
//
// MAIN DESCRIPTION:
//   - Direct row access for dynamic-programming sweeps that fill a table
//     row by row without a bounds-checked call per cell.
//
// Implementation:
//   - Stage 1: validate 0 <= i < Rows(); else ErrOutOfRange.
//   - Stage 2: return data[i*c:(i+1)*c] with capacity clipped to the row.
//
// Behavior highlights:
//   - Writes through the slice are visible in m.
//   - append on the result reallocates instead of spilling into row i+1.
//
// Errors:
//   - ErrOutOfRange (row index outside the table).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf("Row", i, 0, ErrOutOfRange)
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c], nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() Matrix {
	copyData := make([]float64, len(m.data))
	copy(copyData, m.data)

	return &Dense{r: m.r, c: m.c, data: copyData}
}

// String implements fmt.Stringer for easy debugging, one bracketed row per line.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(", ") // separate values with comma
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.c+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
