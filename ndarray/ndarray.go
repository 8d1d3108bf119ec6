// SPDX-License-Identifier: MIT

package ndarray

import (
	"encoding/json"
	"fmt"
)

// Matrix is a row-major matrix of float64 values.
// rows and cols fix the shape; data holds rows*cols elements in row-major
// order. A Matrix is immutable once built: constructors copy their input and
// accessors never expose the backing slice.
type Matrix struct {
	rows, cols int
	data       []float64
}

// Reshape casts a flat slice into a rows×cols Matrix, copying data so later
// mutation of the input cannot reach the Matrix.
//
// Errors: ErrInvalidDimensions when a dimension is non-positive,
// ErrNotCastable when len(data) != rows*cols.
// Complexity: O(rows*cols) time and memory.
func Reshape(data []float64, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: (%d, %d)", ErrInvalidDimensions, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w (%d, %d): length %d", ErrNotCastable, rows, cols, len(data))
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Matrix{rows: rows, cols: cols, data: cp}, nil
}

// AsVector verifies data holds exactly n entries and returns a defensive copy.
//
// Errors: ErrInvalidDimensions when n <= 0, ErrNotCastable on length mismatch
// ("ndarray: not castable to shape (8,): length 4").
// Complexity: O(n) time and memory.
func AsVector(data []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: (%d,)", ErrInvalidDimensions, n)
	}
	if len(data) != n {
		return nil, fmt.Errorf("%w (%d,): length %d", ErrNotCastable, n, len(data))
	}
	cp := make([]float64, n)
	copy(cp, data)

	return cp, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Matrix) Cols() int { return m.cols }

// At retrieves the element at (row, col).
//
// Errors: ErrIndexOutOfBounds. Complexity: O(1).
func (m *Matrix) At(row, col int) (float64, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("ndarray: At(%d,%d): %w", row, col, ErrIndexOutOfBounds)
	}

	return m.data[row*m.cols+col], nil
}

// Flatten returns the elements in row-major order as a fresh slice.
// Complexity: O(rows*cols).
func (m *Matrix) Flatten() []float64 {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return cp
}

// Equal reports element-wise equality of shape and contents. A nil Matrix is
// equal only to another nil Matrix. go-cmp picks this method up when diffing
// records that embed matrices.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.rows != o.rows || m.cols != o.cols {
		return false
	}
	for i, v := range m.data {
		if o.data[i] != v {
			return false
		}
	}

	return true
}

// MarshalJSON writes the matrix as its flat row-major element list, the form
// interchange payloads carry.
func (m *Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.data)
}

// String implements fmt.Stringer for easy debugging.
func (m *Matrix) String() string {
	var s string
	for i := 0; i < m.rows; i++ {
		s += "["
		for j := 0; j < m.cols; j++ {
			s += fmt.Sprintf("%g", m.data[i*m.cols+j])
			if j < m.cols-1 {
				s += ", "
			}
		}
		s += "]\n"
	}

	return s
}
