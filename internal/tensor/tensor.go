// Package tensor provides the dense buffer types the Ember compute engine
// operates on: Matrix (2D, row-major), Vector (1D) and Volume (channel stack).
package tensor

import (
	"fmt"
	"math/rand"
)

// Matrix is a dense rectangular buffer of float64 values with fixed extents
// and row-major layout: element (r, c) lives at data[r*cols+c].
//
// Matrices produced by kernels are never mutated afterwards; every kernel
// allocates a fresh output buffer. Callers that need to write into a matrix
// they received should Clone it first.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix creates a zero-filled matrix with the given extents.
//
// Example:
//
//	m, err := tensor.NewMatrix(3, 4)
func NewMatrix(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// FromSlice wraps caller-supplied row-major data in a matrix.
// The slice is used directly, not copied; len(data) must equal rows*cols.
//
// Example:
//
//	m, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
func FromSlice(data []float64, rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: len %d for %dx%d", ErrDataLength, len(data), rows, cols)
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Full creates a matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = value
	}
	return m, nil
}

// Rand creates a matrix with every element drawn uniformly from [0, 1).
func Rand(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		//nolint:gosec // math/rand is fine for buffer initialization
		m.data[i] = rand.Float64()
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns the matrix extents as (rows, cols).
func (m *Matrix) Dims() (int, int) { return m.rows, m.cols }

// NumElements returns the total number of elements.
func (m *Matrix) NumElements() int { return m.rows * m.cols }

// At returns the element at (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.cols+col]
}

// Set writes the element at (row, col).
func (m *Matrix) Set(row, col int, v float64) {
	m.data[row*m.cols+col] = v
}

// Row returns the given row as a subslice of the backing buffer.
// The slice aliases the matrix data.
func (m *Matrix) Row(row int) []float64 {
	return m.data[row*m.cols : (row+1)*m.cols]
}

// Data returns the raw row-major backing slice.
// WARNING: direct access to underlying memory. Use with caution.
func (m *Matrix) Data() []float64 { return m.data }

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{rows: m.rows, cols: m.cols, data: data}
}

// SameShape reports whether both matrices have identical extents.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// Equal reports whether both matrices have identical extents and elements.
func (m *Matrix) Equal(other *Matrix) bool {
	if !m.SameShape(other) {
		return false
	}
	for i, v := range m.data {
		if other.data[i] != v {
			return false
		}
	}
	return true
}

// String returns a compact shape description, e.g. "Matrix(3x4)".
func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.rows, m.cols)
}

// Vector is a dense 1D buffer of float64 values.
type Vector []float64

// NewVector creates a zero-filled vector of length n.
func NewVector(n int) Vector { return make(Vector, n) }

// Clone returns a deep copy of the vector.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)
	return out
}
