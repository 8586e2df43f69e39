// File: math/matrix/matrix.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Dense row-major matrix representation and construction helpers.

package matrix

import (
	"fmt"
	"strings"
)

// Matrix is a dense row-major matrix. Element (r, c) lives at
// Data[r*Cols+c].
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// New builds a matrix over the given backing data, which is used as-is,
// not copied. Panics when len(data) != rows*cols.
func New(rows, cols int, data []float64) *Matrix {
	if len(data) != rows*cols {
		panic(fmt.Sprintf("matrix: New(%d, %d) with %d elements", rows, cols, len(data)))
	}
	return &Matrix{Rows: rows, Cols: cols, Data: data}
}

// Zeros returns a rows x cols matrix of zeros.
func Zeros(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, Data: make([]float64, rows*cols)}
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m.Data[i*n+i] = 1.0
	}
	return m
}

// At returns element (row, col).
func (m *Matrix) At(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

// Set stores value at element (row, col).
func (m *Matrix) Set(row, col int, value float64) {
	m.Data[row*m.Cols+col] = value
}

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.Data))
	copy(data, m.Data)
	return &Matrix{Rows: m.Rows, Cols: m.Cols, Data: data}
}

// Equal reports exact element-wise equality of equally shaped matrices.
func (m *Matrix) Equal(other *Matrix) bool {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return false
	}
	for i, v := range m.Data {
		if v != other.Data[i] {
			return false
		}
	}
	return true
}

// Minor returns m with the given row and column removed.
func (m *Matrix) Minor(row, col int) *Matrix {
	data := make([]float64, 0, (m.Rows-1)*(m.Cols-1))
	for r := 0; r < m.Rows; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.Cols; c++ {
			if c == col {
				continue
			}
			data = append(data, m.At(r, c))
		}
	}
	return New(m.Rows-1, m.Cols-1, data)
}

// String renders the matrix one row per line.
func (m *Matrix) String() string {
	var b strings.Builder
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			fmt.Fprintf(&b, "%g ", m.Data[i*m.Cols+j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
