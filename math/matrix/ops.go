// File: math/matrix/ops.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Matrix arithmetic, Gauss-Jordan inversion, and vector operations.
// Shape violations on the vector helpers panic, mirroring the arithmetic
// contract: a misshapen operand is a programmer error, not an input error.

package matrix

import "math"

// Add returns a + b.
func Add(a, b *Matrix) (*Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, ErrSizeMismatch
	}
	result := Zeros(a.Rows, a.Cols)
	for i := range a.Data {
		result.Data[i] = a.Data[i] + b.Data[i]
	}
	return result, nil
}

// Sub returns a - b.
func Sub(a, b *Matrix) (*Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, ErrSizeMismatch
	}
	result := Zeros(a.Rows, a.Cols)
	for i := range a.Data {
		result.Data[i] = a.Data[i] - b.Data[i]
	}
	return result, nil
}

// Mul returns the matrix product a·b, the naive triple loop.
func Mul(a, b *Matrix) (*Matrix, error) {
	if a.Cols != b.Rows {
		return nil, ErrSizeMismatch
	}
	result := Zeros(a.Rows, b.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			sum := 0.0
			for k := 0; k < a.Cols; k++ {
				sum += a.At(i, k) * b.At(k, j)
			}
			result.Set(i, j, sum)
		}
	}
	return result, nil
}

// Div returns the element-wise quotient a / b.
func Div(a, b *Matrix) (*Matrix, error) {
	if a.Rows != b.Rows || a.Cols != b.Cols {
		return nil, ErrSizeMismatch
	}
	result := Zeros(a.Rows, a.Cols)
	for i := range a.Data {
		result.Data[i] = a.Data[i] / b.Data[i]
	}
	return result, nil
}

// Transpose returns the transpose of m.
func Transpose(m *Matrix) *Matrix {
	result := Zeros(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			result.Set(j, i, m.At(i, j))
		}
	}
	return result
}

// Scale returns m with every element multiplied by scalar.
func Scale(m *Matrix, scalar float64) *Matrix {
	result := Zeros(m.Rows, m.Cols)
	for i, v := range m.Data {
		result.Data[i] = v * scalar
	}
	return result
}

// Power returns m with every element raised to scalar.
func Power(m *Matrix, scalar float64) *Matrix {
	result := Zeros(m.Rows, m.Cols)
	for i, v := range m.Data {
		result.Data[i] = math.Pow(v, scalar)
	}
	return result
}

// Determinant computes det(m) by cofactor expansion along the first row.
// Panics when m is not square.
func Determinant(m *Matrix) float64 {
	if m.Rows != m.Cols {
		panic("matrix: determinant of a non-square matrix")
	}

	n := m.Rows
	if n == 1 {
		return m.At(0, 0)
	}
	if n == 2 {
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	}

	det := 0.0
	for col := 0; col < n; col++ {
		sign := 1.0
		if col%2 == 1 {
			sign = -1.0
		}
		det += sign * m.At(0, col) * Determinant(m.Minor(0, col))
	}
	return det
}

// Eigenvalues returns the real eigenvalues of a 2x2 matrix in descending
// order. Panics for non-square input, complex eigenvalues, or orders
// beyond 2.
func Eigenvalues(m *Matrix) []float64 {
	if m.Rows != m.Cols {
		panic("matrix: eigenvalues of a non-square matrix")
	}
	if m.Rows != 2 {
		panic("matrix: eigenvalues beyond 2x2 not implemented")
	}

	trace := m.At(0, 0) + m.At(1, 1)
	discriminant := trace*trace - 4.0*Determinant(m)
	if discriminant < 0.0 {
		panic("matrix: complex eigenvalues not supported")
	}

	sq := math.Sqrt(discriminant)
	return []float64{(trace + sq) / 2.0, (trace - sq) / 2.0}
}

// Inverse computes the inverse of a square matrix by Gauss-Jordan
// elimination with partial pivoting, rounding the result to six decimals.
// ok is false when the matrix is singular. Panics when m is not square.
func Inverse(m *Matrix) (*Matrix, bool) {
	if m.Rows != m.Cols {
		panic("matrix: inverse of a non-square matrix")
	}

	n := m.Rows
	aug := Zeros(n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Data[i*aug.Cols+j] = m.Data[i*m.Cols+j]
		}
		aug.Data[i*aug.Cols+i+n] = 1.0
	}

	for i := 0; i < n; i++ {
		pivotRow := i
		for j := i + 1; j < n; j++ {
			if math.Abs(aug.Data[j*aug.Cols+i]) > math.Abs(aug.Data[pivotRow*aug.Cols+i]) {
				pivotRow = j
			}
		}
		if pivotRow != i {
			for j := 0; j < 2*n; j++ {
				aug.Data[i*aug.Cols+j], aug.Data[pivotRow*aug.Cols+j] =
					aug.Data[pivotRow*aug.Cols+j], aug.Data[i*aug.Cols+j]
			}
		}

		pivot := aug.Data[i*aug.Cols+i]
		if pivot == 0.0 {
			return nil, false
		}
		for j := 0; j < 2*n; j++ {
			aug.Data[i*aug.Cols+j] /= pivot
		}

		for k := 0; k < n; k++ {
			if k == i {
				continue
			}
			factor := aug.Data[k*aug.Cols+i]
			for j := 0; j < 2*n; j++ {
				aug.Data[k*aug.Cols+j] -= factor * aug.Data[i*aug.Cols+j]
			}
		}
	}

	inv := Zeros(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			inv.Data[i*n+j] = math.Round(aug.Data[i*aug.Cols+j+n]*1e6) / 1e6
		}
	}
	return inv, true
}

// Dot returns the dot product of two vectors of equal length. Operands
// must be 1xN or Nx1.
func Dot(a, b *Matrix) float64 {
	if !isVector(a) || !isVector(b) {
		panic("matrix: dot product requires 1xN or Nx1 vectors")
	}
	if a.Rows*a.Cols != b.Rows*b.Cols {
		panic("matrix: dot product vector sizes must match")
	}
	sum := 0.0
	for i := range a.Data {
		sum += a.Data[i] * b.Data[i]
	}
	return sum
}

// Magnitude returns the Euclidean norm of a vector.
func Magnitude(vec *Matrix) float64 {
	if !isVector(vec) {
		panic("matrix: magnitude requires a vector")
	}
	sum := 0.0
	for _, v := range vec.Data {
		sum += v * v
	}
	return math.Sqrt(sum)
}

// Normalize returns vec scaled to unit length. Panics on a zero vector.
func Normalize(vec *Matrix) *Matrix {
	mag := Magnitude(vec)
	if mag == 0.0 {
		panic("matrix: cannot normalize a zero vector")
	}
	return Scale(vec, 1.0/mag)
}

// Cross returns the cross product of two 3-element vectors as a 3x1
// column.
func Cross(a, b *Matrix) *Matrix {
	if a.Rows*a.Cols != 3 || b.Rows*b.Cols != 3 {
		panic("matrix: cross product requires 3D vectors")
	}

	x1, y1, z1 := a.Data[0], a.Data[1], a.Data[2]
	x2, y2, z2 := b.Data[0], b.Data[1], b.Data[2]

	return New(3, 1, []float64{
		y1*z2 - z1*y2,
		z1*x2 - x1*z2,
		x1*y2 - y1*x2,
	})
}

// Projection returns the projection of a onto b. Panics when b is zero.
func Projection(a, b *Matrix) *Matrix {
	dot := Dot(a, b)
	magSq := Dot(b, b)
	if magSq == 0.0 {
		panic("matrix: cannot project onto a zero vector")
	}
	return Scale(b, dot/magSq)
}

// Angle returns the angle between two vectors in radians. Panics when
// either vector is zero.
func Angle(a, b *Matrix) float64 {
	dot := Dot(a, b)
	magA := Magnitude(a)
	magB := Magnitude(b)
	if magA == 0.0 || magB == 0.0 {
		panic("matrix: cannot compute angle with zero vector")
	}
	return math.Acos(dot / (magA * magB))
}

func isVector(m *Matrix) bool {
	return m.Rows == 1 || m.Cols == 1
}
