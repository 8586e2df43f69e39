// File: math/matrix/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Package matrix implements dense row-major float64 matrices with basic
// arithmetic, Gauss-Jordan inversion, LU decomposition, and the usual
// vector operations over 1xN / Nx1 shapes.
package matrix
