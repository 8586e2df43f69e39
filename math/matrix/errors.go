// File: math/matrix/errors.go
// Author: wyattgill9 <wyattgill9@gmail.com>
//
// Error values shared by the matrix operations.

package matrix

import "fmt"

var (
	// ErrSizeMismatch reports operand shapes that do not line up.
	ErrSizeMismatch = fmt.Errorf("matrix size mismatch")
	// ErrNotSquare reports an operation that requires a square matrix.
	ErrNotSquare = fmt.Errorf("matrix is not square")
	// ErrSingularMatrix reports a matrix without the required full rank.
	ErrSingularMatrix = fmt.Errorf("matrix is singular")
)
