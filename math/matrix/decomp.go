// File: math/matrix/decomp.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Matrix decompositions.

package matrix

import "math"

// LU factors a square matrix into lower and upper triangular parts by
// Doolittle elimination without row exchanges, so the lower factor keeps a
// unit diagonal. A pivot with magnitude below 1e-9 reports
// ErrSingularMatrix.
func LU(m *Matrix) (lower, upper *Matrix, err error) {
	if m.Rows != m.Cols {
		return nil, nil, ErrNotSquare
	}

	n := m.Rows
	lower = Identity(n)
	upper = m.Clone()

	for i := 0; i < n; i++ {
		if math.Abs(upper.At(i, i)) < 1e-9 {
			return nil, nil, ErrSingularMatrix
		}

		for j := i + 1; j < n; j++ {
			factor := upper.At(j, i) / upper.At(i, i)
			lower.Set(j, i, factor)

			for k := i; k < n; k++ {
				upper.Set(j, k, upper.At(j, k)-factor*upper.At(i, k))
			}
		}
	}

	return lower, upper, nil
}
