// File: math/fib.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Fast-doubling Fibonacci over the paired Fibonacci/Lucas sequences.

package math

import "math/big"

// Fib returns the nth Fibonacci number. Negative indices follow the
// extension F(-n) = (-1)^(n+1) F(n).
func Fib(n int64) *big.Int {
	f, _ := fibLuc(n)
	return f
}

// fibLuc returns the pair (F(n), L(n)), recursing on the doubling
// identities F(2m) = F(m)·L(m) and L(2m) = L(m)² − 2·(−1)^m, with the odd
// step F(m+1) = (F(m)+L(m))/2, L(m+1) = (5·F(m)+L(m))/2.
func fibLuc(n int64) (fib, luc *big.Int) {
	if n == 0 {
		return big.NewInt(0), big.NewInt(2)
	}

	if n < 0 {
		f, l := fibLuc(-n)
		// F(-n) = (-1)^(n+1) F(n), L(-n) = (-1)^n L(n)
		if n%2 == 0 {
			f.Neg(f)
		} else {
			l.Neg(l)
		}
		return f, l
	}

	if n&1 == 1 {
		f, l := fibLuc(n - 1)
		fn := new(big.Int).Add(f, l)
		fn.Rsh(fn, 1)
		ln := new(big.Int).Mul(big.NewInt(5), f)
		ln.Add(ln, l)
		ln.Rsh(ln, 1)
		return fn, ln
	}

	half := n >> 1
	f, l := fibLuc(half)
	fn := new(big.Int).Mul(f, l)
	ln := new(big.Int).Mul(l, l)
	if half&1 == 0 {
		ln.Sub(ln, big.NewInt(2))
	} else {
		ln.Add(ln, big.NewInt(2))
	}
	return fn, ln
}
