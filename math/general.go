// File: math/general.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Generic exponentiation, extended GCD, modular arithmetic, primality
// and factorization over 64-bit integers.

package math

import "math/bits"

// FastPower raises base to exp by binary exponentiation with the supplied
// product operation. identity must be the neutral element of mul.
func FastPower[T any](base T, exp uint64, identity T, mul func(T, T) T) T {
	if exp == 0 {
		return identity
	}

	result := identity
	for exp > 0 {
		if exp&1 == 1 {
			result = mul(result, base)
		}
		base = mul(base, base)
		exp >>= 1
	}
	return result
}

// ExtendedGCD returns gcd(a, b) together with Bézout coefficients x, y
// satisfying a·x + b·y = gcd.
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}

	gcd, x1, y1 := ExtendedGCD(b%a, a)
	return gcd, y1 - (b/a)*x1, x1
}

// ModInverse returns the multiplicative inverse of a modulo m.
// ok is false when gcd(a, m) != 1 and no inverse exists.
func ModInverse(a, m int64) (int64, bool) {
	gcd, x, _ := ExtendedGCD(a, m)
	if gcd != 1 {
		return 0, false
	}
	return ((x % m) + m) % m, true
}

// ModPow returns base^exp mod modulus. Intermediate products are 128-bit,
// so any uint64 modulus is safe.
func ModPow(base, exp, modulus uint64) uint64 {
	if modulus == 1 {
		return 0
	}

	base %= modulus
	result := uint64(1)
	for exp > 0 {
		if exp&1 == 1 {
			result = mulMod(result, base, modulus)
		}
		base = mulMod(base, base, modulus)
		exp >>= 1
	}
	return result
}

// mulMod computes a·b mod m through a 128-bit product. a and b must
// already be reduced mod m, which keeps the high word below m.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// IsPrime reports whether n is prime. The Miller-Rabin witness set 2..37
// is deterministic for all 64-bit inputs.
func IsPrime(n uint64) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}

	witnesses := [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

	d, s := factorPowerOfTwo(n - 1)

	for _, a := range witnesses {
		if a >= n {
			break
		}
		x := ModPow(a, d, n)

		if x == 1 || x == n-1 {
			continue
		}

		passed := false
		for r := uint64(1); r < s; r++ {
			x = ModPow(x, 2, n)
			if x == n-1 {
				passed = true
				break
			}
		}

		if !passed {
			return false
		}
	}

	return true
}

// factorPowerOfTwo writes n as d·2^s with d odd.
func factorPowerOfTwo(n uint64) (d, s uint64) {
	d = n
	for d%2 == 0 {
		d /= 2
		s++
	}
	return d, s
}

// ISqrt returns the integer square root of n by Newton iteration.
func ISqrt(n uint64) uint64 {
	if n <= 1 {
		return n
	}

	x := n
	y := x/2 + x%2 // ceil(x/2), avoids overflowing x+1
	for y < x {
		x = y
		y = (x + n/x) / 2
	}
	return x
}

// PrimeFactors returns the prime factorization of n in ascending order,
// trial-dividing 2, 3 and then 6k±1 candidates. Returns nil for n < 2.
func PrimeFactors(n uint64) []uint64 {
	if n < 2 {
		return nil
	}

	var factors []uint64
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	for n%3 == 0 {
		factors = append(factors, 3)
		n /= 3
	}

	i := uint64(5)
	inc := uint64(2)
	for i <= n/i {
		for n%i == 0 {
			factors = append(factors, i)
			n /= i
		}
		i += inc
		inc = 6 - inc
	}

	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
