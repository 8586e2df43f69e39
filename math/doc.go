// File: math/doc.go
// Author: wyattgill9 <wyattgill9@gmail.com>
// License: Apache-2.0
//
// Package math provides number-theory helpers: arbitrary-precision
// Fibonacci numbers, generic binary exponentiation, modular arithmetic,
// deterministic 64-bit primality testing and factorization.
package math
