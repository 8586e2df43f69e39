package math

import (
	"math/big"
	"testing"
)

func TestFib_BaseCases(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 5},
		{10, 55},
		{15, 610},
		{20, 6765},
	}
	for _, c := range cases {
		if got := Fib(c.n); got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("Fib(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestFib_NegativeIndices(t *testing.T) {
	cases := []struct {
		n    int64
		want int64
	}{
		{-1, 1},
		{-2, -1},
		{-3, 2},
		{-4, -3},
		{-5, 5},
		{-6, -8},
		{-10, -55},
	}
	for _, c := range cases {
		if got := Fib(c.n); got.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("Fib(%d) = %s, want %d", c.n, got, c.want)
		}
	}
}

func TestFib_LucasPair(t *testing.T) {
	// L(n) spot checks: 2, 1, 3, 4, 7, 11, 18, ...
	cases := []struct {
		n    int64
		want int64
	}{
		{0, 2},
		{1, 1},
		{2, 3},
		{3, 4},
		{4, 7},
		{5, 11},
		{10, 123},
	}
	for _, c := range cases {
		if _, l := fibLuc(c.n); l.Cmp(big.NewInt(c.want)) != 0 {
			t.Errorf("L(%d) = %s, want %d", c.n, l, c.want)
		}
	}
}

func TestFib_Large(t *testing.T) {
	want, _ := new(big.Int).SetString("354224848179261915075", 10)
	if got := Fib(100); got.Cmp(want) != 0 {
		t.Errorf("Fib(100) = %s, want %s", got, want)
	}

	// F(n) = F(n-1) + F(n-2) must hold far beyond machine words.
	n := int64(500)
	sum := new(big.Int).Add(Fib(n-1), Fib(n-2))
	if got := Fib(n); got.Cmp(sum) != 0 {
		t.Errorf("Fib(%d) does not satisfy the recurrence", n)
	}
}
