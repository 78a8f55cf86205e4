// File: arith.go
// Title: Checked Integer Arithmetic
// Description: Overflow-checked int64 arithmetic and floor integer
//              division shared by the duration, time-point and calendar
//              packages. Tick counts never wrap silently.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package arith

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Add returns a+b and false if the sum overflows int64.
func Add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return c, false
	}
	return c, true
}

// Sub returns a-b and false if the difference overflows int64.
func Sub(a, b int64) (int64, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return c, false
	}
	return c, true
}

// Neg returns -a and false for math.MinInt64.
func Neg(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return a, false
	}
	return -a, true
}

// Mul returns a*b and false if the product overflows int64.
func Mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return c, false
	}
	return c, true
}

// MulDiv returns x*num/den truncated toward zero. The product is formed in
// 128 bits so only the final quotient has to fit int64. den must be positive.
func MulDiv(x, num, den int64) (int64, bool) {
	if den <= 0 {
		return 0, false
	}
	neg := (x < 0) != (num < 0)
	ax, an := abs(x), abs(num)

	hi, lo := bits.Mul64(ax, an)
	if hi >= uint64(den) {
		return 0, false
	}
	q, _ := bits.Div64(hi, lo, uint64(den))
	return fromMagnitude(q, neg)
}

func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func fromMagnitude(q uint64, neg bool) (int64, bool) {
	if neg {
		if q > uint64(math.MaxInt64)+1 {
			return 0, false
		}
		return int64(-q), true
	}
	if q > math.MaxInt64 {
		return 0, false
	}
	return int64(q), true
}

// FloorDiv returns the quotient a/b rounded toward negative infinity.
func FloorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a - b*FloorDiv(a, b); the result has the sign of b.
func FloorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
