package numeric

import (
	"math"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b.
// GCD(0, b) is b, so GCD(0, 0) is 0.
func GCD[T constraints.Unsigned](a, b T) T {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, or 0 if either is 0.
// The result wraps on overflow.
func LCM[T constraints.Unsigned](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}
	return a / GCD(a, b) * b
}

// Magnitude returns |v| as an uint64, which is exact even for math.MinInt64.
func Magnitude(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// IsSigned reports whether T is a signed integer type.
func IsSigned[T constraints.Integer]() bool {
	var zero T
	return ^zero < zero
}

// FitsInt64 reports whether v can be stored in an int64 without loss.
func FitsInt64[T constraints.Integer](v T) bool {
	if IsSigned[T]() {
		return true
	}
	return uint64(v) <= math.MaxInt64
}

// CompareProducts compares a*b with c*d using full 128-bit products and
// returns -1, 0 or 1.
func CompareProducts(a, b, c, d uint64) int {
	hi1, lo1 := bits.Mul64(a, b)
	hi2, lo2 := bits.Mul64(c, d)
	switch {
	case hi1 < hi2 || (hi1 == hi2 && lo1 < lo2):
		return -1
	case hi1 == hi2 && lo1 == lo2:
		return 0
	default:
		return 1
	}
}
