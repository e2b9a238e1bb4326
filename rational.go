// Package fraction provides exact rational numbers with int64 numerator and
// denominator, always kept in lowest terms.
package fraction

import (
	"fmt"
	"math"

	"github.com/QuangTung97/fraction/numeric"
	"golang.org/x/exp/constraints"
)

// Rational is a rational number in canonical form: the denominator is
// positive and coprime with the numerator, and zero is always 0/1.
//
// The zero value is 0/1 and ready to use. Rational has value semantics, so
// two values can be compared with == and copied freely.
type Rational struct {
	num int64
	den int64 // denominator minus one, so the zero value is 0/1
}

// New returns numerator/denominator reduced to lowest terms.
//
// It accepts any integer type. Operands that do not fit in an int64, or whose
// reduced form has no positive int64 denominator, are rejected with an
// *InvalidOperandError. A zero denominator yields ErrDivisionByZero.
func New[T constraints.Integer](numerator, denominator T) (Rational, error) {
	if !numeric.FitsInt64(numerator) {
		return Rational{}, &InvalidOperandError{
			Operand: "numerator",
			Value:   fmt.Sprint(numerator),
			Reason:  "out of int64 range",
		}
	}
	if !numeric.FitsInt64(denominator) {
		return Rational{}, &InvalidOperandError{
			Operand: "denominator",
			Value:   fmt.Sprint(denominator),
			Reason:  "out of int64 range",
		}
	}
	return newRational(int64(numerator), int64(denominator))
}

// MustNew is like New but panics on error.
func MustNew[T constraints.Integer](numerator, denominator T) Rational {
	r, err := New(numerator, denominator)
	if err != nil {
		panic(err)
	}
	return r
}

// FromInt64 returns the whole number n/1.
func FromInt64(n int64) Rational {
	return Rational{num: n}
}

func newRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %d/0", ErrDivisionByZero, num)
	}

	numMag := numeric.Magnitude(num)
	denMag := numeric.Magnitude(den)
	g := numeric.GCD(numMag, denMag)
	numMag /= g
	denMag /= g

	negative := (num < 0) != (den < 0)
	if denMag > math.MaxInt64 {
		return Rational{}, &InvalidOperandError{
			Operand: "denominator",
			Value:   fmt.Sprint(den),
			Reason:  "no positive int64 denominator after reduction",
		}
	}
	if numMag > math.MaxInt64 && !(negative && numMag == 1<<63) {
		return Rational{}, &InvalidOperandError{
			Operand: "numerator",
			Value:   fmt.Sprint(num),
			Reason:  "out of int64 range after sign normalization",
		}
	}

	n := int64(numMag)
	if negative {
		n = -n
	}
	return Rational{num: n, den: int64(denMag) - 1}, nil
}

// reduceWrapped is newRational for results of arithmetic, which wrap silently
// on overflow. Failures are reported as ErrOverflow, never ErrDivisionByZero.
func reduceWrapped(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: %d/0", ErrOverflow, num)
	}
	r, err := newRational(num, den)
	if err != nil {
		return Rational{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return r, nil
}

// reduce is like reduceWrapped but panics when wrapping destroyed the
// denominator.
func reduce(num, den int64) Rational {
	r, err := reduceWrapped(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Numerator returns the numerator in canonical form.
func (r Rational) Numerator() int64 {
	return r.num
}

// Denominator returns the denominator in canonical form, always positive.
func (r Rational) Denominator() int64 {
	return r.den + 1
}

// IsZero ...
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Sign returns -1, 0 or 1.
func (r Rational) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}

// commonDenominator rescales x and y to lcm(x.den, y.den) and returns the
// rescaled numerators along with that denominator.
func commonDenominator(x, y Rational) (xNum int64, yNum int64, den int64) {
	xd := uint64(x.Denominator())
	yd := uint64(y.Denominator())
	m := numeric.LCM(xd, yd)
	return x.num * int64(m/xd), y.num * int64(m/yd), int64(m)
}

// Equal reports whether r == y.
func (r Rational) Equal(y Rational) bool {
	return r.num == y.num && r.den == y.den
}

// NotEqual reports whether r != y.
func (r Rational) NotEqual(y Rational) bool {
	return !r.Equal(y)
}

// Less reports whether r < y. The rescaled numerators are compared with
// 128-bit products, so the order is exact for every pair of values.
func (r Rational) Less(y Rational) bool {
	rSign, ySign := r.Sign(), y.Sign()
	if rSign != ySign {
		return rSign < ySign
	}
	if rSign == 0 {
		return false
	}

	c := numeric.CompareProducts(
		numeric.Magnitude(r.num), uint64(y.Denominator()),
		numeric.Magnitude(y.num), uint64(r.Denominator()),
	)
	if rSign > 0 {
		return c < 0
	}
	return c > 0
}

// Greater reports whether r > y.
func (r Rational) Greater(y Rational) bool {
	return y.Less(r)
}

// LessOrEqual reports whether r <= y.
func (r Rational) LessOrEqual(y Rational) bool {
	return !y.Less(r)
}

// GreaterOrEqual reports whether r >= y.
func (r Rational) GreaterOrEqual(y Rational) bool {
	return !r.Less(y)
}

// Cmp returns -1 if r < y, 0 if r == y and 1 if r > y.
func (r Rational) Cmp(y Rational) int {
	if r.Equal(y) {
		return 0
	}
	if r.Less(y) {
		return -1
	}
	return 1
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{num: -r.num, den: r.den}
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	if r.num < 0 {
		return r.Neg()
	}
	return r
}

// Add returns r + y. Intermediate values wrap on int64 overflow.
func (r Rational) Add(y Rational) Rational {
	rNum, yNum, den := commonDenominator(r, y)
	return reduce(rNum+yNum, den)
}

// Sub returns r - y.
func (r Rational) Sub(y Rational) Rational {
	return r.Add(y.Neg())
}

// Mul returns r * y. Intermediate values wrap on int64 overflow.
func (r Rational) Mul(y Rational) Rational {
	return reduce(r.num*y.num, r.Denominator()*y.Denominator())
}

// Inverse returns 1/r, or ErrDivisionByZero if r is zero.
func (r Rational) Inverse() (Rational, error) {
	if r.num == 0 {
		return Rational{}, fmt.Errorf("%w: inverse of %v", ErrDivisionByZero, r)
	}
	return newRational(r.Denominator(), r.num)
}

// Div returns r / y, or ErrDivisionByZero if y is zero. Results that wrap
// past int64 into an invalid form return ErrOverflow.
func (r Rational) Div(y Rational) (Rational, error) {
	if y.num == 0 {
		return Rational{}, fmt.Errorf("%w: %v / %v", ErrDivisionByZero, r, y)
	}
	q, err := reduceWrapped(r.num*y.Denominator(), r.Denominator()*y.num)
	if err != nil {
		return Rational{}, fmt.Errorf("%v / %v: %w", r, y, err)
	}
	return q, nil
}

// AddAssign sets r to r + y.
func (r *Rational) AddAssign(y Rational) {
	*r = r.Add(y)
}

// SubAssign sets r to r - y.
func (r *Rational) SubAssign(y Rational) {
	*r = r.Sub(y)
}

// MulAssign sets r to r * y.
func (r *Rational) MulAssign(y Rational) {
	*r = r.Mul(y)
}

// DivAssign sets r to r / y. On error r is left unchanged.
func (r *Rational) DivAssign(y Rational) error {
	q, err := r.Div(y)
	if err != nil {
		return err
	}
	*r = q
	return nil
}

// String formats r as "numerator/denominator".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.Denominator())
}
