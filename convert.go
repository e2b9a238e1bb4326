package fraction

import (
	"fmt"
	"math/big"

	"github.com/QuangTung97/fraction/numeric"
	"github.com/shopspring/decimal"
)

// ExtendedPrecision is the mantissa size used by BigFloat, matching the
// 64-bit significand of an x87 extended double.
const ExtendedPrecision = 64

// Float64 returns numerator / denominator computed in float64.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.Denominator())
}

// Float32 returns numerator / denominator computed in float32.
func (r Rational) Float32() float32 {
	return float32(r.num) / float32(r.Denominator())
}

// BigFloat returns numerator / denominator computed with ExtendedPrecision
// bits of mantissa.
func (r Rational) BigFloat() *big.Float {
	n := new(big.Float).SetPrec(ExtendedPrecision).SetInt64(r.num)
	d := new(big.Float).SetPrec(ExtendedPrecision).SetInt64(r.Denominator())
	return n.Quo(n, d)
}

// Int64 returns r truncated toward zero.
func (r Rational) Int64() int64 {
	return r.num / r.Denominator()
}

// Int32 returns r truncated toward zero, then converted to int32.
func (r Rational) Int32() int32 {
	return int32(r.Int64())
}

// BigRat returns r as a new big.Rat.
func (r Rational) BigRat() *big.Rat {
	return big.NewRat(r.num, r.Denominator())
}

// FromBigRat converts x, failing if its numerator or denominator does not fit
// in an int64.
func FromBigRat(x *big.Rat) (Rational, error) {
	num, den := x.Num(), x.Denom()
	if !num.IsInt64() {
		return Rational{}, &InvalidOperandError{
			Operand: "numerator",
			Value:   num.String(),
			Reason:  "out of int64 range",
		}
	}
	if !den.IsInt64() {
		return Rational{}, &InvalidOperandError{
			Operand: "denominator",
			Value:   den.String(),
			Reason:  "out of int64 range",
		}
	}
	return newRational(num.Int64(), den.Int64())
}

// Decimal returns r rounded half away from zero to the given number of
// decimal places.
func (r Rational) Decimal(places int32) decimal.Decimal {
	n := decimal.New(r.num, 0)
	d := decimal.New(r.Denominator(), 0)
	return n.DivRound(d, places)
}

// maxDecimalExponent is the largest power of ten an int64 numerator can hold.
const maxDecimalExponent = 18

// FromDecimal converts d exactly, failing if the result does not fit in an
// int64 rational.
func FromDecimal(d decimal.Decimal) (Rational, error) {
	coef := d.Coefficient()
	if coef.Sign() == 0 {
		return Rational{}, nil
	}

	exp := int64(d.Exponent())
	if exp > maxDecimalExponent {
		return Rational{}, &InvalidOperandError{
			Operand: "numerator",
			Value:   fmt.Sprintf("%se%d", coef, exp),
			Reason:  "out of int64 range",
		}
	}
	// 10^k keeps more than 63 factors of two in the denominator unless the
	// coefficient cancels them, and it has at most BitLen of them.
	if -exp > int64(coef.BitLen())+63 {
		return Rational{}, &InvalidOperandError{
			Operand: "denominator",
			Value:   fmt.Sprintf("%se%d", coef, exp),
			Reason:  "out of int64 range",
		}
	}

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(numeric.Magnitude(exp))), nil)

	x := new(big.Rat)
	if exp >= 0 {
		x.SetInt(coef.Mul(coef, scale))
	} else {
		x.SetFrac(coef, scale)
	}
	return FromBigRat(x)
}
