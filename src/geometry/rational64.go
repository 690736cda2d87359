package geometry

import (
	"math"
)

// Rational64 is a signed ratio of two unsigned 64-bit magnitudes. It is
// compared exactly by cross-multiplying through WideProduct.
type Rational64 struct {
	numerator   uint64
	denominator uint64
	sign        int
}

func NewRational64(sign int, numerator, denominator uint64) Rational64 {
	r := Rational64{numerator: numerator, denominator: denominator}
	switch {
	case numerator == 0:
		r.sign = 0
	case sign < 0:
		r.sign = -1
	default:
		r.sign = 1
	}
	return r
}

func rational64FromInt64s(numerator, denominator int64) Rational64 {
	r := Rational64{}

	if numerator > 0 {
		r.sign = 1
		r.numerator = uint64(numerator)
	} else if numerator < 0 {
		r.sign = -1
		r.numerator = abs64(numerator)
	}

	if denominator > 0 {
		r.denominator = uint64(denominator)
	} else if denominator < 0 {
		r.sign = -r.sign
		r.denominator = abs64(denominator)
	}

	return r
}

func (r Rational64) Sign() int { return r.sign }

func (r Rational64) Numerator() uint64 { return r.numerator }

func (r Rational64) Denominator() uint64 { return r.denominator }

func (r Rational64) isNegativeInfinity() bool {
	return (r.sign < 0) && (r.denominator == 0)
}

func (r Rational64) IsNaN() bool {
	return (r.sign == 0) && (r.denominator == 0)
}

// Cmp orders r and o as signed values. Infinities (zero denominator with a
// non-zero numerator) compare beyond every finite value; NaN compares equal to
// zero.
func (r Rational64) Cmp(o Rational64) int {
	if r.sign != o.sign {
		if r.sign < o.sign {
			return -1
		}
		return 1
	}
	if r.sign == 0 {
		return 0
	}
	m := Wide(r.numerator, o.denominator).Cmp(Wide(o.numerator, r.denominator))
	if r.sign < 0 {
		return -m
	}
	return m
}

// Float64 approximates r. It is meant for display only.
func (r Rational64) Float64() float64 {
	switch {
	case r.IsNaN():
		return math.NaN()
	case r.isNegativeInfinity():
		return math.Inf(-1)
	case r.denominator == 0:
		return math.Inf(1)
	}
	return float64(r.sign) * float64(r.numerator) / float64(r.denominator)
}
