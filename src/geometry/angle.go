package geometry

import (
	"fmt"
	"math"
	"slices"
)

// Angle is the unsigned angle between two points taken as vectors. It
// refers to both points and caches the two derived terms its ordering needs.
//
// Angles order by magnitude: acute before right before obtuse, and within
// a bucket by the exact cos² = DotProduct² / NormProdSq, compared without
// division. Two angles are equal when they have the same magnitude, whatever
// their orientation.
type Angle struct {
	v, w *Point

	DotProduct int64
	NormProdSq int64
}

// NewAngle never fails. The ordering is only exact if v.NormSq*w.NormSq fits
// an int64, which NewAngleChecked verifies.
func NewAngle(v, w *Point) Angle {
	return Angle{
		v:          v,
		w:          w,
		DotProduct: v.Dot(*w),
		NormProdSq: v.NormSq * w.NormSq,
	}
}

func NewAngleChecked(v, w *Point) (Angle, error) {
	if v.NormSq < 0 || w.NormSq < 0 {
		return Angle{}, fmt.Errorf("%w: negative squared norm", ErrAngleRange)
	}
	hi, lo := WideProduct(uint64(v.NormSq), uint64(w.NormSq))
	if hi != 0 || lo > maxInt64 {
		return Angle{}, fmt.Errorf("%w: norm product of %s and %s", ErrAngleRange, v, w)
	}
	// dot² <= |v|²|w|², so the squared dot product fits as well.
	return NewAngle(v, w), nil
}

func (a Angle) V() *Point { return a.v }

func (a Angle) W() *Point { return a.w }

func (a Angle) dotSq() uint64 {
	d := abs64(a.DotProduct)
	return d * d
}

// Cmp returns -1 if a is the smaller angle, +1 if it is the larger one and 0
// if both have the same magnitude.
func (a Angle) Cmp(o Angle) int {
	as, bs := sign(a.DotProduct), sign(o.DotProduct)
	if as != bs {
		if bs < as {
			return -1
		}
		return 1
	}
	if as < 0 {
		return Wide(uint64(o.NormProdSq), a.dotSq()).Cmp(Wide(uint64(a.NormProdSq), o.dotSq()))
	}
	return Wide(uint64(a.NormProdSq), o.dotSq()).Cmp(Wide(uint64(o.NormProdSq), a.dotSq()))
}

func (a Angle) Less(o Angle) bool { return a.Cmp(o) < 0 }

func (a Angle) Equal(o Angle) bool {
	return sign(a.DotProduct) == sign(o.DotProduct) &&
		Wide(o.dotSq(), uint64(a.NormProdSq)).Equal(Wide(a.dotSq(), uint64(o.NormProdSq)))
}

// Cos2 is the signed, exact cos² of the angle: sign(dot) * dot² / |v|²|w|².
func (a Angle) Cos2() Rational64 {
	return NewRational64(sign(a.DotProduct), a.dotSq(), uint64(a.NormProdSq))
}

// Degrees approximates the angle for display. Angles involving the origin
// report NaN.
func (a Angle) Degrees() float64 {
	c := a.Cos2()
	if c.IsNaN() {
		return math.NaN()
	}
	cos := float64(c.Sign()) * math.Sqrt(math.Abs(c.Float64()))
	return math.Acos(math.Max(-1, math.Min(1, cos))) * 180 / math.Pi
}

func (a Angle) String() string {
	return fmt.Sprintf("∠(%s, %s)", a.v, a.w)
}

// SortAngles sorts angles from smallest to largest. The sort is stable.
func SortAngles(angles []Angle) {
	slices.SortStableFunc(angles, Angle.Cmp)
}
