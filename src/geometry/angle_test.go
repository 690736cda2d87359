package geometry

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func angleOf(vx, vy, wx, wy int64) Angle {
	v, w := NewPoint(vx, vy), NewPoint(wx, wy)
	return NewAngle(&v, &w)
}

func TestNewAngle(t *testing.T) {
	v, w := NewPoint(3, 4), NewPoint(-4, 3)
	a := NewAngle(&v, &w)
	require.Equal(t, int64(0), a.DotProduct)
	require.Equal(t, int64(625), a.NormProdSq)
	require.Same(t, &v, a.V())
	require.Same(t, &w, a.W())

	b := angleOf(1, 2, 3, 4)
	require.Equal(t, int64(11), b.DotProduct)
	require.Equal(t, int64(5*25), b.NormProdSq)
}

func TestNewAngleChecked(t *testing.T) {
	for idx, tc := range []struct {
		v, w Point
		ok   bool
	}{
		{NewPoint(1, 0), NewPoint(0, 1), true},
		{NewPoint(1<<15, 1<<15), NewPoint(-(1 << 15), 1<<15), true},
		{NewPoint(1<<15, 1<<15), NewPoint(1<<15, 1<<15), true},
		{NewPoint(1<<20, 0), NewPoint(1<<20, 0), false},
		{NewPoint(1<<20, 0), NewPoint(0, 1<<20), false},
		{NewPoint(MaxCoordinate, 0), NewPoint(1, 0), true},
		{NewPoint(MaxCoordinate, 0), NewPoint(2, 0), false},
		{NewPoint(MaxCoordinate, MaxCoordinate), NewPoint(1, 1), false},
		{NewPoint(1<<16, 1<<16), NewPoint(1<<14, -(1 << 14)), true},
	} {
		t.Run(fmt.Sprintf("%d/%s,%s", idx, tc.v, tc.w), func(t *testing.T) {
			a, err := NewAngleChecked(&tc.v, &tc.w)
			if !tc.ok {
				require.Error(t, err)
				require.True(t, errors.Is(err, ErrAngleRange))
				return
			}
			require.NoError(t, err)
			require.Equal(t, NewAngle(&tc.v, &tc.w), a)
		})
	}
}

func TestAngleSignBuckets(t *testing.T) {
	acute := angleOf(1, 0, 1, 1)
	right := angleOf(1, 0, 0, 1)
	obtuse := angleOf(1, 0, -1, 1)

	require.Equal(t, -1, acute.Cmp(right))
	require.Equal(t, -1, right.Cmp(obtuse))
	require.Equal(t, -1, acute.Cmp(obtuse))
	require.Equal(t, 1, obtuse.Cmp(acute))

	// Sign wins over any magnitude.
	nearlyRight := angleOf(1000, 1, 0, 1)
	require.True(t, nearlyRight.DotProduct > 0)
	require.True(t, nearlyRight.Less(right))
	nearlyStraight := angleOf(1000, 1, -1000, 0)
	require.True(t, right.Less(nearlyStraight))
}

func TestAngleOrthogonalEqual(t *testing.T) {
	a := angleOf(1, 0, 0, 1)
	b := angleOf(7, 3, -6, 14)
	c := angleOf(0, -5, 9, 0)
	require.Equal(t, int64(0), b.DotProduct)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	require.Equal(t, 0, a.Cmp(c))
}

func TestAngleMagnitudeEquality(t *testing.T) {
	// 45 degrees, built from differently scaled and rotated vectors.
	a := angleOf(1, 0, 1, 1)
	b := angleOf(0, 3, -3, 3)
	c := angleOf(-2, -2, 0, -5)
	require.True(t, a.Equal(b))
	require.True(t, a.Equal(c))
	require.Equal(t, 0, b.Cmp(c))

	// 135 degrees.
	d := angleOf(1, 0, -1, 1)
	e := angleOf(0, 2, 4, -4)
	require.True(t, d.Equal(e))
	require.False(t, a.Equal(d))
}

func TestSortAngles(t *testing.T) {
	// Listed from smallest to largest.
	want := []Angle{
		angleOf(1, 0, 1, 0),  // 0
		angleOf(2, 0, 3, 1),  // ~18.4
		angleOf(1, 0, 2, 1),  // ~26.6
		angleOf(1, 0, 1, 1),  // 45
		angleOf(1, 0, 1, 2),  // ~63.4
		angleOf(1, 0, 0, 1),  // 90
		angleOf(1, 0, -1, 2), // ~116.6
		angleOf(1, 0, -1, 1), // 135
		angleOf(1, 0, -2, 1), // ~153.4
		angleOf(1, 0, -1, 0), // 180
	}

	for i, a := range want {
		for j, b := range want {
			require.Equal(t, cmpInt(i, j), a.Cmp(b), "%s (%d) <=> %s (%d)", a, i, b, j)
		}
	}

	got := make([]Angle, len(want))
	for i := range want {
		got[i] = want[(i*3)%len(want)]
	}
	SortAngles(got)

	degrees := func(as []Angle) []float64 {
		out := make([]float64, len(as))
		for i, a := range as {
			out[i] = math.Round(a.Degrees()*10) / 10
		}
		return out
	}
	if diff := cmp.Diff(degrees(want), degrees(got)); diff != "" {
		t.Fatalf("sorted angles mismatch (-want +got):\n%s", diff)
	}

	// Already sorted input is left alone.
	again := append([]Angle(nil), got...)
	SortAngles(again)
	require.Equal(t, got, again)
}

func TestAngleDegrees(t *testing.T) {
	require.InDelta(t, 45.0, angleOf(1, 0, 1, 1).Degrees(), 1e-9)
	require.InDelta(t, 90.0, angleOf(0, 1, 1, 0).Degrees(), 1e-9)
	require.InDelta(t, 135.0, angleOf(1, 0, -1, 1).Degrees(), 1e-9)
	require.InDelta(t, 180.0, angleOf(1, 0, -3, 0).Degrees(), 1e-9)
	require.True(t, math.IsNaN(angleOf(0, 0, 1, 0).Degrees()))
}

func TestAngleCos2(t *testing.T) {
	c := angleOf(1, 0, -1, 1).Cos2()
	require.Equal(t, -1, c.Sign())
	require.Equal(t, uint64(1), c.Numerator())
	require.Equal(t, uint64(2), c.Denominator())
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
