package geometry

import (
	"fmt"
	"slices"
)

// Point is a radius vector from the origin with its squared norm
// precomputed. Points are immutable values.
//
// Points are totally ordered by direction: the bottom half-plane (y < 0, or
// y == 0 and x < 0) comes first, then the top half-plane; inside a half, p
// precedes q when p.Y*q.X - p.X*q.Y > 0, which sweeps each half clockwise:
// (0,-1) before (-1,0) before (0,1) before (1,0). Points on the same ray
// compare equal regardless of length.
//
// The origin is classified as top and is cross-equal to every point, so it
// breaks transitivity. Exclude it from any set that is sorted.
type Point struct {
	X, Y   int64
	NormSq int64
}

// NewPoint builds a point without checking its coordinates. Callers must keep
// |x| and |y| within MaxCoordinate; use NewPointChecked otherwise.
func NewPoint(x, y int64) Point {
	return Point{X: x, Y: y, NormSq: x*x + y*y}
}

func NewPointChecked(x, y int64) (Point, error) {
	if !inRange(MaxCoordinate, x, y) {
		return Point{}, newRangeError(MaxCoordinate, x, y)
	}
	return NewPoint(x, y), nil
}

func (p Point) IsOrigin() bool {
	return p.X == 0 && p.Y == 0
}

// Bottom reports whether p lies in the half-plane ordered first.
func (p Point) Bottom() bool {
	return p.Y < 0 || (p.Y == 0 && p.X < 0)
}

// Cross returns the sign of p.Y*q.X - p.X*q.Y.
func (p Point) Cross(q Point) int {
	return CompareProducts(p.Y, q.X, p.X, q.Y)
}

func (p Point) Dot(q Point) int64 {
	return p.X*q.X + p.Y*q.Y
}

// Cmp returns -1 if p precedes q, +1 if q precedes p, and 0 if both lie on
// the same line through the origin within the same half-plane.
func (p Point) Cmp(q Point) int {
	pb, qb := p.Bottom(), q.Bottom()
	if pb != qb {
		if pb {
			return -1
		}
		return 1
	}
	return -p.Cross(q)
}

func (p Point) Less(q Point) bool { return p.Cmp(q) < 0 }

// Equal reports order-equality, not coordinate identity.
func (p Point) Equal(q Point) bool { return p.Cmp(q) == 0 }

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// SortPoints sorts points by direction. The sort is stable, so points on
// the same ray keep their relative order.
func SortPoints(points []Point) {
	slices.SortStableFunc(points, Point.Cmp)
}
