package geometry

import (
	"cmp"
	"slices"
)

// ConvexHullComputer computes the convex hull of a set of integer points
// with a Graham scan driven by the exact Point ordering.
type ConvexHullComputer struct {
	// Vertices of the last computed hull, counter-clockwise, starting at
	// the lowest (then leftmost) input point. Collinear boundary points are
	// not vertices.
	Vertices []Coord
}

type hullEntry struct {
	c Coord
	p Point
}

// Compute replaces c.Vertices with the hull of coords. Every coordinate must
// be within MaxHullCoordinate.
func (c *ConvexHullComputer) Compute(coords []Coord) error {
	if len(coords) == 0 {
		c.Vertices = nil
		return nil
	}
	for _, v := range coords {
		if !inRange(MaxHullCoordinate, v.X, v.Y) {
			return newRangeError(MaxHullCoordinate, v.X, v.Y)
		}
	}

	pivot := coords[0]
	for _, v := range coords[1:] {
		if v.Y < pivot.Y || (v.Y == pivot.Y && v.X < pivot.X) {
			pivot = v
		}
	}

	// Relative to the pivot every other point is in the top half-plane, so
	// Point.Cmp sweeps them clockwise. Copies of the pivot would be the
	// origin and are dropped.
	entries := make([]hullEntry, 0, len(coords))
	for _, v := range coords {
		if v == pivot {
			continue
		}
		entries = append(entries, hullEntry{c: v, p: v.Sub(pivot).Point()})
	}
	slices.SortFunc(entries, func(a, b hullEntry) int {
		if o := a.p.Cmp(b.p); o != 0 {
			return o
		}
		return cmp.Compare(a.p.NormSq, b.p.NormSq)
	})

	stack := make([]Coord, 1, len(entries)+1)
	stack[0] = pivot
	for _, e := range entries {
		for len(stack) >= 2 && Orient(stack[len(stack)-2], stack[len(stack)-1], e.c) != Clockwise {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, e.c)
	}

	slices.Reverse(stack[1:])
	c.Vertices = stack
	return nil
}

// ConvexHull returns the hull of coords, counter-clockwise from the lowest
// point.
func ConvexHull(coords []Coord) ([]Coord, error) {
	var c ConvexHullComputer
	if err := c.Compute(coords); err != nil {
		return nil, err
	}
	return c.Vertices, nil
}
