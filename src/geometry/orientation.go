package geometry

import "fmt"

// Coord is a raw integer coordinate pair, before it is turned into a Point.
type Coord struct {
	X, Y int64
}

func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Point turns c into a radius vector. c must be within MaxCoordinate.
func (c Coord) Point() Point {
	return NewPoint(c.X, c.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Orientation enumerates the turn made by three points.
type Orientation int

const (
	Clockwise Orientation = iota - 1
	Collinear
	CounterClockwise
)

var orientationLabels = [3]string{"Clockwise", "Collinear", "CounterClockwise"}

func (o Orientation) String() string {
	if o > 1 || o < -1 {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationLabels[int(o+1)]
}

// Orient reports the turn a -> b -> c. Coordinates must be within
// MaxHullCoordinate so the edge vectors do not wrap.
func Orient(a, b, c Coord) Orientation {
	u, v := b.Sub(a), c.Sub(b)
	return Orientation(CompareProducts(u.X, v.Y, u.Y, v.X))
}
