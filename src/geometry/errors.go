package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrCoordinateRange is returned when a coordinate is outside the range
	// for which exact arithmetic is guaranteed.
	ErrCoordinateRange = errors.New("coordinate out of range")

	// ErrAngleRange is returned when an angle's squared terms do not fit the
	// widths its comparison relies on.
	ErrAngleRange = errors.New("angle out of range")

	// ErrOriginPoint is returned where a zero vector has no direction.
	ErrOriginPoint = errors.New("origin point has no direction")
)

func newRangeError(limit int64, x, y int64) error {
	return fmt.Errorf("%w: (%d, %d) exceeds ±%d", ErrCoordinateRange, x, y, limit)
}

func inRange(limit int64, x, y int64) bool {
	return x >= -limit && x <= limit && y >= -limit && y <= limit
}

// MustPoint panics if p could not be built.
func MustPoint(p Point, err error) Point {
	if err != nil {
		panic(err)
	}
	return p
}
