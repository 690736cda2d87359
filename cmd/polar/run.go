package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"polar/src/geometry"
	"polar/src/pointset"
)

func runSort(logger *logrus.Logger, loader *pointset.Loader, path string, w io.Writer) error {
	set, err := loader.Load(path)
	if err != nil {
		return err
	}
	points, err := loader.Directions(set)
	if err != nil {
		return err
	}
	geometry.SortPoints(points)
	logger.WithField("points", len(points)).Info("sorted by direction")

	printPoints(w, points)
	return nil
}

func runHull(logger *logrus.Logger, loader *pointset.Loader, path string, w io.Writer) error {
	set, err := loader.Load(path)
	if err != nil {
		return err
	}
	hull, err := geometry.ConvexHull(set.Coords)
	if err != nil {
		return fmt.Errorf("computing hull: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"points":   len(set.Coords),
		"vertices": len(hull),
	}).Info("hull computed")

	printHull(w, hull)
	return nil
}

func runAngles(logger *logrus.Logger, loader *pointset.Loader, path string, w io.Writer) error {
	set, err := loader.Load(path)
	if err != nil {
		return err
	}
	points, err := set.Points()
	if err != nil {
		return err
	}

	angles := make([]geometry.Angle, 0, len(set.Angles))
	for i, pair := range set.Angles {
		v, u := &points[pair[0]], &points[pair[1]]
		if v.IsOrigin() || u.IsOrigin() {
			return fmt.Errorf("angle %d: %w", i, geometry.ErrOriginPoint)
		}
		a, err := geometry.NewAngleChecked(v, u)
		if err != nil {
			return fmt.Errorf("angle %d: %w", i, err)
		}
		angles = append(angles, a)
	}
	geometry.SortAngles(angles)
	logger.WithField("angles", len(angles)).Info("sorted by magnitude")

	printAngles(w, angles)
	return nil
}

func runMul(logger *logrus.Logger, a, b string, w io.Writer) error {
	x, err := strconv.ParseUint(a, 0, 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", a, err)
	}
	y, err := strconv.ParseUint(b, 0, 64)
	if err != nil {
		return fmt.Errorf("parsing %q: %w", b, err)
	}
	hi, lo := geometry.WideProduct(x, y)
	logger.WithFields(logrus.Fields{"a": x, "b": y}).Debug("wide product")

	printProduct(w, hi, lo)
	return nil
}
