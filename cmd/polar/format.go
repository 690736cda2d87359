package main

import (
	"fmt"
	"io"

	"polar/src/geometry"
)

func printPoints(w io.Writer, points []geometry.Point) {
	for _, p := range points {
		fmt.Fprintf(w, "%d %d\n", p.X, p.Y)
	}
}

func printHull(w io.Writer, hull []geometry.Coord) {
	fmt.Fprintf(w, "%d\n", len(hull))
	for _, c := range hull {
		fmt.Fprintf(w, "%d %d\n", c.X, c.Y)
	}
}

func printAngles(w io.Writer, angles []geometry.Angle) {
	for _, a := range angles {
		c := a.Cos2()
		v, u := a.V(), a.W()
		fmt.Fprintf(w, "%d %d  %d %d  %+d %d/%d  %.4f\n",
			v.X, v.Y, u.X, u.Y,
			c.Sign(), c.Numerator(), c.Denominator(),
			a.Degrees())
	}
}

func printProduct(w io.Writer, hi, lo uint64) {
	fmt.Fprintf(w, "hi  %016x\nlo  %016x\n%s\n", hi, lo, geometry.Uint128FromRaw(hi, lo))
}
