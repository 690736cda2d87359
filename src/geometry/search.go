package geometry

import "sort"

// BisectLeft returns the first index at which p could be inserted into sorted
// while keeping it ordered, i.e. before every point order-equal to p.
func BisectLeft(sorted []Point, p Point) int {
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Cmp(p) >= 0
	})
}

// BisectRight is like BisectLeft but returns the index after every point
// order-equal to p.
func BisectRight(sorted []Point, p Point) int {
	return sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Cmp(p) > 0
	})
}
