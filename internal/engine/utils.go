package engine

import "golang.org/x/exp/constraints"

// extremum returns the largest value when maximize is set, else the smallest.
// vals must not be empty.
func extremum[T constraints.Ordered](vals []T, maximize bool) T {
	best := vals[0]
	for _, v := range vals[1:] {
		if maximize && v > best || !maximize && v < best {
			best = v
		}
	}
	return best
}
