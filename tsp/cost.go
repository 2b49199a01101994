// Package tsp — circuit length.
package tsp

import "github.com/bischofs/TravelingSalesman/graph"

// CircuitLength sums w(tour[i], tour[i+1]) along a closed tour.
//
// Errors:
//   - ErrInvalidTour if the tour is shorter than two entries or has an index
//     outside [0, n).
//   - ErrIncompleteTour if any step is an Unreachable edge.
//
// Complexity: O(n).
func CircuitLength(m *graph.Matrix, tour []int) (int64, error) {
	if m == nil || len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		n           = m.Size()
		unreachable = m.Unreachable()
		sum         int64
		w           int64
		i, u, v     int
	)
	for i = 0; i < len(tour)-1; i++ {
		u = tour[i]
		v = tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		w = m.At(u, v)
		if w >= unreachable {
			return 0, ErrIncompleteTour
		}
		sum += w
	}

	return sum, nil
}
