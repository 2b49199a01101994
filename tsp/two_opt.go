// Package tsp — 2-opt refinement of the winning circuit.
//
// TwoOpt performs deterministic first-improvement 2-opt on a closed tour of a
// symmetric matrix. For cut indices 1 ≤ i < k ≤ n−1 with
// a=T[i−1], b=T[i], c=T[k], d=T[k+1]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move is applied (segment [i..k] reversed) when Δ < 0 and neither new edge
// is Unreachable; scanning then restarts from the beginning.
//
// Complexity: O(n²) per pass, O(moves·n²) overall.
package tsp

import "github.com/bischofs/TravelingSalesman/graph"

// TwoOpt improves initTour in place of a copy and returns the new tour, its
// length, and the number of accepted moves. maxMoves caps accepted moves;
// 0 means "until no improving move remains". The start vertex is preserved.
func TwoOpt(m *graph.Matrix, initTour []int, maxMoves int) ([]int, int64, int, error) {
	if m == nil || len(initTour) < 2 {
		return nil, 0, 0, ErrInvalidTour
	}
	n := len(initTour) - 1
	if n != m.Size() {
		return nil, 0, 0, ErrInvalidTour
	}
	if err := ValidateTour(initTour, n, initTour[0]); err != nil {
		return nil, 0, 0, err
	}

	cur := CopyTour(initTour)
	length, err := CircuitLength(m, cur)
	if err != nil {
		return nil, 0, 0, err
	}

	var (
		unreachable = m.Unreachable()
		moves       int
	)
	for {
		improved := false

		var (
			a, b, c, d         int
			wab, wcd, wac, wbd int64
			delta              int64
			i, k               int
		)
		for i = 1; i <= n-2 && !improved; i++ {
			for k = i + 1; k <= n-1; k++ {
				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				d = cur[k+1]

				wac = m.At(a, c)
				wbd = m.At(b, d)
				if wac >= unreachable || wbd >= unreachable {
					continue
				}
				wab = m.At(a, b)
				wcd = m.At(c, d)

				delta = (wac + wbd) - (wab + wcd)
				if delta >= 0 {
					continue
				}
				if err = reverseArcInPlace(cur, i, k); err != nil {
					return nil, 0, 0, err
				}
				length += delta
				moves++
				improved = true

				if maxMoves > 0 && moves >= maxMoves {
					return cur, length, moves, nil
				}

				break
			}
		}

		if !improved {
			break
		}
	}

	return cur, length, moves, nil
}
