// Package tsp — tour utilities.
//
// These helpers operate on tour structure only (index sequences):
//   - ValidateTour: enforce closed Hamiltonian-cycle invariants.
//   - RotateTourToStart: cyclic shift so the tour starts/ends at a vertex.
//   - CopyTour: independent copy.
//   - reverseArcInPlace: in-place segment reversal (2-opt core).
//
// No logging, no panics on user input; only sentinels from types.go.
package tsp

// ValidateTour enforces
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0, n) appears exactly once in tour[0..n-1].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	seen := make([]bool, n)
	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// RotateTourToStart returns a fresh copy of tour shifted so that
// out[0] == out[n] == start. The input may be closed (len n+1, first == last)
// or open (len n); the output is always closed.
//
// Complexity: O(n) time and space.
func RotateTourToStart(tour []int, start int) ([]int, error) {
	if len(tour) == 0 {
		return nil, ErrInvalidTour
	}

	n := len(tour)
	if n > 1 && tour[0] == tour[n-1] {
		n-- // closed input: ignore the closing vertex
	}
	if start < 0 || start >= n {
		return nil, ErrStartOutOfRange
	}

	var (
		i     int
		pivot = -1
	)
	for i = 0; i < n; i++ {
		if tour[i] == start {
			pivot = i
			break
		}
	}
	if pivot == -1 {
		return nil, ErrInvalidTour
	}

	out := make([]int, n+1)
	for i = 0; i < n; i++ {
		out[i] = tour[(pivot+i)%n]
	}
	out[n] = start

	return out, nil
}

// CopyTour returns an independent copy of tour.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// reverseArcInPlace reverses tour[i..k] in place, keeping the closing vertex.
// Requires a closed tour and 1 ≤ i < k ≤ n−1.
//
// Complexity: O(k−i) time, O(1) space.
func reverseArcInPlace(tour []int, i, k int) error {
	n := len(tour) - 1
	if n < 2 || tour[0] != tour[n] {
		return ErrInvalidTour
	}
	if i < 1 || k > n-1 || i >= k {
		return ErrInvalidTour
	}
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}

	return nil
}
