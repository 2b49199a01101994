package tsp

import (
	"fmt"

	"github.com/bischofs/TravelingSalesman/graph"
)

// CheckFeasible tests the necessary conditions for a Hamiltonian circuit:
// at least three vertices, two real edges at every vertex, one connected
// component. A failure wraps ErrNoCircuit and names the first violation.
// Passing the check does not guarantee that a circuit exists.
//
// Complexity: O(n²).
func CheckFeasible(m *graph.Matrix) error {
	if m == nil || m.Size() == 0 {
		return graph.ErrEmptyGraph
	}
	n := m.Size()
	if n < 3 {
		return fmt.Errorf("%w: %d vertices", ErrNoCircuit, n)
	}

	var v, d int
	for v = 0; v < n; v++ {
		if d = m.Degree(v); d < 2 {
			return fmt.Errorf("%w: vertex %d has degree %d", ErrNoCircuit, v, d)
		}
	}
	if count, _ := m.Components(); count > 1 {
		return fmt.Errorf("%w: %d components", ErrNoCircuit, count)
	}

	return nil
}
