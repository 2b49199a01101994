// Package tsp — 1-tree lower bound.
//
// For a root r, a 1-tree is a minimum spanning tree on V\{r} plus the two
// cheapest real edges at r. Every Hamiltonian circuit is a 1-tree, so the
// weight of a minimum 1-tree never exceeds the optimal circuit length.
// LowerBound takes the best (largest) such weight over every root.
//
// The bound lets callers judge a heuristic circuit: the optimum lies in
// [LowerBound, Result.Length].
//
// Complexity: O(n³) time, O(n) extra space.
package tsp

import (
	"fmt"

	"github.com/bischofs/TravelingSalesman/graph"
)

// LowerBound returns the maximum minimum-1-tree weight over all roots.
//
// Errors:
//   - graph.ErrEmptyGraph for a nil or empty matrix.
//   - ErrNoCircuit (wrapped) when some root admits no 1-tree: V\{r} is
//     disconnected or r has fewer than two real edges. No circuit exists then.
func LowerBound(m *graph.Matrix) (int64, error) {
	if m == nil || m.Size() == 0 {
		return 0, graph.ErrEmptyGraph
	}
	n := m.Size()
	if n < 3 {
		return 0, fmt.Errorf("%w: %d vertices", ErrNoCircuit, n)
	}

	eng := newOneTree(m)
	var (
		best, w int64
		ok      bool
		root    int
	)
	for root = 0; root < n; root++ {
		if w, ok = eng.build(root); !ok {
			return 0, fmt.Errorf("%w: no 1-tree at vertex %d", ErrNoCircuit, root)
		}
		if w > best {
			best = w
		}
	}

	return best, nil
}

// oneTree holds Prim working arrays reused across roots.
type oneTree struct {
	m      *graph.Matrix
	inTree []bool
	key    []int64
}

func newOneTree(m *graph.Matrix) *oneTree {
	return &oneTree{
		m:      m,
		inTree: make([]bool, m.Size()),
		key:    make([]int64, m.Size()),
	}
}

// build returns the weight of a minimum 1-tree rooted at root.
// ok is false when none exists.
func (e *oneTree) build(root int) (weight int64, ok bool) {
	var (
		n           = e.m.Size()
		unreachable = e.m.Unreachable()
		v, best     int
		iter        int
		c           int64
	)

	// Prim over V\{root}; key holds the cheapest link to the tree.
	for v = 0; v < n; v++ {
		e.inTree[v] = false
		e.key[v] = unreachable
	}
	start := 0
	if start == root {
		start = 1
	}
	e.key[start] = 0

	for iter = 0; iter < n-1; iter++ {
		best = -1
		for v = 0; v < n; v++ {
			if v == root || e.inTree[v] {
				continue
			}
			if best == -1 || e.key[v] < e.key[best] {
				best = v
			}
		}
		if best == -1 || e.key[best] >= unreachable {
			return 0, false
		}
		e.inTree[best] = true
		weight += e.key[best]

		for v = 0; v < n; v++ {
			if v == root || e.inTree[v] {
				continue
			}
			if c = e.m.At(best, v); c < e.key[v] {
				e.key[v] = c
			}
		}
	}

	// Two cheapest root edges.
	m1, m2 := unreachable, unreachable
	for v = 0; v < n; v++ {
		if v == root {
			continue
		}
		c = e.m.At(root, v)
		if c < m1 {
			m1, m2 = c, m1
		} else if c < m2 {
			m2 = c
		}
	}
	if m2 >= unreachable {
		return 0, false
	}

	return weight + m1 + m2, true
}
