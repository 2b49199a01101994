package builder

import (
	"fmt"

	"github.com/bischofs/TravelingSalesman/graph"
)

// Complete returns every pair {i,j} with i<j of an n-vertex graph.
// Requires n ≥ 1.
//
// Complexity: O(n²).
func Complete(n int, opts ...Option) ([]graph.Edge, error) {
	if n < 1 {
		return nil, tooFew(methodComplete, n, 1)
	}
	cfg := newConfig(opts)

	edges := make([]graph.Edge, 0, n*(n-1)/2)
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			edges = append(edges, graph.Edge{U: i, V: j, Weight: cfg.weightFn(cfg.rng)})
		}
	}

	return edges, nil
}

// Cycle returns the ring 0–1–…–(n−1)–0, listed as (i, i+1) then (0, n−1).
// Requires n ≥ 3.
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) ([]graph.Edge, error) {
	if n < 3 {
		return nil, tooFew(methodCycle, n, 3)
	}
	cfg := newConfig(opts)

	return appendRing(make([]graph.Edge, 0, n), 0, n, cfg), nil
}

// Wheel returns a hub 0 joined to every other vertex plus a ring over
// 1..n−1. Requires n ≥ 4.
//
// Complexity: O(n).
func Wheel(n int, opts ...Option) ([]graph.Edge, error) {
	if n < 4 {
		return nil, tooFew(methodWheel, n, 4)
	}
	cfg := newConfig(opts)

	edges := make([]graph.Edge, 0, 2*(n-1))
	var v int
	for v = 1; v < n; v++ {
		edges = append(edges, graph.Edge{U: 0, V: v, Weight: cfg.weightFn(cfg.rng)})
	}

	return appendRing(edges, 1, n, cfg), nil
}

// appendRing adds the ring lo–(lo+1)–…–(hi−1)–lo.
func appendRing(edges []graph.Edge, lo, hi int, cfg config) []graph.Edge {
	var v int
	for v = lo; v < hi-1; v++ {
		edges = append(edges, graph.Edge{U: v, V: v + 1, Weight: cfg.weightFn(cfg.rng)})
	}

	return append(edges, graph.Edge{U: lo, V: hi - 1, Weight: cfg.weightFn(cfg.rng)})
}

// RandomSparse includes each pair {i,j}, i<j, independently with
// probability p. Pairs are tried in lexicographic order, and the weight is
// drawn only for included pairs, so output is reproducible for a fixed seed.
// Requires n ≥ 1 and 0 ≤ p ≤ 1.
//
// Complexity: O(n²).
func RandomSparse(n int, p float64, opts ...Option) ([]graph.Edge, error) {
	if n < 1 {
		return nil, tooFew(methodRandomSparse, n, 1)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
	}
	cfg := newConfig(opts)

	var (
		edges []graph.Edge
		i, j  int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if p < 1 && cfg.rng.Float64() >= p {
				continue
			}
			edges = append(edges, graph.Edge{U: i, V: j, Weight: cfg.weightFn(cfg.rng)})
		}
	}

	return edges, nil
}
