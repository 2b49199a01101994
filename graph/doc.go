// Package graph is the weighted-graph model consumed by the circuit search.
//
// A Graph is an undirected, symmetric size×size matrix of non-negative
// integer weights built from (u, v, weight) triples:
//
//   - New(size) allocates an empty graph (every pair "no edge").
//   - AddEdge(u, v, w) records w at [u][v] and [v][u].
//   - Build(size, edges) applies a whole edge list, collecting per-edge
//     warnings for out-of-range vertices instead of failing.
//
// A weight of exactly 0 between distinct vertices means "no edge". Before a
// search the graph is frozen with Prepare, which returns an immutable Matrix
// in which every missing edge and every diagonal entry holds one sentinel:
//
//	Unreachable = (sum of all edge weights) + 1
//
// No real Hamiltonian circuit can be that long, so the sentinel never wins a
// minimisation and a single value serves both "no edge" and "worse than any
// real path".
//
// Complexity:
//   - New/Prepare: O(V²) time and memory.
//   - AddEdge/Weight/At: O(1).
//
// Errors (sentinel, match with errors.Is):
//   - ErrEmptyGraph, ErrBadSize, ErrVertexOutOfRange,
//     ErrNegativeWeight, ErrWeightOverflow.
package graph
