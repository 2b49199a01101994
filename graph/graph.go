package graph

import "errors"

// Edge is one undirected weighted edge as read from input.
type Edge struct {
	U, V   int
	Weight int64
}

// Graph is a symmetric, row-major weight matrix under construction.
// The zero weight marks a missing edge; the diagonal is always zero.
//
// A Graph is not safe for concurrent mutation. Once built, call Prepare and
// hand the resulting Matrix to readers.
type Graph struct {
	n    int     // vertex count
	data []int64 // flat backing storage, len == n*n
}

// New allocates a graph with size vertices and no edges.
// Complexity: O(size²) time and memory.
func New(size int) (*Graph, error) {
	if size < 0 {
		return nil, ErrBadSize
	}
	if size == 0 {
		return nil, ErrEmptyGraph
	}

	return &Graph{n: size, data: make([]int64, size*size)}, nil
}

// Build allocates a graph and applies edges in order.
//
// Edges with an endpoint outside [0, size) are skipped and returned as
// warnings (each wraps ErrVertexOutOfRange); construction continues.
// Any other edge error aborts the build.
//
// Complexity: O(size² + len(edges)).
func Build(size int, edges []Edge) (*Graph, []error, error) {
	g, err := New(size)
	if err != nil {
		return nil, nil, err
	}

	var warnings []error
	var e Edge
	for _, e = range edges {
		if err = g.AddEdge(e.U, e.V, e.Weight); err != nil {
			if IsRecoverable(err) {
				warnings = append(warnings, err)
				continue
			}

			return nil, warnings, err
		}
	}

	return g, warnings, nil
}

// IsRecoverable reports whether an AddEdge error leaves the graph usable,
// i.e. the edge was rejected but construction may continue.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrVertexOutOfRange)
}

// AddEdge records the undirected edge u–v with weight w at [u][v] and [v][u].
// A later call for the same pair overwrites the earlier weight. Self-loops
// are ignored. A zero weight clears the pair back to "no edge".
//
// Errors:
//   - ErrVertexOutOfRange if u or v is outside [0, size); nothing is recorded.
//   - ErrNegativeWeight if w < 0; nothing is recorded.
//
// Complexity: O(1).
func (g *Graph) AddEdge(u, v int, w int64) error {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return edgeErrorf(u, v, w, ErrVertexOutOfRange)
	}
	if w < 0 {
		return edgeErrorf(u, v, w, ErrNegativeWeight)
	}
	if u == v {
		return nil
	}
	g.data[u*g.n+v] = w
	g.data[v*g.n+u] = w

	return nil
}

// Size returns the vertex count.
func (g *Graph) Size() int { return g.n }

// Weight returns the raw weight between u and v (0 means "no edge").
// Out-of-range indices report ErrVertexOutOfRange.
func (g *Graph) Weight(u, v int) (int64, error) {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return 0, ErrVertexOutOfRange
	}

	return g.data[u*g.n+v], nil
}

// Rows returns a deep copy of the raw matrix, row by row, for display.
// Complexity: O(size²).
func (g *Graph) Rows() [][]int64 {
	out := make([][]int64, g.n)
	var i int
	for i = 0; i < g.n; i++ {
		out[i] = append([]int64(nil), g.data[i*g.n:(i+1)*g.n]...)
	}

	return out
}

// EdgeCount returns the number of present (non-zero) undirected edges.
func (g *Graph) EdgeCount() int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < g.n; i++ {
		for j = i + 1; j < g.n; j++ {
			if g.data[i*g.n+j] != 0 {
				count++
			}
		}
	}

	return count
}
