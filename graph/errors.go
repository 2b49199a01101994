// Package graph: sentinel error set.
//
// Every message is prefixed with "graph: ". Callers branch with errors.Is;
// context is attached at the call site with fmt.Errorf("...: %w", ErrX).
package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGraph is returned for a graph (or matrix) with zero vertices.
	ErrEmptyGraph = errors.New("graph: empty graph")

	// ErrBadSize is returned when a negative vertex count is requested.
	ErrBadSize = errors.New("graph: vertex count must be positive")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, size).
	// It is the only per-edge error that Build treats as recoverable.
	ErrVertexOutOfRange = errors.New("graph: vertex index out of range")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("graph: negative edge weight")

	// ErrWeightOverflow indicates that the total edge weight is too large to
	// derive an Unreachable sentinel without int64 overflow.
	ErrWeightOverflow = errors.New("graph: total edge weight overflows int64")
)

// edgeErrorf attaches the offending triple to a sentinel.
func edgeErrorf(u, v int, w int64, err error) error {
	return fmt.Errorf("AddEdge(%d,%d,%d): %w", u, v, w, err)
}
