// Package graph — the prepared, read-only weight matrix.
//
// Matrix is what the search engine reads. It is produced once per graph by
// Prepare and never mutated afterwards, so any number of goroutines may read
// it concurrently.
//
// Sentinel policy:
//   - Unreachable = Σ w(e) over all undirected edges, plus one.
//   - Every missing off-diagonal edge (raw weight 0) holds Unreachable.
//   - Every diagonal entry holds Unreachable (no self-loops).
//   - A Hamiltonian circuit on n ≥ 3 vertices uses each edge at most once,
//     so its length is ≤ Σ w(e) < Unreachable.
package graph

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// maxTotalWeight bounds Σ w(e) so that a circuit that reuses its single edge
// (n == 2) still fits in int64.
const maxTotalWeight = math.MaxInt64 / 2

// Matrix is an immutable n×n weight matrix with the Unreachable sentinel
// substituted for missing edges.
type Matrix struct {
	n           int
	data        []int64
	unreachable int64
	total       int64
}

// Prepare freezes g into a Matrix. g itself is left untouched.
//
// Errors: ErrWeightOverflow if Σ w(e) exceeds MaxInt64/2.
//
// Complexity: O(n²) time and memory.
func (g *Graph) Prepare() (*Matrix, error) {
	var (
		n     = g.n
		total int64
		w     int64
		i, j  int
	)

	// Stage 1: total weight over the upper triangle (each edge once).
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = g.data[i*n+j]
			if w > maxTotalWeight-total {
				return nil, ErrWeightOverflow
			}
			total += w
		}
	}
	unreachable := total + 1

	// Stage 2: copy with sentinel substitution.
	data := make([]int64, n*n)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w = g.data[i*n+j]
			if i == j || w == 0 {
				w = unreachable
			}
			data[i*n+j] = w
		}
	}

	return &Matrix{n: n, data: data, unreachable: unreachable, total: total}, nil
}

// Size returns the vertex count.
func (m *Matrix) Size() int { return m.n }

// At returns the prepared weight between u and v. Indices are not checked;
// callers iterate over [0, Size()).
func (m *Matrix) At(u, v int) int64 { return m.data[u*m.n+v] }

// Unreachable returns the sentinel weight for "no edge".
func (m *Matrix) Unreachable() int64 { return m.unreachable }

// TotalWeight returns Σ w(e) over all undirected edges.
func (m *Matrix) TotalWeight() int64 { return m.total }

// HasEdge reports whether u and v are joined by a real edge.
func (m *Matrix) HasEdge(u, v int) bool {
	if u < 0 || u >= m.n || v < 0 || v >= m.n {
		return false
	}

	return m.data[u*m.n+v] < m.unreachable
}

// Fingerprint returns a 64-bit hash of the size and every prepared weight.
// Equal matrices always share a fingerprint; it is used as a cache key.
//
// Complexity: O(n²).
func (m *Matrix) Fingerprint() uint64 {
	var (
		d   = xxhash.New()
		buf [8]byte
		w   int64
	)
	binary.LittleEndian.PutUint64(buf[:], uint64(m.n))
	_, _ = d.Write(buf[:])
	for _, w = range m.data {
		binary.LittleEndian.PutUint64(buf[:], uint64(w))
		_, _ = d.Write(buf[:])
	}

	return d.Sum64()
}

// Equal reports whether m and o have the same size and prepared weights.
func (m *Matrix) Equal(o *Matrix) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.n != o.n || m.unreachable != o.unreachable {
		return false
	}
	var i int
	for i = range m.data {
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}
