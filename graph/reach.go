// Package graph — reachability over the prepared matrix.
//
// Only real edges (weight < Unreachable) count. These helpers answer the
// cheap necessary conditions for a Hamiltonian circuit: every vertex needs
// two incident edges and the graph must be in one piece.
package graph

// Degree returns the number of real edges incident to v, or 0 when v is
// out of range.
//
// Complexity: O(n).
func (m *Matrix) Degree(v int) int {
	if v < 0 || v >= m.n {
		return 0
	}
	var (
		deg int
		w   int64
	)
	for _, w = range m.data[v*m.n : (v+1)*m.n] {
		if w < m.unreachable {
			deg++
		}
	}

	return deg
}

// Components labels the connected components by breadth-first search from
// each unlabelled vertex in index order. It returns the component count and
// label[v] in [0, count).
//
// Complexity: O(n²) time, O(n) extra space.
func (m *Matrix) Components() (count int, label []int) {
	label = make([]int, m.n)
	var (
		queue = make([]int, 0, m.n)
		root  int
		u, v  int
	)
	for v = range label {
		label[v] = -1
	}

	for root = 0; root < m.n; root++ {
		if label[root] >= 0 {
			continue
		}
		label[root] = count
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			u = queue[0]
			queue = queue[1:]
			for v = 0; v < m.n; v++ {
				if label[v] >= 0 || m.data[u*m.n+v] >= m.unreachable {
					continue
				}
				label[v] = count
				queue = append(queue, v)
			}
		}
		count++
	}

	return count, label
}
