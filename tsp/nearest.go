// Package tsp — one nearest-neighbour trial.
//
// A trial is fully determined by (start, second). Its scratch state lives in
// a trialState that a single goroutine reuses across trials; nothing in it is
// shared.
package tsp

import "github.com/bischofs/TravelingSalesman/graph"

// trialState is the per-worker SearchState: visited flags and the partial
// circuit. It is reset at the start of every trial.
type trialState struct {
	visited []bool
	path    []int // path[0..n-1], open (no closing vertex)
}

func newTrialState(n int) *trialState {
	return &trialState{
		visited: make([]bool, n),
		path:    make([]int, n),
	}
}

// run builds the greedy circuit start → second → … → start and returns its
// length. ok is false when the trial would need an Unreachable edge: the
// forced first edge (including second == start), a dead end during extension,
// or the closing edge.
//
// The extension scan keeps updating on "≤", so among equally cheap
// neighbours the highest index is chosen.
//
// Complexity: O(n²) time, no allocations.
func (s *trialState) run(m *graph.Matrix, start, second int) (length int64, ok bool) {
	var (
		n           = m.Size()
		unreachable = m.Unreachable()
		w           = m.At(start, second)
	)
	if w >= unreachable {
		return 0, false
	}

	clear(s.visited)
	s.visited[start] = true
	s.visited[second] = true
	s.path[0] = start
	s.path[1] = second
	length = w

	var (
		cur   = second
		count int   // vertices placed so far
		j     int   // scan index
		next  int   // chosen neighbour
		best  int64 // weight to the chosen neighbour
		x     int64 // scratch weight
	)
	for count = 2; count < n; count++ {
		next = -1
		best = unreachable
		for j = 0; j < n; j++ {
			if s.visited[j] {
				continue
			}
			x = m.At(cur, j)
			if x < unreachable && x <= best {
				next = j
				best = x
			}
		}
		if next < 0 {
			// Every unvisited vertex is cut off from cur.
			return 0, false
		}
		s.visited[next] = true
		s.path[count] = next
		length += best
		cur = next
	}

	w = m.At(cur, start)
	if w >= unreachable {
		return 0, false
	}

	return length + w, true
}
