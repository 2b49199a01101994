// Package tsp — multi-start driver and best-trial reduction.
//
// Ordering contract (both serial and parallel paths):
//   - trials are ordered by start ascending, then second ascending;
//   - a trial replaces the best when its length is ≤ the best length;
//   - therefore the reported circuit is the LAST minimal trial in that order.
package tsp

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/bischofs/TravelingSalesman/graph"
)

// candidate is the best trial seen so far by one reducer.
type candidate struct {
	found         bool
	length        int64
	start, second int
	path          []int // open path, owned by the candidate
}

// accepts reports whether a trial of the given length replaces c.
// Before any trial is recorded the bound is the Unreachable sentinel.
func (c *candidate) accepts(length, unreachable int64) bool {
	if !c.found {
		return length <= unreachable
	}

	return length <= c.length
}

// record stores a trial, copying path into the candidate's own buffer.
func (c *candidate) record(length int64, start, second int, path []int) {
	c.found = true
	c.length = length
	c.start = start
	c.second = second
	c.path = append(c.path[:0], path...)
}

// FindBestCircuit runs the multi-start nearest-neighbour heuristic on m and
// returns the shortest circuit found.
//
// Contracts:
//   - m must be non-nil with at least one vertex (graph.ErrEmptyGraph).
//   - Options.Start must be AllStarts or in [0, n) (ErrStartOutOfRange).
//
// Graphs that fail CheckFeasible (fewer than three vertices, a vertex of
// degree below two, more than one component) return its wrapped ErrNoCircuit
// without running any trial. Otherwise ErrNoCircuit (with Result.Trials set)
// means no trial beat the Unreachable sentinel.
//
// The result is deterministic and independent of Options.Workers.
//
// Complexity: O(s·n³) time where s is the number of start vertices.
func FindBestCircuit(ctx context.Context, m *graph.Matrix, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if m == nil || m.Size() == 0 {
		return Result{}, graph.ErrEmptyGraph
	}
	n := m.Size()

	starts, err := startVertices(n, cfg.Start)
	if err != nil {
		return Result{}, err
	}
	if err = CheckFeasible(m); err != nil {
		return Result{}, err
	}
	trials := len(starts) * n

	var best candidate
	if cfg.Workers <= 1 || len(starts) == 1 {
		best, err = searchSerial(ctx, m, starts)
	} else {
		best, err = searchParallel(ctx, m, starts, cfg.Workers)
	}
	if err != nil {
		return Result{}, err
	}

	if !best.found || best.length >= m.Unreachable() {
		return Result{Trials: trials}, ErrNoCircuit
	}

	tour, err := RotateTourToStart(best.path, 0)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Length: best.length,
		Tour:   tour,
		Start:  best.start,
		Second: best.second,
		Trials: trials,
	}

	if cfg.TwoOpt {
		res.Tour, res.Length, res.Moves, err = TwoOpt(m, res.Tour, cfg.MaxMoves)
		if err != nil {
			return Result{}, err
		}
	}

	if cfg.Bound {
		if res.LowerBound, err = LowerBound(m); err != nil {
			return Result{}, err
		}
	}

	return res, nil
}

// startVertices expands the Start option into the ordered list of starts.
func startVertices(n, start int) ([]int, error) {
	if start != AllStarts {
		if start < 0 || start >= n {
			return nil, ErrStartOutOfRange
		}

		return []int{start}, nil
	}
	out := make([]int, n)
	var v int
	for v = 0; v < n; v++ {
		out[v] = v
	}

	return out, nil
}

// searchSerial is the reference loop: every start, every second, one best.
func searchSerial(ctx context.Context, m *graph.Matrix, starts []int) (candidate, error) {
	var (
		best  candidate
		state = newTrialState(m.Size())
		start int
	)
	for _, start = range starts {
		if err := ctx.Err(); err != nil {
			return candidate{}, err
		}
		searchFrom(m, start, state, &best)
	}

	return best, nil
}

// searchFrom runs every trial for one start vertex into best.
func searchFrom(m *graph.Matrix, start int, state *trialState, best *candidate) {
	var (
		n           = m.Size()
		unreachable = m.Unreachable()
		second      int
		length      int64
		ok          bool
	)
	for second = 0; second < n; second++ {
		length, ok = state.run(m, start, second)
		if !ok {
			continue
		}
		if best.accepts(length, unreachable) {
			best.record(length, start, second, state.path)
		}
	}
}

// searchParallel evaluates each start vertex in its own task, at most
// workers at a time, then folds the per-start winners in start order with
// the same "≤, later wins" rule as the serial loop.
func searchParallel(ctx context.Context, m *graph.Matrix, starts []int, workers int) (candidate, error) {
	local := make([]candidate, len(starts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range starts {
		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			searchFrom(m, starts[i], newTrialState(m.Size()), &local[i])

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return candidate{}, err
	}

	var (
		best        candidate
		unreachable = m.Unreachable()
	)
	for i := range local {
		if local[i].found && best.accepts(local[i].length, unreachable) {
			best = local[i]
		}
	}

	return best, nil
}
