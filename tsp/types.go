package tsp

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the search engine.
var (
	// ErrNoCircuit is returned when no trial produced a circuit shorter than
	// the Unreachable sentinel. It is a normal outcome, not a failure: the
	// graph simply has no circuit the heuristic can find.
	ErrNoCircuit = errors.New("tsp: no circuit found")

	// ErrStartOutOfRange indicates a fixed start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrInvalidTour indicates a tour that breaks Hamiltonian-cycle invariants.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrIncompleteTour indicates a tour that walks over a missing edge.
	ErrIncompleteTour = errors.New("tsp: tour uses a missing edge")
)

// AllStarts runs trials from every vertex. It is the default Start.
const AllStarts = -1

// Result is the best circuit found.
type Result struct {
	// Length is the total weight of the circuit.
	Length int64

	// Tour is the circuit, rotated to begin and end at vertex 0.
	// For n vertices, len(Tour) == n+1 and Tour[0] == Tour[n] == 0.
	Tour []int

	// Start and Second identify the trial that produced the circuit.
	Start, Second int

	// Trials is the number of (start, second) trials evaluated; 0 when the
	// graph failed CheckFeasible and no trial was run.
	Trials int

	// Moves is the number of accepted 2-opt moves (0 unless WithTwoOpt).
	Moves int

	// LowerBound is the 1-tree bound on the optimum (0 unless WithLowerBound).
	LowerBound int64
}

// Encode returns the circuit in the historical display encoding:
// [length, v0, v1, …, v0].
func (r Result) Encode() []int64 {
	out := make([]int64, 0, len(r.Tour)+1)
	out = append(out, r.Length)
	var v int
	for _, v = range r.Tour {
		out = append(out, int64(v))
	}

	return out
}

// Options configures FindBestCircuit.
//
// Workers  – goroutines used for trials; ≤ 1 runs the serial loop.
// Start    – AllStarts, or a single start vertex in [0, n).
// TwoOpt   – run the 2-opt refinement on the winning circuit.
// MaxMoves – cap on accepted 2-opt moves; 0 means "until local optimum".
// Bound    – compute Result.LowerBound.
type Options struct {
	Workers  int
	Start    int
	TwoOpt   bool
	MaxMoves int
	Bound    bool
}

// Option is a functional option for FindBestCircuit.
type Option func(*Options)

// DefaultOptions returns the serial, all-starts configuration without 2-opt,
// which reproduces the reference behaviour exactly.
func DefaultOptions() Options {
	return Options{
		Workers:  1,
		Start:    AllStarts,
		TwoOpt:   false,
		MaxMoves: 0,
		Bound:    false,
	}
}

// WithWorkers sets the number of goroutines used for trials.
// Panics on a negative count.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("tsp: WithWorkers(%d)", n))
	}
	return func(o *Options) {
		o.Workers = n
	}
}

// WithStart restricts trials to a single start vertex. WithStart(AllStarts)
// restores the default. The range is checked against the matrix in
// FindBestCircuit (ErrStartOutOfRange).
func WithStart(v int) Option {
	return func(o *Options) {
		o.Start = v
	}
}

// WithTwoOpt enables the 2-opt refinement with at most maxMoves accepted
// moves (0 = unlimited). Panics on a negative cap.
func WithTwoOpt(maxMoves int) Option {
	if maxMoves < 0 {
		panic(fmt.Sprintf("tsp: WithTwoOpt(%d)", maxMoves))
	}
	return func(o *Options) {
		o.TwoOpt = true
		o.MaxMoves = maxMoves
	}
}

// WithLowerBound requests the 1-tree lower bound alongside the circuit.
func WithLowerBound() Option {
	return func(o *Options) {
		o.Bound = true
	}
}
