// Package tsp finds short Hamiltonian circuits with a multi-start
// nearest-neighbour heuristic.
//
// FindBestCircuit runs one greedy construction per (start, forced second)
// vertex pair of a prepared graph.Matrix and keeps the shortest circuit:
//
//  1. Mark start and the forced second vertex visited; pay w(start, second).
//  2. From the last vertex, move to the cheapest unvisited neighbour. The scan
//     runs 0..n−1 and keeps updating on "≤", so among equal weights the LAST
//     index wins.
//  3. After n vertices, pay the closing edge back to start.
//  4. Keep the trial if its length is ≤ the best so far, so among equally
//     short trials the LAST one (start ascending, second ascending) wins.
//
// A trial that would need an Unreachable edge is abandoned; under the
// Unreachable = Σw+1 sentinel such a trial could never win anyway.
//
// This is a heuristic: there is no optimality guarantee.
//
// Complexity:
//   - Trials: n² (n when a fixed start is requested).
//   - Per trial: O(n²) greedy scan.
//   - Total: O(n⁴) time, O(n) extra space per worker.
//
// Concurrency: the serial loop is the default. WithWorkers(k) spreads start
// vertices over k goroutines; the reduction reproduces the serial tie-break
// exactly, so results do not depend on k.
//
// An optional first-improvement 2-opt pass (WithTwoOpt) may shorten the
// winning circuit; it is off by default.
package tsp
