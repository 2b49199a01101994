// Package builder generates weighted edge lists for the graph model.
//
// Constructors return []graph.Edge ready for graph.Build or graphfile.Write:
//
//   - Complete(n): every pair {i,j}, i<j.
//   - Cycle(n): the ring 0–1–…–(n−1)–0.
//   - Wheel(n): a hub 0 joined to a ring over 1..n−1.
//   - RandomSparse(n, p): each pair independently with probability p.
//
// Weights are positive integers drawn by a WeightFn; a zero weight would
// read as "no edge", so weight functions never return it. Determinism is
// explicit: the default RNG is seeded with DefaultSeed and WithSeed or
// WithRand replaces it. Edge order is lexicographic by (i,j).
//
// Option constructors panic on meaningless arguments; generators return
// sentinel errors (ErrTooFewVertices, ErrInvalidProbability) and never panic.
package builder
