// Package salesman finds short Hamiltonian circuits in small weighted
// undirected graphs with a multi-start nearest-neighbour heuristic.
//
// The module is organized as a set of subpackages:
//
//	graph/     symmetric weight matrix, edge validation, sentinel preparation
//	tsp/       multi-start nearest-neighbour search, 2-opt, feasibility, 1-tree bound
//	graphfile/ line-oriented graph input format (reader and writer)
//	report/    text, JSON and YAML transcripts of processed graphs
//	runner/    drives reading, searching, caching, metrics and reporting
//	config/    YAML file, .env and SALESMAN_* environment configuration
//	metrics/   Prometheus counters and histograms for a run
//	builder/   deterministic graph topologies for tests and benchmarks
//	cmd/       the salesman solver and the graphgen generator
//
// Quick example, the five-vertex graph
//
//	5
//	0,1,6
//	0,2,7
//	...
//	E
//
// prints its matrix followed by
//
//	Minimum circuit length is: 22
//	The circuit is: [0, 4, 1, 3, 2, 0]
//
// Run it with:
//
//	go run ./cmd/salesman graphs.txt
package salesman
