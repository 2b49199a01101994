// Package graphfile reads the line-oriented graph stream consumed by the
// salesman command.
//
// The stream is a sequence of blocks, one per graph:
//
//	5          size line: a new graph with 5 vertices
//	0,1,6      edge line: row,col,weight (symmetric)
//	1,2,1
//	E          terminator: the block is complete
//
// Blank lines are skipped and surrounding whitespace is ignored. A new size
// line discards any graph still under construction.
//
// Error policy:
//   - An edge whose row or col lies outside [0, size) is a Warning; the edge is
//     dropped and reading continues.
//   - Anything else that does not parse (wrong field count, non-numeric field,
//     negative weight, size 0, an edge or terminator with no open graph) is a
//     fatal *LineError. The reader stops and every later call returns the same
//     error.
//   - Input that ends inside an open graph fails with ErrUnterminatedGraph.
package graphfile
