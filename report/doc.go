// Package report renders per-graph outcomes for the salesman command.
//
// Three formats are available:
//   - FormatText reproduces the console transcript of the original tool byte
//     for byte: the raw matrix, then the circuit or "No circuit...".
//   - FormatJSON writes one JSON object per graph (and per fatal error).
//   - FormatYAML writes one YAML document per graph.
//
// A Printer is not safe for concurrent use. Call Close when done; the YAML
// printer flushes its stream there.
package report
