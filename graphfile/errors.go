package graphfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for the graph stream.
var (
	// ErrMalformedLine indicates a line that is neither a size, an edge nor a terminator.
	ErrMalformedLine = errors.New("graphfile: malformed line")

	// ErrNoGraph indicates an edge or terminator that arrives before any size line.
	ErrNoGraph = errors.New("graphfile: no graph declared")

	// ErrTooLarge indicates a size line above the reader's vertex limit.
	ErrTooLarge = errors.New("graphfile: graph too large")

	// ErrUnterminatedGraph indicates input that ends before the closing E.
	ErrUnterminatedGraph = errors.New("graphfile: graph not terminated")
)

// LineError ties a fatal parse failure to its 1-based line number.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("graphfile: line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// Warning is a recoverable problem on one edge line.
type Warning struct {
	Line int
	Err  error
}

func (w Warning) Error() string {
	return fmt.Sprintf("graphfile: line %d: %v", w.Line, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }
