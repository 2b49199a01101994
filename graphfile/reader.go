package graphfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bischofs/TravelingSalesman/graph"
)

// DefaultMaxVertices bounds the size line. A graph of this size needs
// 32 MiB for its raw matrix and again for the prepared copy.
const DefaultMaxVertices = 2048

// terminator closes a block.
const terminator = "E"

// Block is one complete graph read from the stream.
type Block struct {
	// Index is the 0-based position of the block in the stream.
	Index int
	// Line is the line number of the terminator.
	Line int
	// Graph holds every accepted edge.
	Graph *graph.Graph
	// Warnings lists the edges rejected since the previous block, in order.
	Warnings []Warning
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// WithMaxVertices caps the size line; 0 removes the cap.
// Panics on a negative limit.
func WithMaxVertices(n int) ReaderOption {
	if n < 0 {
		panic(fmt.Sprintf("graphfile: WithMaxVertices(%d)", n))
	}
	return func(r *Reader) {
		r.maxVertices = n
	}
}

// Reader turns a graph stream into Blocks. It is not safe for concurrent use.
type Reader struct {
	sc          *bufio.Scanner
	maxVertices int

	line     int          // lines consumed so far
	blocks   int          // blocks returned so far
	cur      *graph.Graph // graph under construction, nil between blocks
	warnings []Warning
	err      error // sticky terminal error
}

// NewReader returns a Reader over r.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	rd := &Reader{
		sc:          bufio.NewScanner(r),
		maxVertices: DefaultMaxVertices,
	}
	var opt ReaderOption
	for _, opt = range opts {
		opt(rd)
	}

	return rd
}

// Next returns the next complete block, or io.EOF once the stream is
// exhausted between blocks.
//
// On a fatal error the returned Block is non-nil when warnings were collected
// before the failure; its Graph is nil. Callers that report warnings as they
// happen should print them before the error.
func (r *Reader) Next() (*Block, error) {
	if r.err != nil {
		return nil, r.err
	}

	var text string
	for r.sc.Scan() {
		r.line++
		text = strings.TrimSpace(r.sc.Text())
		if text == "" {
			continue
		}

		switch {
		case text == terminator:
			if r.cur == nil {
				return r.fail(text, ErrNoGraph)
			}
			b := &Block{
				Index:    r.blocks,
				Line:     r.line,
				Graph:    r.cur,
				Warnings: r.warnings,
			}
			r.blocks++
			r.cur = nil
			r.warnings = nil

			return b, nil

		case strings.Contains(text, ","):
			if err := r.edge(text); err != nil {
				return r.fail(text, err)
			}

		default:
			if err := r.size(text); err != nil {
				return r.fail(text, err)
			}
		}
	}

	if err := r.sc.Err(); err != nil {
		r.err = fmt.Errorf("graphfile: read: %w", err)
		return r.partial(), r.err
	}
	if r.cur != nil {
		r.err = fmt.Errorf("%w (input ended after line %d)", ErrUnterminatedGraph, r.line)
		return r.partial(), r.err
	}
	r.err = io.EOF

	return nil, io.EOF
}

// size opens a new graph from a size line.
func (r *Reader) size(text string) error {
	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("%w: not a size, edge or terminator", ErrMalformedLine)
	}
	if r.maxVertices > 0 && n > r.maxVertices {
		return fmt.Errorf("%w: %d vertices, limit %d", ErrTooLarge, n, r.maxVertices)
	}
	g, err := graph.New(n)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}
	r.cur = g

	return nil
}

// edge applies a row,col,weight line to the open graph. Out-of-range
// endpoints become warnings; everything else that fails is fatal.
func (r *Reader) edge(text string) error {
	parts := strings.Split(text, ",")
	if len(parts) != 3 {
		return fmt.Errorf("%w: want 3 fields, got %d", ErrMalformedLine, len(parts))
	}

	var (
		row, col int
		weight   int64
		err      error
	)
	if row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return fmt.Errorf("%w: row: %w", ErrMalformedLine, err)
	}
	if col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return fmt.Errorf("%w: col: %w", ErrMalformedLine, err)
	}
	if weight, err = strconv.ParseInt(strings.TrimSpace(parts[2]), 10, 64); err != nil {
		return fmt.Errorf("%w: weight: %w", ErrMalformedLine, err)
	}
	if r.cur == nil {
		return ErrNoGraph
	}

	if err = r.cur.AddEdge(row, col, weight); err != nil {
		if graph.IsRecoverable(err) {
			r.warnings = append(r.warnings, Warning{Line: r.line, Err: err})
			return nil
		}

		return fmt.Errorf("%w: %w", ErrMalformedLine, err)
	}

	return nil
}

// fail records a fatal error for the current line.
func (r *Reader) fail(text string, err error) (*Block, error) {
	r.err = &LineError{Line: r.line, Text: text, Err: err}
	r.cur = nil

	return r.partial(), r.err
}

// partial hands out warnings still pending when the reader stops.
func (r *Reader) partial() *Block {
	if len(r.warnings) == 0 {
		return nil
	}
	b := &Block{Index: r.blocks, Line: r.line, Warnings: r.warnings}
	r.warnings = nil

	return b
}

// ReadAll drains r and returns every block. On a fatal error it returns the
// blocks read so far together with the error.
func ReadAll(r io.Reader, opts ...ReaderOption) ([]*Block, error) {
	rd := NewReader(r, opts...)

	var out []*Block
	for {
		b, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
}
