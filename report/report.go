package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bischofs/TravelingSalesman/tsp"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ErrUnknownFormat is returned by New for an unsupported format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Outcome is everything known about one processed graph.
type Outcome struct {
	// Index is the 0-based position of the graph in its stream.
	Index int
	// Rows is the raw weight matrix as read (0 = no edge).
	Rows [][]int64
	// Result is the best circuit; nil when none was found.
	Result *tsp.Result
	// Trials is the number of trials evaluated.
	Trials int
	// Cached reports whether Result came from the result cache.
	Cached bool
}

// Printer renders warnings, graph outcomes and fatal input errors.
type Printer interface {
	// Warning reports a rejected edge on the given input line.
	Warning(line int, err error) error
	// Graph reports one processed graph.
	Graph(o Outcome) error
	// Fatal reports an error that stopped input processing.
	Fatal(err error) error
	// Close flushes buffered output.
	Close() error
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{FormatText, FormatJSON, FormatYAML}
}

// New returns a Printer writing format to w. The name is case-insensitive.
func New(format string, w io.Writer) (Printer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return &textPrinter{w: w}, nil
	case FormatJSON:
		return newJSONPrinter(w), nil
	case FormatYAML:
		return newYAMLPrinter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
