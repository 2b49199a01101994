package report

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"
)

// graphDoc is the structured rendering of an Outcome.
type graphDoc struct {
	Index    int          `json:"index" yaml:"index"`
	Size     int          `json:"size" yaml:"size"`
	Matrix   [][]int64    `json:"matrix" yaml:"matrix,flow"`
	Warnings []warningDoc `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Circuit  bool         `json:"circuit" yaml:"circuit"`
	Length   int64        `json:"length,omitempty" yaml:"length,omitempty"`
	Tour     []int        `json:"tour,omitempty" yaml:"tour,omitempty,flow"`
	Start    *int         `json:"start,omitempty" yaml:"start,omitempty"`
	Second   *int         `json:"second,omitempty" yaml:"second,omitempty"`
	Trials   int          `json:"trials" yaml:"trials"`
	Moves    int          `json:"two_opt_moves,omitempty" yaml:"two_opt_moves,omitempty"`
	Bound    int64        `json:"lower_bound,omitempty" yaml:"lower_bound,omitempty"`
	Cached   bool         `json:"cached,omitempty" yaml:"cached,omitempty"`
}

type warningDoc struct {
	Line    int    `json:"line" yaml:"line"`
	Message string `json:"message" yaml:"message"`
}

type fatalDoc struct {
	Error string `json:"error" yaml:"error"`
}

// encoder is satisfied by both *json.Encoder and *yaml.Encoder.
type encoder interface {
	Encode(v any) error
}

// structuredPrinter buffers warnings until the graph they belong to is
// printed, then emits one document.
type structuredPrinter struct {
	enc     encoder
	closer  func() error
	pending []warningDoc
}

func newJSONPrinter(w io.Writer) *structuredPrinter {
	return &structuredPrinter{enc: json.NewEncoder(w)}
}

func newYAMLPrinter(w io.Writer) *structuredPrinter {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	return &structuredPrinter{enc: enc, closer: enc.Close}
}

func (p *structuredPrinter) Warning(line int, err error) error {
	p.pending = append(p.pending, warningDoc{Line: line, Message: err.Error()})
	return nil
}

func (p *structuredPrinter) Graph(o Outcome) error {
	doc := graphDoc{
		Index:    o.Index,
		Size:     len(o.Rows),
		Matrix:   o.Rows,
		Warnings: p.pending,
		Trials:   o.Trials,
		Cached:   o.Cached,
	}
	p.pending = nil
	if r := o.Result; r != nil {
		doc.Circuit = true
		doc.Length = r.Length
		doc.Tour = r.Tour
		doc.Start = &r.Start
		doc.Second = &r.Second
		doc.Moves = r.Moves
		doc.Bound = r.LowerBound
	}

	return p.enc.Encode(doc)
}

// Fatal writes warnings that never reached a graph as documents of their
// own, then the error.
func (p *structuredPrinter) Fatal(err error) error {
	for _, w := range p.pending {
		if e := p.enc.Encode(w); e != nil {
			return e
		}
	}
	p.pending = nil

	return p.enc.Encode(fatalDoc{Error: err.Error()})
}

func (p *structuredPrinter) Close() error {
	if p.closer == nil {
		return nil
	}

	return p.closer()
}
