// Package runner drives a graph stream through the search engine: each block
// is read, prepared, searched and handed to a report.Printer before the next
// block is read. Blocks share nothing except an optional result cache keyed
// by matrix contents.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/bischofs/TravelingSalesman/config"
	"github.com/bischofs/TravelingSalesman/graph"
	"github.com/bischofs/TravelingSalesman/graphfile"
	"github.com/bischofs/TravelingSalesman/metrics"
	"github.com/bischofs/TravelingSalesman/report"
	"github.com/bischofs/TravelingSalesman/tsp"
)

// ErrBadOptions is returned by New for negative option values.
var ErrBadOptions = errors.New("runner: invalid options")

// ErrInputRejected wraps every error Run has already printed and logged as a
// fatal input error. Other errors returned by Run have not been reported.
var ErrInputRejected = errors.New("runner: input rejected")

// Options configures a Runner.
type Options struct {
	// Workers is passed to tsp.WithWorkers; 0 means runtime.GOMAXPROCS(0).
	Workers int
	// Start is tsp.AllStarts or a fixed start vertex.
	Start int
	// TwoOpt enables refinement with at most MaxMoves moves (0 = unlimited).
	TwoOpt   bool
	MaxMoves int
	// LowerBound adds the 1-tree bound to each result.
	LowerBound bool
	// CacheSize bounds the result cache; 0 disables it.
	CacheSize int
	// MaxVertices is handed to graphfile.WithMaxVertices.
	MaxVertices int
}

// DefaultOptions mirrors config.Default.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig extracts the runner settings from a loaded Config.
func OptionsFromConfig(c config.Config) Options {
	return Options{
		Workers:     c.Workers,
		Start:       c.Start,
		TwoOpt:      c.TwoOpt,
		MaxMoves:    c.TwoOptMaxMoves,
		LowerBound:  c.LowerBound,
		CacheSize:   c.CacheSize,
		MaxVertices: c.MaxVertices,
	}
}

// cacheEntry is one remembered search. The matrix is kept to rule out
// fingerprint collisions.
type cacheEntry struct {
	matrix *graph.Matrix
	result tsp.Result
	found  bool
}

// Runner processes graph streams. It is not safe for concurrent use.
type Runner struct {
	opts    Options
	tspOpts []tsp.Option
	printer report.Printer
	log     *slog.Logger
	metrics *metrics.Metrics
	cache   *lru.Cache[uint64, cacheEntry]
}

// New returns a Runner. A nil logger discards records; nil metrics are
// replaced by unregistered collectors.
func New(opts Options, printer report.Printer, logger *slog.Logger, m *metrics.Metrics) (*Runner, error) {
	if opts.Workers < 0 || opts.MaxMoves < 0 || opts.CacheSize < 0 || opts.MaxVertices < 0 || opts.Start < tsp.AllStarts {
		return nil, fmt.Errorf("%w: %+v", ErrBadOptions, opts)
	}
	if printer == nil {
		return nil, fmt.Errorf("%w: nil printer", ErrBadOptions)
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if m == nil {
		m = metrics.New(nil)
	}

	workers := opts.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	search := []tsp.Option{tsp.WithWorkers(workers), tsp.WithStart(opts.Start)}
	if opts.TwoOpt {
		search = append(search, tsp.WithTwoOpt(opts.MaxMoves))
	}
	if opts.LowerBound {
		search = append(search, tsp.WithLowerBound())
	}

	r := &Runner{
		opts:    opts,
		tspOpts: search,
		printer: printer,
		log:     logger,
		metrics: m,
	}
	if opts.CacheSize > 0 {
		cache, err := lru.New[uint64, cacheEntry](opts.CacheSize)
		if err != nil {
			return nil, err
		}
		r.cache = cache
	}

	return r, nil
}

// Run processes every block of in. It stops at the first fatal input error,
// which is printed, logged and returned wrapped in ErrInputRejected. Search
// and output errors are returned as they are. Reaching the end of in
// between blocks returns nil.
func (r *Runner) Run(ctx context.Context, in io.Reader) error {
	rd := graphfile.NewReader(in, graphfile.WithMaxVertices(r.opts.MaxVertices))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := rd.Next()
		if b != nil {
			if werr := r.warn(b.Warnings); werr != nil {
				return werr
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return r.fatal(err)
		}

		if err = r.process(ctx, b); err != nil {
			return err
		}
	}
}

func (r *Runner) warn(warnings []graphfile.Warning) error {
	var w graphfile.Warning
	for _, w = range warnings {
		r.metrics.EdgeWarningsTotal.Inc()
		r.log.Warn("edge rejected", "line", w.Line, "error", w.Err)
		if err := r.printer.Warning(w.Line, w.Err); err != nil {
			return fmt.Errorf("runner: print warning: %w", err)
		}
	}

	return nil
}

func (r *Runner) fatal(err error) error {
	r.metrics.GraphsTotal.WithLabelValues(metrics.OutcomeError).Inc()
	r.log.Error("input rejected", "error", err)
	perr := r.printer.Fatal(err)
	err = fmt.Errorf("%w: %w", ErrInputRejected, err)
	if perr != nil {
		return errors.Join(err, perr)
	}

	return err
}

// process searches one block and prints its outcome.
func (r *Runner) process(ctx context.Context, b *graphfile.Block) error {
	rows := b.Graph.Rows()

	m, err := b.Graph.Prepare()
	if err != nil {
		return r.fatal(fmt.Errorf("graph %d (line %d): %w", b.Index, b.Line, err))
	}

	res, found, cached, err := r.search(ctx, m)
	if err != nil {
		return err
	}

	out := report.Outcome{
		Index:  b.Index,
		Rows:   rows,
		Trials: res.Trials,
		Cached: cached,
	}
	outcome := metrics.OutcomeNoCircuit
	if found {
		out.Result = &res
		outcome = metrics.OutcomeCircuit
	}
	r.metrics.GraphsTotal.WithLabelValues(outcome).Inc()

	r.log.Info("graph processed",
		"index", b.Index,
		"size", m.Size(),
		"edges", b.Graph.EdgeCount(),
		"outcome", outcome,
		"length", res.Length,
		"trials", res.Trials,
		"cached", cached,
	)

	if err = r.printer.Graph(out); err != nil {
		return fmt.Errorf("runner: print graph %d: %w", b.Index, err)
	}

	return nil
}

// search answers from the cache when the same matrix was already searched,
// and runs tsp.FindBestCircuit otherwise.
func (r *Runner) search(ctx context.Context, m *graph.Matrix) (res tsp.Result, found, cached bool, err error) {
	var key uint64
	if r.cache != nil {
		key = m.Fingerprint()
		if e, ok := r.cache.Get(key); ok && e.matrix.Equal(m) {
			r.metrics.CacheHitsTotal.Inc()
			e.result.Tour = tsp.CopyTour(e.result.Tour)

			return e.result, e.found, true, nil
		}
	}

	began := time.Now()
	res, err = tsp.FindBestCircuit(ctx, m, r.tspOpts...)
	r.metrics.SearchDuration.Observe(time.Since(began).Seconds())
	r.metrics.TrialsTotal.Add(float64(res.Trials))

	switch {
	case err == nil:
		found = true
	case errors.Is(err, tsp.ErrNoCircuit):
		r.log.Debug("no circuit", "size", m.Size(), "reason", err)
		err = nil
	default:
		return tsp.Result{}, false, false, fmt.Errorf("runner: search: %w", err)
	}

	if r.cache != nil {
		r.cache.Add(key, cacheEntry{matrix: m, result: res, found: found})
	}

	return res, found, false, nil
}
