// Command salesman reads a stream of weighted graphs and prints, for each,
// the shortest Hamiltonian circuit found by the multi-start nearest-neighbour
// heuristic.
//
// Without a file argument it prompts for a filename on stdin, like the
// classic console tool. Settings come from an optional YAML file, .env files,
// SALESMAN_* environment variables and flags, in increasing precedence.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/bischofs/TravelingSalesman/config"
	"github.com/bischofs/TravelingSalesman/metrics"
	"github.com/bischofs/TravelingSalesman/report"
	"github.com/bischofs/TravelingSalesman/runner"
)

const prompt = "Please enter the filename: "

// Exit codes.
const (
	exitOK    = 0
	exitInput = 1 // the graph stream was rejected
	exitSetup = 2 // configuration, file, search or output problems
)

// cli holds the command line. Pointer flags stay nil when not given so that
// they only override lower layers when present.
type cli struct {
	File    string   `arg:"" optional:"" help:"Graph file to read (- for stdin). Prompts when omitted."`
	Config  string   `short:"c" help:"YAML configuration file." type:"path" env:"SALESMAN_CONFIG"`
	EnvFile []string `name:"env-file" help:"Files of KEY=value lines to load into the environment (default ./.env if present)."`
	Pause   bool     `help:"Wait for Enter before exiting."`

	Workers        *int    `short:"w" help:"Search goroutines; 0 means one per CPU."`
	Start          *int    `help:"Fixed start vertex; -1 tries every vertex."`
	TwoOpt         *bool   `name:"two-opt" help:"Refine each circuit with 2-opt."`
	TwoOptMaxMoves *int    `name:"two-opt-max-moves" help:"Cap on accepted 2-opt moves; 0 means unlimited."`
	LowerBound     *bool   `name:"lower-bound" help:"Report the 1-tree lower bound (json and yaml formats)."`
	Format         *string `short:"f" help:"Output format: text, json or yaml."`
	CacheSize      *int    `name:"cache-size" help:"Results remembered across identical graphs; 0 disables."`
	MaxVertices    *int    `name:"max-vertices" help:"Largest accepted graph; 0 removes the limit."`
	LogLevel       *string `name:"log-level" help:"debug, info, warn or error."`
	LogFormat      *string `name:"log-format" help:"text or json."`
	MetricsFile    *string `name:"metrics-file" help:"Write Prometheus metrics to this file after the run."`
}

func main() {
	var params cli
	kong.Parse(&params,
		kong.Name("salesman"),
		kong.Description("Multi-start nearest-neighbour Hamiltonian circuit heuristic."),
		kong.UsageOnError(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, params, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, params cli, stdin io.Reader, stdout, stderr io.Writer) int {
	in := bufio.NewReader(stdin)

	cfg, err := resolveConfig(params)
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return exitSetup
	}

	logger, err := newLogger(cfg, stderr)
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return exitSetup
	}

	path := params.File
	if path == "" {
		fmt.Fprint(stdout, prompt)
		line, rerr := in.ReadString('\n')
		if rerr != nil && !errors.Is(rerr, io.EOF) {
			logger.Error("failed to read filename", "error", rerr)
			return exitSetup
		}
		path = strings.TrimSpace(line)
	}

	src, closeSrc, err := openInput(path, in)
	if err != nil {
		logger.Error("failed to open graph file", "path", path, "error", err)
		fmt.Fprintln(stderr, "salesman:", err)
		return exitSetup
	}
	defer closeSrc()

	printer, err := report.New(cfg.Format, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return exitSetup
	}

	reg := prometheus.NewRegistry()
	r, err := runner.New(runner.OptionsFromConfig(cfg), printer, logger, metrics.New(reg))
	if err != nil {
		fmt.Fprintln(stderr, "salesman:", err)
		return exitSetup
	}

	logger.Debug("run started", "path", path, "format", cfg.Format, "workers", cfg.Workers)
	code := exitOK
	if err = r.Run(ctx, src); err != nil {
		code = exitInput
		if !errors.Is(err, runner.ErrInputRejected) {
			logger.Error("run failed", "error", err)
			fmt.Fprintln(stderr, "salesman:", err)
			code = exitSetup
		}
	}
	if err = printer.Close(); err != nil {
		logger.Error("failed to flush output", "error", err)
		code = exitSetup
	}

	if cfg.MetricsFile != "" {
		if err = metrics.WriteFile(reg, cfg.MetricsFile); err != nil {
			logger.Error("failed to write metrics", "path", cfg.MetricsFile, "error", err)
			code = exitSetup
		}
	}

	if params.Pause {
		_, _ = in.ReadString('\n')
	}

	return code
}

// resolveConfig layers file, environment and flags over the defaults.
func resolveConfig(params cli) (config.Config, error) {
	cfg, err := config.Load(params.Config)
	if err != nil {
		return cfg, err
	}
	if err = cfg.ApplyEnv(params.EnvFile...); err != nil {
		return cfg, err
	}

	setInt(&cfg.Workers, params.Workers)
	setInt(&cfg.Start, params.Start)
	setInt(&cfg.TwoOptMaxMoves, params.TwoOptMaxMoves)
	setInt(&cfg.CacheSize, params.CacheSize)
	setInt(&cfg.MaxVertices, params.MaxVertices)
	setBool(&cfg.TwoOpt, params.TwoOpt)
	setBool(&cfg.LowerBound, params.LowerBound)
	setString(&cfg.Format, params.Format)
	setString(&cfg.LogLevel, params.LogLevel)
	setString(&cfg.LogFormat, params.LogFormat)
	setString(&cfg.MetricsFile, params.MetricsFile)

	return cfg, cfg.Validate()
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// newLogger builds the stderr logger; every record carries the run id.
func newLogger(cfg config.Config, w io.Writer) (*slog.Logger, error) {
	lvl, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	if strings.EqualFold(cfg.LogFormat, "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h).With("run_id", uuid.NewString()), nil
}

// openInput opens path, or returns stdin for "-".
func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" {
		return nil, nil, errors.New("no input file given")
	}
	if path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	return f, func() { _ = f.Close() }, nil
}
