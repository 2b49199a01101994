// Package config loads the salesman settings.
//
// Sources, lowest precedence first:
//  1. Default()
//  2. a YAML file (strict: unknown keys are errors)
//  3. a .env file and SALESMAN_* environment variables
//  4. command-line flags (applied by the caller)
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SALESMAN_"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of run settings.
type Config struct {
	// Workers is the number of search goroutines; 0 means one per CPU.
	Workers int `yaml:"workers"`
	// Start fixes the start vertex; -1 tries every vertex.
	Start int `yaml:"start"`
	// TwoOpt enables 2-opt refinement of each winning circuit.
	TwoOpt bool `yaml:"two_opt"`
	// TwoOptMaxMoves caps accepted 2-opt moves; 0 means unlimited.
	TwoOptMaxMoves int `yaml:"two_opt_max_moves"`
	// LowerBound adds the 1-tree lower bound to structured reports.
	LowerBound bool `yaml:"lower_bound"`
	// Format is the report format: text, json or yaml.
	Format string `yaml:"format"`
	// CacheSize is the number of graph results remembered; 0 disables the cache.
	CacheSize int `yaml:"cache_size"`
	// MaxVertices rejects larger graphs; 0 removes the limit.
	MaxVertices int `yaml:"max_vertices"`
	// LogLevel is debug, info, warn or error.
	LogLevel string `yaml:"log_level"`
	// LogFormat is text or json.
	LogFormat string `yaml:"log_format"`
	// MetricsFile, when set, receives the Prometheus metrics after the run.
	MetricsFile string `yaml:"metrics_file"`
}

// Default returns the settings that reproduce the classic console tool.
func Default() Config {
	return Config{
		Workers:        1,
		Start:          -1,
		TwoOpt:         false,
		TwoOptMaxMoves: 0,
		LowerBound:     false,
		Format:         "text",
		CacheSize:      128,
		MaxVertices:    2048,
		LogLevel:       "warn",
		LogFormat:      "text",
		MetricsFile:    "",
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults. Unknown keys are rejected.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open: %w", err)
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err = decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv loads envFiles (or ./.env when none are named and it exists) into
// the process environment and then applies SALESMAN_* overrides. Variables
// already set in the environment win over the files.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		_ = godotenv.Load()
	} else if err := godotenv.Load(envFiles...); err != nil {
		return fmt.Errorf("config: env file: %w", err)
	}

	if err := c.applyLookup(os.LookupEnv); err != nil {
		return err
	}

	return c.Validate()
}

func (c *Config) applyLookup(lookup func(string) (string, bool)) error {
	var err error
	ints := []struct {
		key string
		dst *int
	}{
		{"WORKERS", &c.Workers},
		{"START", &c.Start},
		{"TWO_OPT_MAX_MOVES", &c.TwoOptMaxMoves},
		{"CACHE_SIZE", &c.CacheSize},
		{"MAX_VERTICES", &c.MaxVertices},
	}
	for _, f := range ints {
		raw, ok := lookup(EnvPrefix + f.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if *f.dst, err = strconv.Atoi(strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, f.key, raw)
		}
	}

	bools := []struct {
		key string
		dst *bool
	}{
		{"TWO_OPT", &c.TwoOpt},
		{"LOWER_BOUND", &c.LowerBound},
	}
	for _, f := range bools {
		raw, ok := lookup(EnvPrefix + f.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		if *f.dst, err = strconv.ParseBool(strings.TrimSpace(raw)); err != nil {
			return fmt.Errorf("%w: %s%s=%q", ErrInvalid, EnvPrefix, f.key, raw)
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{"FORMAT", &c.Format},
		{"LOG_LEVEL", &c.LogLevel},
		{"LOG_FORMAT", &c.LogFormat},
		{"METRICS_FILE", &c.MetricsFile},
	}
	for _, f := range strs {
		if raw, ok := lookup(EnvPrefix + f.key); ok && strings.TrimSpace(raw) != "" {
			*f.dst = strings.TrimSpace(raw)
		}
	}

	return nil
}

// Validate checks every field.
func (c Config) Validate() error {
	switch {
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d", ErrInvalid, c.Workers)
	case c.Start < -1:
		return fmt.Errorf("%w: start %d", ErrInvalid, c.Start)
	case c.TwoOptMaxMoves < 0:
		return fmt.Errorf("%w: two_opt_max_moves %d", ErrInvalid, c.TwoOptMaxMoves)
	case c.CacheSize < 0:
		return fmt.Errorf("%w: cache_size %d", ErrInvalid, c.CacheSize)
	case c.MaxVertices < 0:
		return fmt.Errorf("%w: max_vertices %d", ErrInvalid, c.MaxVertices)
	}

	switch strings.ToLower(c.Format) {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalid, c.LogFormat)
	}

	return nil
}

// SlogLevel maps LogLevel to a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}

	return lvl, nil
}
