package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/bischofs/TravelingSalesman/tsp"
)

const golden = "5\n0,1,6\n0,2,7\n0,3,8\n0,4,9\n1,2,1\n1,3,1\n1,4,1\n2,3,4\n2,4,10\n3,4,12\nE\n"

const goldenOut = "The matrix representation of the graph is:\n\n" +
	"[[0 6 7 8 9 ]\n[6 0 1 1 1 ]\n[7 1 0 4 10 ]\n[8 1 4 0 12 ]\n[9 1 10 12 0 ]\n\n" +
	"Minimum circuit length is: 22\n" +
	"The circuit is: [0, 4, 1, 3, 2, 0]\n\n\n"

func parse(t *testing.T, args ...string) cli {
	t.Helper()
	var params cli
	parser, err := kong.New(&params, kong.Name("salesman"), kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)

	return params
}

func writeTemp(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func emptyEnv(t *testing.T) string {
	return writeTemp(t, "empty.env", "")
}

func TestRun_FileArgument(t *testing.T) {
	params := parse(t, "--env-file", emptyEnv(t), writeTemp(t, "graph.txt", golden))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Equal(t, goldenOut, stdout.String())
}

func TestRun_PromptsForFilename(t *testing.T) {
	path := writeTemp(t, "graph.txt", golden)
	params := parse(t, "--env-file", emptyEnv(t))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(path+"\n"), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Equal(t, prompt+goldenOut, stdout.String())
}

func TestRun_Stdin(t *testing.T) {
	workers := 3
	params := cli{File: "-", EnvFile: []string{emptyEnv(t)}, Workers: &workers}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(golden), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Equal(t, goldenOut, stdout.String())
}

func TestRun_BadInputExitCode(t *testing.T) {
	params := parse(t, "--env-file", emptyEnv(t), writeTemp(t, "graph.txt", "3\nnope\n"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitInput, code)
	require.Equal(t, "Error reading file. Please check your input.\n", stdout.String())
	require.Contains(t, stderr.String(), "input rejected")
	require.Contains(t, stderr.String(), "run_id=")
}

func TestRun_StartOutOfRangeIsReported(t *testing.T) {
	start := 3
	params := cli{File: "-", EnvFile: []string{emptyEnv(t)}, Start: &start}

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader("3\n0,1,1\n1,2,1\n0,2,1\nE\n"), &stdout, &stderr)
	require.Equal(t, exitSetup, code)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "salesman:")
	require.Contains(t, stderr.String(), tsp.ErrStartOutOfRange.Error())
}

func TestRun_CancelledIsReported(t *testing.T) {
	params := cli{File: "-", EnvFile: []string{emptyEnv(t)}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	code := run(ctx, params, strings.NewReader(golden), &stdout, &stderr)
	require.Equal(t, exitSetup, code)
	require.Contains(t, stderr.String(), context.Canceled.Error())
}

func TestRun_MissingFile(t *testing.T) {
	params := parse(t, "--env-file", emptyEnv(t), filepath.Join(t.TempDir(), "absent.txt"))

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitSetup, code)
}

func TestRun_FlagsOverrideConfigFile(t *testing.T) {
	cfgPath := writeTemp(t, "salesman.yaml", "format: yaml\nworkers: 2\n")
	metricsPath := filepath.Join(t.TempDir(), "salesman.prom")
	params := parse(t,
		"--env-file", emptyEnv(t),
		"-c", cfgPath,
		"--format", "json",
		"--metrics-file", metricsPath,
		writeTemp(t, "graph.txt", golden),
	)

	cfg, err := resolveConfig(params)
	require.NoError(t, err)
	require.Equal(t, "json", cfg.Format)
	require.Equal(t, 2, cfg.Workers)

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
	require.Contains(t, stdout.String(), `"length":22`)

	raw, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	require.Contains(t, string(raw), `salesman_graphs_total{outcome="circuit"} 1`)
}

func TestParse_UnsetFlagsStayNil(t *testing.T) {
	params := parse(t, "graph.txt")
	require.Nil(t, params.Workers)
	require.Nil(t, params.TwoOpt)
	require.Nil(t, params.Format)

	params = parse(t, "--two-opt", "--start", "0", "graph.txt")
	require.NotNil(t, params.TwoOpt)
	require.True(t, *params.TwoOpt)
	require.Equal(t, 0, *params.Start)
}

func TestRun_InvalidFlag(t *testing.T) {
	params := parse(t, "--env-file", emptyEnv(t), "--format", "xml", "graph.txt")

	var stdout, stderr bytes.Buffer
	code := run(context.Background(), params, strings.NewReader(""), &stdout, &stderr)
	require.Equal(t, exitSetup, code)
	require.Contains(t, stderr.String(), "format")
}
