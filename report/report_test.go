package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bischofs/TravelingSalesman/report"
	"github.com/bischofs/TravelingSalesman/tsp"
)

var goldenRows = [][]int64{
	{0, 6, 7, 8, 9},
	{6, 0, 1, 1, 1},
	{7, 1, 0, 4, 10},
	{8, 1, 4, 0, 12},
	{9, 1, 10, 12, 0},
}

var goldenResult = &tsp.Result{
	Length: 22,
	Tour:   []int{0, 4, 1, 3, 2, 0},
	Start:  4,
	Second: 1,
	Trials: 25,
}

const goldenText = "The matrix representation of the graph is:\n" +
	"\n" +
	"[[0 6 7 8 9 ]\n" +
	"[6 0 1 1 1 ]\n" +
	"[7 1 0 4 10 ]\n" +
	"[8 1 4 0 12 ]\n" +
	"[9 1 10 12 0 ]\n" +
	"\n" +
	"Minimum circuit length is: 22\n" +
	"The circuit is: [0, 4, 1, 3, 2, 0]\n" +
	"\n" +
	"\n"

func TestText_Golden(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New(report.FormatText, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Graph(report.Outcome{Rows: goldenRows, Result: goldenResult, Trials: 25}))
	require.NoError(t, p.Close())
	require.Equal(t, goldenText, buf.String())
}

func TestText_NoCircuitWarningFatal(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New("TEXT", &buf)
	require.NoError(t, err)

	require.NoError(t, p.Warning(3, errors.New("out of range")))
	require.NoError(t, p.Graph(report.Outcome{Rows: [][]int64{{0, 1}, {1, 0}}, Trials: 4}))
	require.NoError(t, p.Fatal(errors.New("bad line")))

	want := "The row or col is larger than the size of the matrix.\n" +
		"The matrix representation of the graph is:\n\n" +
		"[[0 1 ]\n[1 0 ]\n\n" +
		"No circuit...\n" +
		"Error reading file. Please check your input.\n"
	require.Equal(t, want, buf.String())
}

func TestJSON_OneObjectPerGraph(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New(report.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Warning(7, errors.New("edge dropped")))
	require.NoError(t, p.Graph(report.Outcome{Index: 0, Rows: goldenRows, Result: goldenResult, Trials: 25}))
	require.NoError(t, p.Graph(report.Outcome{Index: 1, Rows: [][]int64{{0}}, Trials: 1, Cached: true}))
	require.NoError(t, p.Close())

	dec := json.NewDecoder(&buf)

	var first map[string]any
	require.NoError(t, dec.Decode(&first))
	require.Equal(t, true, first["circuit"])
	require.Equal(t, float64(22), first["length"])
	require.Equal(t, []any{float64(0), float64(4), float64(1), float64(3), float64(2), float64(0)}, first["tour"])
	require.Equal(t, float64(4), first["start"])
	require.Len(t, first["warnings"], 1)

	var second map[string]any
	require.NoError(t, dec.Decode(&second))
	require.Equal(t, false, second["circuit"])
	require.Equal(t, true, second["cached"])
	require.NotContains(t, second, "warnings")
	require.NotContains(t, second, "tour")
	require.NotContains(t, second, "start")
	require.NotContains(t, second, "second")
}

func TestJSON_ZeroStartIsWritten(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New(report.FormatJSON, &buf)
	require.NoError(t, err)

	res := tsp.Result{Length: 9, Tour: []int{0, 2, 1, 0}, Start: 0, Second: 2, Trials: 9}
	require.NoError(t, p.Graph(report.Outcome{Rows: [][]int64{{0, 2, 4}, {2, 0, 3}, {4, 3, 0}}, Result: &res, Trials: 9}))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	require.Equal(t, float64(0), doc["start"])
	require.Equal(t, float64(2), doc["second"])
}

func TestJSON_Fatal(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New(report.FormatJSON, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Fatal(errors.New("bad line")))
	require.JSONEq(t, `{"error":"bad line"}`, buf.String())
}

func TestYAML_Documents(t *testing.T) {
	var buf bytes.Buffer
	p, err := report.New(report.FormatYAML, &buf)
	require.NoError(t, err)

	require.NoError(t, p.Graph(report.Outcome{Rows: goldenRows, Result: goldenResult, Trials: 25}))
	require.NoError(t, p.Graph(report.Outcome{Index: 1, Rows: [][]int64{{0}}, Trials: 1}))
	require.NoError(t, p.Close())

	dec := yaml.NewDecoder(&buf)
	var doc struct {
		Index   int       `yaml:"index"`
		Size    int       `yaml:"size"`
		Matrix  [][]int64 `yaml:"matrix"`
		Circuit bool      `yaml:"circuit"`
		Length  int64     `yaml:"length"`
		Tour    []int     `yaml:"tour"`
	}
	require.NoError(t, dec.Decode(&doc))
	require.Equal(t, 5, doc.Size)
	require.Equal(t, goldenRows, doc.Matrix)
	require.True(t, doc.Circuit)
	require.Equal(t, int64(22), doc.Length)
	require.Equal(t, []int{0, 4, 1, 3, 2, 0}, doc.Tour)

	doc.Circuit = true
	require.NoError(t, dec.Decode(&doc))
	require.Equal(t, 1, doc.Index)
	require.False(t, doc.Circuit)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := report.New("xml", &bytes.Buffer{})
	require.ErrorIs(t, err, report.ErrUnknownFormat)
	require.Equal(t, []string{"text", "json", "yaml"}, report.Formats())
}
