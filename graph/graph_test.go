// Package graph_test exercises construction and preparation of the weight
// matrix: symmetry, recoverable edge rejection, and sentinel substitution.
package graph_test

import (
	"math"
	"testing"

	"github.com/bischofs/TravelingSalesman/graph"
	"github.com/stretchr/testify/require"
)

// goldenEdges is the five-vertex regression graph used across packages.
var goldenEdges = []graph.Edge{
	{0, 1, 6}, {0, 2, 7}, {0, 3, 8}, {0, 4, 9},
	{1, 2, 1}, {1, 3, 1}, {1, 4, 1},
	{2, 3, 4}, {2, 4, 10}, {3, 4, 12},
}

func TestNew_Sizes(t *testing.T) {
	_, err := graph.New(0)
	require.ErrorIs(t, err, graph.ErrEmptyGraph)

	_, err = graph.New(-3)
	require.ErrorIs(t, err, graph.ErrBadSize)

	g, err := graph.New(4)
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.Zero(t, g.EdgeCount())
}

func TestAddEdge_Symmetric(t *testing.T) {
	g, _, err := graph.Build(5, goldenEdges)
	require.NoError(t, err)

	var e graph.Edge
	for _, e = range goldenEdges {
		uv, err := g.Weight(e.U, e.V)
		require.NoError(t, err)
		vu, err := g.Weight(e.V, e.U)
		require.NoError(t, err)
		require.Equal(t, e.Weight, uv)
		require.Equal(t, uv, vu)
	}
	require.Equal(t, len(goldenEdges), g.EdgeCount())
}

func TestAddEdge_OutOfRangeLeavesMatrixUnchanged(t *testing.T) {
	g, _, err := graph.Build(3, []graph.Edge{{0, 1, 2}, {1, 2, 3}})
	require.NoError(t, err)
	before := g.Rows()

	err = g.AddEdge(3, 0, 7)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)
	require.True(t, graph.IsRecoverable(err))

	err = g.AddEdge(0, -1, 7)
	require.ErrorIs(t, err, graph.ErrVertexOutOfRange)

	require.Equal(t, before, g.Rows())
}

func TestAddEdge_NegativeWeight(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)

	err = g.AddEdge(0, 1, -4)
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
	require.False(t, graph.IsRecoverable(err))
}

func TestAddEdge_SelfLoopIgnored(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(1, 1, 9))

	w, err := g.Weight(1, 1)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestAddEdge_Overwrite(t *testing.T) {
	g, err := graph.New(2)
	require.NoError(t, err)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(1, 0, 2))

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(2), w)
}

func TestBuild_CollectsWarningsAndContinues(t *testing.T) {
	edges := []graph.Edge{{0, 1, 5}, {7, 1, 3}, {1, 2, 4}, {2, 9, 1}, {0, 2, 6}}
	g, warnings, err := graph.Build(3, edges)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	for _, w := range warnings {
		require.ErrorIs(t, w, graph.ErrVertexOutOfRange)
	}
	require.Equal(t, [][]int64{
		{0, 5, 6},
		{5, 0, 4},
		{6, 4, 0},
	}, g.Rows())
}

func TestBuild_FatalEdge(t *testing.T) {
	_, _, err := graph.Build(3, []graph.Edge{{0, 1, 5}, {1, 2, -1}})
	require.ErrorIs(t, err, graph.ErrNegativeWeight)
}

func TestRows_IsACopy(t *testing.T) {
	g, _, err := graph.Build(2, []graph.Edge{{0, 1, 3}})
	require.NoError(t, err)

	rows := g.Rows()
	rows[0][1] = 99

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	require.Equal(t, int64(3), w)
}

func TestPrepare_Sentinel(t *testing.T) {
	g, _, err := graph.Build(5, goldenEdges)
	require.NoError(t, err)

	m, err := g.Prepare()
	require.NoError(t, err)
	require.Equal(t, int64(59), m.TotalWeight())
	require.Equal(t, int64(60), m.Unreachable())

	var i int
	for i = 0; i < m.Size(); i++ {
		require.Equal(t, m.Unreachable(), m.At(i, i), "diagonal %d", i)
		require.False(t, m.HasEdge(i, i))
	}
	require.Equal(t, int64(12), m.At(3, 4))
	require.True(t, m.HasEdge(4, 3))
	require.False(t, m.HasEdge(0, 5))
}

func TestPrepare_MissingEdgesAndImmutability(t *testing.T) {
	g, _, err := graph.Build(3, []graph.Edge{{0, 1, 2}})
	require.NoError(t, err)

	m, err := g.Prepare()
	require.NoError(t, err)
	require.Equal(t, int64(3), m.Unreachable())
	require.Equal(t, m.Unreachable(), m.At(1, 2))
	require.Equal(t, m.Unreachable(), m.At(2, 0))

	// The source graph keeps its raw zeros.
	w, err := g.Weight(1, 2)
	require.NoError(t, err)
	require.Zero(t, w)
}

func TestPrepare_Overflow(t *testing.T) {
	g, _, err := graph.Build(3, []graph.Edge{
		{0, 1, math.MaxInt64 / 4},
		{1, 2, math.MaxInt64 / 4},
		{0, 2, math.MaxInt64 / 4},
	})
	require.NoError(t, err)

	_, err = g.Prepare()
	require.ErrorIs(t, err, graph.ErrWeightOverflow)
}

func TestFingerprint(t *testing.T) {
	a, _, err := graph.Build(5, goldenEdges)
	require.NoError(t, err)
	b, _, err := graph.Build(5, goldenEdges)
	require.NoError(t, err)

	ma, err := a.Prepare()
	require.NoError(t, err)
	mb, err := b.Prepare()
	require.NoError(t, err)
	require.Equal(t, ma.Fingerprint(), mb.Fingerprint())

	require.NoError(t, b.AddEdge(2, 3, 5))
	mc, err := b.Prepare()
	require.NoError(t, err)
	require.NotEqual(t, ma.Fingerprint(), mc.Fingerprint())

	require.True(t, ma.Equal(mb))
	require.False(t, ma.Equal(mc))
	require.False(t, ma.Equal(nil))
}

func TestDegreeAndComponents(t *testing.T) {
	g, _, err := graph.Build(6, []graph.Edge{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
		{3, 4, 2},
	})
	require.NoError(t, err)
	m, err := g.Prepare()
	require.NoError(t, err)

	require.Equal(t, 2, m.Degree(0))
	require.Equal(t, 1, m.Degree(4))
	require.Zero(t, m.Degree(5))
	require.Zero(t, m.Degree(9))

	count, label := m.Components()
	require.Equal(t, 3, count)
	require.Equal(t, []int{0, 0, 0, 1, 1, 2}, label)
}

func TestComponents_Connected(t *testing.T) {
	g, _, err := graph.Build(5, goldenEdges)
	require.NoError(t, err)
	m, err := g.Prepare()
	require.NoError(t, err)

	count, label := m.Components()
	require.Equal(t, 1, count)
	require.Equal(t, []int{0, 0, 0, 0, 0}, label)
}
