// SPDX-License-Identifier: MIT
package builder_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/maxcut/builder"
	"github.com/katalvlaran/maxcut/core"
)

// EdgeListSuite covers the literal edge-list graph builder.
type EdgeListSuite struct {
	suite.Suite
}

func (s *EdgeListSuite) TestExampleGraph() {
	g, err := builder.BuildGraph(nil, nil, builder.MaxCutExample())
	s.Require().NoError(err)

	s.Equal([]string{"1", "2", "3", "4", "5"}, g.Vertices())
	s.Equal(6, g.EdgeCount())
	for _, p := range builder.ExampleEdges {
		s.True(g.HasEdge(p[0], p[1]), "edge %v", p)
		s.True(g.HasEdge(p[1], p[0]), "mirror %v", p)
	}
}

func (s *EdgeListSuite) TestDeduplicatesUnorderedPairs() {
	g, err := builder.BuildGraph(nil, nil, builder.EdgeList([]builder.Pair{
		{"1", "2"}, {"2", "1"}, {"1", "2"}, {"2", "3"},
	}))
	s.Require().NoError(err)
	s.Equal(2, g.EdgeCount())

	edges := g.Edges()
	s.Equal("1", edges[0].From)
	s.Equal("2", edges[1].From)
}

func (s *EdgeListSuite) TestRejectsSelfLoopBeforeMutation() {
	_, err := builder.BuildGraph(nil, nil, builder.EdgeList([]builder.Pair{{"1", "2"}, {"3", "3"}}))
	s.Require().ErrorIs(err, builder.ErrSelfLoop)
	s.Contains(err.Error(), "BuildGraph: EdgeList: pair #1")
}

func (s *EdgeListSuite) TestRejectsMalformedAndEmpty() {
	_, err := builder.BuildGraph(nil, nil, builder.EdgeList([]builder.Pair{{"1", ""}}))
	s.Require().ErrorIs(err, builder.ErrMalformedPair)

	_, err = builder.BuildGraph(nil, nil, builder.EdgeList(nil))
	s.Require().ErrorIs(err, builder.ErrEmptyEdgeList)

	_, err = builder.BuildGraph(nil, nil, nil)
	s.Require().ErrorIs(err, builder.ErrConstructFailed)
}

func (s *EdgeListSuite) TestWeightedLastWins() {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()}, nil,
		builder.WeightedEdgeList([]builder.WeightedEdge{
			{U: "a", V: "b", Weight: 2},
			{U: "b", V: "c", Weight: 5},
			{U: "b", V: "a", Weight: 7},
		}),
	)
	s.Require().NoError(err)
	e, err := g.EdgeBetween("a", "b")
	s.Require().NoError(err)
	s.Equal(int64(7), e.Weight)
	s.Equal(int64(12), g.TotalWeight())

	_, err = builder.BuildGraph(nil, nil, builder.WeightedEdgeList([]builder.WeightedEdge{{U: "a", V: "b", Weight: 2}}))
	s.Require().ErrorIs(err, core.ErrBadWeight)
}

func TestEdgeListSuite(t *testing.T) {
	suite.Run(t, new(EdgeListSuite))
}

func TestCycleAndComplete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(5))
	require.NoError(t, err)
	require.Equal(t, 5, g.EdgeCount())
	require.True(t, g.HasEdge("5", "1"))

	g, err = builder.BuildGraph(nil, nil, builder.Complete(4))
	require.NoError(t, err)
	require.Equal(t, 6, g.EdgeCount())

	_, err = builder.BuildGraph(nil, nil, builder.Cycle(2))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, nil, builder.Complete(1))
	require.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestRandomSparse(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(12, 0.3))
		require.NoError(t, err)
		return g
	}
	a, b := build(7), build(7)
	require.Equal(t, a.AdjacencyList(), b.AdjacencyList())
	require.Equal(t, 12, a.VertexCount())

	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	full, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Equal(t, 6, full.EdgeCount())
}

func TestOptions(t *testing.T) {
	g, err := builder.BuildGraph(
		[]core.GraphOption{core.WithWeighted()},
		[]builder.BuilderOption{
			builder.WithIDScheme(func(i int) string { return "v" + strconv.Itoa(i) }),
			builder.WithRand(rand.New(rand.NewSource(1))),
			builder.WithWeightFn(func(*rand.Rand) int64 { return 3 }),
		},
		builder.Cycle(3),
	)
	require.NoError(t, err)
	require.Equal(t, []string{"v0", "v1", "v2"}, g.Vertices())
	require.Equal(t, int64(9), g.TotalWeight())

	require.Panics(t, func() { builder.WithIDScheme(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
	require.Panics(t, func() { builder.WithWeightFn(nil) })
}
