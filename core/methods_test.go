// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.

package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/maxcut/core"
)

// Common vertex IDs used across core tests.
const (
	VertexEmpty = ""
	Vertex1     = "1"
	Vertex2     = "2"
	Vertex3     = "3"
	Vertex10    = "10"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()

	require.ErrorIs(t, g.AddVertex(VertexEmpty), core.ErrEmptyVertexID)
	require.NoError(t, g.AddVertex(Vertex1))
	require.True(t, g.HasVertex(Vertex1))

	// Idempotent insert.
	require.NoError(t, g.AddVertex(Vertex1))
	require.Equal(t, 1, g.VertexCount())
	require.False(t, g.HasVertex(VertexEmpty))
}

func TestGraph_AddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge(VertexEmpty, Vertex1, 0)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	_, err = g.AddEdge(Vertex1, Vertex2, 3)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge(Vertex1, Vertex1, 0)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	eid, err := g.AddEdge(Vertex1, Vertex2, 0)
	require.NoError(t, err)
	require.Equal(t, "e1", eid)

	// Mirror orientation is the same undirected edge.
	_, err = g.AddEdge(Vertex2, Vertex1, 0)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	require.True(t, g.HasEdge(Vertex1, Vertex2))
	require.True(t, g.HasEdge(Vertex2, Vertex1))
	require.Equal(t, 1, g.EdgeCount())
}

func TestGraph_LoopsAndWeights(t *testing.T) {
	g := core.NewGraph(core.WithLoops(), core.WithWeighted())

	_, err := g.AddEdge(Vertex1, Vertex1, 4)
	require.NoError(t, err)
	_, err = g.AddEdge(Vertex1, Vertex2, 3)
	require.NoError(t, err)

	deg, err := g.Degree(Vertex1)
	require.NoError(t, err)
	require.Equal(t, 3, deg) // loop counts twice

	require.Equal(t, int64(7), g.TotalWeight())

	nbrs, err := g.NeighborIDs(Vertex1)
	require.NoError(t, err)
	require.Equal(t, []string{Vertex1, Vertex2}, nbrs)
}

func TestGraph_OrderingIsNatural(t *testing.T) {
	g := core.NewGraph()
	for _, pair := range [][2]string{{Vertex10, Vertex2}, {Vertex3, Vertex1}, {"b", "a"}} {
		_, err := g.AddEdge(pair[0], pair[1], 0)
		require.NoError(t, err)
	}

	require.Equal(t, []string{"1", "2", "3", "10", "a", "b"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	require.Equal(t, [3]string{"e1", "e2", "e3"}, [3]string{edges[0].ID, edges[1].ID, edges[2].ID})
	require.Equal(t, Vertex10, edges[0].From)
}

func TestGraph_EdgeLookups(t *testing.T) {
	g := core.NewGraph()
	eid, err := g.AddEdge(Vertex1, Vertex2, 0)
	require.NoError(t, err)

	e, err := g.GetEdge(eid)
	require.NoError(t, err)
	require.Equal(t, Vertex2, e.Other(Vertex1))
	require.Equal(t, Vertex1, e.Other(Vertex2))
	require.Equal(t, "", e.Other(Vertex3))

	e2, err := g.EdgeBetween(Vertex2, Vertex1)
	require.NoError(t, err)
	require.Same(t, e, e2)

	_, err = g.GetEdge("e42")
	require.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.EdgeBetween(Vertex1, Vertex3)
	require.ErrorIs(t, err, core.ErrEdgeNotFound)

	_, err = g.Degree(Vertex3)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs(VertexEmpty)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)

	require.Equal(t, int64(1), g.EffectiveWeight(e))
	require.Equal(t, map[string][]string{"1": {"2"}, "2": {"1"}}, g.AdjacencyList())
}

func TestGraph_ConcurrentAddEdge(t *testing.T) {
	const n = 64
	g := core.NewGraph()

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = g.AddEdge("hub", "leaf"+string(rune('A'+i%26))+string(rune('a'+i/26)), 0)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
	require.Equal(t, n, g.EdgeCount())
	deg, err := g.Degree("hub")
	require.NoError(t, err)
	require.Equal(t, n, deg)
}

func TestLess(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"2", "10", true},
		{"10", "2", false},
		{"9", "a", true},
		{"a", "9", false},
		{"a", "b", true},
		{"01", "1", true},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, core.Less(tc.a, tc.b), "%q < %q", tc.a, tc.b)
	}
}
