// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_edgelist.go - literal edge-list constructors (the Max-Cut graph builder).
//
// Contract:
//   • Node set = union of all endpoints; edge set = the given pairs,
//     deduplicated as unordered pairs ((u,v) and (v,u) are one edge).
//   • Edges are inserted in first-occurrence order.
//   • Self-loops → ErrSelfLoop; empty endpoint → ErrMalformedPair;
//     no pairs at all → ErrEmptyEdgeList. Validation happens before any
//     mutation, so a rejected list leaves the graph untouched.
//   • WeightedEdgeList: a repeated pair keeps its last weight.
//
// Complexity: O(E) time, O(E) space for the dedup index.

package builder

import (
	"github.com/katalvlaran/maxcut/core"
)

const (
	methodEdgeList         = "EdgeList"
	methodWeightedEdgeList = "WeightedEdgeList"
)

// Pair is an undirected edge given by its two endpoint IDs.
type Pair [2]string

// WeightedEdge is an undirected edge with an integer weight.
type WeightedEdge struct {
	U, V   string
	Weight int64
}

// ExampleEdges is the reference Max-Cut instance: nodes 1..5, six edges,
// optimum cut 5 (e.g. {1,4} vs {2,3,5}).
var ExampleEdges = []Pair{
	{"1", "2"}, {"1", "3"}, {"2", "4"}, {"3", "4"}, {"3", "5"}, {"4", "5"},
}

// MaxCutExample returns EdgeList(ExampleEdges).
func MaxCutExample() Constructor {
	return EdgeList(ExampleEdges)
}

// EdgeList returns a Constructor adding every pair as an unweighted edge.
func EdgeList(pairs []Pair) Constructor {
	edges := make([]WeightedEdge, len(pairs))
	for i, p := range pairs {
		edges[i] = WeightedEdge{U: p[0], V: p[1]}
	}

	return edgeList(methodEdgeList, edges, false)
}

// WeightedEdgeList returns a Constructor adding weighted edges. On an
// unweighted graph core rejects non-zero weights with core.ErrBadWeight.
func WeightedEdgeList(edges []WeightedEdge) Constructor {
	cp := make([]WeightedEdge, len(edges))
	copy(cp, edges)

	return edgeList(methodWeightedEdgeList, cp, true)
}

func edgeList(method string, edges []WeightedEdge, useWeights bool) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if len(edges) == 0 {
			return builderErrorf(method, "no pairs", ErrEmptyEdgeList)
		}

		// Stage 1: validate and dedup (no graph mutation yet).
		type key struct{ a, b string }
		index := make(map[key]int, len(edges))
		unique := make([]WeightedEdge, 0, len(edges))
		var (
			i int
			e WeightedEdge
		)
		for i, e = range edges {
			if e.U == "" || e.V == "" {
				return builderErrorf(method, "pair #%d (%q,%q)", ErrMalformedPair, i, e.U, e.V)
			}
			if e.U == e.V {
				return builderErrorf(method, "pair #%d (%q,%q)", ErrSelfLoop, i, e.U, e.V)
			}
			k := key{e.U, e.V}
			if core.Less(e.V, e.U) {
				k = key{e.V, e.U}
			}
			if at, seen := index[k]; seen {
				unique[at].Weight = e.Weight // last weight wins
				continue
			}
			index[k] = len(unique)
			unique = append(unique, e)
		}

		// Stage 2: insert in first-occurrence order.
		for _, e = range unique {
			var w int64
			if useWeights {
				w = e.Weight
			}
			if _, err := g.AddEdge(e.U, e.V, w); err != nil {
				return builderErrorf(method, "AddEdge(%s,%s, w=%d)", err, e.U, e.V, w)
			}
		}

		return nil
	}
}
