// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/GetEdge/EdgeBetween/Edges/EdgeCount/TotalWeight.
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix keeps IDs human-readable: "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates an undirected edge between from and to and returns its ID.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, reject a second edge between the same endpoints.
//  4. Generate eid atomically, store, mirror adjacency.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight int64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.Weighted() && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.adjacency[from][to]; exists {
		return "", ErrMultiEdgeNotAllowed
	}

	seq := atomic.AddUint64(&g.nextEdgeID, 1)
	eid := nextEdgeID(seq)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight, seq: seq}
	g.adjacency[from][to] = eid
	g.adjacency[to][from] = eid // same bucket entry for loops

	return eid, nil
}

// HasEdge reports whether an edge joins from and to (in either orientation).
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// GetEdge returns the Edge with the given ID or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// EdgeBetween returns the edge joining u and v, regardless of orientation.
// Errors: ErrEdgeNotFound.
func (g *Graph) EdgeBetween(u, v string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	eid, ok := g.adjacency[u][v]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// Edges returns all edges in insertion order.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// EffectiveWeight is the weight an edge contributes to a cut:
// its stored Weight in weighted graphs and 1 otherwise.
func (g *Graph) EffectiveWeight(e *Edge) int64 {
	if g.Weighted() {
		return e.Weight
	}

	return 1
}

// TotalWeight sums EffectiveWeight over all edges; for unweighted graphs it
// equals EdgeCount().
// Complexity: O(E).
func (g *Graph) TotalWeight() int64 {
	weighted := g.Weighted()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	if !weighted {
		return int64(len(g.edges))
	}
	var sum int64
	var e *Edge
	for _, e = range g.edges {
		sum += e.Weight
	}

	return sum
}

// nextEdgeID formats seq as "e<seq>" without fmt allocations.
func nextEdgeID(seq uint64) string {
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, seq, 10)

	return string(buf)
}
