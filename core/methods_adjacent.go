// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries used by layouts and partition checks.

package core

// NeighborIDs returns the IDs adjacent to id in natural order.
// A self-loop lists id itself once.
//
// Errors: ErrEmptyVertexID, ErrVertexNotFound.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	out := make([]string, 0, len(g.adjacency[id]))
	var nbr string
	for nbr = range g.adjacency[id] {
		out = append(out, nbr)
	}
	g.muEdgeAdj.RUnlock()

	SortIDs(out)

	return out, nil
}

// AdjacencyList returns a snapshot vertex → sorted neighbor IDs.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[string][]string {
	ids := g.Vertices()
	out := make(map[string][]string, len(ids))
	var id string
	for _, id = range ids {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			continue // vertex vanished between snapshots
		}
		out[id] = nbrs
	}

	return out
}
