// SPDX-License-Identifier: MIT
// Package matrix - dense adjacency view of a core.Graph.
//
// Contract:
//   - Rows and columns follow g.Vertices() (natural order).
//   - Undirected edges are mirrored; self-loops are skipped.
//   - Cells hold the effective edge weight (1 on unweighted graphs), 0 when
//     no edge joins the pair.

package matrix

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

// AdjacencyMatrix wraps a Dense as a graph adjacency representation.
// VertexIndex maps a vertex ID to its row/column.
type AdjacencyMatrix struct {
	Mat           *Dense
	VertexIndex   map[string]int
	vertexByIndex []string
}

// NewAdjacencyMatrix builds the symmetric weight matrix of g.
//
// Errors: ErrGraphNil, ErrBadShape (graph without vertices).
// Complexity: O(V² + E).
func NewAdjacencyMatrix(g *core.Graph) (*AdjacencyMatrix, error) {
	if g == nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", ErrGraphNil)
	}
	ids := g.Vertices()
	m, err := NewDense(len(ids), len(ids))
	if err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}
	idx := make(map[string]int, len(ids))
	for i, id := range ids {
		idx[id] = i
	}
	for _, e := range g.Edges() {
		u, v := idx[e.From], idx[e.To]
		if u == v {
			continue
		}
		w := float64(g.EffectiveWeight(e))
		if err = m.Set(u, v, w); err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
		}
		if err = m.Set(v, u, w); err != nil {
			return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
		}
	}

	return &AdjacencyMatrix{Mat: m, VertexIndex: idx, vertexByIndex: ids}, nil
}

// VertexCount returns the number of rows (and columns).
func (a *AdjacencyMatrix) VertexCount() int { return len(a.vertexByIndex) }

// VertexAt returns the vertex ID of row i.
func (a *AdjacencyMatrix) VertexAt(i int) (string, error) {
	if i < 0 || i >= len(a.vertexByIndex) {
		return "", fmt.Errorf("AdjacencyMatrix.VertexAt(%d): %w", i, ErrOutOfRange)
	}
	return a.vertexByIndex[i], nil
}

// Weight returns the (i,j) cell.
func (a *AdjacencyMatrix) Weight(i, j int) (float64, error) {
	return a.Mat.At(i, j)
}
