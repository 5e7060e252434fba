// SPDX-License-Identifier: MIT

package qubo

import (
	"fmt"

	"github.com/katalvlaran/maxcut/core"
)

// EncodeQUBO builds the Maximum Cut QUBO of g.
//
// Implementation:
//   - Stage 1: declare every vertex (isolated vertices keep zero bias).
//   - Stage 2: for each edge (u,v) of effective weight w:
//     Q[(u,u)] -= w; Q[(v,v)] -= w; Q[(u,v)] += 2w.
//
// The ground state energy equals minus the maximum cut weight.
// Complexity: O(V + E).
func EncodeQUBO(g *core.Graph) (*QUBO, error) {
	if g == nil {
		return nil, fmt.Errorf("EncodeQUBO: %w", ErrNilGraph)
	}
	q := NewQUBO(g.Vertices()...)
	for _, e := range g.Edges() {
		w := float64(g.EffectiveWeight(e))
		q.coeff[NewPair(e.From, e.From)] -= w
		q.coeff[NewPair(e.To, e.To)] -= w
		q.coeff[NewPair(e.From, e.To)] += 2 * w
	}

	return q, nil
}

// EncodeIsing builds the Maximum Cut Ising model of g: h_v = 0 for every
// vertex and J[(u,v)] += w per edge, so that anti-aligned endpoints
// (cut edges) lower the energy.
//
// Complexity: O(V + E).
func EncodeIsing(g *core.Graph) (*Ising, error) {
	if g == nil {
		return nil, fmt.Errorf("EncodeIsing: %w", ErrNilGraph)
	}
	m := NewIsing(g.Vertices()...)
	for _, e := range g.Edges() {
		if err := m.AddCoupling(e.From, e.To, float64(g.EffectiveWeight(e))); err != nil {
			return nil, fmt.Errorf("EncodeIsing: %w", err)
		}
	}

	return m, nil
}
