// SPDX-License-Identifier: MIT

package cut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/qubo"
)

// Partition is the two-set split induced by one sample. Both sets are in
// natural order.
type Partition struct {
	S0 []string
	S1 []string
}

// Side reports the set index (0 or 1) of id, or -1 when id is in neither.
func (p Partition) Side(id string) int {
	for _, v := range p.S0 {
		if v == id {
			return 0
		}
	}
	for _, v := range p.S1 {
		if v == id {
			return 1
		}
	}

	return -1
}

// Split assigns every vertex of g to S0 (value vt.Low()) or S1 (vt.High()).
// Sample entries for variables outside g are ignored.
//
// Errors: ErrNilGraph, ErrMissingVertex, ErrBadValue.
func Split(g *core.Graph, s qubo.Sample, vt qubo.Vartype) (Partition, error) {
	if g == nil {
		return Partition{}, fmt.Errorf("Split: %w", ErrNilGraph)
	}
	var p Partition
	for _, v := range g.Vertices() {
		val, ok := s[v]
		if !ok {
			return Partition{}, fmt.Errorf("Split: vertex %q: %w", v, ErrMissingVertex)
		}
		switch val {
		case vt.Low():
			p.S0 = append(p.S0, v)
		case vt.High():
			p.S1 = append(p.S1, v)
		default:
			return Partition{}, fmt.Errorf("Split: vertex %q = %d (%s): %w", v, val, vt, ErrBadValue)
		}
	}

	return p, nil
}

// Classification separates the edges of g into cut and uncut, each in
// insertion order.
type Classification struct {
	Cut   []*core.Edge
	Uncut []*core.Edge
}

// Classify splits the edges of g by whether their endpoints differ in s.
// The comparison is on raw values, so it works for either vartype.
//
// Errors: ErrNilGraph, ErrMissingVertex.
func Classify(g *core.Graph, s qubo.Sample) (Classification, error) {
	if g == nil {
		return Classification{}, fmt.Errorf("Classify: %w", ErrNilGraph)
	}
	var c Classification
	for _, e := range g.Edges() {
		a, okA := s[e.From]
		b, okB := s[e.To]
		if !okA || !okB {
			return Classification{}, fmt.Errorf("Classify: edge %s (%s,%s): %w", e.ID, e.From, e.To, ErrMissingVertex)
		}
		if a != b {
			c.Cut = append(c.Cut, e)
		} else {
			c.Uncut = append(c.Uncut, e)
		}
	}

	return c, nil
}

// Size returns the cut size of s on g by direct inspection.
func Size(g *core.Graph, s qubo.Sample) (int64, error) {
	c, err := Classify(g, s)
	if err != nil {
		return 0, fmt.Errorf("Size: %w", err)
	}
	var total int64
	for _, e := range c.Cut {
		total += g.EffectiveWeight(e)
	}

	return total, nil
}

// SizeFromEnergy converts a Max-Cut model energy to a cut size, truncating
// toward zero. totalWeight is only used for Spin.
//
// Errors: qubo.ErrUnknownVartype.
func SizeFromEnergy(vt qubo.Vartype, energy float64, totalWeight int64) (int64, error) {
	switch vt {
	case qubo.Binary:
		return int64(math.Trunc(-energy)), nil
	case qubo.Spin:
		return int64(math.Trunc((float64(totalWeight) - energy) / 2)), nil
	}

	return 0, fmt.Errorf("SizeFromEnergy(%s): %w", vt, qubo.ErrUnknownVartype)
}
