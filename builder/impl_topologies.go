// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// impl_topologies.go - generated Max-Cut benchmark instances.
//
//   • Cycle(n):   C_n, n ≥ 3. Max cut is n (even n) or n-1 (odd n).
//   • Complete(n): K_n, n ≥ 2. Max cut is ⌊n/2⌋·⌈n/2⌉.
//   • RandomSparse(n,p): each unordered pair {i<j} kept with probability p.
//
// All constructors add vertices via cfg.idFn in ascending index order, emit
// edges in a stable order, and draw weights from cfg.weightFn only when the
// graph is weighted.

package builder

import (
	"github.com/katalvlaran/maxcut/core"
)

const (
	methodCycle        = "Cycle"
	methodComplete     = "Complete"
	methodRandomSparse = "RandomSparse"

	minCycleNodes        = 3
	minCompleteNodes     = 2
	minRandomSparseNodes = 1
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return builderErrorf(methodCycle, "n=%d < min=%d", ErrTooFewVertices, n, minCycleNodes)
		}
		if err := addVertices(methodCycle, g, cfg, n); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 0; i < n; i++ {
			u, v := cfg.idFn(i), cfg.idFn((i+1)%n)
			w := cfg.edgeWeight(weighted)
			if _, err := g.AddEdge(u, v, w); err != nil {
				return builderErrorf(methodCycle, "AddEdge(%s,%s, w=%d)", err, u, v, w)
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, "n=%d < min=%d", ErrTooFewVertices, n, minCompleteNodes)
		}
		if err := addVertices(methodComplete, g, cfg, n); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.edgeWeight(weighted)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return builderErrorf(methodComplete, "AddEdge(%s,%s, w=%d)", err, u, v, w)
				}
			}
		}

		return nil
	}
}

// RandomSparse returns a Constructor sampling each unordered pair with
// independent probability p. For 0<p<1 an RNG is required; p∈{0,1} is
// deterministic and accepts a nil RNG.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseNodes {
			return builderErrorf(methodRandomSparse, "n=%d < min=%d", ErrTooFewVertices, n, minRandomSparseNodes)
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomSparse, "p=%.6f not in [0,1]", ErrInvalidProbability, p)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return builderErrorf(methodRandomSparse, "p=%.6f", ErrNeedRandSource, p)
		}
		if err := addVertices(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		weighted := g.Weighted()
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1
				if cfg.rng != nil && p > 0 && p < 1 {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := cfg.edgeWeight(weighted)
				if _, err := g.AddEdge(u, v, w); err != nil {
					return builderErrorf(methodRandomSparse, "AddEdge(%s,%s, w=%d)", err, u, v, w)
				}
			}
		}

		return nil
	}
}

// addVertices inserts cfg.idFn(0..n-1) so isolated vertices still appear.
func addVertices(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := g.AddVertex(id); err != nil {
			return builderErrorf(method, "AddVertex(%s)", err, id)
		}
	}

	return nil
}
