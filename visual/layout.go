// SPDX-License-Identifier: MIT

package visual

import (
	"fmt"
	"math"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/matrix"
)

// Spring layout tuning.
const (
	DefaultIterations = 50
	minDistance       = 0.01
	cooling           = 0.1
	convergence       = 1e-4
)

// Position is a 2D coordinate in layout space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Layout places every vertex of a graph.
type Layout interface {
	Compute(g *core.Graph) (map[string]Position, error)
}

// SpringLayout is a seeded Fruchterman–Reingold layout.
// Zero fields take defaults: Iterations 50, K 1/sqrt(n), Seed 1.
type SpringLayout struct {
	Seed       int64
	Iterations int
	K          float64
}

var _ Layout = SpringLayout{}

// Compute runs the force simulation and rescales positions to [-1,1].
// A single vertex sits at the origin.
//
// Complexity: O(Iterations·V²).
func (l SpringLayout) Compute(g *core.Graph) (map[string]Position, error) {
	if g == nil || g.VertexCount() == 0 {
		return nil, fmt.Errorf("SpringLayout.Compute: %w", ErrEmptyGraph)
	}
	ids := g.Vertices()
	n := len(ids)
	if n == 1 {
		return map[string]Position{ids[0]: {}}, nil
	}

	adj, err := matrix.NewAdjacencyMatrix(g)
	if err != nil {
		return nil, fmt.Errorf("SpringLayout.Compute: %w", err)
	}

	rng := rngFromSeed(l.Seed)
	pos := make([]Position, n)
	for i := range pos {
		pos[i] = Position{X: rng.Float64(), Y: rng.Float64()}
	}

	k := l.K
	if k <= 0 {
		k = math.Sqrt(1 / float64(n))
	}
	iters := l.Iterations
	if iters <= 0 {
		iters = DefaultIterations
	}
	minX, maxX, minY, maxY := bounds(pos)
	t := math.Max(maxX-minX, maxY-minY) * cooling
	dt := t / float64(iters+1)

	disp := make([]Position, n)
	for it := 0; it < iters; it++ {
		for i := range disp {
			disp[i] = Position{}
			for j := range pos {
				if i == j {
					continue
				}
				dx, dy := pos[i].X-pos[j].X, pos[i].Y-pos[j].Y
				d := math.Max(math.Hypot(dx, dy), minDistance)
				w, err := adj.Weight(i, j)
				if err != nil {
					return nil, fmt.Errorf("SpringLayout.Compute: %w", err)
				}
				f := k*k/(d*d) - w*d/k
				disp[i].X += dx * f
				disp[i].Y += dy * f
			}
		}
		var moved float64
		for i := range pos {
			length := math.Max(math.Hypot(disp[i].X, disp[i].Y), minDistance)
			sx, sy := disp[i].X*t/length, disp[i].Y*t/length
			pos[i].X += sx
			pos[i].Y += sy
			moved += sx*sx + sy*sy
		}
		t -= dt
		if math.Sqrt(moved)/float64(n) < convergence {
			break
		}
	}
	rescale(pos)

	out := make(map[string]Position, n)
	for i, id := range ids {
		out[id] = pos[i]
	}

	return out, nil
}

func bounds(pos []Position) (minX, maxX, minY, maxY float64) {
	minX, maxX = pos[0].X, pos[0].X
	minY, maxY = pos[0].Y, pos[0].Y
	for _, p := range pos[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return
}

// rescale centres pos on the origin and scales the largest coordinate to 1.
func rescale(pos []Position) {
	var cx, cy float64
	for _, p := range pos {
		cx += p.X
		cy += p.Y
	}
	cx /= float64(len(pos))
	cy /= float64(len(pos))

	var lim float64
	for i := range pos {
		pos[i].X -= cx
		pos[i].Y -= cy
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i].X /= lim
		pos[i].Y /= lim
	}
}
