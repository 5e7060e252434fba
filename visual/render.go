// SPDX-License-Identifier: MIT

package visual

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"

	"github.com/katalvlaran/maxcut/core"
	"github.com/katalvlaran/maxcut/cut"
	"github.com/katalvlaran/maxcut/qubo"
)

// Node and edge colours (RGB in [0,1]).
var (
	colorSet0 = [3]float64{1, 0, 0}
	colorSet1 = [3]float64{0, 0.75, 0.75}
)

const edgeWidth = 3

// Render lays out g, partitions it by sample and writes the PNG to path.
//
// Errors: anything from the layout or cut packages, ErrBadSize, and
// ErrWrite (joined with the underlying os error) when the file cannot be
// written.
func Render(path string, g *core.Graph, sample qubo.Sample, vt qubo.Vartype, opts ...Option) error {
	cfg := newRenderConfig(opts...)
	pos, err := cfg.layout.Compute(g)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	p, err := cut.Split(g, sample, vt)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	c, err := cut.Classify(g, sample)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	img, err := draw(cfg, p, c, pos)
	if err != nil {
		return fmt.Errorf("Render: %w", err)
	}
	if err = gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("Render(%q): %w: %w", path, ErrWrite, err)
	}

	return nil
}

// Draw paints a partition with precomputed positions.
func Draw(p cut.Partition, c cut.Classification, pos map[string]Position, opts ...Option) (image.Image, error) {
	img, err := draw(newRenderConfig(opts...), p, c, pos)
	if err != nil {
		return nil, fmt.Errorf("Draw: %w", err)
	}
	return img, nil
}

func draw(cfg renderConfig, p cut.Partition, c cut.Classification, pos map[string]Position) (image.Image, error) {
	if cfg.width <= 0 || cfg.height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", cfg.width, cfg.height, ErrBadSize)
	}
	for _, set := range [][]string{p.S0, p.S1} {
		for _, id := range set {
			if _, ok := pos[id]; !ok {
				return nil, fmt.Errorf("vertex %q: %w", id, ErrMissingPosition)
			}
		}
	}

	dc := gg.NewContext(cfg.width, cfg.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	screen := func(id string) (float64, float64) {
		q := pos[id]
		w := float64(cfg.width) - 2*cfg.margin
		h := float64(cfg.height) - 2*cfg.margin
		return cfg.margin + (q.X+1)/2*w, float64(cfg.height) - (cfg.margin + (q.Y+1)/2*h)
	}

	dc.SetLineWidth(edgeWidth)
	dc.SetDash(12, 4, 3, 4)
	dc.SetRGBA(0, 0, 0, 0.5)
	for _, e := range c.Cut {
		x1, y1 := screen(e.From)
		x2, y2 := screen(e.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	dc.SetDash()
	dc.SetRGB(0, 0, 0)
	for _, e := range c.Uncut {
		x1, y1 := screen(e.From)
		x2, y2 := screen(e.To)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}

	drawNodes(dc, p.S0, colorSet0, cfg.radius, screen)
	drawNodes(dc, p.S1, colorSet1, cfg.radius, screen)

	dc.SetRGB(0, 0, 0)
	for _, set := range [][]string{p.S0, p.S1} {
		for _, id := range set {
			x, y := screen(id)
			dc.DrawStringAnchored(id, x, y, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}

func drawNodes(dc *gg.Context, ids []string, rgb [3]float64, r float64, screen func(string) (float64, float64)) {
	dc.SetRGB(rgb[0], rgb[1], rgb[2])
	for _, id := range ids {
		x, y := screen(id)
		dc.DrawCircle(x, y, r)
		dc.Fill()
	}
}

// PlotName returns the default output file for vt.
func PlotName(vt qubo.Vartype) string {
	if vt == qubo.Spin {
		return "maxcut_plot_ising.png"
	}
	return "maxcut_plot.png"
}
