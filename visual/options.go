// SPDX-License-Identifier: MIT

package visual

// Canvas defaults, in pixels.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	defaultMargin = 40
	defaultRadius = 16
)

// Option customises Render and Draw.
type Option func(*renderConfig)

type renderConfig struct {
	width, height  int
	margin, radius float64
	layout         Layout
}

func newRenderConfig(opts ...Option) renderConfig {
	cfg := renderConfig{
		width:  DefaultWidth,
		height: DefaultHeight,
		margin: defaultMargin,
		radius: defaultRadius,
		layout: SpringLayout{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithSize sets the canvas size; non-positive values fail at render time.
func WithSize(width, height int) Option {
	return func(c *renderConfig) { c.width, c.height = width, height }
}

// WithSeed uses a SpringLayout seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *renderConfig) { c.layout = SpringLayout{Seed: seed} }
}

// WithLayout replaces the layout algorithm. Panics on nil.
func WithLayout(l Layout) Option {
	if l == nil {
		panic("WithLayout(nil): layout must be non-nil")
	}
	return func(c *renderConfig) { c.layout = l }
}
