// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = oneBasedID          ("1","2","3",...) matching textbook instances
//   • rng      = nil                 (pure/deterministic unless seeded)
//   • weightFn = constWeight(1)

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> ID (deterministic).
	idFn func(int) string
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges; used only for weighted graphs.
	weightFn func(*rand.Rand) int64
}

const defaultConstWeight = int64(1) // constant edge weight when weighted

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     oneBasedID,
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// oneBasedID renders index i as the decimal string of i+1.
func oneBasedID(i int) string {
	return strconv.Itoa(i + 1)
}

// edgeWeight picks the weight for a generated edge under the graph's policy.
func (c builderConfig) edgeWeight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}
