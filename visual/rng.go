// SPDX-License-Identifier: MIT
// Package visual - deterministic random source for initial layouts.
//
// Policy: seed==0 ⇒ defaultSeed, any other seed is used verbatim, so the
// same graph and seed always yield the same drawing.

package visual

import "math/rand"

// defaultSeed is used when callers pass seed==0.
const defaultSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}
	return rand.New(rand.NewSource(seed))
}
