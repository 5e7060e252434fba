// SPDX-License-Identifier: MIT
// Package: maxcut/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w via builderErrorf.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n) is below the
// minimum allowed for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG (WithSeed/WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a constructor could not be applied at all
// (e.g., a nil Constructor passed to BuildGraph).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrSelfLoop indicates an edge whose endpoints are equal. Max-Cut
// instances never contain self-loops: such an edge can never be cut.
var ErrSelfLoop = errors.New("builder: self-loop in edge list")

// ErrMalformedPair indicates an edge with a missing (empty) endpoint.
var ErrMalformedPair = errors.New("builder: malformed edge pair")

// ErrEmptyEdgeList indicates an edge list with no edges at all.
var ErrEmptyEdgeList = errors.New("builder: empty edge list")

// builderErrorf wraps err with the given method context:
// "<Method>: <formatted message>: <err>".
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
