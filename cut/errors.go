// SPDX-License-Identifier: MIT

package cut

import "errors"

var (
	// ErrNilGraph is returned when a nil graph is passed.
	ErrNilGraph = errors.New("cut: graph is nil")

	// ErrMissingVertex indicates a graph vertex absent from the sample.
	ErrMissingVertex = errors.New("cut: sample is missing a vertex")

	// ErrBadValue indicates a sample value that is neither Low nor High.
	ErrBadValue = errors.New("cut: value outside vartype domain")
)
