// SPDX-License-Identifier: MIT

package visual

import "errors"

var (
	// ErrEmptyGraph is returned when there are no vertices to lay out.
	ErrEmptyGraph = errors.New("visual: graph has no vertices")

	// ErrMissingPosition indicates a vertex without a layout position.
	ErrMissingPosition = errors.New("visual: vertex has no position")

	// ErrBadSize indicates a non-positive canvas size.
	ErrBadSize = errors.New("visual: invalid canvas size")

	// ErrWrite wraps failures to write the image file.
	ErrWrite = errors.New("visual: cannot write image")
)
