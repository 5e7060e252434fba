// SPDX-License-Identifier: MIT

package qubo

import "errors"

var (
	// ErrNilGraph is returned when an encoder receives a nil graph.
	ErrNilGraph = errors.New("qubo: graph is nil")

	// ErrEmptyVariable indicates an empty variable label.
	ErrEmptyVariable = errors.New("qubo: empty variable")

	// ErrSelfCoupling indicates an Ising coupling J_ii (s_i² is constant).
	ErrSelfCoupling = errors.New("qubo: self-coupling in Ising model")

	// ErrMissingVariable indicates a sample without a value for a model variable.
	ErrMissingVariable = errors.New("qubo: sample is missing a variable")

	// ErrBadValue indicates a sample value outside the model's domain.
	ErrBadValue = errors.New("qubo: value outside variable domain")

	// ErrUnknownVartype indicates an unrecognised vartype name.
	ErrUnknownVartype = errors.New("qubo: unknown vartype")
)
