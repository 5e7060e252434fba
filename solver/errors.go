// SPDX-License-Identifier: MIT

package solver

import "errors"

var (
	// ErrAuthentication indicates missing or refused credentials.
	ErrAuthentication = errors.New("solver: authentication failed")

	// ErrCommunication indicates a transport or server-side failure.
	ErrCommunication = errors.New("solver: communication failure")

	// ErrRejected indicates the service refused or failed the problem.
	ErrRejected = errors.New("solver: problem rejected")

	// ErrInvalidParams indicates Params or ClientConfig outside their bounds.
	ErrInvalidParams = errors.New("solver: invalid parameters")

	// ErrNilModel is returned when a nil model is submitted.
	ErrNilModel = errors.New("solver: model is nil")

	// ErrEmptySampleSet is returned by Lowest on an empty set.
	ErrEmptySampleSet = errors.New("solver: sample set is empty")
)
