// SPDX-License-Identifier: MIT

// Package solver is the boundary to the external sampler.
//
// A Sampler accepts a QUBO or Ising model plus Params (read count, chain
// strength, label) and returns a SampleSet. The call is synchronous and
// blocking; failures are returned to the caller and never retried.
//
// Client is the production Sampler: one HTTP round-trip to a remote
// sampling service configured through an explicit ClientConfig. Test code
// substitutes the samplers of package solvertest.
//
// Errors:
//
//	ErrAuthentication - missing token, or the service answered 401/403.
//	ErrCommunication  - transport failure, 5xx, or an undecodable body.
//	ErrRejected       - the service refused the problem (other 4xx, or a
//	                    final status other than COMPLETED).
//	ErrInvalidParams  - Params or ClientConfig failed validation.
//	ErrEmptySampleSet - Lowest on a set without records.
package solver
