// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to export
// QUBO problems in their classical upper-triangular Q-matrix form.
//
// Policy:
//   - Indexers (At/Set/Add) return ErrOutOfRange, never panic.
//   - Non-finite values are rejected with ErrNaNInf.
//   - Shapes must be positive (ErrBadShape).
package matrix
