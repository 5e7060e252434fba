// SPDX-License-Identifier: MIT

// Package qubo encodes Maximum Cut as a binary quadratic model.
//
// Two equivalent formulations are supported:
//
//	QUBO  – variables x ∈ {0,1}, E(x) = Σ Q_ii·x_i + Σ_{i<j} Q_ij·x_i·x_j
//	Ising – spins     s ∈ {-1,+1}, E(s) = Σ h_i·s_i + Σ_{i<j} J_ij·s_i·s_j
//
// For every edge (u,v) of weight w (w = 1 on unweighted graphs):
//
//	QUBO:  Q_uu -= w, Q_vv -= w, Q_uv += 2w   ⇒ E(x) = −cut(x)
//	Ising: J_uv += w, h = 0                    ⇒ E(s) = W − 2·cut(s)
//
// where W is the total edge weight. Accumulation is commutative, so the
// encoders are independent of edge traversal order.
//
// Coefficients are keyed by Pair, an unordered variable pair stored in
// canonical order (core.Less); a diagonal Pair {v,v} is a linear term.
// Missing entries are zero.
package qubo
