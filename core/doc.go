// SPDX-License-Identifier: MIT

// Package core provides the in-memory Graph that every Max-Cut instance is
// built on.
//
// A Graph G = (V,E) here is a simple, undirected graph:
//
//   - Vertices are identified by non-empty strings ("1", "2", ...).
//   - Edges are unordered pairs; AddEdge mirrors adjacency so that
//     HasEdge(u,v) == HasEdge(v,u).
//   - Parallel edges are always rejected (ErrMultiEdgeNotAllowed).
//   - Self-loops are rejected unless the graph was built WithLoops().
//   - Weights are rejected unless the graph was built WithWeighted().
//
// Determinism:
//
//	Vertices() and NeighborIDs() return IDs in natural order (see Less),
//	Edges() returns edges in insertion order. Encoders, reports and layouts
//	rely on these orders to be reproducible.
//
// Concurrency:
//
//	Two sync.RWMutex guard the catalogs: muVert (vertices and flags) and
//	muEdgeAdj (edges and adjacency). Lock order is always muVert -> muEdgeAdj.
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrEdgeNotFound         - requested edge does not exist.
//	ErrBadWeight            - non-zero weight on an unweighted graph.
//	ErrLoopNotAllowed       - self-loop while loops are disabled.
//	ErrMultiEdgeNotAllowed  - second edge between the same endpoints.
package core
