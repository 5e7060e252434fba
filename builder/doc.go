// SPDX-License-Identifier: MIT

// Package builder assembles core.Graph instances for Max-Cut problems.
//
// One orchestrator, BuildGraph, creates the graph, resolves BuilderOptions
// into an immutable builderConfig and runs Constructors in order:
//
//	g, err := builder.BuildGraph(nil, nil, builder.MaxCutExample())
//
// Constructors:
//
//	EdgeList(pairs)          – literal undirected edge list (deduplicated)
//	WeightedEdgeList(edges)  – literal weighted edge list (needs core.WithWeighted)
//	MaxCutExample()          – the 5-node / 6-edge reference instance
//	Cycle(n), Complete(n)    – classic topologies (odd cycles are frustrated)
//	RandomSparse(n, p)       – Erdős–Rényi-like sampler, needs WithSeed/WithRand
//
// Determinism: same inputs, options, seed and constructor order produce
// identical graphs, including edge insertion order.
//
// Errors are package sentinels (ErrSelfLoop, ErrMalformedPair, ...) wrapped
// with method context; branch with errors.Is.
package builder
