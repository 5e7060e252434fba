// SPDX-License-Identifier: MIT

// Package maxcut formulates Maximum Cut as a QUBO or Ising model, hands it
// to an external sampler and interprets the returned samples.
//
// One run is a straight pipeline:
//
//	builder  → core.Graph from an edge list (or a generated topology)
//	qubo     → QUBO map  (Q_uu -= w, Q_vv -= w, Q_uv += 2w)
//	           Ising pair (h = 0, J_uv += w)
//	solver   → Sampler.SampleQUBO / SampleIsing → SampleSet
//	report   → table of Set 0 | Set 1 | Energy | Cut Size
//	visual   → spring layout + PNG of the best partition
//
// Packages:
//
//	core/      - thread-safe undirected Graph with natural vertex ordering
//	builder/   - functional-option graph constructors (edge lists, cycles, K_n, G(n,p))
//	matrix/    - dense matrices used to export Q
//	qubo/      - models, encoders, energies and QUBO↔Ising conversion
//	cut/       - partitions, cut/uncut edges, cut size from energy
//	solver/    - Sampler contract and the HTTP client of the remote service
//	report/    - console table and best-sample summary
//	visual/    - Fruchterman–Reingold layout and gg rendering
//	config/    - defaults, YAML, .env and environment layering
//	logging/   - zap logger construction
//	pipeline/  - the end-to-end run
//	cmd/maxcut - command-line entry point
//
// Quick example (five nodes, six edges, best cut 5):
//
//	    1───2
//	    │   │
//	    3───4
//	     \ /
//	      5
//
//	g, _ := builder.BuildGraph(nil, nil, builder.MaxCutExample())
//	q, _ := qubo.EncodeQUBO(g)
//	ss, _ := client.SampleQUBO(ctx, q, solver.DefaultParams(qubo.Binary))
//	_ = report.WriteTable(os.Stdout, g, ss)
//
// Samples are always paired with their energies inside one solver.Record,
// and one threshold policy per vartype (qubo.Vartype.Low/High) decides the
// side of every vertex.
package maxcut
