// Package dkg is the root of the Design Knowledge Graph engine: an
// incremental, provenance-tracked graph fusion and abstraction toolkit for
// digital hardware designs.
//
// 🧩 What is dkg?
//
//	A thread-safe, precedence-gated graph fusion engine that brings together:
//
//	  • Fusion: ingest netlists, constraints, timing and floorplan data into
//	    one coherent graph, gated by a (stage, source) precedence lattice
//	  • Abstraction: rewrite the fused graph into filtered SuperGraphs for
//	    structural, connectivity, and physical engineering questions
//	  • Analysis: attach keyed, immutable statistics bundles to the
//	    abstracted view without ever perturbing its structure
//
// ✨ Why dkg?
//
//   - Deterministic — any order of ingestion converges to the same graph
//   - Provenance-first — every field remembers who wrote it, and why it won
//   - Extensible — policy maps drive view abstraction without touching code
//   - Pure Go — parsers, persistence and visualization stay external
//
// Everything is organized as a set of focused subpackages:
//
//	graph/       — Node, Edge, Store: the fused graph and its indices
//	provenance/  — per-field (stage, source, origin) lineage, append-only
//	updater/     — the single precedence-gated writer onto graph+provenance
//	pipeline/    — orders ingestion into stages, tracks completion
//	constraints/ — projects SDC/XDC-shaped constraint records onto the graph
//	supergraph/  — SuperNode, SuperEdge, SuperGraph: the abstracted view
//	view/        — the three-cycle promote/merge/eliminate rewriter
//	timing/      — per-Super timing aggregates, summaries, and alerts
//	analysis/    — the keyed analysis-bundle attachment API
//	query/       — read-only search, traversal, and path-finding
//	ingest/      — the external-collaborator interfaces (§6 wire shapes)
//	snapshot/    — export wire format and persisted-snapshot (re)construction
//	dkglog/      — structured logging built on zap, nil-safe by default
//	dkgmetrics/  — prometheus collectors shared across the pipeline
//
// Quick mental model:
//
//	raw artifacts → ingest adapters → updater (gated by provenance) → graph
//	graph + policy → view (three-cycle rewrite) → supergraph
//	supergraph → timing (pure aggregation) → analysis (keyed attach)
//	(graph, supergraph, provenance) → query (read-only)
//
//	go get github.com/katalvlaran/dkg
package dkg
