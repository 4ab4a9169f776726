// Package view implements the View Builder (§4.7): a policy-driven,
// three-cycle rewriter that transforms a graph.Store into a
// supergraph.SuperGraph by promoting, merging, or eliminating nodes while
// preserving signal-level connectivity.
//
// Build is the only non-test code in this module that constructs a
// supergraph.Builder; since supergraph.NewBuilder is exported, SuperGraph's
// structural immutability outside this package rests on that convention
// rather than on the compiler. Build is pure and read-only over its input graph.Store,
// mirroring core's own non-mutating view functions (UnweightedView,
// InducedSubgraph) — here promoted to a full package because the policy
// surface (two policy maps, dynamic overrides, edge rewrite with bounded
// passthrough) is large enough to own its own tests and configuration.
package view
