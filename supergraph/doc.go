// Package supergraph defines the output data model of the View Builder
// (§4.7): SuperNode, SuperEdge, and SuperGraph. A SuperGraph is the
// abstracted, (context, view)-specific projection of a graph.Store —
// every SuperNode aggregates a set of member node IDs under one
// super-class tag, every SuperEdge aggregates a set of member edge IDs
// between two SuperNodes.
//
// Structural fields (membership, super-class, aggregated attributes) are
// unexported and mutable only from package view, which is the sole
// producer of SuperGraphs. Analysis bundles are a separate, orthogonal
// attachment: only package analysis may populate them, and nothing in
// this package ever reads a bundle's contents to decide structure. This
// mirrors core.Graph's own split between structural mutators (package
// core) and read-only derived views (UnweightedView, InducedSubgraph):
// here the "view" producer is promoted to its own package because its
// policy surface (§4.7) is large enough to own.
package supergraph
