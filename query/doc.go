// Package query implements the Query Engine (§4.8): read-only search and
// traversal over a graph.Store and, optionally, a frozen
// supergraph.SuperGraph built from it. Every operation here is pure with
// respect to its inputs — nothing in this package calls package updater —
// so callers may run multiple queries concurrently against the same
// frozen (graph, supergraph) snapshot (§5 "the Query Engine is pure and
// concurrent").
//
// Node and edge search compose by intersection: build a slice of
// NodeFilter/EdgeFilter values and pass them to FindNodes/FindEdges, which
// AND them together, mirroring the teacher's own BFS/DFS functional-option
// style (one predicate per concern, composed by the caller) rather than a
// single monolithic query struct.
package query
