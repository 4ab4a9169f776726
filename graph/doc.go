// Package graph implements the Design Knowledge Graph's fused graph store:
// Node and Edge, their typed classification enums, and the thread-safe Store
// that holds them plus the indices needed to query them efficiently.
//
// Store is deliberately "dumb": it enforces only structural invariants
// (no duplicate IDs, no dangling edge endpoints) and never arbitrates
// between competing writes to the same field — that policy lives one layer
// up, in package updater. Keeping the two separate mirrors the reference
// library's split between core.Graph (pure structure) and the algorithm
// packages that add policy on top.
//
// Store holds an index of edge IDs per relation type in addition to the
// plain successor/predecessor adjacency, a parent-to-children index over
// HierPath, and a class index, all updated on every AddNode/AddEdge under
// a pair of RWMutexes (one for the node catalog, one for
// edges+adjacency), following the same locking discipline as core.Graph.
package graph
