// Package updater implements the Graph Updater (§4.3): the single
// precedence-gated writer onto graph.Store, arbitrating competing writes to
// the same field via the (source, stage) precedence lattice and recording
// every accepted write in a provenance.Ledger.
//
// Updater is the only component in this module allowed to call
// graph.Store's field mutators (SetNodeField/SetEdgeField); every other
// package reaches the graph read-only. This mirrors the reference
// library's own split between core.Graph (structure, thread-safe) and the
// algorithm packages layered on top of it, except here the "algorithm" is
// a single arbitration rule rather than a traversal.
package updater
