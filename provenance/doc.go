// Package provenance defines the precedence lattice (Stage, Source) and the
// per-(entity, field) lineage ledger the Graph Updater consults before
// accepting a write (§3, §4.2).
//
// Ledger is a sibling of graph.Store, not a property of Node/Edge — keeping
// provenance out of the hot node/edge structs mirrors the reference
// library's choice to keep core.Vertex/core.Edge minimal and put thread
// safety in a small number of locks rather than per-record mutexes.
package provenance
