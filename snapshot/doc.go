// Package snapshot implements the §6 export wire format and the persisted
// snapshot layout used to restart a process without losing precedence
// history. Export produces a read-only rendering of a graph.Store plus any
// number of supergraph.SuperGraph views for external tooling (the
// visualization front-end, CLI inspection) to consume; Snapshot/Restore
// round-trip a graph.Store and provenance.Ledger through the persisted
// layout so that live writes after a restart are still gated exactly as if
// the process had never stopped.
//
// Marshaling uses github.com/goccy/go-json, a drop-in encoding/json
// replacement, rather than the standard library encoder.
package snapshot
