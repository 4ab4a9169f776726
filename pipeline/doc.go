// Package pipeline implements the Stage Pipeline (§4.4): ordered ingestion
// of external artifacts into the graph via the Updater. Ingestors are
// registered per provenance.Stage and run sequentially, in registration
// order, against a shared graph.Store and updater.Updater — this
// sequencing is what makes the Updater's sequence-number tiebreaker a
// total order (§5 "stages are run one at a time, with their ingestors run
// sequentially in registration order").
//
// Re-running a stage re-invokes its ingestors; by the Updater's
// precedence rule this is idempotent with respect to field values and
// provenance heads provided the ingestors themselves are deterministic.
package pipeline
