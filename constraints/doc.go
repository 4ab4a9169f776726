// Package constraints implements the Constraint Projector (§4.5): it
// consumes ingest.ConstraintRecord values, resolves their target patterns
// into concrete node/edge ids, and writes the resulting fields through
// updater.Updater at (source=Declared, stage=Constraints).
//
// Pattern resolution is shell-wildcard matching (`*`, `?`) against
// hier_path, local_name, and canonical_name, compiled once per pattern via
// github.com/gobwas/glob and cached for the lifetime of a Projector. A
// pattern matching zero nodes is an UnresolvedPattern warning, never
// fatal — the remainder of the constraint file is still projected,
// mirroring how the rest of this module treats "expected, non-fatal"
// conditions as ordinary return values rather than errors (§7).
package constraints
