// Package timing implements the Timing Aggregator (§4.6): pure,
// side-effect-free statistics over a supergraph.SuperGraph's members,
// computed from the underlying graph.Store's slack/arrival/required/delay
// scalars. Aggregation never writes through package updater and never
// mutates structure; every returned metrics value is an immutable
// snapshot, matching the contract core.Graph's own read-only views
// (UnweightedView, InducedSubgraph) establish for structural copies.
//
// Per-SuperNode and per-SuperEdge computation is independent and
// data-parallel; ComputeAll uses golang.org/x/sync/errgroup to fan out one
// goroutine per SuperNode and per SuperEdge behind a single barrier, the "parallelism opportunity"
// named in §5.
package timing
