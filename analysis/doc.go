// Package analysis implements the Analysis Aggregation Layer's bundle API
// (§9's "Analysis Bundle" component): AttachNode/AttachEdge and Get operate on a
// supergraph.SuperNode or supergraph.SuperEdge's Bundle without ever
// influencing structure. Re-analysis of a given kind replaces its entry
// wholesale (§3 "analysis bundles are reattached, never mutated in
// place"); this package never exposes a way to mutate a bundle value once
// attached, only to replace it.
package analysis
