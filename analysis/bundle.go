package analysis

import "github.com/katalvlaran/dkg/supergraph"

// Kind names an analysis dimension attached to a SuperNode/SuperEdge
// bundle. Timing is the only kind produced by this module today; the
// string-keyed Bundle leaves room for future kinds (e.g. "Area", "Power")
// without changing the bundle's shape.
type Kind string

const (
	Timing Kind = "Timing"
)

// Target is anything carrying a supergraph.Bundle: *supergraph.SuperNode
// and *supergraph.SuperEdge both satisfy it.
type Target interface {
	Bundle() supergraph.Bundle
}

// AttachNode attaches (or replaces) value under kind in sn's bundle. A
// prior value for the same kind is discarded wholesale, matching §3's
// "analysis bundles are reattached, never mutated in place."
func AttachNode(sn *supergraph.SuperNode, kind Kind, value any) {
	sn.Bundle()[string(kind)] = value
}

// AttachEdge mirrors AttachNode for SuperEdges.
func AttachEdge(se *supergraph.SuperEdge, kind Kind, value any) {
	se.Bundle()[string(kind)] = value
}

// Get returns the value attached under kind, if any.
func Get(t Target, kind Kind) (any, bool) {
	v, ok := t.Bundle()[string(kind)]
	return v, ok
}

// Kinds returns the sorted set of analysis kinds currently attached to t.
func Kinds(t Target) []string {
	return t.Bundle().Kinds()
}
