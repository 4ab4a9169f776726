package query

import "github.com/katalvlaran/dkg/graph"

// FindNodes returns every node in store matching the intersection of
// filters, in ascending ID order. A nil filters slice returns every node.
func FindNodes(store *graph.Store, filters ...NodeFilter) []*graph.Node {
	match := AndNodes(filters...)
	var out []*graph.Node
	for _, n := range store.Nodes() {
		if match(n) {
			out = append(out, n)
		}
	}
	return out
}

// FindEdges returns every edge in store matching the intersection of
// filters, in ascending ID order.
func FindEdges(store *graph.Store, filters ...EdgeFilter) []*graph.Edge {
	match := AndEdges(filters...)
	var out []*graph.Edge
	for _, e := range store.Edges() {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}
