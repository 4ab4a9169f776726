package query

import (
	"sort"

	"github.com/katalvlaran/dkg/graph"
)

// Fanout returns every node reachable forward from src within depth hops,
// excluding src itself, in ascending ID order.
func Fanout(store *graph.Store, src string, depth int) []string {
	return bfsFrontier(store, src, depth, store.OutEdges, func(e *graph.Edge) string { return e.To })
}

// Fanin returns every node reachable backward from dst within depth hops,
// excluding dst itself, in ascending ID order.
func Fanin(store *graph.Store, dst string, depth int) []string {
	return bfsFrontier(store, dst, depth, store.InEdges, func(e *graph.Edge) string { return e.From })
}

func bfsFrontier(store *graph.Store, start string, depth int, edgesOf func(string) []*graph.Edge, endpoint func(*graph.Edge) string) []string {
	if !store.HasNode(start) {
		return nil
	}
	visited := map[string]bool{start: true}
	frontier := []string{start}
	var out []string

	for d := 0; d < depth && len(frontier) > 0; d++ {
		var next []string
		for _, id := range frontier {
			for _, e := range edgesOf(id) {
				other := endpoint(e)
				if visited[other] {
					continue
				}
				visited[other] = true
				out = append(out, other)
				next = append(next, other)
			}
		}
		frontier = next
	}
	sort.Strings(out)
	return out
}
