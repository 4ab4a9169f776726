package query

import (
	"context"
	"errors"

	"github.com/katalvlaran/dkg/graph"
)

// ErrInterrupted is returned by FindPaths when ctx is cancelled between
// BFS layers (§5 "cancellation is cooperative [...] each BFS layer in
// path enumeration").
var ErrInterrupted = errors.New("query: interrupted")

type partialPath struct {
	nodes   []string
	visited map[string]bool
}

// FindPaths enumerates every simple path from src to dst of length up to
// maxDepth edges, expanding breadth-first layer by layer so that
// cancellation can be checked between layers. A path visits each node (and
// therefore each edge) at most once. follow, if non-nil, additionally
// filters which edges may be traversed.
func FindPaths(ctx context.Context, store *graph.Store, src, dst string, maxDepth int, follow EdgeFilter) ([][]string, error) {
	if !store.HasNode(src) || !store.HasNode(dst) {
		return nil, nil
	}

	var results [][]string
	frontier := []partialPath{{nodes: []string{src}, visited: map[string]bool{src: true}}}

	for depth := 0; depth < maxDepth && len(frontier) > 0; depth++ {
		select {
		case <-ctx.Done():
			return results, ErrInterrupted
		default:
		}

		var next []partialPath
		for _, p := range frontier {
			head := p.nodes[len(p.nodes)-1]
			for _, e := range store.OutEdges(head) {
				if follow != nil && !follow(e) {
					continue
				}
				if p.visited[e.To] {
					continue // cycle-free: no repeated node in a path
				}
				nodes := append(append([]string(nil), p.nodes...), e.To)
				visited := make(map[string]bool, len(p.visited)+1)
				for k := range p.visited {
					visited[k] = true
				}
				visited[e.To] = true
				np := partialPath{nodes: nodes, visited: visited}
				if e.To == dst {
					results = append(results, nodes)
				} else {
					next = append(next, np)
				}
			}
		}
		frontier = next
	}

	return results, nil
}
