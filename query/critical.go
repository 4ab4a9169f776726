package query

import (
	"sort"

	"github.com/katalvlaran/dkg/graph"
)

// CriticalNodes returns every node whose Slack is set and <= threshold,
// sorted ascending by slack (most critical first). When topN is non-nil,
// only the first *topN results are returned.
func CriticalNodes(store *graph.Store, threshold float64, topN *int) []*graph.Node {
	var out []*graph.Node
	for _, n := range store.Nodes() {
		if n.Slack != nil && *n.Slack <= threshold {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return *out[i].Slack < *out[j].Slack })
	if topN != nil && *topN >= 0 && *topN < len(out) {
		out = out[:*topN]
	}
	return out
}
