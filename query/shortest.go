package query

import (
	"container/heap"
	"errors"
	"math"

	"github.com/katalvlaran/dkg/graph"
)

// WeightKind selects the edge cost function used by ShortestPath (§4.8).
type WeightKind int

const (
	Hops WeightKind = iota
	Delay
)

func (w WeightKind) String() string {
	switch w {
	case Hops:
		return "Hops"
	case Delay:
		return "Delay"
	default:
		panic("query: unhandled WeightKind variant")
	}
}

// ErrNoPath is returned by ShortestPath when dst is unreachable from src.
var ErrNoPath = errors.New("query: no path found")

func edgeWeight(e *graph.Edge, weight WeightKind) float64 {
	switch weight {
	case Hops:
		return 1
	case Delay:
		if e.Delay == nil {
			return 0
		}
		return *e.Delay
	default:
		panic("query: unhandled WeightKind variant")
	}
}

type pqItem struct {
	id   string
	dist float64
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath computes the minimum-cost path from src to dst under the
// given weight function, using a lazy-decrease-key Dijkstra, mirroring the
// reference library's own dijkstra implementation. Edge weights are
// non-negative by construction (hop count, or a delay scalar defaulting to
// 0 when absent), so Dijkstra's non-negative-weight precondition always
// holds here.
func ShortestPath(store *graph.Store, src, dst string, weight WeightKind) ([]string, float64, error) {
	if !store.HasNode(src) || !store.HasNode(dst) {
		return nil, 0, ErrNoPath
	}

	dist := map[string]float64{src: 0}
	prev := map[string]string{}
	visited := map[string]bool{}

	pq := &priorityQueue{{id: src, dist: 0}}
	heap.Init(pq)

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if visited[cur.id] {
			continue
		}
		visited[cur.id] = true
		if cur.id == dst {
			break
		}
		for _, e := range store.OutEdges(cur.id) {
			w := edgeWeight(e, weight)
			nd := cur.dist + w
			if d, ok := dist[e.To]; !ok || nd < d {
				dist[e.To] = nd
				prev[e.To] = cur.id
				heap.Push(pq, pqItem{id: e.To, dist: nd})
			}
		}
	}

	if _, ok := dist[dst]; !ok {
		return nil, math.NaN(), ErrNoPath
	}

	path := []string{dst}
	for cur := dst; cur != src; {
		p, ok := prev[cur]
		if !ok {
			return nil, math.NaN(), ErrNoPath
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, dist[dst], nil
}
