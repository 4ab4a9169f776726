package timing

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/supergraph"
)

// Result bundles the per-SuperNode and per-SuperEdge metrics produced by
// ComputeAll, keyed by SuperNode/SuperEdge id.
type Result struct {
	NodeMetrics map[string]TimingNodeMetrics
	EdgeMetrics map[string]TimingEdgeMetrics
}

// ComputeAll computes every SuperNode's and SuperEdge's timing metrics,
// parallelizing the (pure, data-independent) per-SuperNode/per-SuperEdge computation behind
// a single barrier, per §5's "Timing Aggregator [...] is pure and
// data-parallel; an implementation may parallelize per-Super computation
// behind a single-writer barrier."
func ComputeAll(ctx context.Context, store *graph.Store, sg *supergraph.SuperGraph, cfg AggregatorConfig) (Result, error) {
	nodes := sg.SuperNodes()
	edges := sg.SuperEdges()

	res := Result{
		NodeMetrics: make(map[string]TimingNodeMetrics, len(nodes)),
		EdgeMetrics: make(map[string]TimingEdgeMetrics, len(edges)),
	}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for _, sn := range nodes {
		sn := sn
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := ComputeNodeMetrics(store, sn, cfg)
			mu.Lock()
			res.NodeMetrics[sn.ID()] = m
			mu.Unlock()
			return nil
		})
	}
	for _, se := range edges {
		se := se
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			m := ComputeEdgeMetrics(store, se, cfg)
			mu.Lock()
			res.EdgeMetrics[se.ID()] = m
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return res, nil
}
