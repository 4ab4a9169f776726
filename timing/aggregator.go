package timing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/supergraph"
)

// ComputeNodeMetrics implements §4.6's per-SuperNode metrics from the
// member nodes that carry slack/arrival/required values.
func ComputeNodeMetrics(store *graph.Store, sn *supergraph.SuperNode, cfg AggregatorConfig) TimingNodeMetrics {
	var slacks, arrivals, requireds []float64
	for _, id := range sn.Members() {
		n, ok := store.GetNode(id)
		if !ok {
			continue
		}
		if n.Slack != nil {
			slacks = append(slacks, *n.Slack)
		}
		if n.ArrivalTime != nil {
			arrivals = append(arrivals, *n.ArrivalTime)
		}
		if n.RequiredTime != nil {
			requireds = append(requireds, *n.RequiredTime)
		}
	}

	m := TimingNodeMetrics{
		MinSlack:        math.NaN(),
		P5Slack:         math.NaN(),
		MaxArrivalTime:  math.NaN(),
		MinRequiredTime: math.NaN(),
	}

	if len(slacks) > 0 {
		sorted := append([]float64(nil), slacks...)
		sort.Float64s(sorted)
		m.MinSlack = sorted[0]
		m.P5Slack = stat.Quantile(0.05, stat.LinInterp{}, sorted, nil)

		critical := 0
		nearCritical := 0
		for _, s := range slacks {
			if s <= cfg.Threshold {
				critical++
			}
			if s < cfg.Alpha*cfg.ClockPeriod {
				nearCritical++
			}
		}
		m.CriticalNodeRatio = float64(critical) / float64(len(slacks))
		m.NearCriticalRatio = float64(nearCritical) / float64(len(slacks))
	}
	if len(arrivals) > 0 {
		m.MaxArrivalTime = maxOf(arrivals)
	}
	if len(requireds) > 0 {
		m.MinRequiredTime = minOf(requireds)
	}

	if len(slacks) == 0 && len(arrivals) == 0 && len(requireds) == 0 {
		m.TimingRiskScore = nil
	} else {
		score := 10*m.CriticalNodeRatio + 5*m.NearCriticalRatio + math.Max(0, -zeroIfNaN(m.MinSlack))
		m.TimingRiskScore = &score
	}
	return m
}

// ComputeEdgeMetrics implements §4.6's per-SuperEdge metrics from the
// member edges that carry a delay value.
func ComputeEdgeMetrics(store *graph.Store, se *supergraph.SuperEdge, cfg AggregatorConfig) TimingEdgeMetrics {
	var delays []float64
	var fanouts []float64
	for _, id := range se.Members() {
		e, ok := store.GetEdge(id)
		if !ok {
			continue
		}
		if e.Delay != nil {
			delays = append(delays, *e.Delay)
		}
		fanouts = append(fanouts, float64(store.OutDegree(e.From)))
	}

	m := TimingEdgeMetrics{
		MaxDelay:          math.NaN(),
		P95Delay:          math.NaN(),
		FlowTypeHistogram: se.FlowHistogram(),
		FanoutMax:         math.NaN(),
		FanoutP95:         math.NaN(),
	}
	if len(delays) > 0 {
		sorted := append([]float64(nil), delays...)
		sort.Float64s(sorted)
		m.MaxDelay = sorted[len(sorted)-1]
		m.P95Delay = stat.Quantile(0.95, stat.LinInterp{}, sorted, nil)
	}
	if len(fanouts) > 0 {
		sorted := append([]float64(nil), fanouts...)
		sort.Float64s(sorted)
		m.FanoutMax = sorted[len(sorted)-1]
		m.FanoutP95 = stat.Quantile(0.95, stat.LinInterp{}, sorted, nil)
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func zeroIfNaN(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}
	return f
}
