package snapshot

import (
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/supergraph"
)

// NodeView is the §6 export rendering of a graph.Node: every field exposed
// as plain JSON-able scalars rather than the struct's internal pointer
// fields (Slack etc. stay *float64 and carry omitempty, so goccy/go-json
// omits them when unset, same as encoding/json).
type NodeView struct {
	ID              string         `json:"id"`
	HierPath        string         `json:"hier_path"`
	LocalName       string         `json:"local_name"`
	Class           string         `json:"class"`
	Attributes      map[string]any `json:"attributes,omitempty"`
	ClockSignal     string         `json:"clock_signal,omitempty"`
	ResetSignal     string         `json:"reset_signal,omitempty"`
	Slack           *float64       `json:"slack,omitempty"`
	ArrivalTime     *float64       `json:"arrival_time,omitempty"`
	RequiredTime    *float64       `json:"required_time,omitempty"`
	ClockDomain     string         `json:"clock_domain,omitempty"`
	TimingException string         `json:"timing_exception,omitempty"`
}

// NewNodeView renders n for export.
func NewNodeView(n *graph.Node) NodeView {
	return NodeView{
		ID:              n.ID,
		HierPath:        n.HierPath,
		LocalName:       n.LocalName,
		Class:           n.Class.String(),
		Attributes:      n.Attributes,
		ClockSignal:     n.ClockSignal,
		ResetSignal:     n.ResetSignal,
		Slack:           n.Slack,
		ArrivalTime:     n.ArrivalTime,
		RequiredTime:    n.RequiredTime,
		ClockDomain:     n.ClockDomain,
		TimingException: n.TimingException,
	}
}

// EdgeView is the §6 export rendering of a graph.Edge.
type EdgeView struct {
	ID              string         `json:"id"`
	From            string         `json:"from"`
	To              string         `json:"to"`
	Relation        string         `json:"relation"`
	Flow            string         `json:"flow"`
	SignalName      string         `json:"signal_name,omitempty"`
	CanonicalName   string         `json:"canonical_name,omitempty"`
	BitRange        string         `json:"bit_range,omitempty"`
	NetID           string         `json:"net_id,omitempty"`
	Delay           *float64       `json:"delay,omitempty"`
	Slack           *float64       `json:"slack,omitempty"`
	TimingException string         `json:"timing_exception,omitempty"`
	ClockDomain     string         `json:"clock_domain,omitempty"`
	Attributes      map[string]any `json:"attributes,omitempty"`
}

// NewEdgeView renders e for export.
func NewEdgeView(e *graph.Edge) EdgeView {
	return EdgeView{
		ID:              e.ID,
		From:            e.From,
		To:              e.To,
		Relation:        e.Relation.String(),
		Flow:            e.Flow.String(),
		SignalName:      e.SignalName,
		CanonicalName:   e.CanonicalName,
		BitRange:        e.BitRange,
		NetID:           e.NetID,
		Delay:           e.Delay,
		Slack:           e.Slack,
		TimingException: e.TimingException,
		ClockDomain:     e.ClockDomain,
		Attributes:      e.Attributes,
	}
}

// SuperNodeView is the §6 export rendering of a supergraph.SuperNode.
type SuperNodeView struct {
	ID         string   `json:"id"`
	Class      string   `json:"class"`
	Members    []string `json:"members"`
	BundleKeys []string `json:"bundle_keys,omitempty"`
}

// NewSuperNodeView renders sn for export.
func NewSuperNodeView(sn *supergraph.SuperNode) SuperNodeView {
	return SuperNodeView{
		ID:         sn.ID(),
		Class:      sn.Class().String(),
		Members:    sn.Members(),
		BundleKeys: sn.Bundle().Kinds(),
	}
}

// SuperEdgeView is the §6 export rendering of a supergraph.SuperEdge.
type SuperEdgeView struct {
	ID                string         `json:"id"`
	From              string         `json:"from"`
	To                string         `json:"to"`
	Members           []string       `json:"members"`
	RelationHistogram map[string]int `json:"relation_histogram,omitempty"`
	FlowHistogram     map[string]int `json:"flow_histogram,omitempty"`
	BundleKeys        []string       `json:"bundle_keys,omitempty"`
}

// NewSuperEdgeView renders se for export.
func NewSuperEdgeView(se *supergraph.SuperEdge) SuperEdgeView {
	return SuperEdgeView{
		ID:                se.ID(),
		From:              se.From(),
		To:                se.To(),
		Members:           se.Members(),
		RelationHistogram: se.RelationHistogram(),
		FlowHistogram:     se.FlowHistogram(),
		BundleKeys:        se.Bundle().Kinds(),
	}
}
