package ingest

import (
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/provenance"
)

// FieldUpdate is the wire-format write an ingestor submits to the Updater
// (§6). OriginFile/OriginLine are optional provenance breadcrumbs.
type FieldUpdate struct {
	EntityID   string
	Field      string
	Value      any
	Stage      provenance.Stage
	Source     provenance.Source
	OriginFile string
	OriginLine int
}

// NodeSpec carries the §3 fields needed to create a node. Optional scalar
// fields are nil/empty when not yet known at creation time.
type NodeSpec struct {
	ID         string
	HierPath   string
	LocalName  string
	Class      graph.EntityClass
	Attributes map[string]any
}

// ToNode builds a graph.Node from the spec, with no provenance-gated
// fields populated (those arrive via FieldUpdate through the Updater).
func (s NodeSpec) ToNode() *graph.Node {
	return &graph.Node{
		ID:         s.ID,
		HierPath:   s.HierPath,
		LocalName:  s.LocalName,
		Class:      s.Class,
		Attributes: s.Attributes,
	}
}

// EdgeSpec carries the §3 fields needed to create an edge.
type EdgeSpec struct {
	ID       string
	From     string
	To       string
	Relation graph.RelationType
	Flow     graph.FlowType
}

// ToEdge builds a graph.Edge from the spec.
func (s EdgeSpec) ToEdge() *graph.Edge {
	return &graph.Edge{
		ID:       s.ID,
		From:     s.From,
		To:       s.To,
		Relation: s.Relation,
		Flow:     s.Flow,
	}
}

// TimingPathRecord is a parsed timing-report path (§6), carrying the
// member node/edge ids it traverses and a per-edge delay breakdown.
type TimingPathRecord struct {
	Startpoint   string
	Endpoint     string
	Nodes        []string
	Edges        []string
	Slack        float64
	Arrival      float64
	Required     float64
	DelayPerEdge map[string]float64
}
