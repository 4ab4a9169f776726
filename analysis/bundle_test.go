package analysis_test

import (
	"testing"

	"github.com/katalvlaran/dkg/analysis"
	"github.com/katalvlaran/dkg/supergraph"
)

func TestAttachNode_ReplacesWholesale(t *testing.T) {
	b := supergraph.NewBuilder("Connectivity", "Design")
	sn := b.AddSuperNode("sn1", supergraph.Atomic, []string{"m1"}, nil)

	analysis.AttachNode(sn, analysis.Timing, 1)
	v, ok := analysis.Get(sn, analysis.Timing)
	if !ok || v != 1 {
		t.Fatalf("expected Timing=1, got %v %v", v, ok)
	}

	analysis.AttachNode(sn, analysis.Timing, 2)
	v, ok = analysis.Get(sn, analysis.Timing)
	if !ok || v != 2 {
		t.Fatalf("expected re-attach to replace wholesale, got %v %v", v, ok)
	}

	if kinds := analysis.Kinds(sn); len(kinds) != 1 || kinds[0] != "Timing" {
		t.Fatalf("unexpected kinds: %v", kinds)
	}
}

func TestAttachEdge(t *testing.T) {
	b := supergraph.NewBuilder("Connectivity", "Design")
	b.AddSuperNode("sn1", supergraph.Atomic, []string{"m1"}, nil)
	b.AddSuperNode("sn2", supergraph.Atomic, []string{"m2"}, nil)
	se := b.AddSuperEdge("se1", "sn1", "sn2", []string{"e1"}, map[string]int{}, map[string]int{}, nil)

	analysis.AttachEdge(se, analysis.Timing, "metrics")
	v, ok := analysis.Get(se, analysis.Timing)
	if !ok || v != "metrics" {
		t.Fatalf("expected Timing=metrics, got %v %v", v, ok)
	}
}
