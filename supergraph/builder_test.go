package supergraph_test

import (
	"testing"

	"github.com/katalvlaran/dkg/supergraph"
)

func TestBuilder_PartitionAndEdgeConservation(t *testing.T) {
	b := supergraph.NewBuilder("Connectivity", "Design")
	b.AddSuperNode("sn_ff1", supergraph.Atomic, []string{"ff1"}, nil)
	b.AddSuperNode("sn_ff2", supergraph.Atomic, []string{"ff2"}, nil)
	b.AddSuperNode("sn_cloud", supergraph.CombinationalCloud, []string{"lut1", "mux1"}, nil)

	b.AddSuperEdge("se1", "sn_ff1", "sn_cloud", []string{"e1"}, map[string]int{"Data": 1}, map[string]int{"Combinational": 1}, nil)
	b.AddSuperEdge("se2", "sn_cloud", "sn_ff2", []string{"e2"}, map[string]int{"Data": 1}, map[string]int{"Combinational": 1}, nil)

	g := b.Finish()

	if len(g.SuperNodes()) != 3 {
		t.Fatalf("expected 3 SuperNodes, got %d", len(g.SuperNodes()))
	}
	if len(g.SuperEdges()) != 2 {
		t.Fatalf("expected 2 SuperEdges, got %d", len(g.SuperEdges()))
	}

	sn, ok := g.SuperNodeOf("lut1")
	if !ok || sn.ID() != "sn_cloud" {
		t.Fatalf("expected lut1 -> sn_cloud, got %v %v", sn, ok)
	}

	seen := make(map[string]string)
	for _, sn := range g.SuperNodes() {
		for _, m := range sn.Members() {
			if prev, dup := seen[m]; dup {
				t.Fatalf("member %s present in both %s and %s", m, prev, sn.ID())
			}
			seen[m] = sn.ID()
		}
	}

	out := g.OutEdges("sn_ff1")
	if len(out) != 1 || out[0].ID() != "se1" {
		t.Fatalf("unexpected OutEdges(sn_ff1): %+v", out)
	}
	in := g.InEdges("sn_ff2")
	if len(in) != 1 || in[0].ID() != "se2" {
		t.Fatalf("unexpected InEdges(sn_ff2): %+v", in)
	}
}

func TestBuilder_DuplicateSuperNodePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on duplicate SuperNode id")
		}
	}()
	b := supergraph.NewBuilder("Structural", "Design")
	b.AddSuperNode("dup", supergraph.Atomic, []string{"a"}, nil)
	b.AddSuperNode("dup", supergraph.Atomic, []string{"b"}, nil)
}

func TestHashMemberSet_Deterministic(t *testing.T) {
	id1 := supergraph.HashMemberSet("sn", []string{"a", "b", "c"})
	id2 := supergraph.HashMemberSet("sn", []string{"a", "b", "c"})
	if id1 != id2 {
		t.Fatalf("expected identical hash for identical member sets, got %s vs %s", id1, id2)
	}
	id3 := supergraph.HashMemberSet("sn", []string{"a", "b", "d"})
	if id1 == id3 {
		t.Fatalf("expected different hash for different member sets")
	}
}

func TestBundle_Kinds(t *testing.T) {
	b := supergraph.Bundle{"Timing": 1, "Area": 2}
	kinds := b.Kinds()
	if len(kinds) != 2 || kinds[0] != "Area" || kinds[1] != "Timing" {
		t.Fatalf("unexpected sorted kinds: %v", kinds)
	}
}
