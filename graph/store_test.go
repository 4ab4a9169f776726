package graph_test

import (
	"testing"

	"github.com/katalvlaran/dkg/graph"
)

func TestStore_AddNode_DuplicateAndDangling(t *testing.T) {
	s := graph.NewStore()

	if err := s.AddNode(&graph.Node{ID: "top", HierPath: "top", Class: graph.ModuleInstance}); err != nil {
		t.Fatalf("AddNode(top): %v", err)
	}
	if err := s.AddNode(&graph.Node{ID: "top", HierPath: "top", Class: graph.ModuleInstance}); err != graph.ErrDuplicateID {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := s.AddNode(&graph.Node{ID: "top/ff1", HierPath: "top/missing/ff1", Class: graph.FlipFlop}); err != graph.ErrInvalidHierPath {
		t.Fatalf("expected ErrInvalidHierPath, got %v", err)
	}

	if err := s.AddEdge(&graph.Edge{ID: "e1", From: "top", To: "nope"}); err != graph.ErrDanglingEndpoint {
		t.Fatalf("expected ErrDanglingEndpoint, got %v", err)
	}
}

func TestStore_NodesByClassAndHierPrefix(t *testing.T) {
	s := graph.NewStore()
	must(t, s.AddNode(&graph.Node{ID: "top", HierPath: "top", Class: graph.ModuleInstance}))
	must(t, s.AddNode(&graph.Node{ID: "top/ff1", HierPath: "top/ff1", Class: graph.FlipFlop}))
	must(t, s.AddNode(&graph.Node{ID: "top/ff2", HierPath: "top/ff2", Class: graph.FlipFlop}))
	must(t, s.AddNode(&graph.Node{ID: "top/lut1", HierPath: "top/lut1", Class: graph.Lut}))

	ffs := s.NodesByClass(graph.FlipFlop)
	if len(ffs) != 2 {
		t.Fatalf("expected 2 flip-flops, got %d", len(ffs))
	}
	if ffs[0].ID != "top/ff1" || ffs[1].ID != "top/ff2" {
		t.Fatalf("expected sorted order, got %v %v", ffs[0].ID, ffs[1].ID)
	}

	under := s.NodesByHierPrefix("top")
	if len(under) != 4 {
		t.Fatalf("expected 4 nodes under top (including top itself), got %d", len(under))
	}
}

func TestStore_FieldRoundTrip(t *testing.T) {
	s := graph.NewStore()
	must(t, s.AddNode(&graph.Node{ID: "n1", HierPath: "n1", Class: graph.IoPort}))

	if err := s.SetNodeField("n1", graph.FieldClockDomain, "sys_clk"); err != nil {
		t.Fatalf("SetNodeField: %v", err)
	}
	v, ok, present := s.GetNodeField("n1", graph.FieldClockDomain)
	if !ok || !present || v.(string) != "sys_clk" {
		t.Fatalf("unexpected field state: %v %v %v", v, ok, present)
	}

	if err := s.SetNodeField("n1", graph.FieldSlack, "not-a-float"); err != graph.ErrFieldTypeMismatch {
		t.Fatalf("expected ErrFieldTypeMismatch, got %v", err)
	}
	if err := s.SetNodeField("missing", graph.FieldSlack, 1.0); err != graph.ErrNoSuchEntity {
		t.Fatalf("expected ErrNoSuchEntity, got %v", err)
	}

	if err := s.SetNodeField("n1", "clock_period", 10.0); err != nil {
		t.Fatalf("SetNodeField attribute: %v", err)
	}
	v, _, present = s.GetNodeField("n1", "clock_period")
	if !present || v.(float64) != 10.0 {
		t.Fatalf("unexpected attribute state: %v %v", v, present)
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
