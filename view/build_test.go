package view_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/view"
)

func addNode(t *testing.T, s *graph.Store, id, hier, local string, class graph.EntityClass) {
	t.Helper()
	if err := s.AddNode(&graph.Node{ID: id, HierPath: hier, LocalName: local, Class: class}); err != nil {
		t.Fatalf("AddNode(%s): %v", id, err)
	}
}

func addEdge(t *testing.T, s *graph.Store, id, from, to string, rel graph.RelationType, flow graph.FlowType) {
	t.Helper()
	if err := s.AddEdge(&graph.Edge{ID: id, From: from, To: to, Relation: rel, Flow: flow}); err != nil {
		t.Fatalf("AddEdge(%s): %v", id, err)
	}
}

// TestBuild_S3MergeConnectivity reproduces §8 scenario S3.
func TestBuild_S3MergeConnectivity(t *testing.T) {
	s := graph.NewStore()
	addNode(t, s, "ff1", "ff1", "ff1", graph.FlipFlop)
	addNode(t, s, "ff2", "ff2", "ff2", graph.FlipFlop)
	addNode(t, s, "lut1", "lut1", "lut1", graph.Lut)
	addNode(t, s, "mux1", "mux1", "mux1", graph.Mux)

	addEdge(t, s, "e1", "ff1", "lut1", graph.Data, graph.Combinational)
	addEdge(t, s, "e2", "lut1", "mux1", graph.Data, graph.Combinational)
	addEdge(t, s, "e3", "mux1", "ff2", graph.Data, graph.Combinational)

	b, err := view.New(view.DefaultPolicyMap())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sg, err := b.Build(context.Background(), s, view.Connectivity, view.Design)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(sg.SuperNodes()) != 3 {
		t.Fatalf("expected 3 SuperNodes, got %d: %+v", len(sg.SuperNodes()), sg.SuperNodes())
	}
	cloud, ok := sg.SuperNodeOf("lut1")
	if !ok {
		t.Fatalf("lut1 unresolved")
	}
	if !cloud.HasMember("mux1") {
		t.Fatalf("expected lut1 and mux1 in the same CombinationalCloud SuperNode")
	}
	if cloud.Class().String() != "CombinationalCloud" {
		t.Fatalf("expected CombinationalCloud class, got %s", cloud.Class())
	}
	if len(sg.SuperEdges()) != 2 {
		t.Fatalf("expected 2 SuperEdges, got %d", len(sg.SuperEdges()))
	}
}

// TestBuild_S5SimulationClockGen reproduces §8 scenario S5.
func TestBuild_S5SimulationClockGen(t *testing.T) {
	s := graph.NewStore()
	addNode(t, s, "clkgen", "clkgen", "clk_gen_main", graph.RtlBlock)

	b, err := view.New(view.DefaultPolicyMap())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sg, err := b.Build(context.Background(), s, view.Connectivity, view.Simulation)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	sn, ok := sg.SuperNodeOf("clkgen")
	if !ok {
		t.Fatalf("clkgen unresolved")
	}
	if sn.Class().String() != "Atomic" {
		t.Fatalf("expected clk_gen_main promoted to Atomic, got %s", sn.Class())
	}
	if len(sn.Members()) != 1 {
		t.Fatalf("expected clk_gen_main promoted alone, got members %v", sn.Members())
	}
}

func TestBuild_TestbenchEliminated(t *testing.T) {
	s := graph.NewStore()
	addNode(t, s, "tb_top", "tb_top", "tb_top", graph.ModuleInstance)

	b, err := view.New(view.DefaultPolicyMap())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sg, err := b.Build(context.Background(), s, view.Structural, view.Design)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if _, ok := sg.SuperNodeOf("tb_top"); ok {
		t.Fatalf("expected tb_top eliminated by the testbench override")
	}
}

func TestBuild_InterruptedContext(t *testing.T) {
	s := graph.NewStore()
	addNode(t, s, "ff1", "ff1", "ff1", graph.FlipFlop)

	b, err := view.New(view.DefaultPolicyMap())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := b.Build(ctx, s, view.Connectivity, view.Design); err != view.ErrInterrupted {
		t.Fatalf("expected ErrInterrupted, got %v", err)
	}
}
