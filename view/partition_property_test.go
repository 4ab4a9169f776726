package view_test

import (
	"context"
	"fmt"
	"testing"

	"pgregory.net/rapid"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/view"
)

var entityClassGen = rapid.SampledFrom([]graph.EntityClass{
	graph.ModuleInstance, graph.RtlBlock, graph.FlipFlop, graph.Lut, graph.Mux,
	graph.Dsp, graph.Bram, graph.IoPort,
})

var viewGen = rapid.SampledFrom([]view.View{view.Structural, view.Connectivity, view.Physical})
var contextGen = rapid.SampledFrom([]view.Context{view.Design, view.Simulation})

// genStore builds a random small DAG: n nodes n0..n_{k-1}, each class drawn
// independently, plus a random subset of forward (i<j) Combinational/Data
// edges so the Merge cycle's component search has real structure to chew
// on without ever needing to handle cycles.
func genStore(t *rapid.T) *graph.Store {
	k := rapid.IntRange(1, 7).Draw(t, "nodeCount")
	s := graph.NewStore()
	for i := 0; i < k; i++ {
		id := fmt.Sprintf("n%d", i)
		class := entityClassGen.Draw(t, "class")
		if err := s.AddNode(&graph.Node{ID: id, HierPath: id, LocalName: id, Class: class}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	edgeSeq := 0
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if rapid.Bool().Draw(t, fmt.Sprintf("edge_%d_%d", i, j)) {
				id := fmt.Sprintf("e%d", edgeSeq)
				edgeSeq++
				if err := s.AddEdge(&graph.Edge{
					ID: id, From: fmt.Sprintf("n%d", i), To: fmt.Sprintf("n%d", j),
					Relation: graph.Data, Flow: graph.Combinational,
				}); err != nil {
					t.Fatalf("AddEdge(%s): %v", id, err)
				}
			}
		}
	}
	return s
}

// TestPartitionInvariant_Property checks §8 invariant 3: every built
// SuperGraph's SuperNode member sets are pairwise disjoint and their union
// equals exactly the non-eliminated node set of the source graph.
func TestPartitionInvariant_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genStore(t)
		v := viewGen.Draw(t, "view")
		c := contextGen.Draw(t, "context")

		b, err := view.New(view.DefaultPolicyMap())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		sg, err := b.Build(context.Background(), s, v, c)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		seen := make(map[string]string) // node id -> owning SuperNode id
		for _, sn := range sg.SuperNodes() {
			for _, m := range sn.Members() {
				if owner, dup := seen[m]; dup {
					t.Fatalf("node %s claimed by both %s and %s", m, owner, sn.ID())
				}
				seen[m] = sn.ID()
			}
		}
		pm := view.DefaultPolicyMap()
		for _, n := range s.Nodes() {
			pol, found := pm.Lookup(c, v, n.Class)
			if !found {
				pol = view.NodePolicy{Action: view.Eliminate}
			}
			eliminated := view.DynamicOverrides(c, n, pol).Action == view.Eliminate
			_, owned := sg.SuperNodeOf(n.ID)
			if owned == eliminated {
				t.Fatalf("node %s: eliminated=%v but owned by a SuperNode=%v", n.ID, eliminated, owned)
			}
			if !owned {
				continue
			}
			if _, ok := seen[n.ID]; !ok {
				t.Fatalf("node %s resolves to a SuperNode but is absent from every Members() set", n.ID)
			}
		}
		for m := range seen {
			if _, ok := s.GetNode(m); !ok {
				t.Fatalf("SuperNode member %s does not correspond to any source node", m)
			}
		}
	})
}

// genChainStore builds a linear chain n0->n1->...->n_{k-1} with both ends
// forced to IoPort (promoted to Atomic in every view/context combination
// DefaultPolicyMap defines, §4.7), so that a bounded passthrough search
// from any interior node is guaranteed to terminate at a promoted SuperNode
// well within the default PassthroughDepth — no edge is ever dropped for
// lack of a resolvable endpoint, letting the conservation check be exact.
func genChainStore(t *rapid.T) *graph.Store {
	k := rapid.IntRange(2, 7).Draw(t, "nodeCount")
	s := graph.NewStore()
	for i := 0; i < k; i++ {
		id := fmt.Sprintf("n%d", i)
		class := graph.IoPort
		if i != 0 && i != k-1 {
			class = entityClassGen.Draw(t, "class")
		}
		if err := s.AddNode(&graph.Node{ID: id, HierPath: id, LocalName: id, Class: class}); err != nil {
			t.Fatalf("AddNode(%s): %v", id, err)
		}
	}
	for i := 0; i < k-1; i++ {
		id := fmt.Sprintf("e%d", i)
		if err := s.AddEdge(&graph.Edge{
			ID: id, From: fmt.Sprintf("n%d", i), To: fmt.Sprintf("n%d", i+1),
			Relation: graph.Data, Flow: graph.Combinational,
		}); err != nil {
			t.Fatalf("AddEdge(%s): %v", id, err)
		}
	}
	return s
}

// TestEdgeConservation_Property checks §8 invariant 4: for every source
// edge, either its endpoints map into the same SuperNode (a dropped
// self-loop) or exactly one SuperEdge contains it in its member set.
func TestEdgeConservation_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genChainStore(t)
		v := viewGen.Draw(t, "view")
		c := contextGen.Draw(t, "context")

		b, err := view.New(view.DefaultPolicyMap())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		sg, err := b.Build(context.Background(), s, v, c)
		if err != nil {
			t.Fatalf("Build: %v", err)
		}

		memberOf := make(map[string][]string) // edge id -> containing SuperEdge ids
		for _, se := range sg.SuperEdges() {
			for _, m := range se.Members() {
				memberOf[m] = append(memberOf[m], se.ID())
			}
		}

		for _, e := range s.Edges() {
			fromSN, fromOK := sg.SuperNodeOf(e.From)
			toSN, toOK := sg.SuperNodeOf(e.To)
			if fromOK && toOK && fromSN.ID() == toSN.ID() {
				// Both endpoints eliminated into (or already in) the same
				// SuperNode: the edge is a legitimate dropped self-loop,
				// but it must not ALSO appear inside some SuperEdge.
				if ids, ok := memberOf[e.ID]; ok {
					t.Fatalf("self-loop edge %s unexpectedly retained in SuperEdge(s) %v", e.ID, ids)
				}
				continue
			}
			ids := memberOf[e.ID]
			if len(ids) != 1 {
				t.Fatalf("edge %s (from=%s[%v] to=%s[%v]) expected exactly one containing SuperEdge, got %v",
					e.ID, e.From, fromOK, e.To, toOK, ids)
			}
		}
	})
}

// TestViewDeterminism_Property checks §8 invariant 7: building the same
// view twice from the same frozen (store, policies) yields SuperGraphs
// with identical SuperNode id sequences (each id hashes its sorted member
// set); SuperEdges are not compared.
func TestViewDeterminism_Property(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := genStore(t)
		v := viewGen.Draw(t, "view")
		c := contextGen.Draw(t, "context")

		b, err := view.New(view.DefaultPolicyMap())
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		sg1, err := b.Build(context.Background(), s, v, c)
		if err != nil {
			t.Fatalf("Build 1: %v", err)
		}
		sg2, err := b.Build(context.Background(), s, v, c)
		if err != nil {
			t.Fatalf("Build 2: %v", err)
		}

		ids1 := make([]string, 0, len(sg1.SuperNodes()))
		for _, sn := range sg1.SuperNodes() {
			ids1 = append(ids1, sn.ID())
		}
		ids2 := make([]string, 0, len(sg2.SuperNodes()))
		for _, sn := range sg2.SuperNodes() {
			ids2 = append(ids2, sn.ID())
		}
		if len(ids1) != len(ids2) {
			t.Fatalf("SuperNode count differs across rebuilds: %d vs %d", len(ids1), len(ids2))
		}
		for i := range ids1 {
			if ids1[i] != ids2[i] {
				t.Fatalf("SuperNode id sequence differs across rebuilds at %d: %s vs %s", i, ids1[i], ids2[i])
			}
		}
	})
}
