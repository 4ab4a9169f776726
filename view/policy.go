package view

import "github.com/katalvlaran/dkg/graph"

// NodePolicy is the two-level map's value: what the three-cycle builder
// does with a matching node, and (for Promote/Merge) the SuperClass its
// resulting SuperNode is tagged with.
type NodePolicy struct {
	Action     Action
	SuperClass SuperClassName
}

// SuperClassName mirrors supergraph.SuperClass as a string so that package
// view does not need to import supergraph's enum ordering into its policy
// literals; Build translates it at SuperNode-allocation time.
type SuperClassName string

const (
	ClassAtomic             SuperClassName = "Atomic"
	ClassModuleCluster      SuperClassName = "ModuleCluster"
	ClassCombinationalCloud SuperClassName = "CombinationalCloud"
	ClassConstraintGroup    SuperClassName = "ConstraintGroup"
	ClassEliminated         SuperClassName = "Eliminated"
)

// policyKey is the two-level map's key: (Context, View, EntityClass).
type policyKey struct {
	context Context
	view    View
	class   graph.EntityClass
}

// PolicyMap is a (Context × View × EntityClass) -> NodePolicy lookup table.
type PolicyMap map[policyKey]NodePolicy

// Lookup returns the policy for (ctx, v, class), and whether one was found.
// A missing entry is not an error: callers default to Eliminate, matching
// §4.7's "Eliminate physical everywhere" catch-all phrasing for unlisted
// classes under a given context/view.
func (m PolicyMap) Lookup(ctx Context, v View, class graph.EntityClass) (NodePolicy, bool) {
	p, ok := m[policyKey{context: ctx, view: v, class: class}]
	return p, ok
}

func (m PolicyMap) set(ctx Context, v View, class graph.EntityClass, action Action, sc SuperClassName) {
	m[policyKey{context: ctx, view: v, class: class}] = NodePolicy{Action: action, SuperClass: sc}
}

// DefaultPolicyMap builds the exemplar policy map from §4.7: Design's three
// views plus the Simulation.* policies applied uniformly across all three
// views (spec.md writes "Simulation.*" as a single row).
func DefaultPolicyMap() PolicyMap {
	m := make(PolicyMap)

	// Design.Connectivity
	m.set(Design, Connectivity, graph.FlipFlop, Promote, ClassAtomic)
	m.set(Design, Connectivity, graph.Dsp, Promote, ClassAtomic)
	m.set(Design, Connectivity, graph.Bram, Promote, ClassAtomic)
	m.set(Design, Connectivity, graph.IoPort, Promote, ClassAtomic)
	m.set(Design, Connectivity, graph.Lut, Merge, ClassCombinationalCloud)
	m.set(Design, Connectivity, graph.Mux, Merge, ClassCombinationalCloud)
	m.set(Design, Connectivity, graph.Pblock, Eliminate, ClassEliminated)
	m.set(Design, Connectivity, graph.PackagePin, Eliminate, ClassEliminated)
	m.set(Design, Connectivity, graph.ModuleInstance, Eliminate, ClassEliminated)
	m.set(Design, Connectivity, graph.RtlBlock, Merge, ClassCombinationalCloud)
	m.set(Design, Connectivity, graph.BoardConnector, Eliminate, ClassEliminated)
	m.set(Design, Connectivity, graph.ClockDomain, Eliminate, ClassEliminated)
	m.set(Design, Connectivity, graph.Fsm, Promote, ClassAtomic)

	// Design.Structural
	m.set(Design, Structural, graph.ModuleInstance, Promote, ClassAtomic)
	m.set(Design, Structural, graph.IoPort, Promote, ClassAtomic)
	for _, c := range []graph.EntityClass{graph.FlipFlop, graph.Lut, graph.Mux, graph.Dsp, graph.Bram, graph.RtlBlock, graph.Fsm} {
		m.set(Design, Structural, c, Merge, ClassModuleCluster)
	}
	for _, c := range []graph.EntityClass{graph.Pblock, graph.PackagePin, graph.BoardConnector, graph.ClockDomain} {
		m.set(Design, Structural, c, Eliminate, ClassEliminated)
	}

	// Design.Physical
	m.set(Design, Physical, graph.IoPort, Promote, ClassAtomic)
	m.set(Design, Physical, graph.Pblock, Promote, ClassAtomic)
	m.set(Design, Physical, graph.PackagePin, Promote, ClassAtomic)
	m.set(Design, Physical, graph.Dsp, Merge, ClassConstraintGroup)
	m.set(Design, Physical, graph.Bram, Merge, ClassConstraintGroup)
	for _, c := range []graph.EntityClass{graph.ModuleInstance, graph.FlipFlop, graph.Lut, graph.Mux, graph.RtlBlock, graph.Fsm, graph.ClockDomain, graph.BoardConnector} {
		m.set(Design, Physical, c, Eliminate, ClassEliminated)
	}

	// Simulation.* (applied identically across all three views, per
	// spec.md's single "Simulation.*" row).
	for _, v := range []View{Structural, Connectivity, Physical} {
		m.set(Simulation, v, graph.ModuleInstance, Promote, ClassAtomic)
		m.set(Simulation, v, graph.IoPort, Promote, ClassAtomic)
		m.set(Simulation, v, graph.FlipFlop, Promote, ClassAtomic)
		m.set(Simulation, v, graph.Dsp, Promote, ClassAtomic)
		m.set(Simulation, v, graph.Bram, Promote, ClassAtomic)
		m.set(Simulation, v, graph.Lut, Merge, ClassModuleCluster)
		m.set(Simulation, v, graph.Mux, Merge, ClassModuleCluster)
		m.set(Simulation, v, graph.RtlBlock, Merge, ClassModuleCluster)
		m.set(Simulation, v, graph.Fsm, Promote, ClassAtomic)
		m.set(Simulation, v, graph.Pblock, Eliminate, ClassEliminated)
		m.set(Simulation, v, graph.PackagePin, Eliminate, ClassEliminated)
		m.set(Simulation, v, graph.BoardConnector, Eliminate, ClassEliminated)
		m.set(Simulation, v, graph.ClockDomain, Eliminate, ClassEliminated)
	}

	return m
}
