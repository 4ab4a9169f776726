package view

import (
	"strings"

	"github.com/katalvlaran/dkg/graph"
)

// DynamicOverrides applies §4.7's "must be applied after the static
// lookup" rules and returns the possibly-adjusted policy. It is kept as
// its own function, independently testable, rather than inlined into the
// three-cycle loop.
func DynamicOverrides(ctx Context, n *graph.Node, base NodePolicy) NodePolicy {
	switch ctx {
	case Design:
		if isTestbenchNode(n) {
			return NodePolicy{Action: Eliminate, SuperClass: ClassEliminated}
		}
	case Simulation:
		if base.Action == Merge && isStimulusGenNode(n) {
			return NodePolicy{Action: Promote, SuperClass: ClassAtomic}
		}
	default:
		panic("view: unhandled Context variant")
	}
	return base
}

func isTestbenchNode(n *graph.Node) bool {
	if strings.HasPrefix(strings.ToLower(n.LocalName), "tb_") {
		return true
	}
	return hierContainsSegment(n.HierPath, "testbench") || hierContainsSegment(n.HierPath, "sim")
}

func isStimulusGenNode(n *graph.Node) bool {
	name := strings.ToLower(n.LocalName)
	return strings.HasPrefix(name, "clk_gen") || strings.HasPrefix(name, "reset_gen")
}

func hierContainsSegment(hierPath, segment string) bool {
	for _, part := range strings.Split(hierPath, "/") {
		if strings.EqualFold(part, segment) {
			return true
		}
	}
	return false
}
