package query

import (
	"github.com/gobwas/glob"

	"github.com/katalvlaran/dkg/graph"
)

// NodeFilter reports whether n matches a search predicate.
type NodeFilter func(n *graph.Node) bool

// EdgeFilter reports whether e matches a search predicate.
type EdgeFilter func(e *graph.Edge) bool

// ByClass matches nodes of the given entity class.
func ByClass(class graph.EntityClass) NodeFilter {
	return func(n *graph.Node) bool { return n.Class == class }
}

// ByNamePattern matches nodes whose LocalName matches a shell-style
// wildcard pattern (`*`, `?`), compiled once via gobwas/glob.
func ByNamePattern(pattern string) (NodeFilter, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return func(n *graph.Node) bool { return g.Match(n.LocalName) }, nil
}

// ByHierPrefix matches nodes whose HierPath equals prefix or is a
// descendant of it.
func ByHierPrefix(prefix string) NodeFilter {
	return func(n *graph.Node) bool {
		if n.HierPath == prefix {
			return true
		}
		return len(n.HierPath) > len(prefix) &&
			n.HierPath[:len(prefix)] == prefix &&
			n.HierPath[len(prefix)] == '/'
	}
}

// BySlackRange matches nodes whose Slack is set and within [min, max].
func BySlackRange(min, max float64) NodeFilter {
	return func(n *graph.Node) bool {
		return n.Slack != nil && *n.Slack >= min && *n.Slack <= max
	}
}

// ByClockDomain matches nodes assigned to the given clock domain.
func ByClockDomain(domain string) NodeFilter {
	return func(n *graph.Node) bool { return n.ClockDomain == domain }
}

// AndNodes composes filters by intersection.
func AndNodes(filters ...NodeFilter) NodeFilter {
	return func(n *graph.Node) bool {
		for _, f := range filters {
			if !f(n) {
				return false
			}
		}
		return true
	}
}

// ByRelation matches edges of the given relation type.
func ByRelation(r graph.RelationType) EdgeFilter {
	return func(e *graph.Edge) bool { return e.Relation == r }
}

// ByFlow matches edges of the given flow type.
func ByFlow(fl graph.FlowType) EdgeFilter {
	return func(e *graph.Edge) bool { return e.Flow == fl }
}

// AndEdges composes filters by intersection.
func AndEdges(filters ...EdgeFilter) EdgeFilter {
	return func(e *graph.Edge) bool {
		for _, f := range filters {
			if !f(e) {
				return false
			}
		}
		return true
	}
}
