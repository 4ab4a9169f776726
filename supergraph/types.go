package supergraph

import (
	"sort"

	"github.com/cespare/xxhash/v2"
)

// SuperClass tags the structural role a SuperNode plays, assigned by the
// View Builder's Promote/Merge cycles (§4.7).
type SuperClass int

const (
	Atomic SuperClass = iota
	ModuleCluster
	CombinationalCloud
	ConstraintGroup
	Eliminated
)

// String renders the canonical name of c. Every switch on SuperClass in
// this module is exhaustive and panics on an unhandled variant rather than
// silently falling through (§9).
func (c SuperClass) String() string {
	switch c {
	case Atomic:
		return "Atomic"
	case ModuleCluster:
		return "ModuleCluster"
	case CombinationalCloud:
		return "CombinationalCloud"
	case ConstraintGroup:
		return "ConstraintGroup"
	case Eliminated:
		return "Eliminated"
	default:
		panic("supergraph: unhandled SuperClass variant")
	}
}

// Bundle is a keyed map from an analysis kind (e.g. "Timing") to an
// immutable metrics value. Package analysis is the only writer; everything
// else treats it as read-only and never lets its contents influence
// structure (§9 "analysis bundles never influence structure").
type Bundle map[string]any

// Kinds returns the sorted set of analysis kinds currently attached.
func (b Bundle) Kinds() []string {
	out := make([]string, 0, len(b))
	for k := range b {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SuperNode is a structural abstraction over one or more underlying graph
// nodes, all mapped to the same super-class by a single View-Builder run.
type SuperNode struct {
	id         string
	class      SuperClass
	members    map[string]struct{} // member node IDs
	attributes map[string]any
	bundle     Bundle
}

// ID returns the SuperNode's deterministic id.
func (sn *SuperNode) ID() string { return sn.id }

// Class returns the SuperNode's super-class tag.
func (sn *SuperNode) Class() SuperClass { return sn.class }

// Members returns the sorted member node IDs. The returned slice is a copy.
func (sn *SuperNode) Members() []string {
	out := make([]string, 0, len(sn.members))
	for id := range sn.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// HasMember reports whether nodeID belongs to this SuperNode.
func (sn *SuperNode) HasMember(nodeID string) bool {
	_, ok := sn.members[nodeID]
	return ok
}

// Attribute returns an aggregated attribute by key.
func (sn *SuperNode) Attribute(key string) (any, bool) {
	v, ok := sn.attributes[key]
	return v, ok
}

// Bundle returns the SuperNode's current analysis bundle. Callers must not
// mutate the returned map; use package analysis to attach or replace kinds.
func (sn *SuperNode) Bundle() Bundle { return sn.bundle }

// SuperEdge is a structural abstraction over one or more underlying graph
// edges crossing the boundary between two SuperNodes.
type SuperEdge struct {
	id         string
	from       string // SuperNode id
	to         string // SuperNode id
	members    map[string]struct{} // member edge IDs
	relHist    map[string]int      // relation-type name -> count
	flowHist   map[string]int      // flow-type name -> count
	attributes map[string]any
	bundle     Bundle
}

func (se *SuperEdge) ID() string   { return se.id }
func (se *SuperEdge) From() string { return se.from }
func (se *SuperEdge) To() string   { return se.to }

// Members returns the sorted member edge IDs. The returned slice is a copy.
func (se *SuperEdge) Members() []string {
	out := make([]string, 0, len(se.members))
	for id := range se.members {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// RelationHistogram returns a copy of the aggregated relation-type counts.
func (se *SuperEdge) RelationHistogram() map[string]int {
	return copyIntMap(se.relHist)
}

// FlowHistogram returns a copy of the aggregated flow-type counts.
func (se *SuperEdge) FlowHistogram() map[string]int {
	return copyIntMap(se.flowHist)
}

// Attribute returns an aggregated attribute by key (e.g. "max_delay_decl").
func (se *SuperEdge) Attribute(key string) (any, bool) {
	v, ok := se.attributes[key]
	return v, ok
}

// Bundle returns the SuperEdge's current analysis bundle.
func (se *SuperEdge) Bundle() Bundle { return se.bundle }

func copyIntMap(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// SuperGraph is an immutable (view, context)-specific abstraction of a
// graph.Store snapshot, produced once by package view and never mutated in
// place: rebuilding a view always yields a fresh SuperGraph (§3
// "Lifecycle").
type SuperGraph struct {
	view    string
	context string

	superNodes map[string]*SuperNode
	superEdges map[string]*SuperEdge

	// nodeToSuper maps every member node id to its owning SuperNode id,
	// the inverse of SuperNode.Members, kept for O(1) supernode_of lookups.
	nodeToSuper map[string]string

	// outAdj/inAdj index SuperEdges by SuperNode endpoint for traversal.
	outAdj map[string]map[string]struct{}
	inAdj  map[string]map[string]struct{}
}

// View returns the view this SuperGraph was built for.
func (g *SuperGraph) View() string { return g.view }

// Context returns the context this SuperGraph was built for.
func (g *SuperGraph) Context() string { return g.context }

// SuperNode looks up a SuperNode by id.
func (g *SuperGraph) SuperNode(id string) (*SuperNode, bool) {
	sn, ok := g.superNodes[id]
	return sn, ok
}

// SuperEdge looks up a SuperEdge by id.
func (g *SuperGraph) SuperEdge(id string) (*SuperEdge, bool) {
	se, ok := g.superEdges[id]
	return se, ok
}

// SuperNodeOf returns the SuperNode owning nodeID, if any.
func (g *SuperGraph) SuperNodeOf(nodeID string) (*SuperNode, bool) {
	id, ok := g.nodeToSuper[nodeID]
	if !ok {
		return nil, false
	}
	return g.SuperNode(id)
}

// SuperNodes returns all SuperNodes sorted by id.
func (g *SuperGraph) SuperNodes() []*SuperNode {
	out := make([]*SuperNode, 0, len(g.superNodes))
	for _, sn := range g.superNodes {
		out = append(out, sn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// SuperEdges returns all SuperEdges sorted by id.
func (g *SuperGraph) SuperEdges() []*SuperEdge {
	out := make([]*SuperEdge, 0, len(g.superEdges))
	for _, se := range g.superEdges {
		out = append(out, se)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// OutEdges returns the SuperEdges leaving superNodeID, sorted by id.
func (g *SuperGraph) OutEdges(superNodeID string) []*SuperEdge {
	return g.adjEdges(g.outAdj, superNodeID)
}

// InEdges returns the SuperEdges entering superNodeID, sorted by id.
func (g *SuperGraph) InEdges(superNodeID string) []*SuperEdge {
	return g.adjEdges(g.inAdj, superNodeID)
}

func (g *SuperGraph) adjEdges(adj map[string]map[string]struct{}, superNodeID string) []*SuperEdge {
	ids := adj[superNodeID]
	out := make([]*SuperEdge, 0, len(ids))
	for id := range ids {
		out = append(out, g.superEdges[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// HashMemberSet computes the deterministic SuperNode id for a sorted set
// of member ids (package view builds SuperEdge ids from endpoint and edge
// ids instead), per §4.7's "stable id-generation scheme:
// SuperNode ids are a deterministic hash of the sorted member-node id
// set". xxhash/v2 is used rather than hash/maphash because maphash's seed
// is randomized per process and would break the byte-identical-rebuild
// guarantee (§8 invariant 7).
func HashMemberSet(prefix string, sortedMembers []string) string {
	h := xxhash.New()
	_, _ = h.WriteString(prefix)
	for _, m := range sortedMembers {
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(m)
	}
	return prefix + "_" + hexUint64(h.Sum64())
}

const hexDigits = "0123456789abcdef"

func hexUint64(v uint64) string {
	buf := make([]byte, 16)
	for i := 15; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}
