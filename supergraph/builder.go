package supergraph

// Builder assembles a SuperGraph incrementally. It is the only way to
// construct or mutate SuperNode/SuperEdge structural fields. NewBuilder is
// exported; among non-test code in this module only package view calls it,
// so "structural fields mutable only from view" holds by convention.
type Builder struct {
	view    string
	context string

	superNodes map[string]*SuperNode
	superEdges map[string]*SuperEdge
	nodeToSup  map[string]string
}

// NewBuilder starts a fresh builder for the given (view, context) pair.
func NewBuilder(view, context string) *Builder {
	return &Builder{
		view:       view,
		context:    context,
		superNodes: make(map[string]*SuperNode),
		superEdges: make(map[string]*SuperEdge),
		nodeToSup:  make(map[string]string),
	}
}

// AddSuperNode registers a new SuperNode with the given id, class and
// member node ids. It panics if id is already registered: the Promote and
// Merge cycles must allocate disjoint SuperNode ids (the partition
// invariant, §4.7) and a collision indicates a builder-caller bug, not a
// recoverable runtime condition.
func (b *Builder) AddSuperNode(id string, class SuperClass, memberNodeIDs []string, attrs map[string]any) *SuperNode {
	if _, exists := b.superNodes[id]; exists {
		panic("supergraph: duplicate SuperNode id " + id)
	}
	members := make(map[string]struct{}, len(memberNodeIDs))
	for _, m := range memberNodeIDs {
		members[m] = struct{}{}
		b.nodeToSup[m] = id
	}
	sn := &SuperNode{
		id:         id,
		class:      class,
		members:    members,
		attributes: attrs,
		bundle:     make(Bundle),
	}
	b.superNodes[id] = sn
	return sn
}

// AddSuperEdge registers a new SuperEdge between two already-registered
// SuperNodes. It panics on a duplicate id or an unknown endpoint, both of
// which indicate a builder-caller bug (the edge-rewrite cycle must resolve
// endpoints to existing SuperNodes before calling this).
func (b *Builder) AddSuperEdge(id, from, to string, memberEdgeIDs []string, relHist, flowHist map[string]int, attrs map[string]any) *SuperEdge {
	if _, exists := b.superEdges[id]; exists {
		panic("supergraph: duplicate SuperEdge id " + id)
	}
	if _, ok := b.superNodes[from]; !ok {
		panic("supergraph: SuperEdge references unknown SuperNode " + from)
	}
	if _, ok := b.superNodes[to]; !ok {
		panic("supergraph: SuperEdge references unknown SuperNode " + to)
	}
	members := make(map[string]struct{}, len(memberEdgeIDs))
	for _, m := range memberEdgeIDs {
		members[m] = struct{}{}
	}
	se := &SuperEdge{
		id:         id,
		from:       from,
		to:         to,
		members:    members,
		relHist:    relHist,
		flowHist:   flowHist,
		attributes: attrs,
		bundle:     make(Bundle),
	}
	b.superEdges[id] = se
	return se
}

// SuperNode looks up a SuperNode already added to this builder, for
// callers (the Merge cycle, the edge rewrite pass) that need to read back
// what has been allocated so far.
func (b *Builder) SuperNode(id string) (*SuperNode, bool) {
	sn, ok := b.superNodes[id]
	return sn, ok
}

// SuperNodeOfMember returns the SuperNode id currently owning nodeID, if
// any has been registered yet.
func (b *Builder) SuperNodeOfMember(nodeID string) (string, bool) {
	id, ok := b.nodeToSup[nodeID]
	return id, ok
}

// SuperEdgeBetween returns an already-registered SuperEdge between from
// and to, if one exists, so the edge-rewrite pass can fold additional
// member edges into it instead of allocating a duplicate.
func (b *Builder) SuperEdgeBetween(from, to string) (*SuperEdge, bool) {
	for _, se := range b.superEdges {
		if se.from == from && se.to == to {
			return se, true
		}
	}
	return nil, false
}

// MergeMemberEdge folds an additional underlying edge id, relation name,
// and flow name into an already-registered SuperEdge.
func (b *Builder) MergeMemberEdge(superEdgeID, edgeID, relation, flow string) {
	se, ok := b.superEdges[superEdgeID]
	if !ok {
		panic("supergraph: MergeMemberEdge on unknown SuperEdge " + superEdgeID)
	}
	se.members[edgeID] = struct{}{}
	se.relHist[relation]++
	se.flowHist[flow]++
}

// Finish freezes the builder into an immutable SuperGraph, computing the
// adjacency indexes used by traversal-oriented queries.
func (b *Builder) Finish() *SuperGraph {
	g := &SuperGraph{
		view:        b.view,
		context:     b.context,
		superNodes:  b.superNodes,
		superEdges:  b.superEdges,
		nodeToSuper: b.nodeToSup,
		outAdj:      make(map[string]map[string]struct{}, len(b.superNodes)),
		inAdj:       make(map[string]map[string]struct{}, len(b.superNodes)),
	}
	for _, se := range b.superEdges {
		if g.outAdj[se.from] == nil {
			g.outAdj[se.from] = make(map[string]struct{})
		}
		g.outAdj[se.from][se.id] = struct{}{}
		if g.inAdj[se.to] == nil {
			g.inAdj[se.to] = make(map[string]struct{})
		}
		g.inAdj[se.to][se.id] = struct{}{}
	}
	return g
}
