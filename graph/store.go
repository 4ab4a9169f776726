package graph

import (
	"strings"
	"sync"
)

// Store is the in-memory Graph Store (§4.1). It holds the node and edge
// catalogs plus the indices needed to query them, and enforces only
// structural invariants (no duplicate IDs, no dangling endpoints, no
// dangling HierPath parents). It never arbitrates competing writes to the
// same field — that is updater's job, one layer up.
//
// muNode guards the node catalog and the class/prefix indices derived from
// it; muEdgeAdj guards the edge catalog, the adjacency maps, and the
// relation-type index. The split mirrors core.Graph's muVert/muEdgeAdj
// separation and exists for the same reason: node lookups should not block
// on edge-heavy operations and vice versa.
type Store struct {
	muNode sync.RWMutex
	nodes  map[string]*Node

	// children maps a hier_path to the set of node IDs whose HierPath has
	// it as an immediate parent segment; it is the prefix trie named in §4.1.
	children map[string]map[string]struct{}

	// classIndex maps an EntityClass to the set of node IDs in that class.
	classIndex map[EntityClass]map[string]struct{}

	muEdgeAdj sync.RWMutex
	edges     map[string]*Edge

	// out[from][to][edgeID], in[to][from][edgeID]: adjacency by direction.
	out map[string]map[string]map[string]struct{}
	in  map[string]map[string]map[string]struct{}

	// relIndex maps a RelationType to the set of edge IDs of that type.
	relIndex map[RelationType]map[string]struct{}
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		nodes:      make(map[string]*Node),
		children:   make(map[string]map[string]struct{}),
		classIndex: make(map[EntityClass]map[string]struct{}),
		edges:      make(map[string]*Edge),
		out:        make(map[string]map[string]map[string]struct{}),
		in:         make(map[string]map[string]map[string]struct{}),
		relIndex:   make(map[RelationType]map[string]struct{}),
	}
}

// parentHierPath returns the parent segment of a '/'-joined hier path, and
// whether one exists (the root has none).
func parentHierPath(hier string) (string, bool) {
	idx := strings.LastIndex(hier, "/")
	if idx < 0 {
		return "", false
	}
	return hier[:idx], true
}

func ensureSet(m map[string]map[string]struct{}, key string) map[string]struct{} {
	s, ok := m[key]
	if !ok {
		s = make(map[string]struct{})
		m[key] = s
	}
	return s
}
