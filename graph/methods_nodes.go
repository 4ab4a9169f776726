package graph

// AddNode inserts n into the Store. It fails with ErrEmptyID if n.ID is
// empty, ErrDuplicateID if the ID is already present, and ErrInvalidHierPath
// if n.HierPath names a parent segment that is not itself a node ID already
// in the Store (§3: "every prefix is itself a node id"). A parent that is a
// single root segment (the "top" of "top/ff1") need not be a node.
//
// Complexity: O(1) amortized.
func (s *Store) AddNode(n *Node) error {
	if n == nil || n.ID == "" {
		return ErrEmptyID
	}

	s.muNode.Lock()
	defer s.muNode.Unlock()

	if _, exists := s.nodes[n.ID]; exists {
		return ErrDuplicateID
	}

	if parent, ok := parentHierPath(n.HierPath); ok {
		// The root segment itself is exempt: only nested parents must exist.
		if _, nested := parentHierPath(parent); nested {
			if _, exists := s.nodes[parent]; !exists {
				return ErrInvalidHierPath
			}
		}
	}

	s.nodes[n.ID] = n
	if parent, ok := parentHierPath(n.HierPath); ok {
		ensureSet(s.children, parent)[n.ID] = struct{}{}
	}
	if s.classIndex[n.Class] == nil {
		s.classIndex[n.Class] = make(map[string]struct{})
	}
	s.classIndex[n.Class][n.ID] = struct{}{}

	return nil
}

// GetNode returns the node with the given ID, or (nil, false).
func (s *Store) GetNode(id string) (*Node, bool) {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	n, ok := s.nodes[id]
	return n, ok
}

// HasNode reports whether id is present.
func (s *Store) HasNode(id string) bool {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	_, ok := s.nodes[id]
	return ok
}

// NodeCount returns the number of nodes currently in the Store.
func (s *Store) NodeCount() int {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	return len(s.nodes)
}

// Nodes returns every node in the Store, in ascending ID order (deterministic
// iteration, mirroring core.Graph.Vertices()).
func (s *Store) Nodes() []*Node {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	out := make([]*Node, 0, len(s.nodes))
	for _, n := range s.nodes {
		out = append(out, n)
	}
	sortNodesByID(out)
	return out
}

// NodesByClass returns every node of the given class, in ascending ID order.
func (s *Store) NodesByClass(class EntityClass) []*Node {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	ids := s.classIndex[class]
	out := make([]*Node, 0, len(ids))
	for id := range ids {
		out = append(out, s.nodes[id])
	}
	sortNodesByID(out)
	return out
}

// NodesByHierPrefix returns every node whose HierPath is exactly prefix or a
// descendant of it, in ascending ID order.
func (s *Store) NodesByHierPrefix(prefix string) []*Node {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	out := make([]*Node, 0)
	for _, n := range s.nodes {
		if n.HierPath == prefix || hasHierPrefix(n.HierPath, prefix) {
			out = append(out, n)
		}
	}
	sortNodesByID(out)
	return out
}

// ChildrenOf returns the node IDs whose HierPath has parent as its immediate
// parent segment (one trie level, not the full subtree).
func (s *Store) ChildrenOf(parent string) []string {
	s.muNode.RLock()
	defer s.muNode.RUnlock()
	ids := s.children[parent]
	out := make([]string, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sortStrings(out)
	return out
}

func hasHierPrefix(hier, prefix string) bool {
	if len(hier) <= len(prefix) {
		return false
	}
	return hier[:len(prefix)] == prefix && hier[len(prefix)] == '/'
}
