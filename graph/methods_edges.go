package graph

// AddEdge inserts e into the Store. Both endpoints must already exist
// (ErrDanglingEndpoint otherwise, §4.1). An empty e.ID is ErrEmptyID; a
// colliding e.ID is ErrDuplicateID.
//
// The two class-dependent §3 endpoint invariants (a Clock relation must
// terminate on an IoPort-class sink and a SequentialLaunch flow must
// originate from a FlipFlop-class node) are NOT enforced here — that checking requires interpreting class
// semantics the Store itself is agnostic to, and is instead the ingest
// adapter's responsibility before it ever calls updater. The Store only
// enforces that both endpoints exist.
//
// Complexity: O(1) amortized.
func (s *Store) AddEdge(e *Edge) error {
	if e == nil || e.ID == "" {
		return ErrEmptyID
	}

	s.muNode.RLock()
	_, fromOK := s.nodes[e.From]
	_, toOK := s.nodes[e.To]
	s.muNode.RUnlock()
	if !fromOK || !toOK {
		return ErrDanglingEndpoint
	}

	s.muEdgeAdj.Lock()
	defer s.muEdgeAdj.Unlock()

	if _, exists := s.edges[e.ID]; exists {
		return ErrDuplicateID
	}

	s.edges[e.ID] = e
	if s.out[e.From] == nil {
		s.out[e.From] = make(map[string]map[string]struct{})
	}
	if s.in[e.To] == nil {
		s.in[e.To] = make(map[string]map[string]struct{})
	}
	s.out[e.From][e.To] = unionEdge(s.out[e.From][e.To], e.ID)
	s.in[e.To][e.From] = unionEdge(s.in[e.To][e.From], e.ID)

	if s.relIndex[e.Relation] == nil {
		s.relIndex[e.Relation] = make(map[string]struct{})
	}
	s.relIndex[e.Relation][e.ID] = struct{}{}

	return nil
}

func unionEdge(bucket map[string]struct{}, id string) map[string]struct{} {
	if bucket == nil {
		bucket = make(map[string]struct{})
	}
	bucket[id] = struct{}{}
	return bucket
}

// GetEdge returns the edge with the given ID, or (nil, false).
func (s *Store) GetEdge(id string) (*Edge, bool) {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	e, ok := s.edges[id]
	return e, ok
}

// EdgeCount returns the number of edges currently in the Store.
func (s *Store) EdgeCount() int {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	return len(s.edges)
}

// Edges returns every edge in the Store, in ascending ID order.
func (s *Store) Edges() []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(s.edges))
	for _, e := range s.edges {
		out = append(out, e)
	}
	sortEdgesByID(out)
	return out
}

// EdgesByRelation returns every edge of the given relation type, in
// ascending ID order.
func (s *Store) EdgesByRelation(r RelationType) []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	ids := s.relIndex[r]
	out := make([]*Edge, 0, len(ids))
	for id := range ids {
		out = append(out, s.edges[id])
	}
	sortEdgesByID(out)
	return out
}

// OutEdges returns the edges leaving id, in ascending ID order.
func (s *Store) OutEdges(id string) []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0)
	for _, bucket := range s.out[id] {
		for eid := range bucket {
			out = append(out, s.edges[eid])
		}
	}
	sortEdgesByID(out)
	return out
}

// InEdges returns the edges entering id, in ascending ID order.
func (s *Store) InEdges(id string) []*Edge {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0)
	for _, bucket := range s.in[id] {
		for eid := range bucket {
			out = append(out, s.edges[eid])
		}
	}
	sortEdgesByID(out)
	return out
}

// OutDegree returns len(OutEdges(id)) without allocating the slice.
func (s *Store) OutDegree(id string) int {
	s.muEdgeAdj.RLock()
	defer s.muEdgeAdj.RUnlock()
	n := 0
	for _, bucket := range s.out[id] {
		n += len(bucket)
	}
	return n
}
