package constraints

import (
	"github.com/gobwas/glob"

	"github.com/katalvlaran/dkg/graph"
)

// globCache compiles and caches glob patterns for the lifetime of a
// Projector, since the same pattern commonly recurs across a constraint
// file's records.
type globCache struct {
	compiled map[string]glob.Glob
}

func newGlobCache() *globCache {
	return &globCache{compiled: make(map[string]glob.Glob)}
}

func (c *globCache) compile(pattern string) (glob.Glob, error) {
	if g, ok := c.compiled[pattern]; ok {
		return g, nil
	}
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, err
	}
	c.compiled[pattern] = g
	return g, nil
}

// resolvePattern returns every node id matching pattern against
// hier_path, local_name, and canonical_name (checked in that order; a
// match against any is sufficient, §4.5). A pattern that matches nothing
// is reported via resolved=false rather than an error.
func (p *Projector) resolvePattern(pattern string) (ids []string, resolved bool) {
	g, err := p.globs.compile(pattern)
	if err != nil {
		return nil, false
	}
	for _, n := range p.store.Nodes() {
		if g.Match(n.HierPath) || g.Match(n.LocalName) || g.Match(canonicalNameOf(n)) {
			ids = append(ids, n.ID)
		}
	}
	return ids, len(ids) > 0
}

func canonicalNameOf(n *graph.Node) string {
	if n.Attributes == nil {
		return ""
	}
	if v, ok := n.Attributes["canonical_name"]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// resolveSet resolves every pattern in patterns, recording an
// UnresolvedPattern diagnostic for each pattern that matches nothing, and
// returns the union of matched node ids.
func (p *Projector) resolveSet(patterns []string, diag *Diagnostics) map[string]bool {
	out := make(map[string]bool)
	for _, pat := range patterns {
		ids, resolved := p.resolvePattern(pat)
		if !resolved {
			diag.Unresolved = append(diag.Unresolved, UnresolvedPattern{Pattern: pat})
			p.metrics.ObserveUnresolvedPattern()
			continue
		}
		for _, id := range ids {
			out[id] = true
		}
	}
	return out
}

// closureForward extends seeds by up to depth hops along
// Combinational/SequentialLaunch edges (§4.5 "edge selection by
// endpoints").
func (p *Projector) closureForward(seeds map[string]bool, depth int) map[string]bool {
	out := make(map[string]bool, len(seeds))
	for id := range seeds {
		out[id] = true
	}
	frontier := make([]string, 0, len(seeds))
	for id := range seeds {
		frontier = append(frontier, id)
	}
	for d := 0; d < depth; d++ {
		var next []string
		for _, id := range frontier {
			for _, e := range p.store.OutEdges(id) {
				if e.Flow != graph.Combinational && e.Flow != graph.SequentialLaunch {
					continue
				}
				if out[e.To] {
					continue
				}
				out[e.To] = true
				next = append(next, e.To)
			}
		}
		frontier = next
	}
	return out
}

// selectEdges implements §4.5's edge-selection-by-endpoints: edges whose
// source is in F (possibly extended by closureForward) and whose
// destination is in T.
func (p *Projector) selectEdges(from, to map[string]bool) []*graph.Edge {
	expandedFrom := p.closureForward(from, p.cfg.EndpointDepth)
	var out []*graph.Edge
	for _, e := range p.store.Edges() {
		if expandedFrom[e.From] && to[e.To] {
			out = append(out, e)
		}
	}
	return out
}
