package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/dkg/dkglog"
	"github.com/katalvlaran/dkg/dkgmetrics"
	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/supergraph"
	"go.uber.org/zap"
)

// Builder runs the three-cycle rewriter (§4.7) over a graph.Store. It holds
// no mutable state across calls to Build; a Builder value may be reused
// concurrently for independent Build calls.
type Builder struct {
	policies PolicyMap
	cfg      Config
	log      *zap.Logger
	metrics  *dkgmetrics.Registry
}

// Option configures a Builder at construction.
type Option func(*Builder)

func WithLogger(l *zap.Logger) Option { return func(b *Builder) { b.log = dkglog.OrNop(l) } }
func WithMetrics(m *dkgmetrics.Registry) Option {
	return func(b *Builder) { b.metrics = m }
}
func WithConfig(cfg Config) Option { return func(b *Builder) { b.cfg = cfg } }

// New constructs a Builder over the given policy map (use DefaultPolicyMap
// for the §4.7 exemplar).
func New(policies PolicyMap, opts ...Option) (*Builder, error) {
	b := &Builder{policies: policies, cfg: DefaultConfig(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

type nodeDecision struct {
	node      *graph.Node
	policy    NodePolicy
	superID   string // set once allocated (Promote/Merge); empty if Eliminate
}

// Build runs the full three-cycle rewrite for (v, c) over store, returning
// an immutable supergraph.SuperGraph. It checks ctx before the first cycle
// and between cycles, returning ErrInterrupted on cancellation; the
// edge-rewrite pass, once started, runs to completion without checking ctx.
func (b *Builder) Build(ctx context.Context, store *graph.Store, v View, c Context) (*supergraph.SuperGraph, error) {
	start := time.Now()
	defer func() { b.metrics.ObserveViewBuildSeconds(v.String(), c.String(), time.Since(start).Seconds()) }()

	decisions := make(map[string]*nodeDecision, store.NodeCount())
	for _, n := range store.Nodes() {
		base, ok := b.policies.Lookup(c, v, n.Class)
		if !ok {
			base = NodePolicy{Action: Eliminate, SuperClass: ClassEliminated}
		}
		decisions[n.ID] = &nodeDecision{node: n, policy: DynamicOverrides(c, n, base)}
	}

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}

	builder := supergraph.NewBuilder(v.String(), c.String())

	// Cycle 1: Promote.
	for _, d := range decisions {
		if d.policy.Action != Promote {
			continue
		}
		id := supergraph.HashMemberSet("sn", []string{d.node.ID})
		builder.AddSuperNode(id, toSuperClass(d.policy.SuperClass), []string{d.node.ID}, nil)
		d.superID = id
	}

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}

	// Cycle 2: Merge.
	b.runMergeCycle(store, decisions, builder)

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}

	// Cycle 3: Eliminate — nothing to allocate; decisions with
	// Action==Eliminate simply keep superID == "".

	if err := checkCancel(ctx); err != nil {
		return nil, err
	}

	// Cycle 4: edge rewrite.
	b.rewriteEdges(store, decisions, builder)

	return builder.Finish(), nil
}

func checkCancel(ctx context.Context) error {
	if ctx == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ErrInterrupted
	default:
		return nil
	}
}

func toSuperClass(n SuperClassName) supergraph.SuperClass {
	switch n {
	case ClassAtomic:
		return supergraph.Atomic
	case ClassModuleCluster:
		return supergraph.ModuleCluster
	case ClassCombinationalCloud:
		return supergraph.CombinationalCloud
	case ClassConstraintGroup:
		return supergraph.ConstraintGroup
	case ClassEliminated:
		return supergraph.Eliminated
	default:
		panic("view: unhandled SuperClassName variant")
	}
}

func (b *Builder) runMergeCycle(store *graph.Store, decisions map[string]*nodeDecision, builder *supergraph.Builder) {
	// Group Merge-policy nodes by their target SuperClass first, since each
	// target uses a different partition key (§4.7 step 2).
	byTarget := map[SuperClassName][]*nodeDecision{}
	for _, d := range decisions {
		if d.policy.Action != Merge {
			continue
		}
		byTarget[d.policy.SuperClass] = append(byTarget[d.policy.SuperClass], d)
	}

	for target, members := range byTarget {
		switch target {
		case ClassModuleCluster:
			b.mergeByParentHier(members, target, builder)
		case ClassCombinationalCloud:
			b.mergeByComponent(store, members, target, builder)
		case ClassConstraintGroup:
			b.mergeByConstraintGroup(members, target, builder)
		default:
			panic("view: unhandled Merge target SuperClass variant " + string(target))
		}
	}
}

func (b *Builder) mergeByParentHier(members []*nodeDecision, target SuperClassName, builder *supergraph.Builder) {
	groups := map[string][]*nodeDecision{}
	for _, d := range members {
		key := parentHier(d.node.HierPath)
		groups[key] = append(groups[key], d)
	}
	b.allocateGroups(groups, target, builder)
}

func (b *Builder) mergeByConstraintGroup(members []*nodeDecision, target SuperClassName, builder *supergraph.Builder) {
	groups := map[string][]*nodeDecision{}
	for _, d := range members {
		key := ""
		if v, ok := d.node.Attributes["constraint_group"]; ok {
			if s, ok := v.(string); ok {
				key = s
			}
		}
		if key == "" {
			if v, ok := d.node.Attributes["pblock"]; ok {
				if s, ok := v.(string); ok {
					key = "pblock:" + s
				}
			}
		}
		if key == "" {
			key = "ungrouped:" + d.node.ID
		}
		groups[key] = append(groups[key], d)
	}
	b.allocateGroups(groups, target, builder)
}

// mergeByComponent groups Merge-nodes targeting CombinationalCloud by the
// maximal connected component formed by Combinational-flow edges whose
// endpoints are both in members (§4.7 step 2).
func (b *Builder) mergeByComponent(store *graph.Store, members []*nodeDecision, target SuperClassName, builder *supergraph.Builder) {
	inSet := make(map[string]*nodeDecision, len(members))
	for _, d := range members {
		inSet[d.node.ID] = d
	}

	parent := make(map[string]string, len(members))
	var find func(string) string
	find = func(x string) string {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}
	union := func(x, y string) {
		rx, ry := find(x), find(y)
		if rx != ry {
			parent[rx] = ry
		}
	}
	for _, d := range members {
		parent[d.node.ID] = d.node.ID
	}
	for _, d := range members {
		for _, e := range store.OutEdges(d.node.ID) {
			if e.Flow != graph.Combinational {
				continue
			}
			if _, ok := inSet[e.To]; !ok {
				continue
			}
			union(d.node.ID, e.To)
		}
	}

	groups := map[string][]*nodeDecision{}
	for _, d := range members {
		root := find(d.node.ID)
		groups[root] = append(groups[root], d)
	}
	b.allocateGroups(groups, target, builder)
}

func (b *Builder) allocateGroups(groups map[string][]*nodeDecision, target SuperClassName, builder *supergraph.Builder) {
	for _, group := range groups {
		ids := make([]string, 0, len(group))
		for _, d := range group {
			ids = append(ids, d.node.ID)
		}
		sortStrings(ids)
		id := supergraph.HashMemberSet("sn", ids)
		builder.AddSuperNode(id, toSuperClass(target), ids, nil)
		for _, d := range group {
			d.superID = id
		}
	}
}

func parentHier(hier string) string {
	idx := strings.LastIndex(hier, "/")
	if idx < 0 {
		return ""
	}
	return hier[:idx]
}

func sortStrings(s []string) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// rewriteEdges implements §4.7 step 4: for every source edge, resolve both
// endpoints to SuperNodes (following eliminated passthrough chains up to
// cfg.PassthroughDepth), emit or fold into a SuperEdge, and drop self-loops
// and unresolvable edges.
func (b *Builder) rewriteEdges(store *graph.Store, decisions map[string]*nodeDecision, builder *supergraph.Builder) {
	for _, e := range store.Edges() {
		fromSuper, ok := resolveEndpoint(store, decisions, e.From, e.Relation, e.ID, b.cfg.PassthroughDepth)
		if !ok {
			b.log.Debug("dropping edge: unresolved source endpoint", zap.String("edge_id", e.ID))
			continue
		}
		toSuper, ok := resolveEndpoint(store, decisions, e.To, e.Relation, e.ID, b.cfg.PassthroughDepth)
		if !ok {
			b.log.Debug("dropping edge: unresolved destination endpoint", zap.String("edge_id", e.ID))
			continue
		}
		if fromSuper == toSuper {
			continue // self-loop on a SuperNode, dropped per §4.7
		}

		if se, exists := builder.SuperEdgeBetween(fromSuper, toSuper); exists {
			builder.MergeMemberEdge(se.ID(), e.ID, e.Relation.String(), e.Flow.String())
			continue
		}

		id := fmt.Sprintf("se_%s_%s_%s", fromSuper, toSuper, e.ID)
		builder.AddSuperEdge(id, fromSuper, toSuper, []string{e.ID},
			map[string]int{e.Relation.String(): 1},
			map[string]int{e.Flow.String(): 1},
			nil)
	}
}

// resolveEndpoint returns the SuperNode id that nodeID maps to, following
// eliminated passthrough chains along edges of the same relation type
// (excluding the originating edge) up to maxDepth hops.
func resolveEndpoint(store *graph.Store, decisions map[string]*nodeDecision, nodeID string, relation graph.RelationType, originalEdgeID string, maxDepth int) (string, bool) {
	visited := map[string]bool{}
	var walk func(id string, depth int) (string, bool)
	walk = func(id string, depth int) (string, bool) {
		d, ok := decisions[id]
		if !ok {
			return "", false
		}
		if d.superID != "" {
			return d.superID, true
		}
		if depth >= maxDepth || visited[id] {
			return "", false
		}
		visited[id] = true

		for _, e := range store.OutEdges(id) {
			if e.ID == originalEdgeID || e.Relation != relation {
				continue
			}
			if sid, ok := walk(e.To, depth+1); ok {
				return sid, true
			}
		}
		for _, e := range store.InEdges(id) {
			if e.ID == originalEdgeID || e.Relation != relation {
				continue
			}
			if sid, ok := walk(e.From, depth+1); ok {
				return sid, true
			}
		}
		return "", false
	}
	return walk(nodeID, 0)
}

// MajorityRelation returns the histogram's majority relation-type name,
// ties broken by §4.7's canonical order (Data > Clock > Reset > Parameter
// > Constraint > PhysicalMapping).
func MajorityRelation(hist map[string]int) string {
	best := ""
	bestCount := -1
	bestRank := -1
	for name, count := range hist {
		rank := relationRankOf(name)
		if count > bestCount || (count == bestCount && rank < bestRank) {
			best, bestCount, bestRank = name, count, rank
		}
	}
	return best
}

func relationRankOf(name string) int {
	order := []graph.RelationType{graph.Data, graph.Clock, graph.Reset, graph.Parameter, graph.Constraint, graph.PhysicalMapping}
	for _, r := range order {
		if r.String() == name {
			return graph.RelationRank(r)
		}
	}
	return 1 << 30
}
