package snapshot

import (
	goccyjson "github.com/goccy/go-json"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/provenance"
	"github.com/katalvlaran/dkg/updater"
)

// ProvenanceEntry is the persisted history for one (entity, field) pair:
// its full retained Ledger history, oldest first, plus the EntityKind
// needed to replay it through the right half of the Store.
type ProvenanceEntry struct {
	EntityID string              `json:"entity_id"`
	Kind     updater.EntityKind  `json:"kind"`
	Field    string              `json:"field"`
	History  []provenance.Record `json:"history"`
}

// Persisted is the §6 persisted-snapshot layout: enough to reconstruct a
// graph.Store and provenance.Ledger such that subsequent live writes are
// gated exactly as if the process had never restarted.
type Persisted struct {
	Nodes           []NodeView        `json:"nodes"`
	Edges           []EdgeView        `json:"edges"`
	Provenance      []ProvenanceEntry `json:"provenance"`
	CompletedStages []string          `json:"completed_stages"`
	Timestamp       string            `json:"timestamp"`
}

// Snapshot captures store and ledger's full state, plus the caller-supplied
// set of pipeline stages already completed, into a Persisted value. kindOf
// must report whether entityID names a node or an edge (callers typically
// wrap store.HasNode).
func Snapshot(store *graph.Store, ledger *provenance.Ledger, completedStages []provenance.Stage, kindOf func(entityID string) updater.EntityKind, timestamp string) Persisted {
	nodes := store.Nodes()
	edges := store.Edges()

	ps := Persisted{
		Nodes:     make([]NodeView, 0, len(nodes)),
		Edges:     make([]EdgeView, 0, len(edges)),
		Timestamp: timestamp,
	}
	for _, n := range nodes {
		ps.Nodes = append(ps.Nodes, NewNodeView(n))
	}
	for _, e := range edges {
		ps.Edges = append(ps.Edges, NewEdgeView(e))
	}
	for _, stage := range completedStages {
		ps.CompletedStages = append(ps.CompletedStages, stage.String())
	}
	for _, fk := range ledger.Fields() {
		ps.Provenance = append(ps.Provenance, ProvenanceEntry{
			EntityID: fk.EntityID,
			Kind:     kindOf(fk.EntityID),
			Field:    fk.Field,
			History:  ledger.History(fk.EntityID, fk.Field),
		})
	}
	return ps
}

// Marshal encodes ps using goccy/go-json.
func (ps Persisted) Marshal() ([]byte, error) {
	return goccyjson.Marshal(ps)
}

// Unmarshal decodes a Persisted value from data.
func Unmarshal(data []byte) (Persisted, error) {
	var ps Persisted
	if err := goccyjson.Unmarshal(data, &ps); err != nil {
		return Persisted{}, err
	}
	return ps, nil
}

// Restore rebuilds store's node/edge catalog from ps, then replays every
// provenance entry's history in sequence order through upd.RestoreField so
// that each field ends at the same precedence-winning value it held when
// ps was captured, and the ledger's history is preserved exactly (§6).
// store must be empty; upd must already wrap store's ledger.
func Restore(store *graph.Store, upd *updater.Updater, ps Persisted) error {
	for _, nv := range ps.Nodes {
		if err := store.AddNode(nodeFromView(nv)); err != nil {
			return err
		}
	}
	for _, ev := range ps.Edges {
		if err := store.AddEdge(edgeFromView(ev)); err != nil {
			return err
		}
	}
	for _, pe := range ps.Provenance {
		for _, rec := range pe.History {
			if err := upd.RestoreField(pe.Kind, pe.EntityID, pe.Field, rec); err != nil {
				return err
			}
		}
	}
	return nil
}

func nodeFromView(nv NodeView) *graph.Node {
	return &graph.Node{
		ID:         nv.ID,
		HierPath:   nv.HierPath,
		LocalName:  nv.LocalName,
		Class:      classFromString(nv.Class),
		Attributes: nv.Attributes,
	}
}

func edgeFromView(ev EdgeView) *graph.Edge {
	return &graph.Edge{
		ID:       ev.ID,
		From:     ev.From,
		To:       ev.To,
		Relation: relationFromString(ev.Relation),
		Flow:     flowFromString(ev.Flow),
	}
}
