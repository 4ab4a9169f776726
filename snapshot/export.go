package snapshot

import (
	goccyjson "github.com/goccy/go-json"

	"github.com/katalvlaran/dkg/graph"
	"github.com/katalvlaran/dkg/supergraph"
)

// Document is the top-level §6 export shape: the full node/edge catalog
// plus zero or more named SuperGraph views, keyed by "view/context" (e.g.
// "Connectivity/Design").
type Document struct {
	Nodes       []NodeView               `json:"nodes"`
	Edges       []EdgeView               `json:"edges"`
	SuperGraphs map[string]SuperGraphDoc `json:"super_graphs,omitempty"`
}

// SuperGraphDoc is one named SuperGraph's export rendering.
type SuperGraphDoc struct {
	View        string          `json:"view"`
	Context     string          `json:"context"`
	SuperNodes  []SuperNodeView `json:"super_nodes"`
	SuperEdges  []SuperEdgeView `json:"super_edges"`
}

// Export renders store's full catalog plus every supplied SuperGraph into
// a Document ready for marshaling. supergraphs may be nil or empty.
func Export(store *graph.Store, supergraphs ...*supergraph.SuperGraph) Document {
	nodes := store.Nodes()
	edges := store.Edges()

	doc := Document{
		Nodes: make([]NodeView, 0, len(nodes)),
		Edges: make([]EdgeView, 0, len(edges)),
	}
	for _, n := range nodes {
		doc.Nodes = append(doc.Nodes, NewNodeView(n))
	}
	for _, e := range edges {
		doc.Edges = append(doc.Edges, NewEdgeView(e))
	}
	if len(supergraphs) == 0 {
		return doc
	}

	doc.SuperGraphs = make(map[string]SuperGraphDoc, len(supergraphs))
	for _, sg := range supergraphs {
		key := sg.View() + "/" + sg.Context()
		sgd := SuperGraphDoc{View: sg.View(), Context: sg.Context()}
		for _, sn := range sg.SuperNodes() {
			sgd.SuperNodes = append(sgd.SuperNodes, NewSuperNodeView(sn))
		}
		for _, se := range sg.SuperEdges() {
			sgd.SuperEdges = append(sgd.SuperEdges, NewSuperEdgeView(se))
		}
		doc.SuperGraphs[key] = sgd
	}
	return doc
}

// Marshal encodes doc using goccy/go-json, a drop-in encoding/json
// replacement already used elsewhere in this corpus.
func Marshal(doc Document) ([]byte, error) {
	return goccyjson.Marshal(doc)
}
