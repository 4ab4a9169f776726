package query

import (
	"sort"

	"github.com/katalvlaran/dkg/analysis"
	"github.com/katalvlaran/dkg/supergraph"
)

// FindSuperNodes returns every SuperNode in sg matching the optional
// super-class and has-timing filters, sorted by id. A nil superClass
// matches any class; hasTiming, when non-nil, further filters by whether
// a Timing analysis bundle is currently attached.
func FindSuperNodes(sg *supergraph.SuperGraph, superClass *supergraph.SuperClass, hasTiming *bool) []*supergraph.SuperNode {
	var out []*supergraph.SuperNode
	for _, sn := range sg.SuperNodes() {
		if superClass != nil && sn.Class() != *superClass {
			continue
		}
		if hasTiming != nil {
			_, has := analysis.Get(sn, analysis.Timing)
			if has != *hasTiming {
				continue
			}
		}
		out = append(out, sn)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// SupernodeOf returns the SuperNode owning nodeID in sg, if any.
func SupernodeOf(sg *supergraph.SuperGraph, nodeID string) (*supergraph.SuperNode, bool) {
	return sg.SuperNodeOf(nodeID)
}
