package mcesapi

import (
	"github.com/tklehn/gomces/mcgregor"
	"github.com/tklehn/gomces/molgraph"
)

// PairwiseMCES runs the McGregor backtracking search between g and h (spec
// §6 operation 1), anchoring the vertex pairs in anchor before search
// begins. Returns every solution tied for the largest arcsleft reached.
func PairwiseMCES(g, h *molgraph.Graph, anchor []NodePair, molecule bool) ([]mcgregor.Solution, error) {
	opts := []mcgregor.Option{mcgregor.WithMolecule(molecule)}
	if len(anchor) > 0 {
		opts = append(opts, mcgregor.WithAnchor(nodePairsToAnchorMap(anchor)))
	}

	engine, err := mcgregor.New(g, h, opts...)
	if err != nil {
		return nil, invalidInput("PairwiseMCES", err)
	}
	return engine.Run()
}
