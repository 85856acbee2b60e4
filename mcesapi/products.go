package mcesapi

import (
	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/orchestrator"
)

// AllProducts runs one round of the Levi/Barrow-Burstall clique pipeline
// across every graph in ls at once (spec §6 operation 2).
func AllProducts(ls []*molgraph.Graph, anchor Anchor, limitPG, molecule bool) ([][]EdgeTuple, error) {
	results, err := orchestrator.AllProducts(ls, anchor.toCorrespondences(), limitPG, molecule)
	if err != nil {
		return nil, invalidInput("AllProducts", err)
	}
	return toEdgeTupleLists(results), nil
}

// Iterative grows an accumulated maximum common edge subgraph one
// additional graph in ls at a time (spec §6 operation 3).
func Iterative(ls []*molgraph.Graph, anchor Anchor, limitPG, molecule bool) ([][]EdgeTuple, error) {
	results, err := orchestrator.Iterative(ls, anchor.toCorrespondences(), limitPG, molecule)
	if err != nil {
		return nil, invalidInput("Iterative", err)
	}
	return toEdgeTupleLists(results), nil
}

func toEdgeTupleLists(results [][]orchestrator.Correspondence) [][]EdgeTuple {
	out := make([][]EdgeTuple, len(results))
	for i, r := range results {
		out[i] = make([]EdgeTuple, len(r))
		copy(out[i], r)
	}
	return out
}
