// Package mcesapi is the top-level programmatic surface over the engine
// packages: pairwise search, the multi-graph clique pipeline in both its
// single-round and iterative forms, anchor combinatorics, and the two
// preprocessing primitives, plus the error kinds and JSON result codec
// callers outside this module are expected to use (spec §6-§8).
package mcesapi

import "github.com/tklehn/gomces/orchestrator"

// EdgeID is an edge index into one specific molgraph.Graph.
type EdgeID = int

// EdgeTuple is one correspondence across every graph in a round: the i-th
// entry is the edge index in the i-th graph.
type EdgeTuple = orchestrator.Correspondence

// Anchor is a full anchor correspondence set, ready to seed AllProducts or
// Iterative.
type Anchor []EdgeTuple

// NodePair anchors one vertex of G to one vertex of H for PairwiseMCES.
type NodePair struct {
	G, H int
}

func (a Anchor) toCorrespondences() []orchestrator.Correspondence {
	out := make([]orchestrator.Correspondence, len(a))
	copy(out, a)
	return out
}

func fromCorrespondences(cs []orchestrator.Correspondence) Anchor {
	out := make(Anchor, len(cs))
	copy(out, cs)
	return out
}

func nodePairsToAnchorMap(pairs []NodePair) map[int]int {
	out := make(map[int]int, len(pairs))
	for _, p := range pairs {
		out[p.G] = p.H
	}
	return out
}
