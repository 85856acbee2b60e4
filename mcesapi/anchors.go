package mcesapi

import (
	"github.com/tklehn/gomces/anchorenum"
	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/preprocess"
)

// EnumerateAnchors expands a seed anchor edge list into every full
// correspondence its edges' types permit (spec §6 operation 4). Unlabeled
// (non-molecule) input uses anchorenum.UnlabeledIdentityOnly, matching the
// reference's behavior of returning no extra combinatorics outside molecule
// mode; callers who want anchorenum.UnlabeledAllPermutations should call
// that package directly.
func EnumerateAnchors(ls []*molgraph.Graph, perGraphAnchors [][]EdgeID, molecule bool) ([]Anchor, error) {
	options, err := anchorenum.EnumerateAnchors(ls, perGraphAnchors, molecule, anchorenum.UnlabeledIdentityOnly)
	if err != nil {
		return nil, invalidInput("EnumerateAnchors", err)
	}
	out := make([]Anchor, len(options))
	for i, opt := range options {
		out[i] = fromCorrespondences(opt)
	}
	return out, nil
}

// AnchorReach computes, for every graph in ls, each vertex's BFS distance
// from the anchor (spec §6 operation 5), plus the minimum max-distance
// across graphs that preprocess.Shrink can safely use as a radius.
//
// Unlike SPEC_FULL.md §11's illustrative signature, this returns an error
// instead of silently accepting a malformed anchor: every other exported
// operation in this package does the same (§10.4), and a bad anchor here is
// exactly the kind of precondition violation InvalidInput exists for.
func AnchorReach(ls []*molgraph.Graph, a Anchor) ([]map[int]int, int, error) {
	dist, radius, err := preprocess.AnchorReach(ls, a.toCorrespondences())
	if err != nil {
		return nil, 0, invalidInput("AnchorReach", err)
	}
	return dist, radius, nil
}

// ShrinkGraphs drops every edge farther than radius from the anchor in each
// graph (spec §6 operation 6).
func ShrinkGraphs(ls []*molgraph.Graph, radius int, dist []map[int]int) ([]*molgraph.Graph, error) {
	shrunk, err := preprocess.Shrink(ls, radius, dist)
	if err != nil {
		return nil, invalidInput("ShrinkGraphs", err)
	}
	return shrunk, nil
}
