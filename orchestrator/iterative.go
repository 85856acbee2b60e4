package orchestrator

import "github.com/tklehn/gomces/molgraph"

// frame is one pending branch of the iterative search: the running MCS graph
// built from graphs[0]'s edges, which graph index to extend into next, the
// correspondence accumulated so far (mapping[j] lists one edge per graph
// already processed), and the translation from an original graphs[0] edge
// index to its position in mcsGraph (mcsGraph's own edge index j always
// equals mapping[j]'s position, by construction of InducedSubgraph).
//
// An explicit stack replaces the teacher's closures-over-mutable-state shape
// (spec §9 "Nested closures") the same way mcgregor's depth variable does.
type frame struct {
	mcsGraph *molgraph.Graph
	toIndex  int
	mapping  []Correspondence
	g0Table  map[int]int
}

// Iterative grows a maximum common edge subgraph across every graph in
// graphs, starting from a 2-graph round between graphs[0] and graphs[1] and
// extending one additional graph at a time (spec §4.6). Only correspondences
// that strictly extend the anchor at every step survive; a branch that can't
// extend past some graph is dropped entirely, matching the reference. If no
// branch reaches the last graph, the anchor itself is returned.
func Iterative(graphs []*molgraph.Graph, anchor []Correspondence, limitPG, molecule bool) ([][]Correspondence, error) {
	if len(graphs) < 2 {
		return nil, ErrNoGraphs
	}
	if len(anchor) == 0 {
		return nil, ErrEmptyAnchor
	}
	anchorSize := len(anchor)
	for _, c := range anchor {
		if len(c) != len(graphs) {
			return nil, ErrAnchorArity
		}
	}

	startAnchor := make([]Correspondence, anchorSize)
	for i, c := range anchor {
		startAnchor[i] = Correspondence{c[0], c[1]}
	}

	rounds, err := AllProducts(graphs[:2], startAnchor, limitPG, molecule)
	if err != nil {
		return nil, err
	}

	var stack []frame
	for _, mapping := range rounds {
		if f, ok := buildFrame(graphs[0], mapping, anchorSize, 2); ok {
			stack = append(stack, f)
		}
	}

	var results [][]Correspondence
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.toIndex == len(graphs) {
			results = append(results, f.mapping)
			continue
		}

		roundAnchor := make([]Correspondence, anchorSize)
		for i := range roundAnchor {
			roundAnchor[i] = Correspondence{f.g0Table[anchor[i][0]], anchor[i][f.toIndex]}
		}

		sub, err := AllProducts([]*molgraph.Graph{f.mcsGraph, graphs[f.toIndex]}, roundAnchor, limitPG, molecule)
		if err != nil {
			return nil, err
		}

		var candidates []dedupCandidate
		for _, found := range sub {
			extended := make([]Correspondence, 0, len(found))
			carryEdges := make([]int, 0, len(found))
			for _, c := range found {
				mcsEdgeIdx, nextEdgeIdx := c[0], c[1]
				prior := f.mapping[mcsEdgeIdx]
				combined := append(append(Correspondence{}, prior...), nextEdgeIdx)
				extended = append(extended, combined)
				carryEdges = append(carryEdges, mcsEdgeIdx)
			}
			if len(extended) <= anchorSize {
				continue
			}
			nextGraph, _ := f.mcsGraph.InducedSubgraph(carryEdges)
			candidates = append(candidates, dedupCandidate{mapping: extended, graph: nextGraph})
		}

		// spec §4.6 step 2: collapse permutation-equal and (label-aware, in
		// molecule mode) isomorphic branches to one representative before
		// they recurse any further.
		for _, c := range dedupeCandidates(candidates, molecule) {
			table := make(map[int]int, len(c.mapping))
			for j, corr := range c.mapping {
				table[corr[0]] = j
			}
			stack = append(stack, frame{
				mcsGraph: c.graph,
				toIndex:  f.toIndex + 1,
				mapping:  c.mapping,
				g0Table:  table,
			})
		}
	}

	if len(results) == 0 {
		return [][]Correspondence{cloneAnchor(anchor)}, nil
	}
	return results, nil
}

// buildFrame validates that mapping strictly extends the anchor and builds
// the graphs[0]-induced subgraph for the first round, where mapping[j][0]
// already indexes graphs[0] directly.
func buildFrame(base *molgraph.Graph, mapping []Correspondence, anchorSize, toIndex int) (frame, bool) {
	if len(mapping) <= anchorSize {
		return frame{}, false
	}
	table := make(map[int]int, len(mapping))
	edgeIndices := make([]int, len(mapping))
	for j, c := range mapping {
		table[c[0]] = j
		edgeIndices[j] = c[0]
	}
	mcsGraph, _ := base.InducedSubgraph(edgeIndices)
	return frame{mcsGraph: mcsGraph, toIndex: toIndex, mapping: mapping, g0Table: table}, true
}
