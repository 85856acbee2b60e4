package anchorenum

import (
	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/orchestrator"
)

// group is one set of mutually-interchangeable anchor edges: perGraph[g]
// lists the edge indices in graphs[g] that carry this type, in discovery
// order. Every graph must contribute the same number of edges to a group.
type group struct {
	key      string
	perGraph [][]int
}

// EnumerateAnchors expands anchorEdges into every full correspondence its
// edges' types permit. anchorEdges[g] lists the canonical edge indices in
// graphs[g] designated as anchor candidates; anchorEdges[g][j] need not
// already correspond to anchorEdges[g'][j] for g != g' — molecule mode
// discovers which edges may correspond from atom/bond-type agreement.
func EnumerateAnchors(graphs []*molgraph.Graph, anchorEdges [][]int, molecule bool, mode UnlabeledMode) ([][]orchestrator.Correspondence, error) {
	if len(graphs) == 0 || len(anchorEdges) != len(graphs) {
		return nil, ErrGraphCountMismatch
	}
	k := len(graphs)
	n := len(anchorEdges[0])
	if n == 0 {
		return nil, ErrEmptyAnchorEdges
	}
	for _, edges := range anchorEdges {
		if len(edges) != n {
			return nil, ErrEdgeCountMismatch
		}
	}

	if !molecule {
		if mode == UnlabeledIdentityOnly {
			full := make([]orchestrator.Correspondence, n)
			for j := 0; j < n; j++ {
				c := make(orchestrator.Correspondence, k)
				for g := 0; g < k; g++ {
					c[g] = anchorEdges[g][j]
				}
				full[j] = c
			}
			return [][]orchestrator.Correspondence{full}, nil
		}
		return expandGroups([]group{{key: "unlabeled", perGraph: anchorEdges}}), nil
	}

	groups, err := moleculeGroups(graphs, anchorEdges)
	if err != nil {
		return nil, err
	}
	return expandGroups(groups), nil
}

// moleculeGroups partitions each graph's anchor edges by (atom-pair,
// bond-type), using graph 0 to fix the canonical set of types and the
// expected count per type (compute_anchor does the same: it builds
// n_edge_type_edges from graph 0 alone and indexes every other graph's
// dictionary by those keys).
func moleculeGroups(graphs []*molgraph.Graph, anchorEdges [][]int) ([]group, error) {
	k := len(graphs)
	perKey := make(map[string][][]int)
	var order []string

	for _, eidx := range anchorEdges[0] {
		key, err := edgeTypeKey(graphs[0], eidx)
		if err != nil {
			return nil, err
		}
		if _, ok := perKey[key]; !ok {
			perKey[key] = make([][]int, k)
			order = append(order, key)
		}
		perKey[key][0] = append(perKey[key][0], eidx)
	}

	for g := 1; g < k; g++ {
		for _, eidx := range anchorEdges[g] {
			key, err := edgeTypeKey(graphs[g], eidx)
			if err != nil {
				return nil, err
			}
			if _, ok := perKey[key]; !ok {
				return nil, ErrEdgeTypeMismatch
			}
			perKey[key][g] = append(perKey[key][g], eidx)
		}
	}

	groups := make([]group, 0, len(order))
	for _, key := range order {
		perGraph := perKey[key]
		n0 := len(perGraph[0])
		for g := 1; g < k; g++ {
			if len(perGraph[g]) != n0 {
				return nil, ErrEdgeTypeMismatch
			}
		}
		groups = append(groups, group{key: key, perGraph: perGraph})
	}
	return groups, nil
}

// edgeTypeKey identifies an anchor edge by its sorted atom-type pair and
// bond type, the same grouping compute_anchor uses to decide which edges
// are interchangeable across graphs.
func edgeTypeKey(g *molgraph.Graph, edgeIdx int) (string, error) {
	e, err := g.Edge(edgeIdx)
	if err != nil {
		return "", err
	}
	au, ok := g.AtomTypeOf(e.U)
	if !ok {
		return "", ErrUntypedVertex
	}
	av, ok := g.AtomTypeOf(e.V)
	if !ok {
		return "", ErrUntypedVertex
	}
	a, b := string(au), string(av)
	if a > b {
		a, b = b, a
	}
	return a + "|" + b + "|" + e.BondType.String(), nil
}

// expandGroups enumerates every bijection within each group independently,
// then takes the cartesian product across groups, mirroring compute_anchor's
// per-edge-type permutation product followed by a product over edge types.
func expandGroups(groups []group) [][]orchestrator.Correspondence {
	perGroupOptions := make([][][]orchestrator.Correspondence, len(groups))
	for gi, grp := range groups {
		perGroupOptions[gi] = groupOptions(grp)
	}

	sizes := make([]int, len(perGroupOptions))
	for i, opts := range perGroupOptions {
		sizes[i] = len(opts)
	}

	combos := productIndices(sizes)
	results := make([][]orchestrator.Correspondence, 0, len(combos))
	for _, combo := range combos {
		var full []orchestrator.Correspondence
		for gi, choice := range combo {
			full = append(full, perGroupOptions[gi][choice]...)
		}
		results = append(results, full)
	}
	return results
}

// groupOptions returns every bijective assignment of grp's n edges across
// its k graphs, one assignment per option, each option holding n
// correspondences (one per matched edge position).
func groupOptions(grp group) [][]orchestrator.Correspondence {
	k := len(grp.perGraph)
	n := len(grp.perGraph[0])

	permsPerGraph := make([][][]int, k)
	sizes := make([]int, k)
	for g := 0; g < k; g++ {
		permsPerGraph[g] = permutations(n)
		sizes[g] = len(permsPerGraph[g])
	}

	combos := productIndices(sizes)
	options := make([][]orchestrator.Correspondence, 0, len(combos))
	for _, combo := range combos {
		assignment := make([]orchestrator.Correspondence, n)
		for j := 0; j < n; j++ {
			c := make(orchestrator.Correspondence, k)
			for g := 0; g < k; g++ {
				perm := permsPerGraph[g][combo[g]]
				c[g] = grp.perGraph[g][perm[j]]
			}
			assignment[j] = c
		}
		options = append(options, assignment)
	}
	return options
}
