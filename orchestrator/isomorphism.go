package orchestrator

import "github.com/tklehn/gomces/molgraph"

// isoEngine holds the search state for one graph-isomorphism attempt: a
// dedicated struct instead of closures over mutable state, the same shape
// the teacher's branch-and-bound search uses for its own backtracking.
type isoEngine struct {
	a, b     *molgraph.Graph
	molecule bool
	perm     []int // perm[i] is b's vertex assigned to a's vertex i, or -1
	used     []bool
}

// graphsIsomorphic reports whether a and b are isomorphic, matching vertex
// atom types and edge bond types when molecule is set (spec §4.6 step 2's
// "graph isomorphism of the induced subgraphs, label-aware in molecule
// mode"). Induced subgraphs produced during the iterative extension are
// small, so exhaustive backtracking is practical.
func graphsIsomorphic(a, b *molgraph.Graph, molecule bool) bool {
	n := a.VertexCount()
	if n != b.VertexCount() || a.EdgeCount() != b.EdgeCount() {
		return false
	}
	e := &isoEngine{
		a:        a,
		b:        b,
		molecule: molecule,
		perm:     make([]int, n),
		used:     make([]bool, n),
	}
	for i := range e.perm {
		e.perm[i] = -1
	}
	return e.search(0)
}

// search assigns a candidate b-vertex to a's vertex i, backtracking on
// conflict. The edges checked at each step are only those to a's
// already-assigned vertices, so a complete assignment guarantees every edge
// (and non-edge) in a corresponds to the same in b.
func (e *isoEngine) search(i int) bool {
	n := len(e.perm)
	if i == n {
		return true
	}
	for j := 0; j < n; j++ {
		if e.used[j] {
			continue
		}
		if !e.compatible(i, j) {
			continue
		}
		e.perm[i] = j
		e.used[j] = true
		if e.search(i + 1) {
			return true
		}
		e.used[j] = false
		e.perm[i] = -1
	}
	return false
}

// compatible reports whether assigning a's vertex i to b's vertex j is
// consistent with every assignment already made: vertex labels must match
// in molecule mode, and for every previously assigned k, the edge between
// i and k in a must mirror the edge between j and perm[k] in b, bond type
// included in molecule mode.
func (e *isoEngine) compatible(i, j int) bool {
	if e.molecule {
		aType, aOK := e.a.AtomTypeOf(i)
		bType, bOK := e.b.AtomTypeOf(j)
		if aOK != bOK || aType != bType {
			return false
		}
	}
	for k, bk := range e.perm {
		if bk < 0 {
			continue
		}
		aIdx, aHas := edgeIndexOrNone(e.a, i, k)
		bIdx, bHas := edgeIndexOrNone(e.b, j, bk)
		if aHas != bHas {
			return false
		}
		if !aHas {
			continue
		}
		if e.molecule {
			aEdge, _ := e.a.Edge(aIdx)
			bEdge, _ := e.b.Edge(bIdx)
			if aEdge.BondType != bEdge.BondType {
				return false
			}
		}
	}
	return true
}

func edgeIndexOrNone(g *molgraph.Graph, u, v int) (int, bool) {
	idx, err := g.EdgeIndexOf(u, v)
	if err != nil {
		return -1, false
	}
	return idx, true
}

// mappingSetKey canonicalizes one candidate mapping for permutation-equality
// dedup: two mapping lists that contain the same correspondences in a
// different order collapse to the same key (spec §4.6 step 2 equivalence (i)).
func mappingSetKey(mapping []Correspondence) string {
	sorted := make([]Correspondence, len(mapping))
	for i, c := range mapping {
		sorted[i] = c.clone()
	}
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && correspondenceLess(sorted[j], sorted[j-1]); j-- {
			sorted[j-1], sorted[j] = sorted[j], sorted[j-1]
		}
	}
	out := make([]byte, 0, len(sorted)*8)
	for i, c := range sorted {
		if i > 0 {
			out = append(out, ';')
		}
		for j, v := range c {
			if j > 0 {
				out = append(out, ',')
			}
			out = appendIntKey(out, v)
		}
	}
	return string(out)
}

func correspondenceLess(a, b Correspondence) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// dedupCandidate is one branch surviving into the next frame, paired with
// the standalone graph its mapping induces (the value graph isomorphism is
// checked against).
type dedupCandidate struct {
	mapping []Correspondence
	graph   *molgraph.Graph
}

// dedupeCandidates keeps one representative per equivalence class under
// spec §4.6 step 2's two equivalences, applied in order: exact
// permutation-equality first (cheap, exact), then label-aware graph
// isomorphism of the induced subgraphs (expensive, approximate class
// boundary). Order within a class is first-seen.
func dedupeCandidates(candidates []dedupCandidate, molecule bool) []dedupCandidate {
	seen := make(map[string]bool, len(candidates))
	var byPermutation []dedupCandidate
	for _, c := range candidates {
		key := mappingSetKey(c.mapping)
		if seen[key] {
			continue
		}
		seen[key] = true
		byPermutation = append(byPermutation, c)
	}

	var representatives []dedupCandidate
	for _, c := range byPermutation {
		isDuplicate := false
		for _, rep := range representatives {
			if graphsIsomorphic(c.graph, rep.graph, molecule) {
				isDuplicate = true
				break
			}
		}
		if !isDuplicate {
			representatives = append(representatives, c)
		}
	}
	return representatives
}
