package prodgraph

import "github.com/tklehn/gomces/linegraph"

// BuildAnchorLimited computes the modular product restricted to tuples
// reachable from the anchor (spec §4.2 "Anchor-limited"):
//
//  1. Discard any candidate tuple that mixes anchor and non-anchor
//     coordinates (touches some anchor entry's coordinate in one dimension
//     without matching that same entry fully); pure anchor tuples survive.
//  2. In molecule mode, additionally drop survivors whose factors disagree
//     on atom pair or bond type.
//  3. For each surviving non-anchor tuple and each anchor tuple, add a
//     blue/red edge when the factors agree; this is also how a node
//     materializes in the product (an anchor tuple with zero compatible
//     neighbors never appears — spec §7 "Empty or degenerate product").
//  4. Among everything added in step 3, add the remaining internal edges
//     as in the unrestricted case.
func BuildAnchorLimited(factors []*linegraph.Graph, anchors []Tuple, molecule bool) *Product {
	p := &Product{
		Factors: factors,
		pos:     make(map[string]int),
		colors:  make(map[edgeKey]Color),
	}
	if len(anchors) == 0 {
		return p
	}
	k := len(factors)

	isAnchorTuple := make(map[string]bool, len(anchors))
	for _, a := range anchors {
		isAnchorTuple[a.key()] = true
	}
	// anchorCoordValues[i] = set of coordinate values appearing in dimension i
	// across every anchor entry.
	anchorCoordValues := make([]map[int]struct{}, k)
	for i := 0; i < k; i++ {
		anchorCoordValues[i] = make(map[int]struct{})
	}
	for _, a := range anchors {
		for i, v := range a {
			anchorCoordValues[i][v] = struct{}{}
		}
	}

	survivors := make([]Tuple, 0)
	for _, t := range cartesianProduct(factors) {
		touchesAnchor := false
		for i, v := range t {
			if _, ok := anchorCoordValues[i][v]; ok {
				touchesAnchor = true
				break
			}
		}
		if touchesAnchor {
			if !isAnchorTuple[t.key()] {
				continue // mixed anchor / non-anchor coordinates: discard
			}
			// a pure anchor tuple is handled by the anchor loop below, not
			// re-added here as a "survivor".
			continue
		}
		if molecule && !agreeOnLabels(factors, t) {
			continue
		}
		survivors = append(survivors, t)
	}

	// Step 3: connect every survivor to every anchor tuple. A tuple (anchor
	// or survivor) only materializes as a node once it is an endpoint of an
	// actual edge, mirroring the reference implementation's node-via-edge
	// semantics so a disconnected anchor yields a genuinely empty product.
	for _, v := range survivors {
		for _, a := range anchors {
			if c, ok := colorBetween(factors, v, a); ok {
				vIdx := p.addNodeLazy(v)
				aIdx := p.addNodeLazy(a)
				p.addEdge(vIdx, aIdx, c)
			}
		}
	}

	// Step 4: internal edges among everything materialized so far.
	for i := 0; i < len(p.Nodes); i++ {
		for j := i + 1; j < len(p.Nodes); j++ {
			a, b := p.Nodes[i], p.Nodes[j]
			if hasCommonCoordinate(a, b) {
				continue
			}
			if _, already := p.ColorOf(i, j); already {
				continue
			}
			if c, ok := colorBetween(factors, a, b); ok {
				p.addEdge(i, j, c)
			}
		}
	}

	return p
}

// addNodeLazy registers tuple t if absent and returns its position, without
// implying the node is "in" the graph until an edge references it; callers
// that never call addEdge for a lazily-added node leave it unreferenced by
// any edge, which downstream code treats identically to absence.
func (p *Product) addNodeLazy(t Tuple) int {
	return p.addNode(t)
}

// AnchorPositions returns the positions of the given anchor tuples that
// were actually materialized (connected by at least one edge, or the sole
// surviving node in a degenerate empty-product case the caller handles
// separately).
func (p *Product) AnchorPositions(anchors []Tuple) []int {
	out := make([]int, 0, len(anchors))
	for _, a := range anchors {
		if idx, ok := p.pos[a.key()]; ok {
			out = append(out, idx)
		}
	}
	return out
}
