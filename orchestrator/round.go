package orchestrator

import (
	"github.com/tklehn/gomces/bluecomp"
	"github.com/tklehn/gomces/linegraph"
	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/prodgraph"
)

// AllProducts runs one pass of the Levi/Barrow-Burstall clique pipeline over
// every graph in graphs at once: build each line graph, form the modular
// product (restricted to the anchor's neighbourhood when limitPG is set),
// filter it down to the blue-reachable part, enumerate maximal cliques, and
// trim each clique to what the anchor can actually reach (spec §4.2-§4.4).
//
// Returns anchor unchanged, per spec §7 "Empty or degenerate product", when
// the product has no non-anchor vertices at all.
func AllProducts(graphs []*molgraph.Graph, anchor []Correspondence, limitPG, molecule bool) ([][]Correspondence, error) {
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}
	if len(anchor) == 0 {
		return nil, ErrEmptyAnchor
	}
	k := len(graphs)

	lgs := make([]*linegraph.Graph, k)
	for i, g := range graphs {
		lgs[i] = linegraph.Build(g, molecule)
	}

	anchorTuples := make([]prodgraph.Tuple, len(anchor))
	for i, c := range anchor {
		if len(c) != k {
			return nil, ErrAnchorArity
		}
		anchorTuples[i] = prodgraph.Tuple(c.clone())
	}

	var product *prodgraph.Product
	if limitPG {
		product = prodgraph.BuildAnchorLimited(lgs, anchorTuples, molecule)
	} else {
		product = prodgraph.BuildUnrestricted(lgs)
	}

	if len(product.Nodes) == 0 || onlyAnchorNodes(product, anchorTuples) {
		return [][]Correspondence{cloneAnchor(anchor)}, nil
	}

	anchorPositions := make([]int, 0, len(anchorTuples))
	for _, t := range anchorTuples {
		if idx := product.IndexOf(t); idx >= 0 {
			anchorPositions = append(anchorPositions, idx)
		}
	}
	if len(anchorPositions) == 0 {
		return [][]Correspondence{cloneAnchor(anchor)}, nil
	}

	components, err := bluecomp.FilterComponents(product, anchorPositions)
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return [][]Correspondence{cloneAnchor(anchor)}, nil
	}

	union := make([]int, 0)
	for _, c := range components {
		union = append(union, c...)
	}
	cliques := bluecomp.MaximalCliques(product, union)

	extended, err := bluecomp.ExtendCliques(product, anchorPositions, cliques)
	if err != nil {
		return nil, err
	}

	out := make([][]Correspondence, 0, len(extended))
	for _, positions := range extended {
		mapping := make([]Correspondence, 0, len(positions))
		for _, pos := range positions {
			t := product.Nodes[pos]
			mapping = append(mapping, Correspondence(append([]int(nil), t...)))
		}
		out = append(out, mapping)
	}
	return out, nil
}

// onlyAnchorNodes reports whether every node in the product is an anchor
// tuple (the "anchor is only one node and N is empty" case spec §7 names).
func onlyAnchorNodes(p *prodgraph.Product, anchor []prodgraph.Tuple) bool {
	if len(p.Nodes) != len(anchor) {
		return false
	}
	anchorSet := make(map[string]bool, len(anchor))
	for _, t := range anchor {
		anchorSet[tupleKey(t)] = true
	}
	for _, n := range p.Nodes {
		if !anchorSet[tupleKey(n)] {
			return false
		}
	}
	return true
}

func tupleKey(t prodgraph.Tuple) string {
	// Positional equality suffices here: tuples are fixed-arity and callers
	// never compare across differently-sized products.
	out := make([]byte, 0, len(t)*5)
	for i, v := range t {
		if i > 0 {
			out = append(out, '|')
		}
		out = appendIntKey(out, v)
	}
	return string(out)
}

func appendIntKey(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	neg := v < 0
	if neg {
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	if neg {
		buf = append(buf, '-')
	}
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func cloneAnchor(anchor []Correspondence) []Correspondence {
	out := make([]Correspondence, len(anchor))
	for i, c := range anchor {
		out[i] = c.clone()
	}
	return out
}
