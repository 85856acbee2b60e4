package prodgraph

import "github.com/tklehn/gomces/linegraph"

// BuildUnrestricted computes the modular product over every k-tuple drawn
// from the factor graphs (spec §4.2 "Unrestricted"). Cost is
// O(Π|V(Li)|^2); callers with more than a handful of small factors should
// prefer BuildAnchorLimited.
func BuildUnrestricted(factors []*linegraph.Graph) *Product {
	p := &Product{
		Factors: factors,
		pos:     make(map[string]int),
		colors:  make(map[edgeKey]Color),
	}

	nodes := cartesianProduct(factors)
	for _, t := range nodes {
		p.addNode(t)
	}

	for i := 0; i < len(p.Nodes); i++ {
		for j := i + 1; j < len(p.Nodes); j++ {
			a, b := p.Nodes[i], p.Nodes[j]
			if hasCommonCoordinate(a, b) {
				continue
			}
			if c, ok := colorBetween(factors, a, b); ok {
				p.addEdge(i, j, c)
			}
		}
	}

	return p
}

// cartesianProduct enumerates all tuples (v1,...,vk), vi in 0..|V(Li)|-1,
// in lexicographic order.
func cartesianProduct(factors []*linegraph.Graph) []Tuple {
	k := len(factors)
	sizes := make([]int, k)
	total := 1
	for i, f := range factors {
		sizes[i] = f.VertexCount()
		total *= sizes[i]
	}
	if k == 0 || total == 0 {
		return nil
	}

	out := make([]Tuple, 0, total)
	idx := make([]int, k)
	for {
		t := make(Tuple, k)
		copy(t, idx)
		out = append(out, t)

		pos := k - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < sizes[pos] {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	return out
}
