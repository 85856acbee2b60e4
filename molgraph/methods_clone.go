package molgraph

// Clone returns a deep copy, independent of the receiver under mutation.
// Callers that must not mutate a caller-owned graph can work on the copy.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := &Graph{
		vertexAttrs: make([]VertexAttrs, len(g.vertexAttrs)),
		edges:       make([]Edge, len(g.edges)),
		adjacency:   make([][]int, len(g.adjacency)),
	}
	copy(out.vertexAttrs, g.vertexAttrs)
	copy(out.edges, g.edges)
	for i, adj := range g.adjacency {
		out.adjacency[i] = append([]int(nil), adj...)
	}

	return out
}

// InducedSubgraph builds the subgraph containing exactly the given edges
// (by canonical index) and their endpoints, renumbering vertices densely
// starting at 0 in ascending order of their original id. It returns the
// new graph and a map from original vertex id to new vertex id.
//
// Vertex and edge labels are inherited from the receiver (molecule mode).
func (g *Graph) InducedSubgraph(edgeIndices []int) (*Graph, map[int]int) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	vertexSet := make(map[int]struct{})
	for _, eidx := range edgeIndices {
		e := g.edges[eidx]
		vertexSet[e.U] = struct{}{}
		vertexSet[e.V] = struct{}{}
	}
	oldToNew := make(map[int]int, len(vertexSet))
	ordered := make([]int, 0, len(vertexSet))
	for v := range vertexSet {
		ordered = append(ordered, v)
	}
	sortInts(ordered)
	for newID, oldID := range ordered {
		oldToNew[oldID] = newID
	}

	out := New(len(ordered))
	for newID, oldID := range ordered {
		out.vertexAttrs[newID] = g.vertexAttrs[oldID]
	}
	for _, eidx := range edgeIndices {
		e := g.edges[eidx]
		_, _ = out.AddEdge(oldToNew[e.U], oldToNew[e.V], e.BondType)
	}

	return out, oldToNew
}
