package molgraph

// AddEdge appends a new edge u-v (u != v) to the canonical edge sequence
// and returns its index. Endpoints are normalized so Edge.U < Edge.V;
// canonical order is insertion order, not endpoint order.
//
// Returns ErrInvalidVertex if either endpoint is out of range,
// ErrLoopNotAllowed if u == v, ErrDuplicateEdge if the pair already has an edge.
func (g *Graph) AddEdge(u, v int, bond BondType) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if u < 0 || u >= len(g.vertexAttrs) || v < 0 || v >= len(g.vertexAttrs) {
		return -1, ErrInvalidVertex
	}
	if u == v {
		return -1, ErrLoopNotAllowed
	}
	lo, hi := u, v
	if lo > hi {
		lo, hi = hi, lo
	}
	for _, eidx := range g.adjacency[lo] {
		e := g.edges[eidx]
		if (e.U == lo && e.V == hi) || (e.U == hi && e.V == lo) {
			return -1, ErrDuplicateEdge
		}
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Index: idx, U: lo, V: hi, BondType: bond})
	g.adjacency[lo] = append(g.adjacency[lo], idx)
	g.adjacency[hi] = append(g.adjacency[hi], idx)

	return idx, nil
}

// Edge returns a copy of the edge at canonical index idx.
func (g *Graph) Edge(idx int) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if idx < 0 || idx >= len(g.edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return g.edges[idx], nil
}

// Edges returns the canonical edge sequence (insertion order), as a copy.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// EdgeIndexOf returns the canonical index of edge (u,v) in either endpoint
// order, or ErrEdgeNotFound.
func (g *Graph) EdgeIndexOf(u, v int) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u < 0 || u >= len(g.adjacency) {
		return -1, ErrEdgeNotFound
	}
	for _, eidx := range g.adjacency[u] {
		e := g.edges[eidx]
		if (e.U == u && e.V == v) || (e.U == v && e.V == u) {
			return eidx, nil
		}
	}
	return -1, ErrEdgeNotFound
}

// HasEdge reports whether u-v is an edge.
func (g *Graph) HasEdge(u, v int) bool {
	_, err := g.EdgeIndexOf(u, v)
	return err == nil
}

// AreAdjacent is an alias for HasEdge, matching spec wording ("strictly adjacent").
func (g *Graph) AreAdjacent(u, v int) bool {
	return u != v && g.HasEdge(u, v)
}

// IsConnected reports whether the graph, treated as undirected, is a single
// connected component (or empty/singleton). Used by line-graph connectivity
// tests (spec §8 round-trip property).
func (g *Graph) IsConnected() bool {
	n := g.VertexCount()
	if n <= 1 {
		return true
	}
	visited := make([]bool, n)
	stack := []int{0}
	visited[0] = true
	count := 1
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nb := range g.Neighbors(top) {
			if !visited[nb] {
				visited[nb] = true
				count++
				stack = append(stack, nb)
			}
		}
	}
	return count == n
}
