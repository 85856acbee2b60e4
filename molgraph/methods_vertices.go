package molgraph

// SetAtomType labels vertex v with an AtomType (molecule mode). Returns
// ErrVertexNotFound if v is out of range.
func (g *Graph) SetAtomType(v int, t AtomType) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if v < 0 || v >= len(g.vertexAttrs) {
		return ErrVertexNotFound
	}
	g.vertexAttrs[v] = VertexAttrs{AtomType: t, HasAtomType: true}
	return nil
}

// AtomTypeOf returns the atom type of v and whether it was set.
func (g *Graph) AtomTypeOf(v int) (AtomType, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.vertexAttrs) {
		return "", false
	}
	a := g.vertexAttrs[v]
	return a.AtomType, a.HasAtomType
}

// Neighbors returns the sorted, deduplicated list of vertices adjacent to v.
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.adjacency) {
		return nil
	}
	seen := make(map[int]struct{}, len(g.adjacency[v]))
	out := make([]int, 0, len(g.adjacency[v]))
	for _, eidx := range g.adjacency[v] {
		e := g.edges[eidx]
		other := e.U
		if other == v {
			other = e.V
		}
		if _, ok := seen[other]; ok {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sortInts(out)
	return out
}

// IncidentEdges returns the canonical indices of edges incident to v, in
// ascending order.
func (g *Graph) IncidentEdges(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= len(g.adjacency) {
		return nil
	}
	out := make([]int, len(g.adjacency[v]))
	copy(out, g.adjacency[v])
	return out
}

// HasVertex reports whether v is within range.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return v >= 0 && v < len(g.vertexAttrs)
}

func sortInts(a []int) {
	// insertion sort: adjacency lists are small (bounded by max degree)
	for i := 1; i < len(a); i++ {
		for j := i; j > 0 && a[j-1] > a[j]; j-- {
			a[j-1], a[j] = a[j], a[j-1]
		}
	}
}
