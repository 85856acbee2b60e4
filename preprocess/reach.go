// Package preprocess implements the optional anchor-reach/shrink pass
// (spec §4.8): compute each vertex's BFS distance to the anchor, then
// delete vertices beyond a given radius to shrink the search before the
// line-graph/product pipeline runs.
package preprocess

import (
	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/orchestrator"
)

// reachWalker runs a single-source BFS over one graph, the same
// queue/visited shape as the teacher's bfs.walker, specialized so any
// anchor vertex is recorded at distance 0 regardless of when it's reached.
type reachWalker struct {
	graph     *molgraph.Graph
	anchorSet map[int]bool
	visited   []bool
	dist      map[int]int
	queue     []int
}

func newReachWalker(g *molgraph.Graph, anchors []int) *reachWalker {
	anchorSet := make(map[int]bool, len(anchors))
	for _, v := range anchors {
		anchorSet[v] = true
	}
	return &reachWalker{
		graph:     g,
		anchorSet: anchorSet,
		visited:   make([]bool, g.VertexCount()),
		dist:      make(map[int]int, g.VertexCount()),
	}
}

func (w *reachWalker) run(source int) map[int]int {
	w.visited[source] = true
	w.dist[source] = 0
	w.queue = append(w.queue, source)

	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for _, v := range w.graph.Neighbors(u) {
			if w.visited[v] {
				continue
			}
			w.visited[v] = true
			if w.anchorSet[v] {
				w.dist[v] = 0
			} else {
				w.dist[v] = w.dist[u] + 1
			}
			w.queue = append(w.queue, v)
		}
	}
	return w.dist
}

// AnchorReach computes, for every graph, a distance per vertex from one BFS
// seeded at the first anchor vertex of that graph: anchor vertices get 0 and
// every other vertex gets one more than the vertex it was discovered from.
// This is not always the distance to the nearest anchor vertex, since the
// BFS is single-source. It returns
// the smallest anchor diameter: the minimum, over graphs, of that graph's
// largest distance — the radius at which every graph still reaches every
// vertex a shrink could plausibly need.
func AnchorReach(graphs []*molgraph.Graph, anchor []orchestrator.Correspondence) ([]map[int]int, int, error) {
	if len(anchor) == 0 {
		return nil, 0, ErrEmptyAnchor
	}
	for _, c := range anchor {
		if len(c) != len(graphs) {
			return nil, 0, ErrGraphCountMismatch
		}
	}

	distMaps := make([]map[int]int, len(graphs))
	maxDistances := make([]int, len(graphs))

	for i, g := range graphs {
		anchorVertices, err := anchorVertexSet(g, anchor, i)
		if err != nil {
			return nil, 0, err
		}
		if len(anchorVertices) == 0 {
			return nil, 0, ErrEmptyAnchor
		}
		w := newReachWalker(g, anchorVertices)
		distMaps[i] = w.run(anchorVertices[0])

		max := 0
		for _, d := range distMaps[i] {
			if d > max {
				max = d
			}
		}
		maxDistances[i] = max
	}

	shortest := maxDistances[0]
	for _, d := range maxDistances[1:] {
		if d < shortest {
			shortest = d
		}
	}
	return distMaps, shortest, nil
}

func anchorVertexSet(g *molgraph.Graph, anchor []orchestrator.Correspondence, graphIdx int) ([]int, error) {
	seen := make(map[int]bool)
	var out []int
	for _, c := range anchor {
		e, err := g.Edge(c[graphIdx])
		if err != nil {
			return nil, err
		}
		for _, v := range [2]int{e.U, e.V} {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out, nil
}
