// Package linegraph builds L(G): the graph whose vertices are G's edges,
// adjacent iff the corresponding edges of G share an endpoint.
//
// Cost: spec.md allows substituting an endpoint-bucket index for the naive
// O(|E|^2) pairwise scan; this implementation uses the bucket index, since
// G's own adjacency lists already give each vertex's incident-edge set
// (molgraph.Graph.IncidentEdges).
package linegraph

import "github.com/tklehn/gomces/molgraph"

// VertexLabel is the molecule-mode label carried by an L(G) vertex: the
// unordered atom pair and bond type of the edge it represents in G.
type VertexLabel struct {
	AtomPair molgraph.AtomPair
	BondType molgraph.BondType
	Labeled  bool
}

// Graph is L(G): an underlying *molgraph.Graph over edge indices of G, plus
// the optional molecule-mode labels spec §3 assigns to each vertex.
type Graph struct {
	*molgraph.Graph
	Labels []VertexLabel // len == VertexCount(); Labels[i] describes edge i of G
}

// Build returns L(G). When molecule is true, each L(G) vertex additionally
// carries the unordered atom pair and bond type of its originating edge.
//
// Contract (spec §4.1): L(G) has exactly |E(G)| vertices named by the
// canonical edge index in G; vertex i is adjacent to vertex j iff edges i
// and j of G share an endpoint.
func Build(g *molgraph.Graph, molecule bool) *Graph {
	edges := g.Edges()
	underlying := molgraph.New(len(edges))
	labels := make([]VertexLabel, len(edges))

	if molecule {
		for i, e := range edges {
			au, _ := g.AtomTypeOf(e.U)
			av, _ := g.AtomTypeOf(e.V)
			labels[i] = VertexLabel{
				AtomPair: molgraph.AtomPair{A: au, B: av}.Normalize(),
				BondType: e.BondType,
				Labeled:  true,
			}
		}
	}

	// Bucket edges by endpoint: two edges are adjacent in L(G) iff they
	// co-occur in some vertex's incident-edge bucket.
	n := g.VertexCount()
	pairSeen := make(map[[2]int]struct{})
	for v := 0; v < n; v++ {
		bucket := g.IncidentEdges(v)
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				if a > b {
					a, b = b, a
				}
				if _, ok := pairSeen[[2]int{a, b}]; ok {
					continue
				}
				pairSeen[[2]int{a, b}] = struct{}{}
				_, _ = underlying.AddEdge(a, b, molgraph.BondNone)
			}
		}
	}

	return &Graph{Graph: underlying, Labels: labels}
}

// Label returns the molecule-mode label of line-graph vertex v.
func (lg *Graph) Label(v int) VertexLabel {
	if v < 0 || v >= len(lg.Labels) {
		return VertexLabel{}
	}
	return lg.Labels[v]
}

// AgreeOnLabel reports whether vertices u (in lg) and v (in other) carry the
// same atom pair and bond type; used by the molecule-mode product filter.
func AgreeOnLabel(lg *Graph, u int, other *Graph, v int) bool {
	a, b := lg.Label(u), other.Label(v)
	return a.Labeled == b.Labeled && (!a.Labeled || (a.AtomPair == b.AtomPair && a.BondType == b.BondType))
}
