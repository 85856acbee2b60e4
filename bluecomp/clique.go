package bluecomp

import (
	"sort"

	"github.com/tklehn/gomces/prodgraph"
)

// MaximalCliques enumerates every maximal clique in the subgraph of p
// induced by nodes, edges of either color counting as adjacency (spec §4.4
// step 1: "create node induced subgraph... find_cliques"). Bron-Kerbosch
// with pivoting, grounded on the classic formulation; the teacher's own
// packages have no clique enumerator to adapt.
func MaximalCliques(p *prodgraph.Product, nodes []int) [][]int {
	adj := inducedAdjacency(p, nodes)

	r := []int{}
	x := make(map[int]bool)
	px := toSet(nodes)

	var cliques [][]int
	bronKerbosch(adj, r, px, x, &cliques)
	return cliques
}

func inducedAdjacency(p *prodgraph.Product, nodes []int) map[int]map[int]bool {
	set := toSet(nodes)
	adj := make(map[int]map[int]bool, len(nodes))
	for _, n := range nodes {
		adj[n] = make(map[int]bool)
	}
	for _, n := range nodes {
		for _, nb := range p.Neighbors(n) {
			if set[nb] {
				adj[n][nb] = true
			}
		}
	}
	return adj
}

// bronKerbosch is the classic Bron-Kerbosch algorithm with pivoting over an
// explicit adjacency map: R is the clique built so far, P the candidates
// still eligible to extend it, X the candidates already excluded.
func bronKerbosch(adj map[int]map[int]bool, r []int, p, x map[int]bool, out *[][]int) {
	if len(p) == 0 && len(x) == 0 {
		if len(r) > 0 {
			clique := append([]int(nil), r...)
			sort.Ints(clique)
			*out = append(*out, clique)
		}
		return
	}

	pivot := choosePivot(p, x)
	candidates := make([]int, 0, len(p))
	for v := range p {
		if !adj[pivot][v] {
			candidates = append(candidates, v)
		}
	}
	sort.Ints(candidates)

	for _, v := range candidates {
		neighbors := adj[v]
		newP := intersectNeighbors(p, neighbors)
		newX := intersectNeighbors(x, neighbors)
		bronKerbosch(adj, append(r, v), newP, newX, out)

		delete(p, v)
		x[v] = true
	}
}

func choosePivot(p, x map[int]bool) int {
	for v := range p {
		return v
	}
	for v := range x {
		return v
	}
	return -1
}

func intersectNeighbors(set, neighbors map[int]bool) map[int]bool {
	out := make(map[int]bool)
	for v := range set {
		if neighbors[v] {
			out[v] = true
		}
	}
	return out
}
