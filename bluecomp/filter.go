// Package bluecomp implements the blue-component filter and maximal-clique
// extender the Levi/Barrow-Burstall algorithm runs over a modular product
// graph (spec §4.3, §4.4): given an anchor, find the part of the product
// reachable from it by blue edges alone, partition that reach into connected
// components, enumerate maximal cliques within their union, and trim each
// clique back down to what the anchor can actually reach by blue edges.
package bluecomp

import (
	"sort"

	"github.com/tklehn/gomces/prodgraph"
)

// FilterComponents computes the blue-connected components of the common
// blue/red neighbourhood of anchor, restricted to the part reachable from
// anchor by blue edges alone (spec §4.3). Returns nil, nil if nothing in the
// neighbourhood is blue-reachable — the caller's degenerate case, where the
// anchor itself is the whole answer.
func FilterComponents(p *prodgraph.Product, anchor []int) ([][]int, error) {
	if len(anchor) == 0 {
		return nil, ErrEmptyAnchor
	}

	n := commonNeighbors(p, anchor)

	w := newWalker(p, append(append([]int{}, anchor...), n...))
	w.run(anchor[0])
	reached := toSet(w.blackNodes())

	filteredN := make([]int, 0, len(n))
	for _, node := range n {
		if reached[node] {
			filteredN = append(filteredN, node)
		}
	}
	if len(filteredN) == 0 {
		return nil, nil
	}

	return blueComponents(p, filteredN), nil
}

// commonNeighbors returns the positions adjacent (by either color) to every
// node in anchor.
func commonNeighbors(p *prodgraph.Product, anchor []int) []int {
	common := toSet(p.Neighbors(anchor[0]))
	for _, a := range anchor[1:] {
		next := toSet(p.Neighbors(a))
		for node := range common {
			if !next[node] {
				delete(common, node)
			}
		}
	}
	out := make([]int, 0, len(common))
	for node := range common {
		out = append(out, node)
	}
	sort.Ints(out)
	return out
}

// blueComponents partitions filteredN into disjoint blue-connected
// components: repeatedly seed a BFS from whichever node is still unclaimed.
func blueComponents(p *prodgraph.Product, filteredN []int) [][]int {
	sorted := append([]int(nil), filteredN...)
	sort.Ints(sorted)

	colors := make(map[int]paletteColor, len(p.Nodes))
	for i := range p.Nodes {
		colors[i] = Poison
	}
	for _, n := range sorted {
		colors[n] = White
	}

	pending := sorted
	var components [][]int
	for len(pending) > 0 {
		source := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if colors[source] != White {
			continue
		}

		component := []int{source}
		colors[source] = Gray
		queue := []int{source}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, v := range p.Neighbors(u) {
				if colors[v] != White {
					continue
				}
				if c, ok := p.ColorOf(u, v); !ok || c != prodgraph.Blue {
					continue
				}
				colors[v] = Gray
				component = append(component, v)
				queue = append(queue, v)
			}
			colors[u] = Black
		}
		components = append(components, component)
	}
	return components
}

func toSet(nodes []int) map[int]bool {
	out := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		out[n] = true
	}
	return out
}
