package bluecomp

import (
	"sort"

	"github.com/tklehn/gomces/prodgraph"
)

// ExtendCliques trims each clique back to the part blue-reachable from
// anchor, then unions it with anchor (spec §4.4 step 2): for every clique,
// build the subgraph induced by anchor∪clique, BFS from anchor by blue edges
// alone, and keep only the clique members that BFS actually reached.
func ExtendCliques(p *prodgraph.Product, anchor []int, cliques [][]int) ([][]int, error) {
	if len(anchor) == 0 {
		return nil, ErrEmptyAnchor
	}

	out := make([][]int, 0, len(cliques))
	for _, clique := range cliques {
		union := append(append([]int{}, anchor...), clique...)
		w := newWalker(p, union)
		w.run(anchor[0])
		reached := toSet(w.blackNodes())

		result := append([]int{}, anchor...)
		for _, n := range clique {
			if reached[n] {
				result = append(result, n)
			}
		}
		sort.Ints(result)
		out = append(out, result)
	}
	return out, nil
}
