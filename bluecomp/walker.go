package bluecomp

import (
	"sort"

	"github.com/tklehn/gomces/prodgraph"
)

// walker carries blue-only BFS state over a product graph: every node starts
// Poison (out of scope for this traversal) except the ones explicitly seeded
// White, mirroring the teacher's queue-driven walker shape (bfs.walker) with
// the palette doing the job the teacher's visited map does.
type walker struct {
	p      *prodgraph.Product
	colors map[int]paletteColor
	queue  []int
}

func newWalker(p *prodgraph.Product, whitelist []int) *walker {
	colors := make(map[int]paletteColor, len(p.Nodes))
	for i := range p.Nodes {
		colors[i] = Poison
	}
	for _, n := range whitelist {
		colors[n] = White
	}
	return &walker{p: p, colors: colors}
}

func (w *walker) enqueue(n int) {
	w.colors[n] = Gray
	w.queue = append(w.queue, n)
}

// run performs blue-only BFS from source, visiting only nodes previously
// seeded White. Nodes reached end up Black; anything left White or Poison
// was never reached.
func (w *walker) run(source int) {
	if w.colors[source] != White {
		return
	}
	w.enqueue(source)
	for len(w.queue) > 0 {
		u := w.queue[0]
		w.queue = w.queue[1:]
		for _, v := range w.p.Neighbors(u) {
			if w.colors[v] != White {
				continue
			}
			if c, ok := w.p.ColorOf(u, v); !ok || c != prodgraph.Blue {
				continue
			}
			w.enqueue(v)
		}
		w.colors[u] = Black
	}
}

func (w *walker) blackNodes() []int {
	out := make([]int, 0, len(w.colors))
	for n, c := range w.colors {
		if c == Black {
			out = append(out, n)
		}
	}
	sort.Ints(out)
	return out
}
