// Package prodgraph builds the modular product P = L(G1) ⊠ ... ⊠ L(Gk) of a
// list of line graphs (spec §3, §4.2), in two variants: unrestricted (every
// k-tuple) and anchor-limited (only tuples reachable from an anchor tuple).
package prodgraph

import (
	"sort"

	"github.com/tklehn/gomces/linegraph"
)

// Tuple is a product-graph vertex: one vertex index per factor graph.
type Tuple []int

func (t Tuple) key() string {
	// A '|' separator between coordinates avoids ambiguity between e.g. [1,23] and [12,3].
	buf := make([]byte, 0, len(t)*5)
	for i, v := range t {
		if i > 0 {
			buf = append(buf, '|')
		}
		buf = appendInt(buf, v)
	}
	return string(buf)
}

func appendInt(buf []byte, v int) []byte {
	if v == 0 {
		return append(buf, '0')
	}
	if v < 0 {
		buf = append(buf, '-')
		v = -v
	}
	start := len(buf)
	for v > 0 {
		buf = append(buf, byte('0'+v%10))
		v /= 10
	}
	// reverse the digits just appended
	for i, j := start, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return buf
}

func (t Tuple) equal(o Tuple) bool {
	if len(t) != len(o) {
		return false
	}
	for i := range t {
		if t[i] != o[i] {
			return false
		}
	}
	return true
}

func hasCommonCoordinate(a, b Tuple) bool {
	for i := range a {
		if a[i] == b[i] {
			return true
		}
	}
	return false
}

// Product is the modular product graph. Vertices are addressed by their
// position in Nodes; colors maps an unordered pair of positions to the
// color of the edge between them (absent ⇒ no edge).
type Product struct {
	Factors []*linegraph.Graph
	Nodes   []Tuple

	pos    map[string]int
	colors map[edgeKey]Color
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// IndexOf returns the position of tuple t in Nodes, or -1.
func (p *Product) IndexOf(t Tuple) int {
	if idx, ok := p.pos[t.key()]; ok {
		return idx
	}
	return -1
}

// ColorOf returns the color of the edge between positions a and b and
// whether such an edge exists.
func (p *Product) ColorOf(a, b int) (Color, bool) {
	c, ok := p.colors[newEdgeKey(a, b)]
	return c, ok
}

// Neighbors returns the positions adjacent to position a, in ascending
// order, regardless of color.
func (p *Product) Neighbors(a int) []int {
	out := make([]int, 0)
	for k := range p.colors {
		if k.a == a {
			out = append(out, k.b)
		} else if k.b == a {
			out = append(out, k.a)
		}
	}
	sort.Ints(out)
	return out
}

// addEdge records an edge once; it is a no-op if the edge already exists
// (used when unrestricted/limited construction revisits a pair).
func (p *Product) addEdge(a, b int, c Color) {
	if a == b {
		return
	}
	if _, ok := p.colors[newEdgeKey(a, b)]; ok {
		return
	}
	p.colors[newEdgeKey(a, b)] = c
}

func (p *Product) addNode(t Tuple) int {
	if idx, ok := p.pos[t.key()]; ok {
		return idx
	}
	idx := len(p.Nodes)
	p.Nodes = append(p.Nodes, t)
	p.pos[t.key()] = idx
	return idx
}

// colorBetween determines the modular-product color between tuples a and b
// across all factors: Blue if every coordinate pair is strictly adjacent in
// its factor, Red if every coordinate pair is strictly non-adjacent, and
// ok=false if the factors disagree (no edge).
func colorBetween(factors []*linegraph.Graph, a, b Tuple) (Color, bool) {
	allAdjacent := true
	allNonAdjacent := true
	for i := range factors {
		adj := factors[i].AreAdjacent(a[i], b[i])
		if adj {
			allNonAdjacent = false
		} else {
			allAdjacent = false
		}
		if !allAdjacent && !allNonAdjacent {
			return 0, false
		}
	}
	switch {
	case allAdjacent:
		return Blue, true
	case allNonAdjacent:
		return Red, true
	default:
		return 0, false
	}
}

func agreeOnLabels(factors []*linegraph.Graph, t Tuple) bool {
	for i := 1; i < len(factors); i++ {
		if !linegraph.AgreeOnLabel(factors[0], t[0], factors[i], t[i]) {
			return false
		}
	}
	return true
}
