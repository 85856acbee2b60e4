// Package molgraph defines the undirected simple graph used throughout
// gomces: dense integer vertex identifiers, a canonical insertion-ordered
// edge sequence, and optional per-vertex/per-edge labels for molecule mode.
//
// Unlike a generic string-keyed attribute bag, labels are explicit records
// (AtomType, BondType) so the compiler enforces the shapes the algorithms
// actually consume.
package molgraph

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("molgraph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("molgraph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted (unsupported: MCES operates on simple graphs).
	ErrLoopNotAllowed = errors.New("molgraph: self-loop not allowed")

	// ErrDuplicateEdge indicates a parallel edge was attempted between the same endpoints.
	ErrDuplicateEdge = errors.New("molgraph: parallel edge not allowed")

	// ErrInvalidVertex indicates a negative or otherwise out-of-range vertex ID.
	ErrInvalidVertex = errors.New("molgraph: invalid vertex id")
)

// AtomType is a molecule-mode vertex label (e.g. "C", "O", "N+").
type AtomType string

// BondType is the closed set of edge labels a molecule edge may carry.
type BondType uint8

const (
	// BondNone marks an unlabeled (non-molecule) edge.
	BondNone BondType = iota
	// BondSingle is "-".
	BondSingle
	// BondDouble is "=".
	BondDouble
	// BondTriple is "==".
	BondTriple
	// BondQuadruple is the fallback for any unrecognized token ("q").
	BondQuadruple
	// BondAromatic is ":".
	BondAromatic
	// BondSingleDouble is the composite "-=" ("s/d").
	BondSingleDouble
	// BondDoubleSingle is the composite "=-" ("d/s").
	BondDoubleSingle
)

// String renders a BondType using the spec's single-character/slash notation.
func (b BondType) String() string {
	switch b {
	case BondSingle:
		return "s"
	case BondDouble:
		return "d"
	case BondTriple:
		return "t"
	case BondQuadruple:
		return "q"
	case BondAromatic:
		return "a"
	case BondSingleDouble:
		return "s/d"
	case BondDoubleSingle:
		return "d/s"
	default:
		return ""
	}
}

// AtomPair is an unordered pair of atom types, used as a line-graph-vertex label.
type AtomPair struct {
	A, B AtomType
}

// Normalize returns the pair with A <= B, so equal pairs compare equal
// regardless of discovery order.
func (p AtomPair) Normalize() AtomPair {
	if p.B < p.A {
		return AtomPair{A: p.B, B: p.A}
	}
	return p
}

// VertexAttrs holds the optional molecule-mode label of a vertex.
type VertexAttrs struct {
	AtomType    AtomType
	HasAtomType bool
}

// Edge is an unordered connection between two distinct vertices, identified
// by its position in the graph's canonical edge sequence.
type Edge struct {
	Index    int // position in the canonical edge sequence
	U, V     int // endpoints, U < V by construction
	BondType BondType
}

// Graph is a finite undirected simple graph over dense integer vertex ids
// 0..N-1, with a canonical, insertion-ordered edge sequence.
//
// Graphs are treated as immutable inputs once built (spec §3 "Lifecycles");
// the mutex lets the same *Graph be shared read-only across goroutines
// without a data race.
type Graph struct {
	mu sync.RWMutex

	vertexAttrs []VertexAttrs // len == VertexCount
	edges       []Edge        // canonical order
	adjacency   [][]int       // adjacency[v] = sorted edge indices incident to v
}

// New creates an empty graph with n vertices (0..n-1) and no edges.
func New(n int) *Graph {
	return &Graph{
		vertexAttrs: make([]VertexAttrs, n),
		edges:       make([]Edge, 0),
		adjacency:   make([][]int, n),
	}
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.vertexAttrs)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}
