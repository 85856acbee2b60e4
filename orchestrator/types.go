// Package orchestrator implements the two multi-graph entry points spec §4.6
// describes: a single round of the Levi/Barrow-Burstall clique pipeline
// applied across every supplied graph at once (AllProducts), and the
// iterative extension that grows a running maximum common subgraph one
// additional graph at a time (Iterative).
package orchestrator

import "github.com/cockroachdb/errors"

// Correspondence is one anchored or discovered edge mapping: Correspondence[i]
// is the canonical edge index in graphs[i] that corresponds to this entry
// across every graph in the round.
type Correspondence []int

func (c Correspondence) clone() Correspondence {
	out := make(Correspondence, len(c))
	copy(out, c)
	return out
}

var (
	// ErrNoGraphs indicates an empty graph list.
	ErrNoGraphs = errors.New("orchestrator: no graphs supplied")

	// ErrEmptyAnchor indicates an empty anchor, required to seed the product.
	ErrEmptyAnchor = errors.New("orchestrator: anchor is empty")

	// ErrAnchorArity indicates an anchor correspondence whose length does not
	// match the number of graphs in this round.
	ErrAnchorArity = errors.New("orchestrator: anchor correspondence arity mismatch")
)
