// Package anchorenum expands a seed anchor edge list into every full
// correspondence its edges' types permit (spec §4.7), grounded on
// compute_anchor: in molecule mode, edges of the same (atom-pair,
// bond-type) across graphs may correspond in any order, so every bijection
// within a type is a distinct anchor option; in unlabeled mode there is no
// type information to group by, so the caller chooses between the identity
// correspondence and exhaustive permutation via UnlabeledMode.
package anchorenum

import "github.com/cockroachdb/errors"

// UnlabeledMode selects how EnumerateAnchors behaves when molecule is
// false and there is no atom/bond-type information to partition by.
type UnlabeledMode uint8

const (
	// UnlabeledIdentityOnly returns the single anchor that pairs each
	// graph's anchor edges by position, matching the reference's behavior
	// (compute_anchor returns no combinatorics at all outside molecule mode).
	UnlabeledIdentityOnly UnlabeledMode = iota

	// UnlabeledAllPermutations treats every anchor edge as one untyped
	// group and enumerates every bijection across graphs, for callers who
	// want exhaustive anchor search and accept its factorial cost.
	UnlabeledAllPermutations
)

var (
	// ErrGraphCountMismatch indicates anchorEdges has a different length
	// than graphs.
	ErrGraphCountMismatch = errors.New("anchorenum: anchor edge list count does not match graph count")

	// ErrEmptyAnchorEdges indicates no anchor edges were supplied.
	ErrEmptyAnchorEdges = errors.New("anchorenum: no anchor edges supplied")

	// ErrEdgeCountMismatch indicates the graphs' anchor edge lists have
	// different lengths.
	ErrEdgeCountMismatch = errors.New("anchorenum: graphs supply different numbers of anchor edges")

	// ErrUntypedVertex indicates molecule mode was requested but an anchor
	// edge's endpoint carries no atom type.
	ErrUntypedVertex = errors.New("anchorenum: molecule mode requires every anchor edge endpoint to carry an atom type")

	// ErrEdgeTypeMismatch indicates the graphs disagree on which edge
	// types are present among the anchor edges, or on how many edges of a
	// type each graph contributes.
	ErrEdgeTypeMismatch = errors.New("anchorenum: graphs disagree on anchor edge types")
)
