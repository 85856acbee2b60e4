package preprocess

import "github.com/cockroachdb/errors"

var (
	// ErrGraphCountMismatch indicates the graph list and anchor/distance
	// list lengths disagree.
	ErrGraphCountMismatch = errors.New("preprocess: graph count does not match anchor or distance map count")

	// ErrEmptyAnchor indicates a graph has no anchored edges to seed BFS from.
	ErrEmptyAnchor = errors.New("preprocess: anchor has no edges for some graph")
)
