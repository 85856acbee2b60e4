package bluecomp

import "github.com/cockroachdb/errors"

// ErrEmptyAnchor indicates FilterComponents or ExtendCliques was called with
// no anchor nodes, which the blue-only BFS needs a source from.
var ErrEmptyAnchor = errors.New("bluecomp: anchor is empty")
