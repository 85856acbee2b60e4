package mcgregor

import "github.com/cockroachdb/errors"

// ErrTooManyVertices is the precondition violation spec §7 names: |V(G)|
// must not exceed |V(H)|.
var ErrTooManyVertices = errors.New("mcgregor: |V(G)| exceeds |V(H)|")

// ErrNilGraph indicates a nil graph argument.
var ErrNilGraph = errors.New("mcgregor: graph is nil")

// ErrVertexOutOfRange indicates an anchor referenced a vertex outside the
// graph's vertex range.
var ErrVertexOutOfRange = errors.New("mcgregor: anchor vertex out of range")
