// Package molfile adapts the text-based molecule record format, the
// unlabeled adjacency-list format, and a SMILES ingestion contract (spec
// §6) to molgraph.Graph — the boundary this repo's core algorithms never
// touch directly.
package molfile

import "github.com/tklehn/gomces/molgraph"

// Record is one parsed molecule: its graph and the canonical edge indices
// marked `anchor` in the source file.
type Record struct {
	Graph       *molgraph.Graph
	AnchorEdges []int
}
