package linegraph

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tklehn/gomces/molgraph"
)

// buildPath builds 0-1-2-3 with distinct bond types per edge for labeling checks.
func buildPath(t *testing.T) *molgraph.Graph {
	t.Helper()
	g := molgraph.New(4)
	require.NoError(t, g.SetAtomType(0, "C"))
	require.NoError(t, g.SetAtomType(1, "C"))
	require.NoError(t, g.SetAtomType(2, "O"))
	require.NoError(t, g.SetAtomType(3, "N"))
	_, err := g.AddEdge(0, 1, molgraph.BondSingle)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, molgraph.BondDouble)
	require.NoError(t, err)
	_, err = g.AddEdge(2, 3, molgraph.BondTriple)
	require.NoError(t, err)
	return g
}

func TestBuildVertexCountMatchesEdgeCount(t *testing.T) {
	g := buildPath(t)
	lg := Build(g, false)
	require.Equal(t, g.EdgeCount(), lg.VertexCount())
}

func TestBuildAdjacencyFromSharedEndpoint(t *testing.T) {
	g := buildPath(t)
	lg := Build(g, false)
	// Edge 0 (0-1) and edge 1 (1-2) share vertex 1: adjacent in L(G).
	require.True(t, lg.AreAdjacent(0, 1))
	// Edge 0 (0-1) and edge 2 (2-3) share no endpoint: not adjacent.
	require.False(t, lg.AreAdjacent(0, 2))
}

func TestBuildMoleculeModeCarriesLabels(t *testing.T) {
	g := buildPath(t)
	lg := Build(g, true)
	label := lg.Label(0) // edge 0-1, both atoms "C"
	require.True(t, label.Labeled)
	require.Equal(t, molgraph.BondSingle, label.BondType)
	require.Equal(t, molgraph.AtomPair{A: "C", B: "C"}, label.AtomPair)
}

func TestBuildNonMoleculeModeLeavesLabelsUnset(t *testing.T) {
	g := buildPath(t)
	lg := Build(g, false)
	require.False(t, lg.Label(0).Labeled)
}

func TestAgreeOnLabelRequiresBothLabeledOrNeither(t *testing.T) {
	g := buildPath(t)
	labeled := Build(g, true)
	unlabeled := Build(g, false)
	require.False(t, AgreeOnLabel(labeled, 0, unlabeled, 0))
	require.True(t, AgreeOnLabel(unlabeled, 0, unlabeled, 1))
}

func TestAgreeOnLabelComparesAtomPairAndBondType(t *testing.T) {
	g := buildPath(t)
	lg := Build(g, true)
	// edge 0 (C-C, single) vs edge 1 (C-O, double): disagree.
	require.False(t, AgreeOnLabel(lg, 0, lg, 1))
	// edge 0 vs itself: agree.
	require.True(t, AgreeOnLabel(lg, 0, lg, 0))
}
