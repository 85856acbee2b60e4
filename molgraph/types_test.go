package molgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddEdgeNormalizesEndpointOrder(t *testing.T) {
	g := New(2)
	idx, err := g.AddEdge(1, 0, BondSingle)
	require.NoError(t, err)
	e, err := g.Edge(idx)
	require.NoError(t, err)
	require.Equal(t, 0, e.U)
	require.Equal(t, 1, e.V)
}

func TestAddEdgeRejectsLoop(t *testing.T) {
	g := New(1)
	_, err := g.AddEdge(0, 0, BondSingle)
	require.ErrorIs(t, err, ErrLoopNotAllowed)
}

func TestAddEdgeRejectsDuplicate(t *testing.T) {
	g := New(2)
	_, err := g.AddEdge(0, 1, BondSingle)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, BondDouble)
	require.ErrorIs(t, err, ErrDuplicateEdge)
}

func TestAddEdgeRejectsOutOfRangeVertex(t *testing.T) {
	g := New(2)
	_, err := g.AddEdge(0, 5, BondSingle)
	require.ErrorIs(t, err, ErrInvalidVertex)
}

func TestBondTypeStringMatchesSpecNotation(t *testing.T) {
	cases := map[BondType]string{
		BondSingle:       "s",
		BondDouble:       "d",
		BondTriple:       "t",
		BondQuadruple:    "q",
		BondAromatic:     "a",
		BondSingleDouble: "s/d",
		BondDoubleSingle: "d/s",
	}
	for bond, want := range cases {
		require.Equal(t, want, bond.String())
	}
}

func TestAtomPairNormalizeOrdersConsistently(t *testing.T) {
	a := AtomPair{A: "O", B: "C"}
	require.Equal(t, AtomPair{A: "C", B: "O"}, a.Normalize())
	b := AtomPair{A: "C", B: "O"}
	require.Equal(t, a.Normalize(), b.Normalize())
}
