package molgraph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildTriangle(t *testing.T) *Graph {
	t.Helper()
	g := New(3)
	_, err := g.AddEdge(0, 1, BondSingle)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, BondDouble)
	require.NoError(t, err)
	_, err = g.AddEdge(0, 2, BondTriple)
	require.NoError(t, err)
	return g
}

func TestNeighborsSortedAndDeduped(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, []int{1, 2}, g.Neighbors(0))
}

func TestIncidentEdgesAscending(t *testing.T) {
	g := buildTriangle(t)
	require.Equal(t, []int{0, 2}, g.IncidentEdges(0))
}

func TestAreAdjacentRejectsSelf(t *testing.T) {
	g := buildTriangle(t)
	require.False(t, g.AreAdjacent(0, 0))
	require.True(t, g.AreAdjacent(0, 1))
}

func TestIsConnected(t *testing.T) {
	connected := buildTriangle(t)
	require.True(t, connected.IsConnected())

	disconnected := New(4)
	_, err := disconnected.AddEdge(0, 1, BondNone)
	require.NoError(t, err)
	require.False(t, disconnected.IsConnected())
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(4)
	_, err := g.AddEdge(0, 1, BondSingle)
	require.NoError(t, err)

	clone := g.Clone()
	_, err = clone.AddEdge(2, 3, BondDouble)
	require.NoError(t, err)

	require.Equal(t, 1, g.EdgeCount())
	require.Equal(t, 2, clone.EdgeCount())
}

func TestInducedSubgraphRenumbersDensely(t *testing.T) {
	g := New(5)
	e01, err := g.AddEdge(0, 1, BondSingle)
	require.NoError(t, err)
	_, err = g.AddEdge(3, 4, BondDouble)
	require.NoError(t, err)

	sub, mapping := g.InducedSubgraph([]int{e01})
	require.Equal(t, 2, sub.VertexCount())
	require.Equal(t, 1, sub.EdgeCount())
	require.Equal(t, 0, mapping[0])
	require.Equal(t, 1, mapping[1])

	e, err := sub.Edge(0)
	require.NoError(t, err)
	require.Equal(t, BondSingle, e.BondType)
}

func TestInducedSubgraphEdgeOrderMatchesInput(t *testing.T) {
	g := New(6)
	e0, _ := g.AddEdge(0, 1, BondSingle)
	e1, _ := g.AddEdge(2, 3, BondDouble)
	e2, _ := g.AddEdge(4, 5, BondTriple)

	sub, _ := g.InducedSubgraph([]int{e2, e0, e1})
	first, _ := sub.Edge(0)
	second, _ := sub.Edge(1)
	third, _ := sub.Edge(2)
	require.Equal(t, BondTriple, first.BondType)
	require.Equal(t, BondSingle, second.BondType)
	require.Equal(t, BondDouble, third.BondType)
}

func TestAtomTypeOfReportsUnset(t *testing.T) {
	g := New(1)
	_, ok := g.AtomTypeOf(0)
	require.False(t, ok)
	require.NoError(t, g.SetAtomType(0, "C"))
	at, ok := g.AtomTypeOf(0)
	require.True(t, ok)
	require.Equal(t, AtomType("C"), at)
}
