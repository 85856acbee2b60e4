package orchestrator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tklehn/gomces/molgraph"
)

// twoEdgePathGraph builds 0-1-2 with two single-bond edges.
func twoEdgePathGraph(t *testing.T) *molgraph.Graph {
	t.Helper()
	g := molgraph.New(3)
	_, err := g.AddEdge(0, 1, molgraph.BondSingle)
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, molgraph.BondSingle)
	require.NoError(t, err)
	return g
}

// oneEdgeGraph builds a single edge 0-1.
func oneEdgeGraph(t *testing.T) *molgraph.Graph {
	t.Helper()
	g := molgraph.New(2)
	_, err := g.AddEdge(0, 1, molgraph.BondSingle)
	require.NoError(t, err)
	return g
}

func TestAllProductsFindsExtensionAcrossTwoGraphs(t *testing.T) {
	g1 := twoEdgePathGraph(t)
	g2 := twoEdgePathGraph(t)
	anchor := []Correspondence{{0, 0}}

	results, err := AllProducts([]*molgraph.Graph{g1, g2}, anchor, false, false)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.ElementsMatch(t, []Correspondence{{0, 0}, {1, 1}}, results[0])
}

func TestAllProductsDegenerateProductReturnsAnchorUnchanged(t *testing.T) {
	g1 := oneEdgeGraph(t)
	g2 := oneEdgeGraph(t)
	anchor := []Correspondence{{0, 0}}

	results, err := AllProducts([]*molgraph.Graph{g1, g2}, anchor, false, false)
	require.NoError(t, err)
	require.Equal(t, [][]Correspondence{{{0, 0}}}, results)
}

func TestAllProductsRejectsNoGraphs(t *testing.T) {
	_, err := AllProducts(nil, []Correspondence{{0}}, false, false)
	require.ErrorIs(t, err, ErrNoGraphs)
}

func TestAllProductsRejectsEmptyAnchor(t *testing.T) {
	g1 := oneEdgeGraph(t)
	_, err := AllProducts([]*molgraph.Graph{g1, g1}, nil, false, false)
	require.ErrorIs(t, err, ErrEmptyAnchor)
}

func TestAllProductsRejectsAnchorArityMismatch(t *testing.T) {
	g1 := oneEdgeGraph(t)
	_, err := AllProducts([]*molgraph.Graph{g1, g1}, []Correspondence{{0, 0, 0}}, false, false)
	require.ErrorIs(t, err, ErrAnchorArity)
}
