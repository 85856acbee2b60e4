package mcgregor_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tklehn/gomces/mcgregor"
	"github.com/tklehn/gomces/molgraph"
)

// buildPath builds an undirected path 0-1-2-...-(n-1).
func buildPath(n int) *molgraph.Graph {
	g := molgraph.New(n)
	for i := 0; i < n-1; i++ {
		_, _ = g.AddEdge(i, i+1, molgraph.BondNone)
	}
	return g
}

func TestNewRejectsTooManyVertices(t *testing.T) {
	g := buildPath(4)
	h := buildPath(2)
	_, err := mcgregor.New(g, h)
	require.ErrorIs(t, err, mcgregor.ErrTooManyVertices)
}

func TestNewRejectsNilGraph(t *testing.T) {
	g := buildPath(2)
	_, err := mcgregor.New(nil, g)
	require.ErrorIs(t, err, mcgregor.ErrNilGraph)

	_, err = mcgregor.New(g, nil)
	require.ErrorIs(t, err, mcgregor.ErrNilGraph)
}

func TestNewRejectsAnchorOutOfRange(t *testing.T) {
	g, h := buildPath(3), buildPath(3)
	_, err := mcgregor.New(g, h, mcgregor.WithAnchor(map[int]int{5: 0}))
	require.ErrorIs(t, err, mcgregor.ErrVertexOutOfRange)
}

// TestIdenticalPathsFullyMatch: two identical 4-vertex paths should yield a
// mapping whose arcsleft equals the full edge count (3).
func TestIdenticalPathsFullyMatch(t *testing.T) {
	g := buildPath(4)
	h := buildPath(4)

	eng, err := mcgregor.New(g, h)
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.NotEmpty(t, solutions)
	require.Equal(t, 3, solutions[0].ArcsLeft)
	require.Len(t, solutions[0].Mapping, 4)
}

// TestAnchorSeedingIsRespected mirrors spec scenario 6: a fixed vertex
// correspondence must appear verbatim in every returned mapping.
func TestAnchorSeedingIsRespected(t *testing.T) {
	g := buildPath(3) // 0-1-2
	h := buildPath(5) // 0-1-2-3-4

	eng, err := mcgregor.New(g, h, mcgregor.WithAnchor(map[int]int{1: 2}))
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.NotEmpty(t, solutions)
	for _, s := range solutions {
		require.Equal(t, 2, s.Mapping[1])
	}
}

// TestMoleculeModeRequiresMatchingAtomTypes verifies atom-type candidate
// filtering: a carbon can never map onto an oxygen.
func TestMoleculeModeRequiresMatchingAtomTypes(t *testing.T) {
	g := buildPath(2)
	_ = g.SetAtomType(0, "C")
	_ = g.SetAtomType(1, "O")

	h := buildPath(2)
	_ = h.SetAtomType(0, "O")
	_ = h.SetAtomType(1, "C")

	eng, err := mcgregor.New(g, h, mcgregor.WithMolecule(true))
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.NotEmpty(t, solutions)
	require.Equal(t, 1, solutions[0].Mapping[0])
	require.Equal(t, 0, solutions[0].Mapping[1])
}

// TestMoleculeModeWithIncompatibleBondsYieldsZeroArcsleft: two graphs with no compatible bond
// types anywhere should still produce a (trivial) mapping, with arcsleft 0.
func TestMoleculeModeWithIncompatibleBondsYieldsZeroArcsleft(t *testing.T) {
	g := molgraph.New(2)
	_, _ = g.AddEdge(0, 1, molgraph.BondSingle)

	h := molgraph.New(2)
	_, _ = h.AddEdge(0, 1, molgraph.BondDouble)

	eng, err := mcgregor.New(g, h, mcgregor.WithMolecule(true))
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.NotEmpty(t, solutions)
	require.Equal(t, 0, solutions[0].ArcsLeft)
}

func TestFullyAnchoredGraphSkipsSearch(t *testing.T) {
	g := buildPath(2)
	h := buildPath(2)

	eng, err := mcgregor.New(g, h, mcgregor.WithAnchor(map[int]int{0: 0, 1: 1}))
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, 1, solutions[0].ArcsLeft)
}

func TestEdgelessGraphReturnsTrivialSolution(t *testing.T) {
	g := molgraph.New(2)
	h := molgraph.New(2)

	eng, err := mcgregor.New(g, h)
	require.NoError(t, err)

	solutions, err := eng.Run()
	require.NoError(t, err)
	require.Len(t, solutions, 1)
	require.Equal(t, 0, solutions[0].ArcsLeft)
}
