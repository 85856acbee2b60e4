package anchorenum

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tklehn/gomces/molgraph"
)

func buildLabeled(t *testing.T, atoms []molgraph.AtomType, edges [][2]int, bonds []molgraph.BondType) *molgraph.Graph {
	t.Helper()
	g := molgraph.New(len(atoms))
	for v, a := range atoms {
		require.NoError(t, g.SetAtomType(v, a))
	}
	for i, e := range edges {
		_, err := g.AddEdge(e[0], e[1], bonds[i])
		require.NoError(t, err)
	}
	return g
}

func TestEnumerateAnchorsUnlabeledIdentity(t *testing.T) {
	g0 := buildLabeled(t, []molgraph.AtomType{"", "", ""}, [][2]int{{0, 1}, {1, 2}}, []molgraph.BondType{molgraph.BondNone, molgraph.BondNone})
	g1 := buildLabeled(t, []molgraph.AtomType{"", "", ""}, [][2]int{{0, 1}, {1, 2}}, []molgraph.BondType{molgraph.BondNone, molgraph.BondNone})

	out, err := EnumerateAnchors([]*molgraph.Graph{g0, g1}, [][]int{{0, 1}, {0, 1}}, false, UnlabeledIdentityOnly)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, 2, len(out[0]))
	require.ElementsMatch(t, []int{0, 1}, []int{out[0][0][0], out[0][1][0]})
}

func TestEnumerateAnchorsUnlabeledAllPermutations(t *testing.T) {
	g0 := buildLabeled(t, []molgraph.AtomType{"", "", ""}, [][2]int{{0, 1}, {1, 2}}, []molgraph.BondType{molgraph.BondNone, molgraph.BondNone})
	g1 := buildLabeled(t, []molgraph.AtomType{"", "", ""}, [][2]int{{0, 1}, {1, 2}}, []molgraph.BondType{molgraph.BondNone, molgraph.BondNone})

	out, err := EnumerateAnchors([]*molgraph.Graph{g0, g1}, [][]int{{0, 1}, {0, 1}}, false, UnlabeledAllPermutations)
	require.NoError(t, err)
	// 2 edges, 2 graphs -> 2! permutations per graph, 2x2 options total.
	require.Len(t, out, 4)
	for _, option := range out {
		require.Len(t, option, 2)
	}
}

func TestEnumerateAnchorsMoleculeGroupsByType(t *testing.T) {
	// graph0: C-C (single), C-O (double); graph1 has the same two edge
	// types at the same anchor-list positions, on differently numbered atoms.
	g0 := buildLabeled(t,
		[]molgraph.AtomType{"C", "C", "O"},
		[][2]int{{0, 1}, {0, 2}},
		[]molgraph.BondType{molgraph.BondSingle, molgraph.BondDouble},
	)
	g1 := buildLabeled(t,
		[]molgraph.AtomType{"O", "C", "C"},
		[][2]int{{1, 2}, {0, 1}},
		[]molgraph.BondType{molgraph.BondSingle, molgraph.BondDouble},
	)

	out, err := EnumerateAnchors([]*molgraph.Graph{g0, g1}, [][]int{{0, 1}, {0, 1}}, true, UnlabeledIdentityOnly)
	require.NoError(t, err)
	// Two distinct edge types, each with exactly one edge per graph: a
	// single bijection per type, so exactly one full anchor option.
	require.Len(t, out, 1)
	require.Len(t, out[0], 2)
}

func TestEnumerateAnchorsMoleculeRejectsUntypedVertex(t *testing.T) {
	g0 := molgraph.New(2)
	_, err := g0.AddEdge(0, 1, molgraph.BondSingle)
	require.NoError(t, err)
	g1 := buildLabeled(t, []molgraph.AtomType{"C", "C"}, [][2]int{{0, 1}}, []molgraph.BondType{molgraph.BondSingle})

	_, err = EnumerateAnchors([]*molgraph.Graph{g0, g1}, [][]int{{0}, {0}}, true, UnlabeledIdentityOnly)
	require.ErrorIs(t, err, ErrUntypedVertex)
}

func TestEnumerateAnchorsRejectsGraphCountMismatch(t *testing.T) {
	g0 := molgraph.New(2)
	_, err := EnumerateAnchors([]*molgraph.Graph{g0}, [][]int{{0}, {0}}, false, UnlabeledIdentityOnly)
	require.ErrorIs(t, err, ErrGraphCountMismatch)
}

func TestEnumerateAnchorsRejectsEmptyAnchorEdges(t *testing.T) {
	g0 := molgraph.New(2)
	g1 := molgraph.New(2)
	_, err := EnumerateAnchors([]*molgraph.Graph{g0, g1}, [][]int{{}, {}}, false, UnlabeledIdentityOnly)
	require.ErrorIs(t, err, ErrEmptyAnchorEdges)
}
