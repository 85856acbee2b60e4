package preprocess

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/orchestrator"
)

func TestShrinkRemovesVerticesBeyondRadius(t *testing.T) {
	g := buildPath(5) // 0-1-2-3-4
	anchor := []orchestrator.Correspondence{{0}}
	distMaps, _, err := AnchorReach([]*molgraph.Graph{g}, anchor)
	require.NoError(t, err)

	shrunk, err := Shrink([]*molgraph.Graph{g}, 1, distMaps)
	require.NoError(t, err)
	// Vertices 0,1,2 survive (distance 0,0,1); edge 2-3 is cut since 3 is
	// beyond radius, leaving 2 edges: 0-1, 1-2.
	require.Equal(t, 2, shrunk[0].EdgeCount())
}

func TestShrinkAtInfiniteRadiusIsIdentity(t *testing.T) {
	g := buildPath(6)
	anchor := []orchestrator.Correspondence{{0}}
	distMaps, _, err := AnchorReach([]*molgraph.Graph{g}, anchor)
	require.NoError(t, err)

	shrunk, err := Shrink([]*molgraph.Graph{g}, 1<<30, distMaps)
	require.NoError(t, err)
	require.Equal(t, g.EdgeCount(), shrunk[0].EdgeCount())
	require.Equal(t, g.VertexCount(), shrunk[0].VertexCount())
}

func TestShrinkRejectsDistanceMapCountMismatch(t *testing.T) {
	g := buildPath(3)
	_, err := Shrink([]*molgraph.Graph{g}, 1, nil)
	require.ErrorIs(t, err, ErrGraphCountMismatch)
}
