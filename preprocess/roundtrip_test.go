package preprocess

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"

	"github.com/tklehn/gomces/molgraph"
	"github.com/tklehn/gomces/orchestrator"
)

// TestShrinkAtInfiniteRadiusIsIdentityProperty exercises the same identity
// property as TestShrinkAtInfiniteRadiusIsIdentity, but over a spread of
// randomly sized path graphs (spec §8 "Round-trip and idempotence") instead
// of one hand-picked size: shrinking at a radius no vertex can exceed must
// never drop an edge, regardless of graph size.
func TestShrinkAtInfiniteRadiusIsIdentityProperty(t *testing.T) {
	f := fuzz.New()
	for trial := 0; trial < 20; trial++ {
		var raw uint8
		f.Fuzz(&raw)
		n := int(raw%18) + 2 // path graphs of 2..19 vertices

		g := buildPath(n)
		anchor := []orchestrator.Correspondence{{0}}
		distMaps, _, err := AnchorReach([]*molgraph.Graph{g}, anchor)
		require.NoError(t, err)

		shrunk, err := Shrink([]*molgraph.Graph{g}, 1<<30, distMaps)
		require.NoError(t, err)
		require.Equal(t, g.EdgeCount(), shrunk[0].EdgeCount(), "n=%d", n)
		require.Equal(t, g.VertexCount(), shrunk[0].VertexCount(), "n=%d", n)
	}
}
