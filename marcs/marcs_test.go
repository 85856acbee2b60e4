package marcs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tklehn/gomces/marcs"
)

func TestNewInvalidDimensions(t *testing.T) {
	_, err := marcs.New(0, 3)
	require.ErrorIs(t, err, marcs.ErrInvalidDimensions)

	_, err = marcs.New(3, 0)
	require.ErrorIs(t, err, marcs.ErrInvalidDimensions)
}

func TestNewAllOnes(t *testing.T) {
	m, err := marcs.New(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, 2, m.ArcsLeft())
	for i := 0; i < 2; i++ {
		require.Equal(t, 3, m.RowOnes(i))
	}
	require.True(t, m.At(0, 0))
	require.True(t, m.At(1, 2))
}

func TestKillDecrementsRowOnesAndArcsleft(t *testing.T) {
	m, err := marcs.New(1, 2)
	require.NoError(t, err)

	m.Kill(0, 0)
	require.False(t, m.At(0, 0))
	require.Equal(t, 1, m.RowOnes(0))
	require.Equal(t, 1, m.ArcsLeft())

	m.Kill(0, 1)
	require.Equal(t, 0, m.RowOnes(0))
	require.Equal(t, 0, m.ArcsLeft())
}

func TestKillIsIdempotent(t *testing.T) {
	m, err := marcs.New(1, 1)
	require.NoError(t, err)

	m.Kill(0, 0)
	m.Kill(0, 0)
	require.Equal(t, 0, m.RowOnes(0))
	require.Len(t, m.Killed(), 1)
}

func TestRestoreKilledUndoesKillButNotKillPermanent(t *testing.T) {
	m, err := marcs.New(1, 3)
	require.NoError(t, err)

	m.KillPermanent(0, 0)
	m.Kill(0, 1)
	require.Equal(t, 1, m.RowOnes(0))

	m.RestoreKilled()
	require.True(t, m.At(0, 1))
	require.False(t, m.At(0, 0)) // permanent kill survives restore
	require.Equal(t, 2, m.RowOnes(0))
	require.Empty(t, m.Killed())
}

func TestClearKilledDropsStackWithoutRestoring(t *testing.T) {
	m, err := marcs.New(1, 1)
	require.NoError(t, err)

	m.Kill(0, 0)
	m.ClearKilled()
	require.Empty(t, m.Killed())
	require.False(t, m.At(0, 0))
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := marcs.New(2, 1)
	require.NoError(t, err)
	m.Kill(0, 0)

	clone := m.Clone()
	clone.Kill(1, 0)

	require.Equal(t, 1, m.ArcsLeft())
	require.Equal(t, 0, clone.ArcsLeft())
}

func TestWorkspaceSnapshotRestoreRoundTrips(t *testing.T) {
	m, err := marcs.New(2, 2)
	require.NoError(t, err)
	m.Kill(0, 0)

	ws := marcs.Snapshot(m)
	m.Kill(0, 1) // mutate the live matrix after snapshotting
	require.Equal(t, 1, m.ArcsLeft())

	restored := ws.Restore()
	require.Equal(t, 2, restored.ArcsLeft())
	require.True(t, restored.At(0, 1))
}
