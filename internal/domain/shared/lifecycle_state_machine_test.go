package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

func TestPhaseStateMachine_HappyPath(t *testing.T) {
	ticks := shared.NewMockTickSource(100)
	sm := shared.NewPhaseStateMachine(ticks)

	require.True(t, sm.IsIdle())

	require.NoError(t, sm.Begin())
	assert.Equal(t, shared.PhaseAnalyzing, sm.Phase())

	require.NoError(t, sm.Advance())
	assert.Equal(t, shared.PhaseMerging, sm.Phase())

	require.NoError(t, sm.Advance())
	assert.Equal(t, shared.PhaseUpdating, sm.Phase())

	require.NoError(t, sm.Advance())
	assert.Equal(t, shared.PhaseIdle, sm.Phase())
}

func TestPhaseStateMachine_CannotBeginTwice(t *testing.T) {
	sm := shared.NewPhaseStateMachine(shared.NewMockTickSource(0))
	require.NoError(t, sm.Begin())
	assert.Error(t, sm.Begin())
}

func TestPhaseStateMachine_Abort(t *testing.T) {
	ticks := shared.NewMockTickSource(0)
	sm := shared.NewPhaseStateMachine(ticks)
	require.NoError(t, sm.Begin())

	sm.Abort(shared.NewStructuralError("scheduler", "external reset"))
	assert.True(t, sm.IsIdle())
	assert.Error(t, sm.LastError())

	// A fresh run can start immediately after an abort.
	require.NoError(t, sm.Begin())
}

func TestPhaseStateMachine_Stale(t *testing.T) {
	ticks := shared.NewMockTickSource(0)
	sm := shared.NewPhaseStateMachine(ticks)
	require.NoError(t, sm.Begin())

	assert.False(t, sm.Stale(5000))
	ticks.Advance(5001)
	assert.True(t, sm.Stale(5000))
}

func TestRoomCoord_SourceKeeperHeuristic(t *testing.T) {
	cases := []struct {
		x, y int
		want bool
	}{
		{4, 4, true},
		{5, 5, false}, // exact center excluded
		{6, 6, true},
		{3, 5, false},
		{15, 24, true},  // mod 10 -> (5,4)
		{15, 25, false}, // mod 10 -> (5,5)
	}
	for _, c := range cases {
		got := shared.NewRoomCoord(c.x, c.y).IsSourceKeeperRoom()
		assert.Equalf(t, c.want, got, "room (%d,%d)", c.x, c.y)
	}
}
