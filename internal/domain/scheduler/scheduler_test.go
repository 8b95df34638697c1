package scheduler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/node"
	"github.com/ShadyMccoy/colony-controller/internal/domain/scheduler"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// fakeTerrain is the same single-room hand-authored fixture spatial_test.go
// uses, duplicated here since scheduler_test is its own external package.
type fakeTerrain struct {
	rooms map[shared.RoomCoord][spatial.RoomSize][spatial.RoomSize]spatial.Terrain
	exits map[shared.RoomCoord]map[shared.Exit]shared.RoomCoord
}

func newFakeTerrain() *fakeTerrain {
	return &fakeTerrain{
		rooms: make(map[shared.RoomCoord][spatial.RoomSize][spatial.RoomSize]spatial.Terrain),
		exits: make(map[shared.RoomCoord]map[shared.Exit]shared.RoomCoord),
	}
}

func (f *fakeTerrain) setRoomAllWalls(room shared.RoomCoord) {
	var grid [spatial.RoomSize][spatial.RoomSize]spatial.Terrain
	for x := range grid {
		for y := range grid[x] {
			grid[x][y] = spatial.TerrainWall
		}
	}
	f.rooms[room] = grid
}

func (f *fakeTerrain) setTile(room shared.RoomCoord, x, y int, t spatial.Terrain) {
	grid := f.rooms[room]
	grid[x][y] = t
	f.rooms[room] = grid
}

func (f *fakeTerrain) Terrain(room shared.RoomCoord, x, y int) spatial.Terrain {
	grid, ok := f.rooms[room]
	if !ok {
		return spatial.TerrainWall
	}
	return grid[x][y]
}

func (f *fakeTerrain) HasRoad(shared.RoomCoord, int, int) bool { return false }

func (f *fakeTerrain) DescribeExits(room shared.RoomCoord) map[shared.Exit]shared.RoomCoord {
	return f.exits[room]
}

// plazaRoom builds a 50x50 room that is all wall except a 9x9 open plaza
// centered at (25,25), matching spec.md §8 scenario 4.
func plazaRoom() (*fakeTerrain, shared.RoomCoord) {
	room := shared.NewRoomCoord(0, 0)
	tp := newFakeTerrain()
	tp.setRoomAllWalls(room)
	for x := 21; x <= 29; x++ {
		for y := 21; y <= 29; y++ {
			tp.setTile(room, x, y, spatial.TerrainPlain)
		}
	}
	return tp, room
}

func noNeighbors(*node.Node, []*node.Node) []node.NeighborSummary { return nil }
func zeroDistance(*node.Node) int                                 { return 0 }

func TestScheduler_Step_IdleIsANoop(t *testing.T) {
	s := scheduler.NewScheduler(shared.NewMockTickSource(0), 10)
	tp, room := plazaRoom()
	registry := node.NewRegistry()

	err := s.Step(tp, tp.DescribeExits, []shared.RoomCoord{room}, 1, registry, noNeighbors, zeroDistance)

	require.NoError(t, err)
	assert.True(t, s.Idle())
	assert.Equal(t, shared.PhaseIdle, s.Phase())
}

func TestScheduler_Step_RunsAnalyzingMergingUpdatingThenGoesIdle(t *testing.T) {
	s := scheduler.NewScheduler(shared.NewMockTickSource(0), 10)
	tp, room := plazaRoom()
	registry := node.NewRegistry()

	require.NoError(t, s.Trigger())
	assert.Equal(t, shared.PhaseAnalyzing, s.Phase())

	require.NoError(t, s.Step(tp, tp.DescribeExits, []shared.RoomCoord{room}, 1, registry, noNeighbors, zeroDistance))
	assert.Equal(t, shared.PhaseMerging, s.Phase())

	require.NoError(t, s.Step(tp, tp.DescribeExits, []shared.RoomCoord{room}, 1, registry, noNeighbors, zeroDistance))
	assert.Equal(t, shared.PhaseUpdating, s.Phase())
	assert.NotEmpty(t, registry.All())

	require.NoError(t, s.Step(tp, tp.DescribeExits, []shared.RoomCoord{room}, 1, registry, noNeighbors, zeroDistance))
	assert.True(t, s.Idle())

	for _, n := range registry.All() {
		assert.NotNil(t, n.ROI())
	}
}

func TestScheduler_Trigger_WhileRunningIsANoop(t *testing.T) {
	s := scheduler.NewScheduler(shared.NewMockTickSource(0), 10)
	require.NoError(t, s.Trigger())
	require.NoError(t, s.Trigger())
	assert.Equal(t, shared.PhaseAnalyzing, s.Phase())
}

func TestScheduler_Step_AbortsWhenStale(t *testing.T) {
	ticks := shared.NewMockTickSource(0)
	s := scheduler.NewScheduler(ticks, 5)
	tp, room := plazaRoom()
	registry := node.NewRegistry()

	require.NoError(t, s.Trigger())
	ticks.Advance(6)

	err := s.Step(tp, tp.DescribeExits, []shared.RoomCoord{room}, 1, registry, noNeighbors, zeroDistance)

	require.NoError(t, err)
	assert.True(t, s.Idle())
	assert.Empty(t, registry.All())
}
