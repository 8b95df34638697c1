package spatial_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// fakeTerrain is a single-room, hand-authored terrain grid used across the
// spatial package tests, following the teacher's in-memory fake-port
// pattern (e.g. routing.NewMockRoutingClient).
type fakeTerrain struct {
	rooms map[shared.RoomCoord][spatial.RoomSize][spatial.RoomSize]spatial.Terrain
	exits map[shared.RoomCoord]map[shared.Exit]shared.RoomCoord
	roads map[shared.RoomCoord]map[[2]int]bool
}

func newFakeTerrain() *fakeTerrain {
	return &fakeTerrain{
		rooms: make(map[shared.RoomCoord][spatial.RoomSize][spatial.RoomSize]spatial.Terrain),
		exits: make(map[shared.RoomCoord]map[shared.Exit]shared.RoomCoord),
		roads: make(map[shared.RoomCoord]map[[2]int]bool),
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

func (f *fakeTerrain) HasRoad(room shared.RoomCoord, x, y int) bool {
	return f.roads[room][[2]int{x, y}]
}

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

func TestDistanceTransform_EmptyStartsYieldsEmptyResult(t *testing.T) {
	tp, _ := plazaRoom()
	out := spatial.DistanceTransform(tp, nil, 9)
	assert.Empty(t, out)
}

func TestPeakDetection_SinglePlazaScenario(t *testing.T) {
	tp, room := plazaRoom()
	o := spatial.DistanceTransform(tp, []shared.RoomCoord{room}, 1)

	peaks := spatial.DetectPeaks(o, tp.DescribeExits)
	require.Len(t, peaks, 1)
	assert.Equal(t, 25, peaks[0].Centroid.X)
	assert.Equal(t, 25, peaks[0].Centroid.Y)
	assert.Equal(t, 5, peaks[0].Height)
}

func TestPartitionTerritories_CoversAllNonWallTiles(t *testing.T) {
	tp, room := plazaRoom()
	o := spatial.DistanceTransform(tp, []shared.RoomCoord{room}, 1)
	peaks := spatial.DetectPeaks(o, tp.DescribeExits)

	territories := spatial.PartitionTerritories(peaks, o, tp.DescribeExits)

	total := 0
	for _, tiles := range territories {
		total += len(tiles)
	}
	assert.Equal(t, len(o), total, "partition must cover every analyzed non-wall tile exactly once")
}

func TestCanonicalEdgeKey_IsOrderIndependent(t *testing.T) {
	assert.Equal(t, spatial.CanonicalEdgeKey("a", "b"), spatial.CanonicalEdgeKey("b", "a"))
}

func TestBuildEconomicEdges_TopKTruncation(t *testing.T) {
	// Build a star graph: node "hub" connects to 15 economic leaves at
	// strictly increasing distances, all within the 2000 cap. Only the 10
	// smallest should survive, per spec.md §8 scenario 5.
	var edges []spatial.SpatialEdge
	isEconomic := map[string]bool{"hub": true}
	for i := 0; i < 15; i++ {
		leaf := leafName(i)
		isEconomic[leaf] = true
		edges = append(edges, spatial.SpatialEdge{
			Key:    spatial.CanonicalEdgeKey("hub", leaf),
			A:      "hub",
			B:      leaf,
			Weight: 10 + i,
		})
	}

	result := spatial.BuildEconomicEdges(edges, func(id string) bool { return isEconomic[id] })
	hubNeighbors := result["hub"]
	require.Len(t, hubNeighbors, 10)

	maxRetained := 0
	for _, n := range hubNeighbors {
		if n.Distance > maxRetained {
			maxRetained = n.Distance
		}
	}
	for i := 10; i < 15; i++ {
		assert.Greater(t, 10+i, maxRetained, "omitted neighbor %d must have strictly greater distance than every retained one", i)
	}
}

func leafName(i int) string {
	return string(rune('a' + i))
}
