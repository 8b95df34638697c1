// Package spatial implements the cross-room wall-distance transform, peak
// detection, territory partitioning, and edge synthesis described in
// spec.md §4.1-§4.4. It is the "spatial core" — the one subsystem every
// other package (node, variant, corp) consumes but never mutates.
package spatial

import (
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// RoomSize is the fixed edge length of every room in the world grid.
const RoomSize = 50

// Terrain classifies a single world tile.
type Terrain int

const (
	TerrainWall Terrain = iota
	TerrainPlain
	TerrainSwamp
)

// MoveCost returns the action-tick cost of entering a tile of this
// terrain, ignoring the road bit (roads are a derived per-tile flag, not a
// terrain value, per spec.md §3).
func (t Terrain) MoveCost() int {
	switch t {
	case TerrainSwamp:
		return 10
	case TerrainPlain:
		return 2
	default:
		return 0 // walls are never entered
	}
}

// RoadMoveCost is the cost of entering any tile that carries a road, which
// overrides the terrain's own cost.
const RoadMoveCost = 1

// Tile addresses one world coordinate: (room, x, y) with 0 <= x,y < RoomSize.
type Tile struct {
	Room shared.RoomCoord
	X    int
	Y    int
}

// NewTile creates a Tile, validating the in-room bounds.
func NewTile(room shared.RoomCoord, x, y int) (Tile, error) {
	if x < 0 || x >= RoomSize || y < 0 || y >= RoomSize {
		return Tile{}, fmt.Errorf("tile coordinate (%d,%d) out of room bounds", x, y)
	}
	return Tile{Room: room, X: x, Y: y}, nil
}

// String returns a deterministic textual key, used for map keys and ids.
func (t Tile) String() string {
	return fmt.Sprintf("%s:%d,%d", t.Room.String(), t.X, t.Y)
}

// Equals reports whether two tiles name the same world coordinate.
func (t Tile) Equals(o Tile) bool {
	return t.Room.Equals(o.Room) && t.X == o.X && t.Y == o.Y
}

// neighbors4 returns the four cardinal neighbor tiles of t, transparently
// crossing room boundaries via exits. A neighbor that would require an
// exit the room doesn't have is omitted.
func neighbors4(t Tile, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) []Tile {
	return neighborsWithDeltas(t, exits, [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}})
}

// neighbors8 returns the eight-connected neighbor tiles of t, transparently
// crossing room boundaries.
func neighbors8(t Tile, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) []Tile {
	return neighborsWithDeltas(t, exits, [][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	})
}

func neighborsWithDeltas(t Tile, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord, deltas [][2]int) []Tile {
	out := make([]Tile, 0, len(deltas))
	for _, d := range deltas {
		nx, ny := t.X+d[0], t.Y+d[1]
		room := t.Room
		if nx < 0 || nx >= RoomSize || ny < 0 || ny >= RoomSize {
			// Crossing a room boundary: only valid along a cardinal
			// direction, and only if that room has a matching exit.
			if nx != t.X && ny != t.Y {
				continue // diagonal room-crossing is never valid
			}
			ex, dst, ok := exitFor(nx, ny, exits(t.Room))
			if !ok {
				continue
			}
			room = dst
			nx, ny = wrapCoord(nx), wrapCoord(ny)
			_ = ex
		}
		out = append(out, Tile{Room: room, X: nx, Y: ny})
	}
	return out
}

func exitFor(nx, ny int, exits map[shared.Exit]shared.RoomCoord) (shared.Exit, shared.RoomCoord, bool) {
	var want shared.Exit
	switch {
	case ny < 0:
		want = shared.ExitTop
	case nx >= RoomSize:
		want = shared.ExitRight
	case ny >= RoomSize:
		want = shared.ExitBottom
	case nx < 0:
		want = shared.ExitLeft
	default:
		return 0, shared.RoomCoord{}, false
	}
	dst, ok := exits[want]
	return want, dst, ok
}

func wrapCoord(v int) int {
	if v < 0 {
		return RoomSize + v
	}
	if v >= RoomSize {
		return v - RoomSize
	}
	return v
}
