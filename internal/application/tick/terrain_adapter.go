package tick

import (
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// hostTerrain adapts a host.Engine into the spatial.TerrainProvider the
// spatial core consumes. The two ports disagree on room identity — host
// rooms are opaque strings the host engine names however it likes;
// spatial works in shared.RoomCoord — so this adapter is the one place
// that translates between them. Rather than parse a game-specific
// room-name scheme (the host port names no particular one — it is our
// own abstraction, not a concrete Screeps client), the adapter treats a
// RoomCoord's canonical string form as the host room identifier: any
// host.Engine implementation (hostgrpc, hostmock) is free to use that
// encoding directly, since nothing in the external contract mandates
// otherwise.
type hostTerrain struct {
	engine host.Engine
}

func newHostTerrain(engine host.Engine) spatial.TerrainProvider {
	return hostTerrain{engine: engine}
}

func (h hostTerrain) Terrain(room shared.RoomCoord, x, y int) spatial.Terrain {
	switch h.engine.Terrain(room.String(), x, y) {
	case host.TerrainWall:
		return spatial.TerrainWall
	case host.TerrainSwamp:
		return spatial.TerrainSwamp
	default:
		return spatial.TerrainPlain
	}
}

// HasRoad always reports false: the host port carries no road bit yet
// (spec.md §6 names terrain and exits only), so the distance transform
// runs as if no tile carries a road until a future host contract adds one.
func (h hostTerrain) HasRoad(room shared.RoomCoord, x, y int) bool {
	return false
}

func (h hostTerrain) DescribeExits(room shared.RoomCoord) map[shared.Exit]shared.RoomCoord {
	ex := h.engine.DescribeExits(room.String())
	out := make(map[shared.Exit]shared.RoomCoord, 4)
	if rc, ok := parseRoomCoord(ex.Top); ok {
		out[shared.ExitTop] = rc
	}
	if rc, ok := parseRoomCoord(ex.Right); ok {
		out[shared.ExitRight] = rc
	}
	if rc, ok := parseRoomCoord(ex.Bottom); ok {
		out[shared.ExitBottom] = rc
	}
	if rc, ok := parseRoomCoord(ex.Left); ok {
		out[shared.ExitLeft] = rc
	}
	return out
}

func parseRoomCoord(s string) (shared.RoomCoord, bool) {
	if s == "" {
		return shared.RoomCoord{}, false
	}
	var x, y int
	if _, err := fmt.Sscanf(s, "%d_%d", &x, &y); err != nil {
		return shared.RoomCoord{}, false
	}
	return shared.NewRoomCoord(x, y), true
}
