package spatial

import "github.com/ShadyMccoy/colony-controller/internal/domain/shared"

// TerrainProvider is the host-engine collaborator the spatial core
// consumes (spec.md §1, §6): a pure, deterministic terrain lookup plus
// room adjacency. Grounded on the teacher's narrow read-only port style
// (domain/market/ports.go) — one small interface per external capability.
type TerrainProvider interface {
	// Terrain returns the terrain of a single world tile. Deterministic.
	Terrain(room shared.RoomCoord, x, y int) Terrain

	// HasRoad reports whether a tile carries the derived road bit.
	HasRoad(room shared.RoomCoord, x, y int) bool

	// DescribeExits returns the adjacent room in each cardinal direction
	// the room actually has an exit toward.
	DescribeExits(room shared.RoomCoord) map[shared.Exit]shared.RoomCoord
}
