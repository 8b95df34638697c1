// Package host declares the port the core expects the host engine to
// satisfy (spec.md §6). It is deliberately thin and side-effecting —
// terrain/time are pure queries, the rest are per-tick commands whose
// results the core only inspects for success/failure (spec.md §4.7's
// corps swallow host RPC failures as ephemeral errors, never propagate
// them). Grounded on the teacher's adapters/grpc client port shape:
// one small interface per external system, declared where it is
// consumed.
package host

// Terrain is the tile classification the host returns for any world tile.
type Terrain string

const (
	TerrainWall  Terrain = "wall"
	TerrainPlain Terrain = "plain"
	TerrainSwamp Terrain = "swamp"
)

// SpawnResult is what spawnBody reports back, per spec.md §6.
type SpawnResult struct {
	OK              bool
	NotEnoughEnergy bool
	Busy            bool
}

// Exits names the four cardinal room-adjacency slots, per spec.md §6's
// describeExits.
type Exits struct {
	Top, Right, Bottom, Left string
}

// Engine is the host engine contract the core actuates against. Agent
// and spawn identifiers are opaque strings minted by the host.
type Engine interface {
	Terrain(room string, x, y int) Terrain
	Time() int64
	DescribeExits(room string) Exits

	SpawnBody(spawnID string, parts []string, name string, role string) (SpawnResult, error)

	MoveAgent(agentID string, room string, x, y int) error
	Transfer(agentID, targetID, resource string, quantity int) error
	Harvest(agentID, sourceID string) error
	Upgrade(agentID, controllerID string) error
	Build(agentID, siteID string) error
}
