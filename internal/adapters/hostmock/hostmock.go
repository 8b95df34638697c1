// Package hostmock is a deterministic, in-memory domain/host.Engine,
// used by scenario-eval and by tests that want a real Engine rather
// than a hand-rolled fake. Grounded on the teacher's
// adapters/routing.NewMockRoutingClient: a small struct holding
// pre-seeded fixture data, answering every port method from that data
// with no I/O and no randomness.
package hostmock

import (
	"fmt"
	"sync"

	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
)

// Room is one room's fixture data: a 50x50 terrain grid (index
// y*50+x) and its four exits, keyed by the RoomCoord string encoding
// application/tick's terrain adapter assumes.
type Room struct {
	Terrain [2500]host.Terrain
	Exits   host.Exits
}

// Engine is a deterministic host implementation over a fixed room set.
// Agents and spawns are tracked only as positions; commands always
// succeed unless the fixture was built with a failure injected via
// FailNextSpawn/FailNextCommand, which tests use to exercise the
// corps' ephemeral-error handling.
type Engine struct {
	mu sync.Mutex

	tick  int64
	rooms map[string]*Room

	agentPos map[string]agentLoc
	nextSpawnFails bool
	nextCommandFails bool
}

type agentLoc struct {
	room string
	x, y int
}

// New builds an engine with no rooms; use AddRoom to seed fixtures.
func New() *Engine {
	return &Engine{
		rooms:    make(map[string]*Room),
		agentPos: make(map[string]agentLoc),
	}
}

// AddRoom registers (or replaces) one room's terrain/exits fixture.
func (e *Engine) AddRoom(id string, room Room) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rooms[id] = &room
}

// Advance moves the mock's clock forward by one tick, mirroring the
// real host's own tick cadence.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.tick++
}

// FailNextSpawn makes the next SpawnBody call report Busy rather than
// succeeding, without returning an error (spec.md §4.7's distinction
// between a soft spawn-queue conflict and a hard RPC failure).
func (e *Engine) FailNextSpawn() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextSpawnFails = true
}

// FailNextCommand makes the next agent command (move/transfer/harvest/
// upgrade/build) return an error, simulating an unreachable host.
func (e *Engine) FailNextCommand() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextCommandFails = true
}

func (e *Engine) Terrain(room string, x, y int) host.Terrain {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.rooms[room]
	if !ok || x < 0 || x >= 50 || y < 0 || y >= 50 {
		return host.TerrainWall
	}
	return r.Terrain[y*50+x]
}

func (e *Engine) Time() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.tick
}

func (e *Engine) DescribeExits(room string) host.Exits {
	e.mu.Lock()
	defer e.mu.Unlock()
	r, ok := e.rooms[room]
	if !ok {
		return host.Exits{}
	}
	return r.Exits
}

func (e *Engine) SpawnBody(spawnID string, parts []string, name string, role string) (host.SpawnResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.nextSpawnFails {
		e.nextSpawnFails = false
		return host.SpawnResult{Busy: true}, nil
	}
	if len(parts) == 0 {
		return host.SpawnResult{NotEnoughEnergy: true}, nil
	}
	e.agentPos[name] = agentLoc{room: spawnID}
	return host.SpawnResult{OK: true}, nil
}

func (e *Engine) checkCommandFailure() error {
	if e.nextCommandFails {
		e.nextCommandFails = false
		return fmt.Errorf("hostmock: injected command failure")
	}
	return nil
}

func (e *Engine) MoveAgent(agentID string, room string, x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.checkCommandFailure(); err != nil {
		return err
	}
	e.agentPos[agentID] = agentLoc{room: room, x: x, y: y}
	return nil
}

func (e *Engine) Transfer(agentID, targetID, resource string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkCommandFailure()
}

func (e *Engine) Harvest(agentID, sourceID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkCommandFailure()
}

func (e *Engine) Upgrade(agentID, controllerID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkCommandFailure()
}

func (e *Engine) Build(agentID, siteID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.checkCommandFailure()
}

var _ host.Engine = (*Engine)(nil)
