package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

type fakeEngine struct {
	spawnResult host.SpawnResult
	spawnErr    error
	spawnCalls  int
}

func (e *fakeEngine) Terrain(room string, x, y int) host.Terrain { return host.TerrainPlain }
func (e *fakeEngine) Time() int64                                { return 0 }
func (e *fakeEngine) DescribeExits(room string) host.Exits       { return host.Exits{} }
func (e *fakeEngine) SpawnBody(spawnID string, parts []string, name string, role string) (host.SpawnResult, error) {
	e.spawnCalls++
	return e.spawnResult, e.spawnErr
}
func (e *fakeEngine) MoveAgent(agentID, room string, x, y int) error            { return nil }
func (e *fakeEngine) Transfer(agentID, targetID, resource string, qty int) error { return nil }
func (e *fakeEngine) Harvest(agentID, sourceID string) error                    { return nil }
func (e *fakeEngine) Upgrade(agentID, controllerID string) error                { return nil }
func (e *fakeEngine) Build(agentID, siteID string) error                        { return nil }

func TestSpawning_WorkPopsQueueOnSuccessfulSpawn(t *testing.T) {
	queue := spawnorder.NewQueue()
	queue.Enqueue(spawnorder.NewSpawnOrder("harvest-1", spawnorder.CreepMiner, 5, 0, 0))
	engine := &fakeEngine{spawnResult: host.SpawnResult{OK: true}}
	s := corp.NewSpawning("spawning-1", "spawn-1", queue, engine)

	require.NoError(t, s.Work(1))

	assert.Equal(t, 1, engine.spawnCalls)
	assert.Equal(t, 0, queue.Len())
}

func TestSpawning_WorkLeavesOrderQueuedWhenNotEnoughEnergy(t *testing.T) {
	queue := spawnorder.NewQueue()
	queue.Enqueue(spawnorder.NewSpawnOrder("harvest-1", spawnorder.CreepMiner, 5, 0, 0))
	engine := &fakeEngine{spawnResult: host.SpawnResult{NotEnoughEnergy: true}}
	s := corp.NewSpawning("spawning-1", "spawn-1", queue, engine)

	err := s.Work(1)

	assert.Error(t, err)
	assert.Equal(t, 1, queue.Len())
}

func TestSpawning_WorkIsNoOpWithEmptyQueue(t *testing.T) {
	queue := spawnorder.NewQueue()
	engine := &fakeEngine{}
	s := corp.NewSpawning("spawning-1", "spawn-1", queue, engine)

	require.NoError(t, s.Work(1))
	assert.Equal(t, 0, engine.spawnCalls)
}

func TestSpawning_SellsPostsRemainingCapacityUnlessQueueFull(t *testing.T) {
	queue := spawnorder.NewQueue()
	queue.Enqueue(spawnorder.NewSpawnOrder("harvest-1", spawnorder.CreepMiner, 5, 0, 0))
	s := corp.NewSpawning("spawning-1", "spawn-1", queue, &fakeEngine{})

	offers := s.Sells(0)
	require.Len(t, offers, 1)
	assert.Equal(t, "work-ticks", offers[0].Resource())

	queue.Enqueue(spawnorder.NewSpawnOrder("haul-1", spawnorder.CreepHauler, 0, 2, 0))
	assert.Empty(t, s.Sells(0), "queue is now full (max 2 pending orders)")
}
