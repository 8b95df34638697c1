package spawnorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

func TestQueue_EnqueueRejectsBeyondMaxPendingOrders(t *testing.T) {
	q := spawnorder.NewQueue()
	assert.True(t, q.Enqueue(spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepMiner, 5, 0, 0)))
	assert.True(t, q.Enqueue(spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepHauler, 0, 2, 1)))
	assert.False(t, q.Enqueue(spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepBuilder, 0, 0, 2)))
	assert.Equal(t, 2, q.Len())
	assert.True(t, q.Full())
}

func TestQueue_PopDrainsFIFO(t *testing.T) {
	q := spawnorder.NewQueue()
	first := spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepMiner, 5, 0, 0)
	q.Enqueue(first)

	head, ok := q.Pop()
	require.True(t, ok)
	assert.Equal(t, first.ID, head.ID)
	assert.Equal(t, 0, q.Len())

	_, ok = q.Pop()
	assert.False(t, ok)
}

func TestQueue_EvictDropsOrdersOlderThanTTL(t *testing.T) {
	q := spawnorder.NewQueue()
	q.Enqueue(spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepMiner, 5, 0, 0))

	evicted := q.Evict(1000)
	assert.Equal(t, 0, evicted)
	assert.Equal(t, 1, q.Len())

	evicted = q.Evict(2000)
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_ClearDrainsAllPendingOrders(t *testing.T) {
	q := spawnorder.NewQueue()
	q.Enqueue(spawnorder.NewSpawnOrder("corp-1", spawnorder.CreepMiner, 5, 0, 0))
	q.Clear()
	assert.Equal(t, 0, q.Len())
	assert.False(t, q.Full())
}
