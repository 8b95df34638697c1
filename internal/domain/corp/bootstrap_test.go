package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

func TestBootstrap_WorkEnqueuesOneJackPerSourceWithinBudget(t *testing.T) {
	queue := spawnorder.NewQueue()
	b := corp.NewBootstrap("bootstrap-1", "W1N1", []string{"source-1", "source-2"}, queue)
	b.RecordSpawnCapacity(2000) // plenty for two 200-energy jacks

	require.NoError(t, b.Work(0))

	assert.Equal(t, 2, queue.Len())
}

func TestBootstrap_WorkIsNoOpOnceMiningPairComplete(t *testing.T) {
	queue := spawnorder.NewQueue()
	b := corp.NewBootstrap("bootstrap-1", "W1N1", []string{"source-1"}, queue)
	b.RecordSpawnCapacity(2000)
	b.RecordMiningPairComplete(true)

	require.NoError(t, b.Work(0))
	assert.Equal(t, 0, queue.Len())
}

func TestBootstrap_WorkCapsAtAffordableCountUnderTightBudget(t *testing.T) {
	queue := spawnorder.NewQueue()
	b := corp.NewBootstrap("bootstrap-1", "W1N1", []string{"source-1", "source-2"}, queue)
	b.RecordSpawnCapacity(200) // affords exactly one jack

	require.NoError(t, b.Work(0))
	assert.Equal(t, 1, queue.Len())
}
