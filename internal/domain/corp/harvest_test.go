package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
	"github.com/ShadyMccoy/colony-controller/internal/domain/variant"
)

func feasibleConstraints() variant.Constraints {
	return variant.Constraints{
		SpawnEnergyCapacity:   2300,
		CanBuildContainer:     true,
		InfrastructureBudget:  10,
		SourceCapacity:        3000,
		SpawnToSourceDistance: 10,
		MiningSpots:           3,
	}
}

func TestHarvest_PlanSelectsFeasibleVariantAndSellsEnergy(t *testing.T) {
	evaluator := variant.NewEvaluator()
	queue := spawnorder.NewQueue()
	h := corp.NewHarvest("harvest-1", "source-1", "W1N1:10,10", variant.Terrain{PlainTiles: 5}, feasibleConstraints(), evaluator, queue)

	require.NoError(t, h.Plan(0))

	offers := h.Sells(0)
	require.Len(t, offers, 1)
	assert.Equal(t, "energy", offers[0].Resource())
	assert.Greater(t, offers[0].Quantity(), 0)
	assert.Empty(t, h.Buys(0))
}

func TestHarvest_WorkRequestsSpawnOrderWhenUnderstaffed(t *testing.T) {
	evaluator := variant.NewEvaluator()
	queue := spawnorder.NewQueue()
	h := corp.NewHarvest("harvest-1", "source-1", "", variant.Terrain{PlainTiles: 5}, feasibleConstraints(), evaluator, queue)
	require.NoError(t, h.Plan(0))

	h.RecordWorkParts(0)
	require.NoError(t, h.Work(10))

	require.Equal(t, 1, queue.Len())
	order, _ := queue.Peek()
	assert.Equal(t, spawnorder.CreepMiner, order.CreepType)
}

func TestHarvest_WorkDoesNothingWhenStaffed(t *testing.T) {
	evaluator := variant.NewEvaluator()
	queue := spawnorder.NewQueue()
	h := corp.NewHarvest("harvest-1", "source-1", "", variant.Terrain{PlainTiles: 5}, feasibleConstraints(), evaluator, queue)
	require.NoError(t, h.Plan(0))

	h.RecordWorkParts(100)
	require.NoError(t, h.Work(10))
	assert.Equal(t, 0, queue.Len())
}

func TestHarvest_SerializeDeserializeRoundTrips(t *testing.T) {
	evaluator := variant.NewEvaluator()
	queue := spawnorder.NewQueue()
	h := corp.NewHarvest("harvest-1", "source-1", "W1N1:1,1", variant.Terrain{PlainTiles: 5}, feasibleConstraints(), evaluator, queue)
	require.NoError(t, h.Plan(0))
	h.RecordWorkParts(7)
	h.RecordRevenue(42)

	data, err := h.Serialize()
	require.NoError(t, err)

	restored := corp.NewHarvest("", "", "", variant.Terrain{}, variant.Constraints{}, evaluator, queue)
	require.NoError(t, restored.Deserialize(data))

	assert.Equal(t, h.ID(), restored.ID())
	assert.Equal(t, h.Balance(), restored.Balance())
}
