package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

func TestHaul_BuysBidsAtDestinationPremiumOverExpectedSellPrice(t *testing.T) {
	queue := spawnorder.NewQueue()
	h := corp.NewHaul("haul-1", "W1N1:1,1", "W1N1:40,40", "energy", 5, queue)
	h.RecordExpectedSellPrice(2.0)

	offers := h.Buys(0)
	require.Len(t, offers, 1)
	assert.InDelta(t, 2.4, offers[0].Price(), 1e-9) // 1.2 * 2.0
}

func TestHaul_WorkRequestsHaulerOnShortDelivery(t *testing.T) {
	queue := spawnorder.NewQueue()
	h := corp.NewHaul("haul-1", "src", "sink", "energy", 10, queue)
	h.RecordCarriedThroughput(4)

	require.NoError(t, h.Work(0))

	require.Equal(t, 1, queue.Len())
	order, _ := queue.Peek()
	assert.Equal(t, spawnorder.CreepHauler, order.CreepType)
	assert.Equal(t, 6, order.HaulDemandRequested)
}

func TestHaul_WorkDoesNothingWhenThroughputMeetsRequirement(t *testing.T) {
	queue := spawnorder.NewQueue()
	h := corp.NewHaul("haul-1", "src", "sink", "energy", 10, queue)
	h.RecordCarriedThroughput(10)

	require.NoError(t, h.Work(0))
	assert.Equal(t, 0, queue.Len())
}

func TestHaul_RecordAcquisitionCostIgnoresOtherCorpsAndResources(t *testing.T) {
	queue := spawnorder.NewQueue()
	h := corp.NewHaul("haul-1", "src", "sink", "energy", 10, queue)

	h.RecordAcquisitionCost("other-corp", "energy", 99)
	h.RecordAcquisitionCost("haul-1", "minerals", 99)
	h.RecordExpectedSellPrice(1.0)

	offers := h.Sells(0)
	require.Len(t, offers, 1)
	assert.Equal(t, 1.0, offers[0].Price()) // neither mismatched call should have applied
}
