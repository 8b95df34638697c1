package spawnorder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

func TestOrchestrator_EnqueuesMinerWhenSourceUnderTargetAndHaulersKeepPace(t *testing.T) {
	o := spawnorder.NewOrchestrator()
	q := spawnorder.NewQueue()
	room := spawnorder.RoomDemand{
		RoomID:  "W1N1",
		Sources: []spawnorder.SourceDemand{{SourceID: "src-1", Miners: 0, TargetMiners: 1}},
		Haulers: 0, TargetHaulers: 1,
	}

	o.Plan(10, "corp-1", room, q)

	require.Equal(t, 1, q.Len())
	order, _ := q.Peek()
	assert.Equal(t, spawnorder.CreepMiner, order.CreepType)
}

func TestOrchestrator_WithholdsMinerWhenHaulersAlreadyBehindMiners(t *testing.T) {
	o := spawnorder.NewOrchestrator()
	q := spawnorder.NewQueue()
	room := spawnorder.RoomDemand{
		RoomID:  "W1N1",
		Sources: []spawnorder.SourceDemand{{SourceID: "src-1", Miners: 2, TargetMiners: 3}},
		Haulers: 0, TargetHaulers: 2,
	}

	o.Plan(10, "corp-1", room, q)

	require.Equal(t, 1, q.Len())
	order, _ := q.Peek()
	assert.Equal(t, spawnorder.CreepHauler, order.CreepType, "lockstep rule: haulers(0) < miners(2) means hauler goes first")
}

func TestOrchestrator_EnqueuesBuilderOnceMiningInfrastructureComplete(t *testing.T) {
	o := spawnorder.NewOrchestrator()
	q := spawnorder.NewQueue()
	room := spawnorder.RoomDemand{
		RoomID:               "W1N1",
		Sources:              []spawnorder.SourceDemand{{SourceID: "src-1", Miners: 1, TargetMiners: 1}},
		Haulers:              1,
		TargetHaulers:        1,
		ControllerLevel:      1,
		HasConstructionSites: true,
	}

	o.Plan(10, "corp-1", room, q)

	require.Equal(t, 1, q.Len())
	order, _ := q.Peek()
	assert.Equal(t, spawnorder.CreepBuilder, order.CreepType)
}

func TestOrchestrator_EnqueuesUpgraderCappedAtFiveWorkPartsWhenNoConstructionSites(t *testing.T) {
	o := spawnorder.NewOrchestrator()
	q := spawnorder.NewQueue()
	room := spawnorder.RoomDemand{
		RoomID:               "W1N1",
		Sources:              []spawnorder.SourceDemand{{SourceID: "src-1", Miners: 1, TargetMiners: 1}},
		Haulers:              1,
		TargetHaulers:        1,
		ControllerLevel:      1,
		HasConstructionSites: false,
		HasUpgrader:          false,
		MaxUpgraderWorkParts: 12,
	}

	o.Plan(10, "corp-1", room, q)

	require.Equal(t, 1, q.Len())
	order, _ := q.Peek()
	assert.Equal(t, spawnorder.CreepUpgrader, order.CreepType)
	assert.Equal(t, 5, order.WorkPartsRequested)
}

func TestOrchestrator_RequiresSaturationAtControllerLevelThreeBeforeUpgrader(t *testing.T) {
	o := spawnorder.NewOrchestrator()
	q := spawnorder.NewQueue()
	room := spawnorder.RoomDemand{
		RoomID:          "W1N1",
		Sources:         []spawnorder.SourceDemand{{SourceID: "src-1", Miners: 2, TargetMiners: 2}},
		Haulers:         1,
		TargetHaulers:   2,
		ControllerLevel: 3,
		HasUpgrader:     false,
	}

	o.Plan(10, "corp-1", room, q)

	require.Equal(t, 1, q.Len())
	order, _ := q.Peek()
	assert.Equal(t, spawnorder.CreepHauler, order.CreepType, "level>=3 requires miners and haulers both saturated before an upgrader is considered")
}
