// Package spawnorder implements the SpawnOrder queue (spec.md §3, §4.7's
// Spawning corp) and the lockstep spawn orchestrator (spec.md §4.10).
// Grounded on the teacher's application/manufacturing production-order
// idiom and other_examples' rts-engine production.go FIFO unit-queue
// (`prod.Queue = prod.Queue[1:]`), generalized from build-time-ratio
// progress accumulation to a host-engine spawnBody call gated on energy.
package spawnorder

import "github.com/google/uuid"

// CreepType is the body archetype a SpawnOrder requests, per spec.md §3.
type CreepType string

const (
	CreepMiner    CreepType = "miner"
	CreepHauler   CreepType = "hauler"
	CreepUpgrader CreepType = "upgrader"
	CreepBuilder  CreepType = "builder"
	CreepScout    CreepType = "scout"
	CreepJack     CreepType = "jack"
)

// SpawnOrder is one entry in a spawning corp's FIFO queue, per spec.md §3.
type SpawnOrder struct {
	ID                  string
	BuyerCorpID         string
	CreepType           CreepType
	WorkPartsRequested  int
	HaulDemandRequested int // 0 when not a hauler order
	QueuedAt            int64
}

// NewSpawnOrder builds a spawn order with a fresh id.
func NewSpawnOrder(buyerCorpID string, creepType CreepType, workPartsRequested int, haulDemandRequested int, queuedAt int64) SpawnOrder {
	return SpawnOrder{
		ID:                  uuid.New().String(),
		BuyerCorpID:         buyerCorpID,
		CreepType:           creepType,
		WorkPartsRequested:  workPartsRequested,
		HaulDemandRequested: haulDemandRequested,
		QueuedAt:            queuedAt,
	}
}
