package spawnorder

// SourceDemand is one source's current vs. target miner count, as
// computed by the surveyor/edge-variant evaluator for a room, per
// spec.md §4.10 step 1.
type SourceDemand struct {
	SourceID     string
	Miners       int
	TargetMiners int
}

// RoomDemand is the per-room input the lockstep orchestrator consumes
// each tick, per spec.md §4.10.
type RoomDemand struct {
	RoomID               string
	Sources              []SourceDemand
	Haulers              int
	TargetHaulers        int
	ControllerLevel      int
	HasConstructionSites bool
	HasUpgrader          bool
	MaxUpgraderWorkParts int // capped at 5, per spec.md §4.10 step 5
}

func (r RoomDemand) totalTargetMiners() int {
	total := 0
	for _, s := range r.Sources {
		total += s.TargetMiners
	}
	return total
}

func (r RoomDemand) totalMiners() int {
	total := 0
	for _, s := range r.Sources {
		total += s.Miners
	}
	return total
}

func (r RoomDemand) minersSaturated() bool {
	for _, s := range r.Sources {
		if s.Miners < s.TargetMiners {
			return false
		}
	}
	return true
}

func (r RoomDemand) haulersSaturated() bool {
	return r.Haulers >= r.TargetHaulers
}

func (r RoomDemand) hasLiveMiner() bool {
	return r.totalMiners() > 0
}

func (r RoomDemand) sourceNeedingMiner() (SourceDemand, bool) {
	for _, s := range r.Sources {
		if s.Miners < s.TargetMiners {
			return s, true
		}
	}
	return SourceDemand{}, false
}

// Orchestrator is the spawn-order lockstep policy, per spec.md §4.10.
// Grounded on the teacher's manufacturing production-order sequencing
// rules, generalized to the miner/hauler/builder/upgrader priority
// ladder this domain requires.
type Orchestrator struct{}

// NewOrchestrator builds a stateless lockstep orchestrator; all state
// lives in the Queue and RoomDemand passed to Plan.
func NewOrchestrator() *Orchestrator { return &Orchestrator{} }

// Plan enqueues at most one spawn order into queue for the room, per
// spec.md §4.10 steps 2-5. It does nothing if queue is already full
// (step: "For each owned room ... whose pending-order queue is below
// max").
func (o *Orchestrator) Plan(tick int64, buyerCorpID string, room RoomDemand, queue *Queue) {
	if queue.Full() {
		return
	}

	// Lockstep rule (step 2): haulers never exceed miners+1; miners
	// never exceed haulers+1 unless haulers have already saturated
	// their target.
	source, needsMiner := room.sourceNeedingMiner()
	if needsMiner && (room.Haulers >= room.totalMiners() || room.haulersSaturated()) {
		queue.Enqueue(NewSpawnOrder(buyerCorpID, CreepMiner, source.TargetMiners, 0, tick))
		return
	}

	if room.Haulers < room.TargetHaulers && room.hasLiveMiner() && room.Haulers <= room.totalMiners() {
		deficit := room.TargetHaulers - room.Haulers
		queue.Enqueue(NewSpawnOrder(buyerCorpID, CreepHauler, 0, deficit, tick))
		return
	}

	// Step 5: mining infrastructure is "complete" per controller level.
	infrastructureComplete := room.hasLiveMiner() && room.Haulers > 0
	if room.ControllerLevel >= 3 {
		infrastructureComplete = room.minersSaturated() && room.haulersSaturated()
	}
	if !infrastructureComplete {
		return
	}

	if room.HasConstructionSites {
		queue.Enqueue(NewSpawnOrder(buyerCorpID, CreepBuilder, 0, 0, tick))
		return
	}

	if !room.HasUpgrader {
		workParts := room.MaxUpgraderWorkParts
		if workParts <= 0 || workParts > 5 {
			workParts = 5
		}
		queue.Enqueue(NewSpawnOrder(buyerCorpID, CreepUpgrader, workParts, 0, tick))
	}
}
