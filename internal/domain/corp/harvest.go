package corp

import (
	"math"

	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
	"github.com/ShadyMccoy/colony-controller/internal/domain/variant"
)

// planningIntervalTicks is how far ahead a harvest corp's sell offer
// commits, per spec.md §3's "variants are recomputed every planning
// interval (typically every 50 ticks per corp, staggered)".
const planningIntervalTicks = 50

// harvestMargin is the markup over marginal cost a harvest corp asks,
// per spec.md §4.7: "sells ... at marginalCost × (1+margin)".
const harvestMargin = 0.2

// Harvest sells energy at a per-tile location, per spec.md §4.7.
type Harvest struct {
	Base

	sourceID      string
	deliveryTile  string
	terrain       variant.Terrain
	constraints   variant.Constraints
	chosenVariant variant.EdgeVariant

	assignedWorkParts int

	evaluator *variant.Evaluator
	queue     *spawnorder.Queue
}

// NewHarvest builds a harvest corp assigned to one source.
func NewHarvest(id, sourceID, deliveryTile string, terrain variant.Terrain, constraints variant.Constraints, evaluator *variant.Evaluator, queue *spawnorder.Queue) *Harvest {
	return &Harvest{
		Base:         NewBase(id, TypeHarvest),
		sourceID:     sourceID,
		deliveryTile: deliveryTile,
		terrain:      terrain,
		constraints:  constraints,
		evaluator:    evaluator,
		queue:        queue,
	}
}

// Queue exposes the corp's spawn queue for console introspection
// (spec.md §6 "clearSpawnQueue"/"marketStatus").
func (h *Harvest) Queue() *spawnorder.Queue { return h.queue }

// RecordWorkParts is how the (out-of-scope) per-agent micro-controllers
// report the sum of WORK parts across this corp's live miners.
func (h *Harvest) RecordWorkParts(workParts int) {
	h.assignedWorkParts = workParts
}

// Plan asks the variant evaluator for the current best configuration
// given live spawn capacity and terrain (spec.md §4.7).
func (h *Harvest) Plan(tick int64) error {
	v, _, ok := h.evaluator.Evaluate(h.terrain, h.constraints)
	if !ok {
		return shared.NewEphemeralError("harvest: no feasible edge variant for source " + h.sourceID)
	}
	h.chosenVariant = v
	return nil
}

// Buys is always empty: a harvest corp has nothing to purchase.
func (h *Harvest) Buys(tick int64) []market.Offer { return nil }

// Sells posts up to grossPerTick×duration energy at marginalCost×(1+margin).
func (h *Harvest) Sells(tick int64) []market.Offer {
	if h.chosenVariant.GrossPerTick() <= 0 {
		return nil
	}
	quantity := int(h.chosenVariant.GrossPerTick() * float64(planningIntervalTicks))
	if quantity <= 0 {
		return nil
	}
	marginalCost := h.marginalCost()
	offer, err := market.NewOffer(h.ID(), market.SideSell, "energy", quantity, marginalCost*(1+harvestMargin), h.deliveryTile, planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// marginalCost is the per-unit harvester+haul+decay+infrastructure cost
// the chosen variant already prices in, per spec.md §4.6.
func (h *Harvest) marginalCost() float64 {
	if h.chosenVariant.GrossPerTick() <= 0 {
		return 0
	}
	totalCost := h.chosenVariant.HarvesterCost() + h.chosenVariant.HaulCost() + h.chosenVariant.DecayCost() + h.chosenVariant.InfrastructureCost()
	return totalCost / h.chosenVariant.GrossPerTick()
}

// targetWorkParts mirrors spec.md §4.7's sizing rule: ceil(grossPerTick/2).
func (h *Harvest) targetWorkParts() int {
	return int(math.Ceil(h.chosenVariant.GrossPerTick() / 2))
}

// Work requests spawn orders when the assigned agents fall below the
// target WORK-part sum (spec.md §4.7).
func (h *Harvest) Work(tick int64) error {
	target := h.targetWorkParts()
	if h.assignedWorkParts >= target {
		return nil
	}
	if h.queue.Full() {
		return shared.NewEphemeralError("harvest: spawn queue full for " + h.ID())
	}
	h.queue.Enqueue(spawnorder.NewSpawnOrder(h.ID(), spawnorder.CreepMiner, target-h.assignedWorkParts, 0, tick))
	return nil
}

// Execute has nothing to settle directly: delivery of mined energy is
// driven by the per-agent micro-controllers (out of scope); the corp
// only records the bookkeeping once told via RecordDelivery.
func (h *Harvest) Execute(contracts []*market.Contract, tick int64) error { return nil }

// Serialize round-trips the corp's persisted state (spec.md §6).
func (h *Harvest) Serialize() ([]byte, error) {
	return marshal(harvestData{
		Base:              h.Base,
		SourceID:          h.sourceID,
		DeliveryTile:      h.deliveryTile,
		Terrain:           h.terrain,
		Constraints:       h.constraints,
		AssignedWorkParts: h.assignedWorkParts,
	})
}

func (h *Harvest) Deserialize(data []byte) error {
	var d harvestData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	h.Base = d.Base
	h.sourceID = d.SourceID
	h.deliveryTile = d.DeliveryTile
	h.terrain = d.Terrain
	h.constraints = d.Constraints
	h.assignedWorkParts = d.AssignedWorkParts
	return nil
}

type harvestData struct {
	Base              `json:"base"`
	SourceID          string             `json:"sourceId"`
	DeliveryTile      string             `json:"deliveryTile"`
	Terrain           variant.Terrain    `json:"terrain"`
	Constraints       variant.Constraints `json:"constraints"`
	AssignedWorkParts int                `json:"assignedWorkParts"`
}
