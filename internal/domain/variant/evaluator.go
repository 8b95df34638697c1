package variant

import (
	"math"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// harvesterFillRate is how fast a CARRY part fills per tick when drop-mining
// (used only for decayCost's fillTime, spec.md §4.6 step 4).
const harvesterFillRate = 10

// Evaluator enumerates every (mode, harvester carry, haul ratio) tuple for
// one source→sink edge and selects the best feasible variant, per
// spec.md §4.6. Grounded on the teacher's
// application/manufacturing/services configuration-enumeration shape
// (enumerate candidate configurations, filter by constraint, pick best)
// and application/trading/services/arbitrage_opportunity_finder.go's
// steady-state scoring comparison across candidates.
type Evaluator struct{}

// NewEvaluator creates a stateless evaluator.
func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate enumerates every variant permitted by constraints for the given
// terrain profile, and returns the selected one plus the full candidate
// list (for diagnostics/console output). Returns false if no variant is
// feasible.
func (e *Evaluator) Evaluate(terrain Terrain, c Constraints) (EdgeVariant, []EdgeVariant, bool) {
	ratio := e.chooseRatio(terrain)
	var candidates []EdgeVariant
	for _, mode := range e.permittedModes(c) {
		for carryParts := 0; carryParts <= 4; carryParts++ {
			if carryParts == 0 && mode == ModeDrop {
				continue // spec.md §4.6 step 2: 0-carry only valid with container/link
			}
			if v, feasible := e.build(mode, carryParts, ratio, terrain, c); feasible {
				candidates = append(candidates, v)
			}
		}
	}
	if len(candidates) == 0 {
		return EdgeVariant{}, nil, false
	}

	sort.Slice(candidates, func(i, j int) bool { return e.less(candidates[i], candidates[j]) })
	return candidates[0], candidates, true
}

// permittedModes implements spec.md §4.6 step 1.
func (e *Evaluator) permittedModes(c Constraints) []MiningMode {
	modes := []MiningMode{ModeDrop}
	if c.CanBuildContainer {
		modes = append(modes, ModeContainer)
	}
	if c.CanBuildLink {
		modes = append(modes, ModeLink)
	}
	return modes
}

// chooseRatio implements spec.md §4.6 step 3: swamp anywhere on the edge
// forces RatioSwamp (1 MOVE : 2 CARRY); an all-road edge uses RatioAllRoad
// (2 MOVE : 1 CARRY); any other mix defaults to RatioPlain (1 MOVE : 1
// CARRY).
func (e *Evaluator) chooseRatio(t Terrain) HaulRatio {
	switch {
	case t.SwampTiles > 0:
		return RatioSwamp
	case t.PlainTiles == 0 && t.SwampTiles == 0 && t.RoadTiles > 0:
		return RatioAllRoad
	default:
		return RatioPlain
	}
}

// referenceHaulerCarryParts sizes a single hauler's CARRY parts at the
// given ratio to the largest body the host engine can spawn
// (shared.MaxPartsPerCreep). Spec.md §4.6 step 4 names the "carryParts"
// term in the haul-cost formulas but not how a hauler's own body is
// sized; maximizing it under the chosen ratio is the natural reading,
// since a larger hauler is strictly more throughput-efficient per
// haulersNeeded.
func referenceHaulerCarryParts(ratio HaulRatio) int {
	unit := ratio.Move + ratio.Carry
	if unit <= 0 {
		return 0
	}
	units := shared.MaxPartsPerCreep / unit
	return units * ratio.Carry
}

// build computes every derived field for one tuple, per spec.md §4.6 steps
// 4-7, applying the body-part distributor (step 6) and the infrastructure
// and mining-spot caps (step 7). Returns feasible=false if the tuple
// cannot be made to fit within constraints.
func (e *Evaluator) build(mode MiningMode, carryParts int, ratio HaulRatio, terrain Terrain, c Constraints) (EdgeVariant, bool) {
	grossPerTick := float64(c.SourceCapacity) / float64(shared.SourceRegenTicks)

	tileCostSum := terrain.RoadTiles*spatialRoadCost + terrain.PlainTiles*spatialPlainCost + terrain.SwampTiles*spatialSwampCost
	roundTripTicks := float64(2 * tileCostSum)
	if roundTripTicks <= 0 {
		roundTripTicks = 2 // adjacent edge, minimal round trip
	}
	lifetime := float64(shared.CreepLifetime)

	haulerCarryParts := referenceHaulerCarryParts(ratio)
	carryPerTrip := float64(haulerCarryParts * 50)
	tripsPerLife := math.Floor(lifetime / roundTripTicks)
	throughput := carryPerTrip * tripsPerLife / lifetime
	haulersNeeded := 0
	if throughput > 0 {
		haulersNeeded = int(math.Ceil(grossPerTick / throughput))
	}

	workParts := workPartsFor(grossPerTick)
	moveParts := int(math.Ceil(float64(workParts+carryParts) / 2))
	harvesterTotalParts := workParts + carryParts + moveParts

	// Body-part distributor (step 6): split total harvester parts demand
	// across N creeps so each fits spawnEnergyCapacity.
	n, _ := distribute(harvesterTotalParts, c.SpawnEnergyCapacity)
	if n == 0 {
		return EdgeVariant{}, false
	}

	// bodyCost is spec.md §4.6 step 4's literal
	// `5×100 + carryParts×50 + 3×50`: a fixed 5-WORK, 3-MOVE reference
	// harvester plus the variant's carry parts.
	bodyCost := 5*float64(shared.WorkPartCost) + float64(carryParts)*float64(shared.CarryPartCost) + 3*float64(shared.MovePartCost)
	travelOverhead := 2 * float64(c.SpawnToSourceDistance) * grossPerTick / lifetime
	harvesterCost := (bodyCost + travelOverhead) / lifetime

	haulerMoveParts := haulerCarryParts / max1(ratio.Carry) * ratio.Move
	haulerBodyCost := float64(haulerCarryParts*shared.CarryPartCost + haulerMoveParts*shared.MovePartCost)
	haulCost := float64(haulersNeeded) * haulerBodyCost / lifetime

	fillTime := 0.0
	if mode == ModeDrop {
		fillTime = float64(carryParts*50) / harvesterFillRate
	}
	decayFraction := math.Max(0, roundTripTicks-fillTime) / roundTripTicks
	decayCost := float64(c.MiningSpots) * decayFraction

	infrastructureCost := 0.0
	if mode == ModeContainer || mode == ModeLink {
		infrastructureCost = infrastructureAmortization(mode)
	}
	if infrastructureCost > c.InfrastructureBudget {
		return EdgeVariant{}, false
	}
	if c.MiningSpots <= 0 {
		return EdgeVariant{}, false
	}

	net := grossPerTick - harvesterCost - haulCost - decayCost - infrastructureCost
	efficiency := 0.0
	if grossPerTick > 0 {
		efficiency = net / grossPerTick
	}

	return EdgeVariant{
		id:                  variantID(mode, carryParts, ratio),
		mode:                mode,
		harvesterCarryParts: carryParts,
		haulRatio:           ratio,
		grossPerTick:        grossPerTick,
		harvesterCost:       harvesterCost,
		haulCost:            haulCost,
		decayCost:           decayCost,
		infrastructureCost:  infrastructureCost,
		haulersNeeded:       haulersNeeded,
		miningSpots:         c.MiningSpots,
		efficiency:          efficiency,
	}, true
}

// less implements spec.md §4.6's tie-breaking: higher efficiency → fewer
// haulers → lower infrastructure cost → lexicographic variant id.
func (e *Evaluator) less(a, b EdgeVariant) bool {
	if a.efficiency != b.efficiency {
		return a.efficiency > b.efficiency
	}
	if a.haulersNeeded != b.haulersNeeded {
		return a.haulersNeeded < b.haulersNeeded
	}
	if a.infrastructureCost != b.infrastructureCost {
		return a.infrastructureCost < b.infrastructureCost
	}
	return a.id < b.id
}

const (
	spatialRoadCost  = 1
	spatialPlainCost = 2
	spatialSwampCost = 10
)

// workPartsFor sizes the harvester's WORK parts to keep up with regen,
// per spec.md §4.7 harvest corp contract: sum = ceil(grossPerTick/2).
func workPartsFor(grossPerTick float64) int {
	return int(math.Ceil(grossPerTick / 2))
}

// infrastructureAmortizationTicks is how many ticks a container/link
// structure's build cost is spread across, per spec.md §4.6 step 4's
// "infrastructureCost = containerOrLinkAmortization (spread across
// lifetime of structure)".
const infrastructureAmortizationTicks = 5000

// containerBuildCost and linkBuildCost are the host engine's standard
// structure costs.
const (
	containerBuildCost = 5000
	linkBuildCost      = 5000
)

func infrastructureAmortization(mode MiningMode) float64 {
	cost := containerBuildCost
	if mode == ModeLink {
		cost = linkBuildCost
	}
	return float64(cost) / infrastructureAmortizationTicks
}

func max1(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}

// Distribute is exported for the corp package: given a total part demand
// and a spawn's energy capacity, split it across N creeps so each creep's
// body fits, per spec.md §4.6 step 6: N = ceil(totalParts/maxPartsPerCreep),
// partsPerCreep = ceil(totalParts/N).
func Distribute(totalParts, spawnEnergyCapacity int) (n, partsPerCreep int) {
	return distribute(totalParts, spawnEnergyCapacity)
}

func distribute(totalParts, spawnEnergyCapacity int) (n, partsPerCreep int) {
	if totalParts <= 0 {
		return 0, 0
	}
	maxParts := spawnEnergyCapacity / shared.WorkPartCost // coarse cap: cheapest part costs at least this little
	if maxParts <= 0 || maxParts > shared.MaxPartsPerCreep {
		maxParts = shared.MaxPartsPerCreep
	}
	n = int(math.Ceil(float64(totalParts) / float64(maxParts)))
	if n <= 0 {
		n = 1
	}
	partsPerCreep = int(math.Ceil(float64(totalParts) / float64(n)))
	return n, partsPerCreep
}
