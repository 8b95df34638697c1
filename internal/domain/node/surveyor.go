package node

import (
	"math"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// NeighborSummary is the thin view of an adjacent node the surveyor needs:
// enough to price a hauling corp or discount an expansion candidate,
// without requiring the full Node (keeps surveying independent of how
// neighbors are looked up — registry, cache, or test fixture).
type NeighborSummary struct {
	NodeID          string
	HasSink         bool
	SourceResources []Resource
	Distance        int
}

// Surveyor enumerates PotentialCorp candidates and aggregates a node's ROI,
// per spec.md §4.5. Grounded on the teacher's
// ContractProfitabilityService — a stateless service whose single public
// method delegates to small, named, single-purpose private steps.
type Surveyor struct{}

// NewSurveyor creates a new surveyor. It carries no state: scoring is a
// pure function of the node and its neighbors.
func NewSurveyor() *Surveyor {
	return &Surveyor{}
}

// Survey evaluates one node, returning its ROI record. distanceFromOwned is
// the spatial-graph hop count to the nearest owned node (0 if the node
// itself is owned); neighbors describes the nodes adjacent to n in the
// spatial graph.
func (s *Surveyor) Survey(n *Node, distanceFromOwned int, neighbors []NeighborSummary) ROI {
	var potentials []PotentialCorp
	rawROI := 0.0

	for _, r := range n.Resources() {
		switch r.Kind {
		case ResourceSource:
			if roi := s.miningROI(r); roi >= minPotentialCorpROI {
				potentials = append(potentials, PotentialCorp{Type: PotentialMining, EstimatedROI: roi, ResourceID: r.ID})
				rawROI += roi
			}
			for _, nb := range neighbors {
				if !nb.HasSink {
					continue
				}
				if roi := s.haulingROI(r, nb.Distance); roi >= minPotentialCorpROI {
					potentials = append(potentials, PotentialCorp{Type: PotentialHauling, EstimatedROI: roi, ResourceID: r.ID})
					rawROI += roi
				}
			}
		case ResourceSpawn:
			if roi := s.spawningROI(r); roi >= minPotentialCorpROI {
				potentials = append(potentials, PotentialCorp{Type: PotentialSpawning, EstimatedROI: roi, ResourceID: r.ID})
				rawROI += roi
			}
		case ResourceController:
			if r.Owned {
				if roi := s.upgradingROI(r); roi >= minPotentialCorpROI {
					potentials = append(potentials, PotentialCorp{Type: PotentialUpgrading, EstimatedROI: roi, ResourceID: r.ID})
					rawROI += roi
				}
			}
		}
	}

	sort.Slice(potentials, func(i, j int) bool {
		if potentials[i].Type != potentials[j].Type {
			return potentials[i].Type < potentials[j].Type
		}
		return potentials[i].ResourceID < potentials[j].ResourceID
	})

	return ROI{
		Score:             s.aggregateScore(rawROI, n.PeakHeight(), distanceFromOwned, n.IsOwned()),
		ExpansionScore:    s.aggregateExpansionScore(rawROI, n.PeakHeight(), n.IsOwned(), neighbors),
		RawCorpROI:        rawROI,
		PotentialCorps:    potentials,
		Openness:          n.PeakHeight(),
		DistanceFromOwned: distanceFromOwned,
		IsOwned:           n.IsOwned(),
		SourceCount:       n.SourceCount(),
		HasController:     n.HasController(),
	}
}

// miningROI implements spec.md §4.5:
//
//	(capacity/regen) × lifetime × energyValue − workParts × lifetime × workTickCost
//
// workParts is sized so the harvester's WORK parts can keep up with the
// source's regen rate (ceil(grossPerTick/2), WORK harvests 2 energy/tick);
// workTickCost amortizes one WORK part's body cost over its lifetime.
func (s *Surveyor) miningROI(r Resource) float64 {
	grossPerTick := float64(r.Capacity) / float64(r.RegenTicks)
	workParts := math.Ceil(grossPerTick / 2)
	lifetime := float64(shared.CreepLifetime)
	workTickCost := float64(shared.WorkPartCost) / lifetime
	return grossPerTick*lifetime*shared.EnergyValuePerUnit - workParts*lifetime*workTickCost
}

// spawningMarginRate is the "margin over energy input" spec.md §4.5
// describes without a concrete coefficient; a spawning corp's estimated
// ROI scales with how much energy it can turn over per lifetime.
const spawningMarginRate = 0.05

func (s *Surveyor) spawningROI(r Resource) float64 {
	return spawningMarginRate * float64(r.EnergyCapacity)
}

// upgradeValuePerLevel prices an owned controller's upgrading corp; spec.md
// §4.5 names the corp but not a formula, so this is a flat per-level
// estimate, refined later by the real minting rate in domain/ledger.
const upgradeValuePerLevel = 5.0

func (s *Surveyor) upgradingROI(r Resource) float64 {
	return upgradeValuePerLevel * float64(r.Level+1)
}

// haulAssumedCarryParts and haulAssumedTileCost give the surveyor a coarse,
// single-reference-hauler estimate; the real configuration (carry parts,
// terrain-specific MOVE:CARRY ratio) is chosen later by the edge-variant
// evaluator (spec.md §4.6).
const (
	haulAssumedCarryParts = 2
	haulAssumedTileCost   = 2
)

// haulingROI estimates a hauling corp's ROI for moving a source's output to
// a neighboring sink, scored by round-trip throughput minus carry-part
// amortization, with a destination premium of 1.2 (spec.md §4.5).
func (s *Surveyor) haulingROI(source Resource, distance int) float64 {
	if distance <= 0 {
		distance = 1
	}
	grossPerTick := float64(source.Capacity) / float64(source.RegenTicks)
	roundTrip := float64(2 * distance * haulAssumedTileCost)
	carryPerTrip := float64(haulAssumedCarryParts * shared.CarryPartCost)
	tripsPerLife := math.Floor(float64(shared.CreepLifetime) / roundTrip)
	throughput := carryPerTrip * tripsPerLife / float64(shared.CreepLifetime)
	haulerBodyCost := float64(haulAssumedCarryParts * (shared.CarryPartCost + shared.MovePartCost))
	haulCostPerTick := haulerBodyCost / float64(shared.CreepLifetime)
	netPerTick := math.Min(throughput, grossPerTick) - haulCostPerTick
	return netPerTick * float64(shared.CreepLifetime) * haulDestinationPremium / float64(shared.CreepLifetime)
}

// aggregateScore implements spec.md §4.5's node score: potential-corp ROI
// scaled by 50, plus an openness bonus, then either a logistics penalty
// (not owned) or a flat ownership bonus.
func (s *Surveyor) aggregateScore(rawROI float64, peakHeight, distanceFromOwned int, isOwned bool) float64 {
	value := rawROI * scoreROIScale
	value += float64(peakHeight) * opennessBonusPerHeight
	if isOwned {
		value += ownedBonus
	} else {
		value *= math.Pow(logisticsDecayBase, float64(distanceFromOwned))
	}
	return value
}

// aggregateExpansionScore implements spec.md §4.5's expansionScore: the
// same aggregation with no distance penalty, plus the discounted value of
// reachable sources from adjacent nodes, weighted by max(0.1, 1-distance/150).
func (s *Surveyor) aggregateExpansionScore(rawROI float64, peakHeight int, isOwned bool, neighbors []NeighborSummary) float64 {
	value := rawROI * scoreROIScale
	value += float64(peakHeight) * opennessBonusPerHeight
	if isOwned {
		value += ownedBonus
	}
	for _, nb := range neighbors {
		weight := math.Max(0.1, 1-float64(nb.Distance)/expansionDiscountHorizon)
		for _, src := range nb.SourceResources {
			value += s.miningROI(src) * weight
		}
	}
	return value
}
