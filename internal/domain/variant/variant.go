package variant

import (
	"fmt"
)

// MiningMode is how a harvester delivers energy at the source, per
// spec.md §4.6 step 1.
type MiningMode string

const (
	ModeDrop      MiningMode = "drop"
	ModeContainer MiningMode = "container"
	ModeLink      MiningMode = "link"
)

// HaulRatio is a hauler's MOVE:CARRY part ratio, per spec.md §4.6 step 3.
type HaulRatio struct {
	Move  int
	Carry int
}

var (
	RatioAllRoad = HaulRatio{Move: 2, Carry: 1}
	RatioPlain   = HaulRatio{Move: 1, Carry: 1}
	RatioSwamp   = HaulRatio{Move: 1, Carry: 2}
)

// String renders the ratio as "move:carry", matching the variant id scheme
// (e.g. "drop-1c-2:1").
func (r HaulRatio) String() string {
	return fmt.Sprintf("%d:%d", r.Move, r.Carry)
}

// Terrain is the (road, plain, swamp) tile-count profile of one
// source→sink edge, per spec.md §4.6.
type Terrain struct {
	RoadTiles  int
	PlainTiles int
	SwampTiles int
}

// TotalTiles returns the edge's total one-way tile count.
func (t Terrain) TotalTiles() int {
	return t.RoadTiles + t.PlainTiles + t.SwampTiles
}

// Constraints bounds which variants are feasible for an edge, per
// spec.md §4.6's constraint tuple.
type Constraints struct {
	SpawnEnergyCapacity    int
	CanBuildContainer      bool
	CanBuildLink           bool
	InfrastructureBudget   float64
	SourceCapacity         int
	SpawnToSourceDistance  int
	MiningSpots            int // spatial limit: non-wall 1-neighbors of the source
}

// EdgeVariant is one fully-priced (mining mode, harvester carry, haul
// ratio) configuration for a source→sink edge, per spec.md §3. Grounded on
// the teacher's ArbitrageOpportunity — an immutable value object whose
// derived economics are computed once at construction and exposed via
// getters, generalized from a single buy/sell spread to a multi-term
// steady-state cost model.
type EdgeVariant struct {
	id                  string
	mode                MiningMode
	harvesterCarryParts int
	haulRatio           HaulRatio

	grossPerTick       float64
	harvesterCost      float64
	haulCost           float64
	decayCost          float64
	infrastructureCost float64
	haulersNeeded      int
	miningSpots        int
	efficiency         float64
}

func (v EdgeVariant) ID() string                  { return v.id }
func (v EdgeVariant) Mode() MiningMode            { return v.mode }
func (v EdgeVariant) HarvesterCarryParts() int    { return v.harvesterCarryParts }
func (v EdgeVariant) HaulRatio() HaulRatio        { return v.haulRatio }
func (v EdgeVariant) GrossPerTick() float64       { return v.grossPerTick }
func (v EdgeVariant) HarvesterCost() float64      { return v.harvesterCost }
func (v EdgeVariant) HaulCost() float64           { return v.haulCost }
func (v EdgeVariant) DecayCost() float64          { return v.decayCost }
func (v EdgeVariant) InfrastructureCost() float64 { return v.infrastructureCost }
func (v EdgeVariant) HaulersNeeded() int          { return v.haulersNeeded }
func (v EdgeVariant) MiningSpots() int            { return v.miningSpots }
func (v EdgeVariant) Efficiency() float64         { return v.efficiency }

// variantID builds the deterministic id scheme spec.md §3 shows by example
// ("drop-1c-2:1"): mode, harvester carry-part count, haul ratio.
func variantID(mode MiningMode, carryParts int, ratio HaulRatio) string {
	return fmt.Sprintf("%s-%dc-%s", mode, carryParts, ratio)
}
