package shared

// Body-part economics shared by the surveyor (domain/node) and the
// edge-variant evaluator (domain/variant): spec.md §4.5/§4.6 both build on
// these same per-part costs and the creep lifetime, so they live here
// rather than being duplicated in each package.
const (
	WorkPartCost  = 100
	CarryPartCost = 50
	MovePartCost  = 50

	// CreepLifetime is the number of ticks a spawned agent survives,
	// matching the host engine's standard body lifetime.
	CreepLifetime = 1500

	// MaxPartsPerCreep is the largest body the host engine can spawn in
	// one creep, used by the evaluator's body-part distributor (spec.md
	// §4.6 step 6).
	MaxPartsPerCreep = 50

	// SourceRegenTicks is the fixed regeneration cadence every source
	// uses, per spec.md §4.6 step 4.
	SourceRegenTicks = 300

	// EnergyValuePerUnit converts raw energy into the credit unit the
	// surveyor and evaluator score against.
	EnergyValuePerUnit = 1.0
)
