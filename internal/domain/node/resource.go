package node

import "github.com/ShadyMccoy/colony-controller/internal/domain/shared"

// ResourceKind tags the variant carried by a Resource, per spec.md §3.
type ResourceKind string

const (
	ResourceSource     ResourceKind = "source"
	ResourceController ResourceKind = "controller"
	ResourceMineral    ResourceKind = "mineral"
	ResourceSpawn      ResourceKind = "spawn"
	ResourceContainer  ResourceKind = "container"
	ResourceStorage    ResourceKind = "storage"
)

// defaultUnreservedCapacity and defaultOwnedCapacity are the source capacity
// defaults from spec.md §3.
const (
	defaultUnreservedCapacity = 1500
	defaultOwnedCapacity      = 3000
)

// SourceRegenTicks is the fixed regeneration cadence used throughout the
// economic planner (spec.md §4.6).
const SourceRegenTicks = shared.SourceRegenTicks

// Resource is a tagged variant over the six resource kinds spec.md §3
// describes. Only the fields relevant to Kind are meaningful; the others
// are zero. Grounded on the teacher's goods.SupplyChainNode tagged-field
// shape (a single struct carrying every variant's fields, disambiguated by
// a string tag) rather than an interface-per-kind, since every kind here
// is a flat bag of scalars with no behavior of its own.
type Resource struct {
	ID   string
	Kind ResourceKind

	// source
	Capacity   int
	RegenTicks int

	// controller
	Level int
	Owned bool

	// mineral
	MineralType string

	// spawn
	EnergyCapacity int
}

// NewSourceResource builds a source resource, defaulting capacity per
// spec.md §3: 3000 when owned or reserved, 1500 otherwise.
func NewSourceResource(id string, ownedOrReserved bool) Resource {
	capacity := defaultUnreservedCapacity
	if ownedOrReserved {
		capacity = defaultOwnedCapacity
	}
	return Resource{ID: id, Kind: ResourceSource, Capacity: capacity, RegenTicks: SourceRegenTicks}
}

// NewControllerResource builds a controller resource.
func NewControllerResource(id string, level int, owned bool) Resource {
	return Resource{ID: id, Kind: ResourceController, Level: level, Owned: owned}
}

// NewMineralResource builds a mineral resource.
func NewMineralResource(id, mineralType string) Resource {
	return Resource{ID: id, Kind: ResourceMineral, MineralType: mineralType}
}

// NewSpawnResource builds a spawn resource.
func NewSpawnResource(id string, energyCapacity int) Resource {
	return Resource{ID: id, Kind: ResourceSpawn, EnergyCapacity: energyCapacity}
}

// NewContainerResource builds a container resource.
func NewContainerResource(id string) Resource {
	return Resource{ID: id, Kind: ResourceContainer}
}

// NewStorageResource builds a storage resource.
func NewStorageResource(id string) Resource {
	return Resource{ID: id, Kind: ResourceStorage}
}

// IsEconomic reports whether this resource kind makes its owning node an
// "economic" node for the purpose of economic-edge synthesis (spec.md
// §3, §4.4): it owns a source, controller, or mineral.
func (r Resource) IsEconomic() bool {
	switch r.Kind {
	case ResourceSource, ResourceController, ResourceMineral:
		return true
	default:
		return false
	}
}
