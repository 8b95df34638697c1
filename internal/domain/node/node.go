package node

import (
	"fmt"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// Node is a territory produced by the spatial core: one peak's claimed
// tiles plus the economic resources found on them. Grounded on the
// teacher's contract.Contract shape — unexported fields, a validating
// constructor, and typed mutation methods returning error — generalized
// from a trade agreement to a spatial/economic unit.
type Node struct {
	id            string
	peak          spatial.Tile
	peakHeight    int
	rooms         []shared.RoomCoord
	territorySize int
	resources     map[string]Resource
	roi           *ROI
	deliveryPoint *spatial.Tile
}

// NewNode validates and builds a Node. id must already be the deterministic
// peak-coordinate-derived string (spec.md §3 invariant d); callers in the
// spatial/registry boundary own id derivation.
func NewNode(id string, peak spatial.Tile, peakHeight int, rooms []shared.RoomCoord, territorySize int) (*Node, error) {
	if id == "" {
		return nil, shared.NewValidationError("id", "node id cannot be empty")
	}
	if len(rooms) == 0 {
		return nil, shared.NewValidationError("rooms", "node must span at least one room")
	}
	if territorySize <= 0 {
		return nil, shared.NewValidationError("territory_size", "node territory size must be positive")
	}
	return &Node{
		id:            id,
		peak:          peak,
		peakHeight:    peakHeight,
		rooms:         append([]shared.RoomCoord(nil), rooms...),
		territorySize: territorySize,
		resources:     make(map[string]Resource),
	}, nil
}

func (n *Node) ID() string                  { return n.id }
func (n *Node) Peak() spatial.Tile          { return n.peak }
func (n *Node) PeakHeight() int             { return n.peakHeight }
func (n *Node) TerritorySize() int          { return n.territorySize }
func (n *Node) Rooms() []shared.RoomCoord   { return append([]shared.RoomCoord(nil), n.rooms...) }
func (n *Node) ROI() *ROI                   { return n.roi }
func (n *Node) SetROI(roi *ROI)             { n.roi = roi }

// Resources returns the claimed resources sorted by id, for deterministic
// iteration (persistence round-trips, console output).
func (n *Node) Resources() []Resource {
	out := make([]Resource, 0, len(n.resources))
	for _, r := range n.resources {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ClaimResource attaches a resource to this node. A resource on a wall tile
// claimed by two nodes simultaneously is a registry-level concern (spec.md
// §3 invariant c); Node itself only rejects a duplicate id.
func (n *Node) ClaimResource(r Resource) error {
	if r.ID == "" {
		return shared.NewValidationError("id", "resource id cannot be empty")
	}
	if _, exists := n.resources[r.ID]; exists {
		return fmt.Errorf("resource %s already claimed by node %s", r.ID, n.id)
	}
	n.resources[r.ID] = r
	return nil
}

// UnclaimResource drops a resource, e.g. when a rebuild no longer sees it.
func (n *Node) UnclaimResource(resourceID string) {
	delete(n.resources, resourceID)
}

// SourceCount returns how many source resources this node claims.
func (n *Node) SourceCount() int {
	count := 0
	for _, r := range n.resources {
		if r.Kind == ResourceSource {
			count++
		}
	}
	return count
}

// HasController reports whether this node claims a controller resource.
func (n *Node) HasController() bool {
	for _, r := range n.resources {
		if r.Kind == ResourceController {
			return true
		}
	}
	return false
}

// IsOwned reports whether this node's controller (if any) is owned, or it
// hosts a spawn — both mark a node as belonging to the colony.
func (n *Node) IsOwned() bool {
	for _, r := range n.resources {
		if r.Kind == ResourceController && r.Owned {
			return true
		}
		if r.Kind == ResourceSpawn {
			return true
		}
	}
	return false
}

// IsEconomic reports whether this node owns any source, controller, or
// mineral resource (spec.md §3, §4.4).
func (n *Node) IsEconomic() bool {
	for _, r := range n.resources {
		if r.IsEconomic() {
			return true
		}
	}
	return false
}

// DeliveryPoint returns the hauler delivery point, if one has been set.
func (n *Node) DeliveryPoint() (spatial.Tile, bool) {
	if n.deliveryPoint == nil {
		return spatial.Tile{}, false
	}
	return *n.deliveryPoint, true
}

// SetDeliveryPoint records the hauler delivery tile for this node.
func (n *Node) SetDeliveryPoint(t spatial.Tile) {
	n.deliveryPoint = &t
}
