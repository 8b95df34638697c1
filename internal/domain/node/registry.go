package node

import (
	"fmt"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// Registry holds every live node and resolves resource-ownership conflicts.
// Per spec.md §5, it is the only large mutable structure shared across tick
// phases: only the incremental-analysis phase may add or remove nodes via
// Reconcile; every other phase may only mutate a node's own economic
// fields (ROI, delivery point) through Get. Grounded on the teacher's
// in-memory repository pattern (no persistence coupling baked into the
// domain type itself — see application/persistence for the codec).
type Registry struct {
	nodes map[string]*Node
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nodes: make(map[string]*Node)}
}

// Get returns the node by id, if present.
func (reg *Registry) Get(id string) (*Node, bool) {
	n, ok := reg.nodes[id]
	return n, ok
}

// All returns every node, sorted by id for deterministic iteration.
func (reg *Registry) All() []*Node {
	out := make([]*Node, 0, len(reg.nodes))
	for _, n := range reg.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// Reconcile replaces the registry's contents with the freshly rebuilt set
// of nodes, per spec.md §3 node lifecycle: nodes are created when a peak
// first appears, mutated whenever the incremental analysis completes, and
// destroyed when the new peak set no longer contains their id. Nodes that
// survive (same id present in both the old and new set) keep their
// existing ROI and delivery point rather than starting over, since those
// are computed by later phases in the same tick.
func (reg *Registry) Reconcile(fresh []*Node) {
	next := make(map[string]*Node, len(fresh))
	for _, n := range fresh {
		if old, ok := reg.nodes[n.id]; ok {
			n.roi = old.roi
			n.deliveryPoint = old.deliveryPoint
		}
		next[n.id] = n
	}
	reg.nodes = next
}

// ResourceClaim is one node's bid to own a resource, used to resolve
// spec.md §3 invariant c: a resource on a wall tile is claimed by at most
// one node, tie-broken by the lexicographically smallest adjacent
// territory tile belonging to any node.
type ResourceClaim struct {
	NodeID       string
	AdjacentTile spatial.Tile
}

// ResolveResourceClaim picks the winning claim (smallest AdjacentTile by
// spec.md's lexicographic tie-break on the tile's string form) and assigns
// the resource to that node, rejecting it from every other claimant.
// Returns an error if claims is empty or the winning claim's node is not
// in the registry.
func (reg *Registry) ResolveResourceClaim(r Resource, claims []ResourceClaim) error {
	if len(claims) == 0 {
		return fmt.Errorf("no claimants for resource %s", r.ID)
	}
	winner := claims[0]
	for _, c := range claims[1:] {
		if c.AdjacentTile.String() < winner.AdjacentTile.String() {
			winner = c
		}
	}
	n, ok := reg.nodes[winner.NodeID]
	if !ok {
		return fmt.Errorf("resource claim winner node %s not found", winner.NodeID)
	}
	for _, c := range claims {
		if other, ok := reg.nodes[c.NodeID]; ok {
			other.UnclaimResource(r.ID) // idempotent: clears a stale claim from a prior tick, including the winner's own
		}
	}
	return n.ClaimResource(r)
}

// NodeContaining returns the node whose territory includes the given
// tile, if tileOwner reports ownership for it (tileOwner is the
// peakId-per-tile map spec.md §4.3's partitioner produces).
func (reg *Registry) NodeContaining(t spatial.Tile, tileOwner map[spatial.Tile]string) (*Node, bool) {
	id, ok := tileOwner[t]
	if !ok {
		return nil, false
	}
	return reg.Get(id)
}
