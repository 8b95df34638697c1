package spatial

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// Territory holds the tiles claimed by one peak during partitioning.
type Territory struct {
	PeakID string
	Tiles  []Tile
}

// PartitionTerritories runs a single shared breadth-first search seeded
// with every peak's centroid simultaneously, 4-connected, over non-wall
// tiles only. The first peak to reach a tile owns it; ties (simultaneous
// arrival) resolve in favor of the taller peak because peaks are seeded in
// descending-height order and that order is preserved within each BFS
// level, per spec.md §4.3. Grounded on the shared-work-queue idiom in the
// teacher's application/mining/coordination/channel_coordinator.go.
func PartitionTerritories(peaks []Peak, o Openness, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) map[string][]Tile {
	owner := make(map[Tile]string, len(o))
	type seed struct {
		tile   Tile
		peakID string
	}

	// peaks is already sorted descending by height (DetectPeaks' contract);
	// seed order within a level preserves that priority.
	var frontier []seed
	for _, p := range peaks {
		if _, ok := o[p.Centroid]; !ok {
			continue // centroid must be a member of its own territory (invariant b)
		}
		if owner[p.Centroid] == "" {
			owner[p.Centroid] = p.ID
			frontier = append(frontier, seed{tile: p.Centroid, peakID: p.ID})
		}
	}

	for len(frontier) > 0 {
		var next []seed
		for _, s := range frontier {
			for _, n := range neighbors4(s.tile, exits) {
				if _, isOpen := o[n]; !isOpen {
					continue // wall or outside analyzed extent
				}
				if owner[n] != "" {
					continue
				}
				owner[n] = s.peakID
				next = append(next, seed{tile: n, peakID: s.peakID})
			}
		}
		frontier = next
	}

	out := make(map[string][]Tile)
	for t, id := range owner {
		out[id] = append(out[id], t)
	}
	return out
}
