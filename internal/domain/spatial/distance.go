package spatial

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// DefaultMaxRooms is the default analysis extent cap: a 3x3 box of rooms
// around each owned room, per spec.md §4.1.
const DefaultMaxRooms = 9

// Openness holds the distance-from-wall for every non-wall tile in the
// analyzed extent, keyed by tile: walls are seeded at 0 and the value
// grows with every BFS step away from the nearest wall, so the most
// open tile in a region carries the largest value. Walls themselves are
// omitted from the map (conceptual openness 0).
type Openness map[Tile]int

// TouchedRooms performs a breadth-first expansion over room adjacency
// starting from every room in starts, capped at maxRooms total rooms.
// Grounded on the teacher's room-graph BFS shape
// (application/scouting + domain/navigation route planning).
func TouchedRooms(tp TerrainProvider, starts []shared.RoomCoord, maxRooms int) []shared.RoomCoord {
	if maxRooms <= 0 {
		maxRooms = DefaultMaxRooms
	}
	seen := make(map[shared.RoomCoord]bool)
	var order []shared.RoomCoord
	queue := append([]shared.RoomCoord(nil), starts...)
	for _, s := range starts {
		seen[s] = true
	}
	for len(queue) > 0 && len(order) < maxRooms {
		r := queue[0]
		queue = queue[1:]
		order = append(order, r)
		if len(order) >= maxRooms {
			break
		}
		for _, dst := range tp.DescribeExits(r) {
			if !seen[dst] {
				seen[dst] = true
				queue = append(queue, dst)
			}
		}
	}
	return order
}

// DistanceTransform computes, for every non-wall tile within the rooms
// reachable from starts (capped at maxRooms), the BFS distance to the
// nearest wall tile (walls seeded at 0, 8-neighborhood). Walls are not
// included in the result (they retain conceptual openness 0, per
// spec.md §4.1). An empty start set yields an empty result — callers
// interpret that as "analysis already current" (spec.md §4.1 failure mode).
func DistanceTransform(tp TerrainProvider, starts []shared.RoomCoord, maxRooms int) Openness {
	if len(starts) == 0 {
		return Openness{}
	}
	rooms := TouchedRooms(tp, starts, maxRooms)
	roomSet := make(map[shared.RoomCoord]bool, len(rooms))
	for _, r := range rooms {
		roomSet[r] = true
	}

	// Seed wall tiles per room in parallel (embarrassingly parallel scan,
	// joined before the BFS begins), then run one shared BFS frontier —
	// spec.md §5 permits intra-phase parallelism as long as it joins
	// before the phase completes.
	type roomWalls struct {
		room  shared.RoomCoord
		walls []Tile
	}
	results := make([]roomWalls, len(rooms))
	var g errgroup.Group
	var mu sync.Mutex
	for i, r := range rooms {
		i, r := i, r
		g.Go(func() error {
			var walls []Tile
			for x := 0; x < RoomSize; x++ {
				for y := 0; y < RoomSize; y++ {
					if tp.Terrain(r, x, y) == TerrainWall {
						walls = append(walls, Tile{Room: r, X: x, Y: y})
					}
				}
			}
			mu.Lock()
			results[i] = roomWalls{room: r, walls: walls}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // pure in-memory scan, never errors

	distance := make(map[Tile]int)
	var frontier []Tile
	for _, rw := range results {
		for _, w := range rw.walls {
			distance[w] = 0
			frontier = append(frontier, w)
		}
	}

	exits := func(r shared.RoomCoord) map[shared.Exit]shared.RoomCoord {
		all := tp.DescribeExits(r)
		filtered := make(map[shared.Exit]shared.RoomCoord)
		for e, dst := range all {
			if roomSet[dst] {
				filtered[e] = dst
			}
		}
		return filtered
	}

	for len(frontier) > 0 {
		next := frontier[:0:0]
		for _, t := range frontier {
			d := distance[t]
			for _, n := range neighbors8(t, exits) {
				if !roomSet[n.Room] {
					continue
				}
				if tp.Terrain(n.Room, n.X, n.Y) == TerrainWall {
					continue
				}
				if _, ok := distance[n]; ok {
					continue
				}
				distance[n] = d + 1
				next = append(next, n)
			}
		}
		frontier = next
	}

	out := make(Openness, len(distance))
	for t, d := range distance {
		if tp.Terrain(t.Room, t.X, t.Y) == TerrainWall {
			continue
		}
		out[t] = d
	}
	return out
}
