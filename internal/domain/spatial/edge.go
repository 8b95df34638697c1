package spatial

import (
	"container/heap"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// SpatialEdge is an undirected link between two node ids, weighted by
// walking distance between their peaks, per spec.md §3/§4.4.
type SpatialEdge struct {
	Key    string
	A, B   string
	Weight int
}

// CanonicalEdgeKey builds the stable "min|max" key spec.md §3/§6 requires
// for edge storage, grounded on the small-struct-key guidance in Design
// Notes §9 ("prefer small struct keys... but keep maps sparse").
func CanonicalEdgeKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "|" + b
}

// BuildSpatialEdges derives the node adjacency graph: direct
// territory-adjacency edges plus a Manhattan-distance MST backbone over
// peak centroids to guarantee connectivity when adjacencies are sparse
// (spec.md §4.4). Grounded on the graph/MST conventions in
// other_examples/41bb1dda_katalvlaran-lvlath__tsp-bb.go.go.
func BuildSpatialEdges(peaks []Peak, territories map[string][]Tile, tp TerrainProvider, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) []SpatialEdge {
	centroidByID := make(map[string]Tile, len(peaks))
	for _, p := range peaks {
		centroidByID[p.ID] = p.Centroid
	}

	edgeSet := make(map[string]SpatialEdge)

	addEdge := func(a, b string) {
		if a == b {
			return
		}
		key := CanonicalEdgeKey(a, b)
		if _, ok := edgeSet[key]; ok {
			return
		}
		w := WalkingDistance(tp, exits, centroidByID[a], centroidByID[b])
		ka, kb := a, b
		if ka > kb {
			ka, kb = kb, ka
		}
		edgeSet[key] = SpatialEdge{Key: key, A: ka, B: kb, Weight: w}
	}

	// Territory adjacency: two nodes are adjacent if any tile of one
	// borders (4-neighbor) a tile owned by the other.
	ownerOf := make(map[Tile]string)
	for id, tiles := range territories {
		for _, t := range tiles {
			ownerOf[t] = id
		}
	}
	for id, tiles := range territories {
		for _, t := range tiles {
			for _, n := range neighbors4(t, exits) {
				if other, ok := ownerOf[n]; ok && other != id {
					addEdge(id, other)
				}
			}
		}
	}

	// MST backbone over peak centroids by Manhattan distance, to
	// guarantee a connected spatial graph when territory adjacency is
	// sparse (isolated owned rooms, cross-room gaps).
	for _, e := range minimumSpanningTree(peaks) {
		addEdge(e.A, e.B)
	}

	out := make([]SpatialEdge, 0, len(edgeSet))
	for _, e := range edgeSet {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

type mstEdge struct {
	A, B     string
	Distance int
}

// minimumSpanningTree computes a Kruskal MST over peak centroids using
// Manhattan distance on the flattened global grid coordinate
// (room*RoomSize + local offset), per spec.md §4.4.
func minimumSpanningTree(peaks []Peak) []mstEdge {
	if len(peaks) < 2 {
		return nil
	}
	var candidates []mstEdge
	for i := 0; i < len(peaks); i++ {
		for j := i + 1; j < len(peaks); j++ {
			d := manhattanGlobal(peaks[i].Centroid, peaks[j].Centroid)
			candidates = append(candidates, mstEdge{A: peaks[i].ID, B: peaks[j].ID, Distance: d})
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Distance < candidates[j].Distance })

	uf := newUnionFind()
	for _, p := range peaks {
		uf.add(p.ID)
	}
	var mst []mstEdge
	for _, e := range candidates {
		if uf.union(e.A, e.B) {
			mst = append(mst, e)
			if len(mst) == len(peaks)-1 {
				break
			}
		}
	}
	return mst
}

func manhattanGlobal(a, b Tile) int {
	ax, ay := a.Room.X*RoomSize+a.X, a.Room.Y*RoomSize+a.Y
	bx, by := b.Room.X*RoomSize+b.X, b.Room.Y*RoomSize+b.Y
	return abs(ax-bx) + abs(ay-by)
}

type unionFind struct {
	parent map[string]string
}

func newUnionFind() *unionFind {
	return &unionFind{parent: make(map[string]string)}
}

func (u *unionFind) add(id string) {
	if _, ok := u.parent[id]; !ok {
		u.parent[id] = id
	}
}

func (u *unionFind) find(id string) string {
	root := id
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[id] != root {
		u.parent[id], id = root, u.parent[id]
	}
	return root
}

func (u *unionFind) union(a, b string) bool {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return false
	}
	u.parent[ra] = rb
	return true
}

// maxWalkingSearchTiles bounds the BFS below before falling back to the
// Chebyshev+50-per-room estimate from spec.md §3, so a pathological
// terrain layout never stalls a tick.
const maxWalkingSearchTiles = 20000

// WalkingDistance computes the 8-neighborhood BFS walking distance
// between two tiles through non-wall terrain, per spec.md §4.4. Falls
// back to the Chebyshev-within-a-room-plus-50-per-room-crossed estimate
// from spec.md §3 if no path is found within the search bound (or the two
// tiles are unreachable, e.g. across an unexplored room).
func WalkingDistance(tp TerrainProvider, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord, a, b Tile) int {
	if a.Equals(b) {
		return 0
	}
	dist := map[Tile]int{a: 0}
	frontier := []Tile{a}
	visitedCount := 0
	for len(frontier) > 0 && visitedCount < maxWalkingSearchTiles {
		var next []Tile
		for _, t := range frontier {
			if t.Equals(b) {
				return dist[t]
			}
			visitedCount++
			for _, n := range neighbors8(t, exits) {
				if tp.Terrain(n.Room, n.X, n.Y) == TerrainWall {
					continue
				}
				if _, ok := dist[n]; ok {
					continue
				}
				dist[n] = dist[t] + 1
				next = append(next, n)
			}
		}
		frontier = next
	}
	if d, ok := dist[b]; ok {
		return d
	}
	return chebyshevEstimate(a, b)
}

func chebyshevEstimate(a, b Tile) int {
	roomsCrossed := abs(a.Room.X-b.Room.X) + abs(a.Room.Y-b.Room.Y)
	cheb := a.X - b.X
	if cheb < 0 {
		cheb = -cheb
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > cheb {
		cheb = dy
	}
	return cheb + 50*roomsCrossed
}

// EconomicEdge links two economic nodes (owning a source, controller, or
// mineral) via cumulative spatial-graph distance, per spec.md §4.4.
type EconomicEdge struct {
	Key      string
	A, B     string
	Distance int
}

// economicEdgeCap is the maximum cumulative distance an economic edge may
// span before it is discarded, per spec.md §4.4.
const economicEdgeCap = 2000

// economicEdgeTopK is the maximum number of economic neighbors retained
// per node, per spec.md §4.4 and §8 scenario 5.
const economicEdgeTopK = 10

// BuildEconomicEdges runs a capped Dijkstra from every economic node over
// the spatial graph, stopping descent through (but still recording) any
// economic neighbor reached, then retains only the economicEdgeTopK
// smallest-distance neighbors per node. isEconomic is injected so the
// spatial package stays decoupled from the node/resource domain (Design
// Notes §9: ports over concrete dependencies).
func BuildEconomicEdges(spatialEdges []SpatialEdge, isEconomic func(nodeID string) bool) map[string][]EconomicEdge {
	adjacency := make(map[string][]SpatialEdge)
	for _, e := range spatialEdges {
		adjacency[e.A] = append(adjacency[e.A], e)
		adjacency[e.B] = append(adjacency[e.B], e)
	}

	result := make(map[string][]EconomicEdge)
	for node := range adjacency {
		if !isEconomic(node) {
			continue
		}
		neighbors := dijkstraEconomic(node, adjacency, isEconomic)
		sort.Slice(neighbors, func(i, j int) bool {
			if neighbors[i].Distance != neighbors[j].Distance {
				return neighbors[i].Distance < neighbors[j].Distance
			}
			return neighbors[i].B < neighbors[j].B
		})
		if len(neighbors) > economicEdgeTopK {
			neighbors = neighbors[:economicEdgeTopK]
		}
		result[node] = neighbors
	}
	return result
}

type pqItem struct {
	node string
	dist int
}

type priorityQueue []pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

func dijkstraEconomic(start string, adjacency map[string][]SpatialEdge, isEconomic func(string) bool) []EconomicEdge {
	dist := map[string]int{start: 0}
	pq := &priorityQueue{{node: start, dist: 0}}
	heap.Init(pq)
	var found []EconomicEdge

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(pqItem)
		if cur.dist > dist[cur.node] {
			continue
		}
		if cur.node != start && isEconomic(cur.node) {
			found = append(found, EconomicEdge{
				Key:      CanonicalEdgeKey(start, cur.node),
				A:        start,
				B:        cur.node,
				Distance: cur.dist,
			})
			continue // do not expand through an economic neighbor
		}
		for _, e := range adjacency[cur.node] {
			other := e.A
			if other == cur.node {
				other = e.B
			}
			nd := cur.dist + e.Weight
			if nd > economicEdgeCap {
				continue
			}
			if existing, ok := dist[other]; !ok || nd < existing {
				dist[other] = nd
				heap.Push(pq, pqItem{node: other, dist: nd})
			}
		}
	}
	return found
}
