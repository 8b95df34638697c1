package spatial

import (
	"fmt"
	"math"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// Peak is a local-maximum plateau in an Openness map: a flood-filled
// cluster of tiles sharing the same height, reduced to its centroid.
type Peak struct {
	ID       string
	Tiles    []Tile
	Centroid Tile
	Height   int
}

// DetectPeaks finds every local-maximum plateau in o (a 4-connected
// equal-height cluster with no taller 8-neighbor), grounded on the
// iterate-highest-first-and-claim idiom in
// other_examples/1siamBot-rts-engine harvester.go (score-ordered greedy
// claim of resource clusters). Peaks are returned in the filtered,
// deterministic order described by spec.md §4.2: descending height, ties
// broken by the centroid's room then (x,y) — the same order the filter
// step consumed them in, so peak ids are stable run-to-run for identical
// terrain (spec.md §8 "Peak determinism").
func DetectPeaks(o Openness, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) []Peak {
	tiles := make([]Tile, 0, len(o))
	for t, h := range o {
		if h > 0 {
			tiles = append(tiles, t)
		}
	}
	sort.Slice(tiles, func(i, j int) bool {
		hi, hj := o[tiles[i]], o[tiles[j]]
		if hi != hj {
			return hi > hj
		}
		return tileLess(tiles[i], tiles[j])
	})

	visited := make(map[Tile]bool, len(tiles))
	var raw []Peak
	for _, seed := range tiles {
		if visited[seed] {
			continue
		}
		height := o[seed]
		cluster := floodFillPlateau(seed, height, o, visited, exits)
		higher := false
		for _, t := range cluster {
			for _, n := range neighbors8(t, exits) {
				if o[n] > height {
					higher = true
					break
				}
			}
			if higher {
				break
			}
		}
		if higher {
			continue // a plateau with a taller neighbor is not a local maximum
		}
		raw = append(raw, Peak{
			Tiles:    cluster,
			Centroid: centroidOf(cluster),
			Height:   height,
		})
	}

	sort.Slice(raw, func(i, j int) bool {
		if raw[i].Height != raw[j].Height {
			return raw[i].Height > raw[j].Height
		}
		return tileLess(raw[i].Centroid, raw[j].Centroid)
	})

	filtered := filterPeaksByRadius(raw)
	for i := range filtered {
		filtered[i].ID = peakID(filtered[i].Centroid)
	}
	return filtered
}

func floodFillPlateau(seed Tile, height int, o Openness, visited map[Tile]bool, exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord) []Tile {
	queue := []Tile{seed}
	visited[seed] = true
	var cluster []Tile
	for len(queue) > 0 {
		t := queue[0]
		queue = queue[1:]
		cluster = append(cluster, t)
		for _, n := range neighbors4(t, exits) {
			if visited[n] {
				continue
			}
			if o[n] != height {
				continue
			}
			visited[n] = true
			queue = append(queue, n)
		}
	}
	return cluster
}

// centroidOf rounds the average coordinate of a cluster to the nearest
// integer tile, per spec.md §4.2. Clusters spanning multiple rooms use the
// room of the first tile (plateaus crossing a room seam are rare and the
// spec doesn't define cross-room centroid averaging beyond "rounded to
// integers").
func centroidOf(cluster []Tile) Tile {
	if len(cluster) == 0 {
		return Tile{}
	}
	room := cluster[0].Room
	sumX, sumY := 0, 0
	for _, t := range cluster {
		sumX += t.X
		sumY += t.Y
	}
	n := float64(len(cluster))
	cx := int(math.Round(float64(sumX) / n))
	cy := int(math.Round(float64(sumY) / n))
	return Tile{Room: room, X: cx, Y: cy}
}

// filterPeaksByRadius suppresses a later (shorter) peak whose centroid
// falls within an earlier (taller) peak's exclusion square, per spec.md
// §4.2: radius = floor(0.75 * height).
func filterPeaksByRadius(ordered []Peak) []Peak {
	type accepted struct {
		centroid Tile
		radius   int
	}
	var kept []accepted
	var out []Peak
	for _, p := range ordered {
		excluded := false
		for _, a := range kept {
			if !p.Centroid.Room.Equals(a.centroid.Room) {
				continue
			}
			if abs(p.Centroid.X-a.centroid.X) <= a.radius && abs(p.Centroid.Y-a.centroid.Y) <= a.radius {
				excluded = true
				break
			}
		}
		if excluded {
			continue
		}
		out = append(out, p)
		kept = append(kept, accepted{centroid: p.Centroid, radius: int(0.75 * float64(p.Height))})
	}
	return out
}

func peakID(centroid Tile) string {
	return fmt.Sprintf("peak-%s-%d-%d", centroid.Room.String(), centroid.X, centroid.Y)
}

func tileLess(a, b Tile) bool {
	if !a.Room.Equals(b.Room) {
		return a.Room.Less(b.Room)
	}
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
