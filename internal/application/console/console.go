// Package console implements the pure, synchronous operator commands
// spec.md §6 names: recalculateTerrain, showNodes, exportNodes,
// forgiveDebt, clearSpawnQueue, marketStatus. Grounded on the
// teacher's adapters/cli command set — thin functions over the running
// driver's state, returning strings/errors rather than printing
// directly, so the same logic serves a CLI, a test, or a future admin
// RPC without duplication.
package console

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ShadyMccoy/colony-controller/internal/application/tick"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

// queueOwner is satisfied by the corp role structs that hold a spawn
// queue (Harvest, Haul, Bootstrap, Spawning); others simply don't
// participate in clearSpawnQueue/marketStatus's queue-depth report.
type queueOwner interface {
	Queue() *spawnorder.Queue
}

// RecalculateTerrain starts a fresh incremental rebuild. A rebuild
// already in flight keeps running to completion rather than being
// discarded — the scheduler never runs two rebuilds at once.
func RecalculateTerrain(d *tick.Driver) error {
	return d.Scheduler().Trigger()
}

// ShowNodes renders every node sorted by id, one line each, with its
// ROI score and ownership if it has been surveyed.
func ShowNodes(d *tick.Driver) string {
	nodes := d.Registry().All()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	var b strings.Builder
	for _, n := range nodes {
		owned := "unowned"
		if n.IsOwned() {
			owned = "owned"
		}
		score := "unsurveyed"
		if roi := n.ROI(); roi != nil {
			score = fmt.Sprintf("%.2f", roi.Score)
		}
		fmt.Fprintf(&b, "%-24s territory=%-4d %-8s roi=%s\n", n.ID(), n.TerritorySize(), owned, score)
	}
	return b.String()
}

// exportedNode is exportNodes's per-node schema entry.
type exportedNode struct {
	ID            string  `json:"id"`
	TerritorySize int     `json:"territorySize"`
	Owned         bool    `json:"owned"`
	ROIScore      float64 `json:"roiScore,omitempty"`
}

type exportSummary struct {
	OwnedCount     int `json:"ownedCount"`
	UnownedCount   int `json:"unownedCount"`
	SurveyedCount  int `json:"surveyedCount"`
}

type exportedNodes struct {
	ExportedAt string         `json:"exportedAt"`
	NodeCount  int            `json:"nodeCount"`
	Nodes      []exportedNode `json:"nodes"`
	Summary    exportSummary  `json:"summary"`
}

// ExportNodes renders the registry as the JSON schema spec.md §6 names:
// {exportedAt, nodeCount, nodes[], summary}. exportedAt is passed in by
// the caller (console functions stay deterministic and clock-free).
func ExportNodes(d *tick.Driver, exportedAt time.Time) (string, error) {
	nodes := d.Registry().All()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })

	out := exportedNodes{
		ExportedAt: exportedAt.UTC().Format(time.RFC3339),
		NodeCount:  len(nodes),
	}
	for _, n := range nodes {
		en := exportedNode{ID: n.ID(), TerritorySize: n.TerritorySize(), Owned: n.IsOwned()}
		if n.IsOwned() {
			out.Summary.OwnedCount++
		} else {
			out.Summary.UnownedCount++
		}
		if roi := n.ROI(); roi != nil {
			en.ROIScore = roi.Score
			out.Summary.SurveyedCount++
		}
		out.Nodes = append(out.Nodes, en)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("console: export nodes: %w", err)
	}
	return string(data), nil
}

// ForgiveDebt resets every corp's balance to amount and discards the
// market's in-flight contract/transaction state, per spec.md §6: "reset
// every corp's balance and clear market state". The money-supply ledger
// itself is left alone — it's an append-only audit log, not something
// a console command rewrites (spec.md §5's "no retroactive edits").
func ForgiveDebt(d *tick.Driver, amount float64) {
	for _, c := range d.Corps() {
		delta := amount - c.Balance()
		if delta > 0 {
			c.RecordRevenue(delta)
		} else if delta < 0 {
			c.RecordCost(-delta)
		}
	}
	d.Market().Reset()
}

// ClearSpawnQueue drains every corp's pending spawn orders, for the
// role types that hold one. A queue may be shared across several corps
// in the same room (spec.md §4.7's spawning corp serves its room's
// whole roster), so it's deduplicated by pointer before draining.
func ClearSpawnQueue(d *tick.Driver) int {
	seen := make(map[*spawnorder.Queue]bool)
	cleared := 0
	for _, c := range d.Corps() {
		q, ok := c.(queueOwner)
		if !ok || seen[q.Queue()] {
			continue
		}
		seen[q.Queue()] = true
		cleared += q.Queue().Len()
		q.Queue().Clear()
	}
	return cleared
}

// MarketStatus renders every corp's current offers plus its spawn
// queue depth, if it has one.
func MarketStatus(d *tick.Driver, tick int64) string {
	var b strings.Builder
	ids := make([]string, 0, len(d.Corps()))
	for id := range d.Corps() {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		c := d.Corps()[id]
		buys, sells := c.Buys(tick), c.Sells(tick)
		fmt.Fprintf(&b, "%-16s buys=%d sells=%d", id, len(buys), len(sells))
		if q, ok := c.(queueOwner); ok {
			fmt.Fprintf(&b, " queue=%d", q.Queue().Len())
		}
		fmt.Fprintln(&b)
	}
	return b.String()
}
