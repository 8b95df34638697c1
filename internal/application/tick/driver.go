// Package tick implements the Driver that sequences a colony's per-tick
// phases (spec.md §4.10, §5): work, market clearing, contract
// settlement, incremental territory survey, then a logged summary.
// Grounded on the teacher's cmd/spacetraders-daemon run() loop — ordered
// setup, no goroutines crossing phase boundaries — generalized from a
// fixed command pipeline into the colony's tick state machine.
package tick

import (
	"fmt"
	"log"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/ledger"
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/node"
	"github.com/ShadyMccoy/colony-controller/internal/domain/scheduler"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// rebuildTTLTicks bounds how long one incremental rebuild run may stay
// in flight (spec.md §5 "Cancellation") before the scheduler aborts it.
const rebuildTTLTicks = 200

// maxRoomsPerRebuildBatch caps how many rooms one analyzing-phase batch
// touches, keeping a single Step call bounded regardless of colony size.
const maxRoomsPerRebuildBatch = 64

// neighborRadiusTiles bounds how far the surveyor looks for an adjacent
// node when scoring hauling/expansion candidates.
const neighborRadiusTiles = 300

// Driver is the sole entry point into the simulation, per spec.md §5:
// a synchronous, non-reentrant Step. It owns every piece of mutable
// state spec.md §3 names, and is the only place that composes the
// spatial/node/variant/corp/market/ledger/spawnorder packages into a
// running system.
type Driver struct {
	ticks shared.TickSource

	registry  *node.Registry
	market    *market.Market
	book      *ledger.Book
	scheduler *scheduler.Scheduler
	accountant *Accountant
	intel     *IntelStore

	engine  host.Engine
	terrain spatial.TerrainProvider

	corps   map[string]corp.Corp
	corpIDs []string // deterministic iteration order

	spatialStarts []shared.RoomCoord

	summaryCadenceTicks int64
	logger              *log.Logger
}

// Config bundles what a Driver needs to wire its collaborators.
type Config struct {
	Ticks               shared.TickSource
	Engine              host.Engine
	SpatialStarts       []shared.RoomCoord
	SummaryCadenceTicks int64
	Logger              *log.Logger
}

// NewDriver builds a Driver with fresh, empty state. Corps are attached
// afterward via AddCorp, since a scenario or host-gateway caller builds
// them from live host observations the driver itself doesn't make.
func NewDriver(cfg Config) *Driver {
	if cfg.SummaryCadenceTicks <= 0 {
		cfg.SummaryCadenceTicks = 100
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	registry := node.NewRegistry()
	book := ledger.NewBook()
	corps := make(map[string]corp.Corp)

	d := &Driver{
		ticks:               cfg.Ticks,
		registry:            registry,
		market:               market.NewMarket(),
		book:                 book,
		scheduler:            scheduler.NewScheduler(cfg.Ticks, rebuildTTLTicks),
		intel:                NewIntelStore(),
		engine:               cfg.Engine,
		terrain:              newHostTerrain(cfg.Engine),
		corps:                corps,
		spatialStarts:        cfg.SpatialStarts,
		summaryCadenceTicks:  cfg.SummaryCadenceTicks,
		logger:               cfg.Logger,
	}
	d.accountant = NewAccountant(book, corps, cfg.Ticks)
	return d
}

// AddCorp registers a corp with the driver, keyed by its own id.
func (d *Driver) AddCorp(c corp.Corp) {
	d.corps[c.ID()] = c
	d.corpIDs = append(d.corpIDs, c.ID())
	sort.Strings(d.corpIDs)
}

// Registry exposes the node registry for the console/persistence surfaces.
func (d *Driver) Registry() *node.Registry { return d.registry }

// Market exposes the market for the console/persistence surfaces.
func (d *Driver) Market() *market.Market { return d.market }

// Book exposes the ledger for the console/persistence surfaces.
func (d *Driver) Book() *ledger.Book { return d.book }

// Intel exposes recorded scouting intel for the console surface.
func (d *Driver) Intel() *IntelStore { return d.intel }

// Corps exposes the live corp registry for persistence/console use.
func (d *Driver) Corps() map[string]corp.Corp { return d.corps }

// Scheduler exposes the incremental-rebuild state machine for console
// introspection (spec.md §6 "recalculateTerrain" forces a Trigger).
func (d *Driver) Scheduler() *scheduler.Scheduler { return d.scheduler }

// Accountant exposes the ledger adapter so new corps can be constructed
// against the same Minter the driver itself uses.
func (d *Driver) Accountant() *Accountant { return d.accountant }

// Step runs one full tick: corps plan and work, the market clears,
// contracts settle, one incremental-rebuild batch runs, then (at the
// configured cadence) a summary is logged. Per spec.md §7, only
// EphemeralError and InvariantViolation are expected per-corp failures;
// anything else is logged as a StructuralError and the tick continues —
// Step itself never returns a fatal error past this boundary. A panic
// inside the tick is recovered and logged as a StructuralError; the rest
// of that tick is skipped.
func (d *Driver) Step() {
	defer func() {
		if r := recover(); r != nil {
			d.logStructural("tick", fmt.Errorf("panic: %v", r))
		}
	}()
	tick := d.ticks.Now()

	d.planAndWork(tick)
	result, err := d.clearMarket(tick)
	if err != nil {
		d.logStructural("market", err)
	}
	d.settleContracts(tick)
	d.runIncrementalRebuild()

	if d.summaryCadenceTicks > 0 && tick%d.summaryCadenceTicks == 0 {
		d.logSummary(tick, result)
	}
}

func (d *Driver) planAndWork(tick int64) {
	for _, id := range d.corpIDs {
		if err := d.corps[id].Plan(tick); err != nil {
			d.logCorpError(id, "plan", err)
		}
	}
	for _, id := range d.corpIDs {
		if err := d.corps[id].Work(tick); err != nil {
			d.logCorpError(id, "work", err)
		}
	}
}

func (d *Driver) clearMarket(tick int64) (market.Result, error) {
	quoters := make([]market.Quoter, 0, len(d.corpIDs))
	for _, id := range d.corpIDs {
		quoters = append(quoters, d.corps[id])
	}
	return d.market.Clear(tick, quoters, d.accountant)
}

// settleContracts runs the physical-delivery hook for every corp against
// its own active contracts, then the ledger-side payment pass.
func (d *Driver) settleContracts(tick int64) {
	byParticipant := make(map[string][]*market.Contract)
	for _, c := range d.market.ActiveContracts() {
		byParticipant[c.SellerID()] = append(byParticipant[c.SellerID()], c)
		byParticipant[c.BuyerID()] = append(byParticipant[c.BuyerID()], c)
	}
	for _, id := range d.corpIDs {
		if err := d.corps[id].Execute(byParticipant[id], tick); err != nil {
			d.logCorpError(id, "execute", err)
		}
	}

	executor := market.NewExecutor()
	for _, retired := range executor.Settle(tick, d.market, d.accountant) {
		if retired.Expired {
			d.logger.Printf("tick %d: contract %s expired unfulfilled", tick, retired.ID)
		}
	}
}

// runIncrementalRebuild triggers (if idle) and advances the territory
// scheduler by exactly one phase, per spec.md §4.11's "one batch per
// tick" budget.
func (d *Driver) runIncrementalRebuild() {
	if err := d.scheduler.Trigger(); err != nil {
		d.logStructural("scheduler", err)
		return
	}
	err := d.scheduler.Step(
		d.terrain,
		d.terrain.DescribeExits,
		d.spatialStarts,
		maxRoomsPerRebuildBatch,
		d.registry,
		d.neighborsOf,
		d.distanceFromOwned,
	)
	if err != nil {
		d.logStructural("scheduler", err)
	}
}

// neighborsOf finds every other node within neighborRadiusTiles, using
// the real walking-distance function over the same terrain/exits the
// rebuild just analyzed with.
func (d *Driver) neighborsOf(n *node.Node, fresh []*node.Node) []node.NeighborSummary {
	var out []node.NeighborSummary
	for _, other := range fresh {
		if other.ID() == n.ID() {
			continue
		}
		dist := spatial.WalkingDistance(d.terrain, d.terrain.DescribeExits, n.Peak(), other.Peak())
		if dist > neighborRadiusTiles {
			continue
		}
		out = append(out, node.NeighborSummary{
			NodeID:          other.ID(),
			HasSink:         other.IsOwned(),
			SourceResources: sourceResourcesOf(other),
			Distance:        dist,
		})
	}
	return out
}

func sourceResourcesOf(n *node.Node) []node.Resource {
	var out []node.Resource
	for _, r := range n.Resources() {
		if r.Kind == node.ResourceSource {
			out = append(out, r)
		}
	}
	return out
}

// distanceFromOwned walks the registry's current node set (already
// reconciled earlier in this same rebuild run) for the nearest owned node.
func (d *Driver) distanceFromOwned(n *node.Node) int {
	if n.IsOwned() {
		return 0
	}
	best := -1
	for _, other := range d.registry.All() {
		if !other.IsOwned() {
			continue
		}
		dist := spatial.WalkingDistance(d.terrain, d.terrain.DescribeExits, n.Peak(), other.Peak())
		if best == -1 || dist < best {
			best = dist
		}
	}
	if best == -1 {
		return neighborRadiusTiles * 10 // no owned node yet; treat as maximally far
	}
	return best
}

func (d *Driver) logCorpError(corpID, phase string, err error) {
	switch err.(type) {
	case *shared.EphemeralError:
		return // expected, retried next tick
	case *shared.InvariantViolation:
		d.logger.Printf("corp %s invariant violated in %s: %v", corpID, phase, err)
	default:
		d.logStructural(fmt.Sprintf("corp/%s", corpID), err)
	}
}

func (d *Driver) logStructural(component string, err error) {
	d.logger.Printf("structural error in %s: %v", component, shared.NewStructuralError(component, err.Error()))
}

func (d *Driver) logSummary(tick int64, result market.Result) {
	d.logger.Printf(
		"tick %d: %d corps, %d active contracts, market volume %d @ avg %.2f, rebuild phase %s",
		tick, len(d.corps), len(d.market.ActiveContracts()), result.TotalVolume, result.AveragePrice, d.scheduler.Phase(),
	)
}
