// Package scheduler implements the incremental node-registry rebuild of
// spec.md §4.11: analyzing/merging/updating spread across successive
// ticks instead of recomputing the whole territory map in one pass.
// Grounded on domain/shared's PhaseStateMachine (itself adapted from the
// teacher's LifecycleStateMachine) plus the teacher's
// application/mining/coordination/channel_coordinator.go idiom of
// splitting one expensive computation across repeated invocations.
package scheduler

import (
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/node"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// Scheduler drives one incremental-rebuild run at a time: analyzing
// (distance transform + peaks + territories) → merging (reconcile the
// node registry) → updating (survey ROI for the rebuilt nodes), one
// phase's batch of work per Step call.
type Scheduler struct {
	sm       *shared.PhaseStateMachine
	ttlTicks int64

	peaks       []spatial.Peak
	territories map[string][]spatial.Tile
	fresh       []*node.Node
}

// NewScheduler creates an idle scheduler. ttlTicks bounds how long a
// triggered run may stay in-flight before Step aborts it (spec.md §5
// "Cancellation").
func NewScheduler(ticks shared.TickSource, ttlTicks int64) *Scheduler {
	return &Scheduler{sm: shared.NewPhaseStateMachine(ticks), ttlTicks: ttlTicks}
}

// Idle reports whether a rebuild run is not currently in flight.
func (s *Scheduler) Idle() bool { return s.sm.IsIdle() }

// Phase exposes the current rebuild phase, for console/audit output.
func (s *Scheduler) Phase() shared.Phase { return s.sm.Phase() }

// Trigger starts a new rebuild run if the scheduler is idle; triggering
// an already-running scheduler is a no-op rather than an error, since
// the tick driver may ask for a rebuild every tick regardless of whether
// one is already in flight.
func (s *Scheduler) Trigger() error {
	if !s.sm.IsIdle() {
		return nil
	}
	return s.sm.Begin()
}

// NeighborLookup resolves the NeighborSummary inputs the surveyor needs
// for a freshly rebuilt node, given the full fresh node set from this
// run's merging phase.
type NeighborLookup func(n *node.Node, fresh []*node.Node) []node.NeighborSummary

// DistanceFromOwned resolves a node's spatial-graph hop count to the
// nearest owned node.
type DistanceFromOwned func(n *node.Node) int

// Step performs exactly one phase's batch of work. When idle it returns
// immediately. analyzing needs the spatial terrain inputs; merging and
// updating need the registry and the surveyor's neighbor/distance
// callbacks respectively — callers only need to supply what the current
// phase actually uses.
func (s *Scheduler) Step(
	tp spatial.TerrainProvider,
	exits func(shared.RoomCoord) map[shared.Exit]shared.RoomCoord,
	starts []shared.RoomCoord,
	maxRooms int,
	registry *node.Registry,
	neighborsOf NeighborLookup,
	distanceFromOwned DistanceFromOwned,
) error {
	if s.sm.IsIdle() {
		return nil
	}
	if s.sm.Stale(s.ttlTicks) {
		s.sm.Abort(shared.NewEphemeralError("incremental rebuild exceeded its tick budget"))
		return nil
	}

	switch s.sm.Phase() {
	case shared.PhaseAnalyzing:
		openness := spatial.DistanceTransform(tp, starts, maxRooms)
		s.peaks = spatial.DetectPeaks(openness, exits)
		s.territories = spatial.PartitionTerritories(s.peaks, openness, exits)
		return s.sm.Advance()

	case shared.PhaseMerging:
		fresh, err := buildNodes(s.peaks, s.territories)
		if err != nil {
			s.sm.Abort(err)
			return err
		}
		s.fresh = fresh
		registry.Reconcile(s.fresh)
		return s.sm.Advance()

	case shared.PhaseUpdating:
		surveyor := node.NewSurveyor()
		for _, n := range s.fresh {
			roi := surveyor.Survey(n, distanceFromOwned(n), neighborsOf(n, s.fresh))
			n.SetROI(&roi)
		}
		s.peaks = nil
		s.territories = nil
		s.fresh = nil
		return s.sm.Advance()
	}
	return nil
}

// buildNodes turns one analyzing-phase result into the fresh node set a
// merging phase reconciles into the registry.
func buildNodes(peaks []spatial.Peak, territories map[string][]spatial.Tile) ([]*node.Node, error) {
	nodes := make([]*node.Node, 0, len(peaks))
	for _, p := range peaks {
		tiles := territories[p.ID]
		if len(tiles) == 0 {
			continue
		}
		roomSet := make(map[shared.RoomCoord]bool, 4)
		for _, t := range tiles {
			roomSet[t.Room] = true
		}
		rooms := make([]shared.RoomCoord, 0, len(roomSet))
		for r := range roomSet {
			rooms = append(rooms, r)
		}
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].Less(rooms[j]) })

		n, err := node.NewNode(p.ID, p.Centroid, p.Height, rooms, len(tiles))
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}
