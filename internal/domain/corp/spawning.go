package corp

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

// workTickPrice is what a Spawning corp charges other corps for one
// unit of body-part capacity per spawn cycle, per spec.md §4.7: "sells
// work-ticks". Priced at the host's own WORK-part cost so the market
// never prefers spawning a body over buying capacity already built.
const workTickPrice = float64(shared.WorkPartCost) / float64(shared.CreepLifetime)

// Spawning holds the FIFO queue of spawn orders for one room's spawn
// and drains its head whenever the spawn is idle and affordable, per
// spec.md §4.7. Grounded on other_examples' rts-engine ProductionSystem
// queue-drain loop, generalized from a build-time ratio to an
// energy-affordability gate (this domain's spawnBody is atomic, not
// progressive).
type Spawning struct {
	Base

	spawnID string
	queue   *spawnorder.Queue
	engine  host.Engine
}

// NewSpawning builds a spawning corp bound to one host spawn object.
func NewSpawning(id, spawnID string, queue *spawnorder.Queue, engine host.Engine) *Spawning {
	return &Spawning{
		Base:    NewBase(id, TypeSpawning),
		spawnID: spawnID,
		queue:   queue,
		engine:  engine,
	}
}

// Queue exposes the corp's spawn queue for console introspection
// (spec.md §6 "clearSpawnQueue"/"marketStatus").
func (s *Spawning) Queue() *spawnorder.Queue { return s.queue }

func (s *Spawning) Plan(tick int64) error {
	s.queue.Evict(tick)
	return nil
}

func (s *Spawning) Buys(tick int64) []market.Offer { return nil }

// Sells posts the spawn's remaining body-part capacity for this cycle.
func (s *Spawning) Sells(tick int64) []market.Offer {
	if s.queue.Full() {
		return nil
	}
	capacity := (s.queue.Len()) * shared.WorkPartCost
	if capacity <= 0 {
		return nil
	}
	offer, err := market.NewOffer(s.ID(), market.SideSell, "work-ticks", capacity, workTickPrice, "", planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// Work spawns the head of the queue when the host spawn is idle and
// affordable, per spec.md §4.7.
func (s *Spawning) Work(tick int64) error {
	order, ok := s.queue.Peek()
	if !ok {
		return nil
	}

	parts := bodyFor(order)
	result, err := s.engine.SpawnBody(s.spawnID, parts, order.ID, string(order.CreepType))
	if err != nil {
		return shared.NewEphemeralError("spawning: host rpc failed: " + err.Error())
	}
	if result.Busy {
		return shared.NewEphemeralError("spawning: spawn busy")
	}
	if result.NotEnoughEnergy {
		return shared.NewEphemeralError("spawning: insufficient energy")
	}
	if result.OK {
		s.queue.Pop()
		s.RecordDelivery(order.ID, 1)
	}
	return nil
}

func (s *Spawning) Execute(contracts []*market.Contract, tick int64) error { return nil }

// bodyFor converts a spawn order's requested parts into a concrete
// body list, per spec.md §3: "fulfilled by converting requested parts
// into a concrete body given the room's current energy capacity."
func bodyFor(order spawnorder.SpawnOrder) []string {
	var parts []string
	switch order.CreepType {
	case spawnorder.CreepHauler:
		moveParts := order.HaulDemandRequested
		for i := 0; i < moveParts; i++ {
			parts = append(parts, "carry", "move")
		}
	default:
		workParts := order.WorkPartsRequested
		if workParts <= 0 {
			workParts = 1
		}
		moveParts := (workParts + 1) / 2
		for i := 0; i < workParts; i++ {
			parts = append(parts, "work")
		}
		for i := 0; i < moveParts; i++ {
			parts = append(parts, "move")
		}
	}
	return parts
}

func (s *Spawning) Serialize() ([]byte, error) {
	return marshal(spawningData{
		Base:    s.Base,
		SpawnID: s.spawnID,
		Orders:  s.queue.Orders(),
	})
}

func (s *Spawning) Deserialize(data []byte) error {
	var d spawningData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	s.Base = d.Base
	s.spawnID = d.SpawnID
	s.queue.Load(d.Orders)
	return nil
}

type spawningData struct {
	Base    `json:"base"`
	SpawnID string                  `json:"spawnId"`
	Orders  []spawnorder.SpawnOrder `json:"orders"`
}
