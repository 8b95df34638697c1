package corp

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

// Bootstrap is the fallback "jack" corp, active only while a room has
// no complete mining-plus-hauling pair, per spec.md §4.7.
type Bootstrap struct {
	Base

	roomID        string
	sourceIDs     []string
	miningActive  bool
	spawnCapacity int

	queue *spawnorder.Queue
}

// NewBootstrap builds a bootstrap corp over one room's sources.
func NewBootstrap(id, roomID string, sourceIDs []string, queue *spawnorder.Queue) *Bootstrap {
	return &Bootstrap{
		Base:      NewBase(id, TypeBootstrap),
		roomID:    roomID,
		sourceIDs: append([]string(nil), sourceIDs...),
		queue:     queue,
	}
}

// Queue exposes the corp's spawn queue for console introspection
// (spec.md §6 "clearSpawnQueue"/"marketStatus").
func (b *Bootstrap) Queue() *spawnorder.Queue { return b.queue }

// RecordMiningPairComplete is set by the colony surveyor once a room
// has at least one live miner-hauler pair; this corp retires its
// production once true.
func (b *Bootstrap) RecordMiningPairComplete(complete bool) {
	b.miningActive = complete
}

// RecordSpawnCapacity is how much energy the room's spawn budget
// currently allows this corp to draw on.
func (b *Bootstrap) RecordSpawnCapacity(capacity int) {
	b.spawnCapacity = capacity
}

func (b *Bootstrap) Plan(tick int64) error { return nil }

func (b *Bootstrap) Buys(tick int64) []market.Offer { return nil }

func (b *Bootstrap) Sells(tick int64) []market.Offer { return nil }

// Work enqueues one general-purpose "jack" agent per source, up to the
// room's spawn energy budget, while no mining-hauling pair exists yet.
func (b *Bootstrap) Work(tick int64) error {
	if b.miningActive {
		return nil
	}
	if b.queue.Full() {
		return shared.NewEphemeralError("bootstrap: spawn queue full for " + b.ID())
	}
	jackCost := shared.WorkPartCost + shared.CarryPartCost + shared.MovePartCost
	affordable := b.spawnCapacity / jackCost
	if affordable <= 0 {
		return shared.NewEphemeralError("bootstrap: insufficient spawn capacity")
	}
	count := len(b.sourceIDs)
	if affordable < count {
		count = affordable
	}
	for i := 0; i < count; i++ {
		b.queue.Enqueue(spawnorder.NewSpawnOrder(b.ID(), spawnorder.CreepJack, 1, 0, tick))
	}
	return nil
}

func (b *Bootstrap) Execute(contracts []*market.Contract, tick int64) error { return nil }

func (b *Bootstrap) Serialize() ([]byte, error) {
	return marshal(bootstrapData{
		Base:          b.Base,
		RoomID:        b.roomID,
		SourceIDs:     b.sourceIDs,
		MiningActive:  b.miningActive,
		SpawnCapacity: b.spawnCapacity,
	})
}

func (b *Bootstrap) Deserialize(data []byte) error {
	var d bootstrapData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	b.Base = d.Base
	b.roomID = d.RoomID
	b.sourceIDs = d.SourceIDs
	b.miningActive = d.MiningActive
	b.spawnCapacity = d.SpawnCapacity
	return nil
}

type bootstrapData struct {
	Base          `json:"base"`
	RoomID        string   `json:"roomId"`
	SourceIDs     []string `json:"sourceIds"`
	MiningActive  bool     `json:"miningActive"`
	SpawnCapacity int      `json:"spawnCapacity"`
}
