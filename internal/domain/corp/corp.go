// Package corp implements the seven behavioral-contract role corps of
// spec.md §4.7. Grounded on the teacher's application/ship/strategies
// package: one shared interface (CargoTransactionStrategy there, Corp
// here) behind which several small, distinct structs implement the
// role-specific behavior, each embedding the same bookkeeping base the
// way every teacher strategy embeds its own apiClient port.
package corp

import (
	"encoding/json"
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
)

// Type tags which of the seven role contracts a corp implements.
type Type string

const (
	TypeHarvest   Type = "harvest"
	TypeHaul      Type = "haul"
	TypeUpgrade   Type = "upgrade"
	TypeSpawning  Type = "spawning"
	TypeConstruct Type = "construct"
	TypeBootstrap Type = "bootstrap"
	TypeScout     Type = "scout"
)

// Corp is the capability every role corp exposes, per spec.md §4.7.
// Corps are process-wide entities that outlive agents (spec.md §3);
// they are addressed structurally by the market (market.Quoter,
// market.Ledger) rather than through this wider interface, so corp
// never needs to be imported by market — only the reverse.
type Corp interface {
	ID() string
	Type() Type
	Balance() float64

	Buys(tick int64) []market.Offer
	Sells(tick int64) []market.Offer

	// Plan recomputes the corp's target configuration (variant choice,
	// body-part targets, spawn requests) — spec.md §3's "variants are
	// recomputed every planning interval" cadence.
	Plan(tick int64) error

	// Work actuates the corp's assigned agents for this tick via the
	// host engine port (spec.md §5 phase 1).
	Work(tick int64) error

	// Execute settles the corp's side of its currently active
	// contracts: physically delivering energy/work and recording
	// RecordDelivery on both the contract and the corp's own ledger.
	Execute(contracts []*market.Contract, tick int64) error

	RecordRevenue(delta float64)
	RecordCost(delta float64)
	RecordDelivery(contractID string, quantity int) error

	Serialize() ([]byte, error)
	Deserialize(data []byte) error
}

// Base holds the bookkeeping fields every role corp shares (spec.md
// §3's Corp data model: id, type, balance, totals, committed
// resources, creep-id set, current offers). Role structs embed Base
// and add only their role-specific assignment fields, the same way
// every teacher strategy embeds its apiClient port and adds nothing
// else to the shared shape.
type Base struct {
	ID_       string `json:"id"`
	Type_     Type   `json:"type"`
	Balance_  float64 `json:"balance"`
	Revenue   float64 `json:"totalRevenue"`
	Cost      float64 `json:"totalCost"`
	Committed map[string]int    `json:"committedResources"`
	Creeps    map[string]bool   `json:"creepIds"`
	Deliveries map[string]int  `json:"deliveries"` // contractID -> cumulative units delivered
}

// NewBase builds a zeroed bookkeeping base for a freshly-created corp.
func NewBase(id string, t Type) Base {
	return Base{
		ID_:        id,
		Type_:      t,
		Committed:  make(map[string]int),
		Creeps:     make(map[string]bool),
		Deliveries: make(map[string]int),
	}
}

func (b *Base) ID() string      { return b.ID_ }
func (b *Base) Type() Type      { return b.Type_ }
func (b *Base) Balance() float64 { return b.Balance_ }

// RecordRevenue credits the corp's balance, per spec.md §4.8 step 6's
// recordRevenue callback. Direct balance writes are disallowed
// elsewhere (spec.md §5's shared-resource policy) — this is the only path.
func (b *Base) RecordRevenue(delta float64) {
	b.Balance_ += delta
	b.Revenue += delta
}

// RecordCost debits the corp's balance.
func (b *Base) RecordCost(delta float64) {
	b.Balance_ -= delta
	b.Cost += delta
}

// RecordDelivery tracks cumulative delivered units per contract on the
// corp's own side of the ledger (separate from market.Contract's own
// delivered counter, which the market package owns).
func (b *Base) RecordDelivery(contractID string, quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("corp: delivery quantity cannot be negative")
	}
	if b.Deliveries == nil {
		b.Deliveries = make(map[string]int)
	}
	b.Deliveries[contractID] += quantity
	return nil
}

// CommitResource reserves a resource for this corp's exclusive use
// (e.g. a harvest corp claiming a source, spec.md §3's
// "committed-resources map").
func (b *Base) CommitResource(resourceID string, quantity int) {
	if b.Committed == nil {
		b.Committed = make(map[string]int)
	}
	b.Committed[resourceID] = quantity
}

func (b *Base) ReleaseResource(resourceID string) {
	delete(b.Committed, resourceID)
}

func (b *Base) CommittedQuantity(resourceID string) int {
	return b.Committed[resourceID]
}

// AddCreep registers a creep as belonging to this corp.
func (b *Base) AddCreep(creepID string) {
	if b.Creeps == nil {
		b.Creeps = make(map[string]bool)
	}
	b.Creeps[creepID] = true
}

func (b *Base) RemoveCreep(creepID string) {
	delete(b.Creeps, creepID)
}

func (b *Base) CreepCount() int {
	return len(b.Creeps)
}

func (b *Base) CreepIDs() []string {
	out := make([]string, 0, len(b.Creeps))
	for id := range b.Creeps {
		out = append(out, id)
	}
	return out
}

// marshal and unmarshal are the shared JSON codec every role corp's
// Serialize/Deserialize delegates to, wrapping the role-specific struct
// (which embeds Base) as a single encoding/json document. Grounded on
// the teacher's ToData()/FromData() DTO round-trip
// (domain/mining/mining_operation.go), simplified to a direct JSON tag
// struct since this domain has no ORM-mapped persistence layer to
// decouple from.
func marshal(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

func unmarshal(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}
