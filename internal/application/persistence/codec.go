// Package persistence implements the deterministic snapshot codec
// spec.md §6 requires for the colony's save/restore contract: the same
// state must always serialize to the same bytes, so a round trip is a
// reproducible regression check rather than a best-effort dump.
// Grounded on domain/corp.Corp's own Serialize/Deserialize contract
// (spec.md §3), which every role already implements; this package only
// adds the envelope tying corps, the node registry, and the ledger
// together into one snapshot.
//
// Plain encoding/json is the deliberate choice here, not a gap: Go's
// map key ordering in json.Marshal is already sorted lexically, so a
// stdlib encoder gives byte-for-byte determinism for free. None of the
// teacher's or the pack's serialization libraries (gorm model tags,
// protobuf) offer that guarantee without extra plumbing, so reaching
// for one would add a dependency without buying anything the stdlib
// doesn't already do correctly.
package persistence

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/ledger"
	"github.com/ShadyMccoy/colony-controller/internal/domain/node"
)

// Version tags the snapshot envelope's shape, stored alongside the
// bytes (adapters/persistence.SnapshotModel.Encoding) so a reader can
// tell incompatible future formats apart.
const Version = "json/v1"

// Snapshot is one colony's full recoverable state at a tick.
type Snapshot struct {
	Tick   int64                      `json:"tick"`
	Nodes  []nodeSnapshot             `json:"nodes"`
	Corps  map[string]json.RawMessage `json:"corps"`
	Ledger []transactionSnapshot      `json:"ledger"`
}

type nodeSnapshot struct {
	ID            string   `json:"id"`
	TerritorySize int      `json:"territorySize"`
	Rooms         []string `json:"rooms"`
}

// transactionSnapshot is ledger.Transaction's exported-field mirror;
// Transaction keeps its fields private to protect its own balance
// invariant, so the codec reads it back out through its accessors.
type transactionSnapshot struct {
	ID              string  `json:"id"`
	CorpID          string  `json:"corpId"`
	Tick            int64   `json:"tick"`
	Type            string  `json:"type"`
	Category        string  `json:"category"`
	Amount          float64 `json:"amount"`
	BalanceBefore   float64 `json:"balanceBefore"`
	BalanceAfter    float64 `json:"balanceAfter"`
	Description     string  `json:"description"`
	RelatedContract string  `json:"relatedContract,omitempty"`
}

// Encode captures the registry, every corp, and the ledger's full
// transaction log into one deterministic byte slice.
func Encode(tick int64, registry *node.Registry, corps map[string]corp.Corp, book *ledger.Book) ([]byte, error) {
	snap := Snapshot{
		Tick:  tick,
		Corps: make(map[string]json.RawMessage, len(corps)),
	}
	for _, t := range book.Entries() {
		snap.Ledger = append(snap.Ledger, transactionSnapshot{
			ID:              t.ID().String(),
			CorpID:          t.CorpID(),
			Tick:            t.Tick(),
			Type:            t.TransactionType().String(),
			Category:        t.Category().String(),
			Amount:          t.Amount(),
			BalanceBefore:   t.BalanceBefore(),
			BalanceAfter:    t.BalanceAfter(),
			Description:     t.Description(),
			RelatedContract: t.RelatedContract(),
		})
	}

	nodes := registry.All()
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID() < nodes[j].ID() })
	for _, n := range nodes {
		rooms := make([]string, 0, len(n.Rooms()))
		for _, r := range n.Rooms() {
			rooms = append(rooms, r.String())
		}
		snap.Nodes = append(snap.Nodes, nodeSnapshot{ID: n.ID(), TerritorySize: n.TerritorySize(), Rooms: rooms})
	}

	for id, c := range corps {
		raw, err := c.Serialize()
		if err != nil {
			return nil, fmt.Errorf("persistence: serialize corp %s: %w", id, err)
		}
		snap.Corps[id] = json.RawMessage(raw)
	}

	return json.MarshalIndent(snap, "", "  ")
}

// Decode reconstructs a Snapshot envelope; restoring it into live
// corp/node objects is the caller's job, since only the caller knows
// which concrete corp.Type each id names (spec.md §3's corp registry
// is keyed by id, not by a self-describing type tag in this codec).
func Decode(data []byte) (*Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("persistence: decode snapshot: %w", err)
	}
	return &snap, nil
}
