// Package persistence is a gorm-backed reference store for the
// deterministic snapshot codec in internal/application/persistence —
// spec.md §6's "persistence contract" needs something to round-trip
// against in tests, not a replacement for the host's own save data
// (that remains the host process's concern, per spec.md's Non-goals).
// Grounded on the teacher's adapters/persistence gorm repositories:
// one model, one thin CRUD wrapper, no business logic.
package persistence

import (
	"time"

	"gorm.io/gorm"
)

// SnapshotModel is the one table this store owns: one row per
// (colonyID, tick) snapshot, holding the codec's serialized bytes.
type SnapshotModel struct {
	ID        uint   `gorm:"primarykey"`
	ColonyID  string `gorm:"index;not null"`
	Tick      int64  `gorm:"index;not null"`
	Encoding  string `gorm:"not null"` // codec name, e.g. "json/v1"
	Data      []byte `gorm:"not null"`
	CreatedAt time.Time
}

// SnapshotStore is the narrow persistence port this package satisfies.
type SnapshotStore interface {
	Save(colonyID string, tick int64, encoding string, data []byte) error
	Latest(colonyID string) (*SnapshotModel, error)
}

// GormSnapshotStore is the reference SnapshotStore implementation.
type GormSnapshotStore struct {
	db *gorm.DB
}

// NewGormSnapshotStore wraps an already-migrated *gorm.DB.
func NewGormSnapshotStore(db *gorm.DB) *GormSnapshotStore {
	return &GormSnapshotStore{db: db}
}

// Save appends a new snapshot row; history is kept, not overwritten,
// so Latest always has a consistent predecessor to fall back to.
func (s *GormSnapshotStore) Save(colonyID string, tick int64, encoding string, data []byte) error {
	return s.db.Create(&SnapshotModel{
		ColonyID: colonyID,
		Tick:     tick,
		Encoding: encoding,
		Data:     data,
	}).Error
}

// Latest returns the highest-tick snapshot recorded for a colony.
func (s *GormSnapshotStore) Latest(colonyID string) (*SnapshotModel, error) {
	var m SnapshotModel
	err := s.db.Where("colony_id = ?", colonyID).Order("tick desc").First(&m).Error
	if err != nil {
		return nil, err
	}
	return &m, nil
}

var _ SnapshotStore = (*GormSnapshotStore)(nil)
