package tick

import "github.com/ShadyMccoy/colony-controller/internal/domain/corp"

// IntelStore is the driver-owned corp.IntelSink: scout corps report
// observations here, keyed by room, for the console surface (spec.md §6
// "showNodes"/"marketStatus"-style introspection) to read back later.
type IntelStore struct {
	byRoom map[string]corp.Intel
}

// NewIntelStore builds an empty store.
func NewIntelStore() *IntelStore {
	return &IntelStore{byRoom: make(map[string]corp.Intel)}
}

func (s *IntelStore) RecordIntel(i corp.Intel) {
	s.byRoom[i.RoomID] = i
}

// Get returns the most recent intel recorded for a room, if any.
func (s *IntelStore) Get(roomID string) (corp.Intel, bool) {
	i, ok := s.byRoom[roomID]
	return i, ok
}

// All returns every room this store has intel for.
func (s *IntelStore) All() map[string]corp.Intel {
	out := make(map[string]corp.Intel, len(s.byRoom))
	for k, v := range s.byRoom {
		out[k] = v
	}
	return out
}
