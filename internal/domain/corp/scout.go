package corp

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
)

// Intel is one observation a scout writes back about a room, per
// spec.md §4.7: "source positions, controller owner, reservation,
// hostile counts".
type Intel struct {
	RoomID          string
	SourceIDs       []string
	ControllerOwner string
	Reserved        bool
	HostileCount    int
}

// IntelSink is the narrow port Scout writes observations through.
// Declared here rather than in domain/node so corp stays the one-way
// consumer of node, the same narrow-port shape as market.Quoter.
type IntelSink interface {
	RecordIntel(Intel)
}

// Scout owns a minimal agent that ventures across room boundaries and
// writes back intel to the node registry, per spec.md §4.7.
type Scout struct {
	Base

	homeRoom     string
	targetRooms  []string
	currentIndex int

	sink IntelSink
}

// NewScout builds a scout corp cycling through the given target rooms.
func NewScout(id, homeRoom string, targetRooms []string, sink IntelSink) *Scout {
	return &Scout{
		Base:        NewBase(id, TypeScout),
		homeRoom:    homeRoom,
		targetRooms: append([]string(nil), targetRooms...),
		sink:        sink,
	}
}

func (s *Scout) Plan(tick int64) error { return nil }

func (s *Scout) Buys(tick int64) []market.Offer  { return nil }
func (s *Scout) Sells(tick int64) []market.Offer { return nil }

// Work advances the scout to the next target room. The actual movement
// and vision-read is the per-agent micro-controller's job (out of
// scope); this just tracks which room the scout is currently covering.
func (s *Scout) Work(tick int64) error {
	if len(s.targetRooms) == 0 {
		return nil
	}
	s.currentIndex = (s.currentIndex + 1) % len(s.targetRooms)
	return nil
}

func (s *Scout) Execute(contracts []*market.Contract, tick int64) error { return nil }

// RecordObservation is how the per-agent micro-controller reports what
// the scout saw this tick, forwarded straight to the intel sink.
func (s *Scout) RecordObservation(intel Intel) {
	s.sink.RecordIntel(intel)
}

func (s *Scout) Serialize() ([]byte, error) {
	return marshal(scoutData{
		Base:         s.Base,
		HomeRoom:     s.homeRoom,
		TargetRooms:  s.targetRooms,
		CurrentIndex: s.currentIndex,
	})
}

func (s *Scout) Deserialize(data []byte) error {
	var d scoutData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	s.Base = d.Base
	s.homeRoom = d.HomeRoom
	s.targetRooms = d.TargetRooms
	s.currentIndex = d.CurrentIndex
	return nil
}

type scoutData struct {
	Base         `json:"base"`
	HomeRoom     string   `json:"homeRoom"`
	TargetRooms  []string `json:"targetRooms"`
	CurrentIndex int      `json:"currentIndex"`
}
