package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
)

type fakeIntelSink struct {
	recorded []corp.Intel
}

func (s *fakeIntelSink) RecordIntel(i corp.Intel) { s.recorded = append(s.recorded, i) }

func TestScout_RecordObservationForwardsToIntelSink(t *testing.T) {
	sink := &fakeIntelSink{}
	s := corp.NewScout("scout-1", "W1N1", []string{"W1N2", "W1N3"}, sink)

	s.RecordObservation(corp.Intel{RoomID: "W1N2", HostileCount: 3})

	require.Len(t, sink.recorded, 1)
	assert.Equal(t, "W1N2", sink.recorded[0].RoomID)
	assert.Equal(t, 3, sink.recorded[0].HostileCount)
}

func TestScout_WorkCyclesThroughTargetRooms(t *testing.T) {
	sink := &fakeIntelSink{}
	s := corp.NewScout("scout-1", "W1N1", []string{"W1N2", "W1N3"}, sink)

	require.NoError(t, s.Work(0))
	require.NoError(t, s.Work(1))
	require.NoError(t, s.Work(2))
	// no observable index getter; Work must simply not error across a full cycle
}

func TestScout_SerializeDeserializeRoundTrips(t *testing.T) {
	sink := &fakeIntelSink{}
	s := corp.NewScout("scout-1", "W1N1", []string{"W1N2", "W1N3"}, sink)
	require.NoError(t, s.Work(0))

	data, err := s.Serialize()
	require.NoError(t, err)

	restored := corp.NewScout("", "", nil, sink)
	require.NoError(t, restored.Deserialize(data))
	assert.Equal(t, s.ID(), restored.ID())
}
