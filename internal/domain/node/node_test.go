package node_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/node"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

func mustTile(t *testing.T, room shared.RoomCoord, x, y int) spatial.Tile {
	t.Helper()
	tile, err := spatial.NewTile(room, x, y)
	require.NoError(t, err)
	return tile
}

func TestNewNode_RejectsEmptyRooms(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)
	_, err := node.NewNode("peak-0_0-25-25", peak, 5, nil, 81)
	assert.Error(t, err)
}

func TestNode_ClaimResource_RejectsDuplicateID(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)
	n, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)

	require.NoError(t, n.ClaimResource(node.NewSourceResource("source-1", false)))
	assert.Error(t, n.ClaimResource(node.NewSourceResource("source-1", false)))
	assert.Equal(t, 1, n.SourceCount())
}

func TestNode_IsEconomic_RequiresSourceControllerOrMineral(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)
	n, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	assert.False(t, n.IsEconomic())

	require.NoError(t, n.ClaimResource(node.NewContainerResource("container-1")))
	assert.False(t, n.IsEconomic(), "a container alone does not make a node economic")

	require.NoError(t, n.ClaimResource(node.NewMineralResource("mineral-1", "H")))
	assert.True(t, n.IsEconomic())
}

func TestNode_IsOwned_TrueForOwnedControllerOrSpawn(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)
	n, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	assert.False(t, n.IsOwned())

	require.NoError(t, n.ClaimResource(node.NewControllerResource("controller-1", 2, false)))
	assert.False(t, n.IsOwned(), "an unowned controller does not own the node")

	require.NoError(t, n.ClaimResource(node.NewSpawnResource("spawn-1", 300)))
	assert.True(t, n.IsOwned())
}

func TestSurveyor_Survey_MiningCandidateAboveThreshold(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)
	n, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	require.NoError(t, n.ClaimResource(node.NewSourceResource("source-1", false)))

	roi := node.NewSurveyor().Survey(n, 0, nil)
	require.Len(t, roi.PotentialCorps, 1)
	assert.Equal(t, node.PotentialMining, roi.PotentialCorps[0].Type)
	assert.Greater(t, roi.Score, 0.0)
	assert.True(t, roi.IsOwned == false)
}

func TestSurveyor_Survey_OwnershipGrantsFlatBonus(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	peak := mustTile(t, room, 25, 25)

	unowned, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	owned, err := node.NewNode("peak-0_0-25-26", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	require.NoError(t, owned.ClaimResource(node.NewSpawnResource("spawn-1", 300)))

	s := node.NewSurveyor()
	unownedROI := s.Survey(unowned, 5, nil)
	ownedROI := s.Survey(owned, 0, nil)

	assert.True(t, ownedROI.IsOwned)
	assert.False(t, unownedROI.IsOwned)
}

func TestRegistry_ResolveResourceClaim_PicksLexicographicallySmallestTile(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	reg := node.NewRegistry()

	peakA := mustTile(t, room, 10, 10)
	a, err := node.NewNode("peak-0_0-10-10", peakA, 3, []shared.RoomCoord{room}, 40)
	require.NoError(t, err)
	peakB := mustTile(t, room, 20, 20)
	b, err := node.NewNode("peak-0_0-20-20", peakB, 3, []shared.RoomCoord{room}, 40)
	require.NoError(t, err)
	reg.Reconcile([]*node.Node{a, b})

	resource := node.NewSourceResource("source-shared", false)
	claims := []node.ResourceClaim{
		{NodeID: b.ID(), AdjacentTile: mustTile(t, room, 9, 9)},
		{NodeID: a.ID(), AdjacentTile: mustTile(t, room, 5, 5)},
	}
	require.NoError(t, reg.ResolveResourceClaim(resource, claims))

	assert.Equal(t, 1, a.SourceCount())
	assert.Equal(t, 0, b.SourceCount())
}

func TestRegistry_Reconcile_PreservesROIAcrossRebuilds(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	reg := node.NewRegistry()
	peak := mustTile(t, room, 25, 25)
	n, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	n.SetROI(&node.ROI{Score: 42})
	reg.Reconcile([]*node.Node{n})

	rebuilt, err := node.NewNode("peak-0_0-25-25", peak, 5, []shared.RoomCoord{room}, 81)
	require.NoError(t, err)
	reg.Reconcile([]*node.Node{rebuilt})

	got, ok := reg.Get("peak-0_0-25-25")
	require.True(t, ok)
	require.NotNil(t, got.ROI())
	assert.Equal(t, 42.0, got.ROI().Score)
}
