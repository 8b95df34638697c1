package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// wallAdjacentEngine reports every tile at x==0 as a wall and everything
// else as plain, so a single-column territory sits "against a wall".
type wallAdjacentEngine struct{ fakeEngine }

func (e *wallAdjacentEngine) Terrain(room string, x, y int) host.Terrain {
	if x == 0 {
		return host.TerrainWall
	}
	return host.TerrainPlain
}

func TestConstruct_PlanSchedulesOpenPlainTilesAdjacentToWalls(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	territory := []spatial.Tile{
		{Room: room, X: 1, Y: 5},
		{Room: room, X: 10, Y: 10}, // not adjacent to any wall tile
	}
	engine := &wallAdjacentEngine{}
	c := corp.NewConstruct("construct-1", territory, "", engine)

	require.NoError(t, c.Plan(0))

	offers := c.Buys(0)
	require.Len(t, offers, 1)
	assert.Equal(t, "energy", offers[0].Resource())
}

func TestConstruct_PlanSchedulesNothingWhenNoTileIsAdjacentToAWall(t *testing.T) {
	room := shared.NewRoomCoord(0, 0)
	territory := []spatial.Tile{{Room: room, X: 10, Y: 10}}
	engine := &fakeEngine{} // always plain, never a wall
	c := corp.NewConstruct("construct-1", territory, "", engine)

	require.NoError(t, c.Plan(0))
	assert.Empty(t, c.Buys(0))
}
