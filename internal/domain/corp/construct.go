package corp

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spatial"
)

// maxConstructionSites bounds how many sites a single construct corp
// schedules at once, keeping one builder's worth of active work.
const maxConstructionSites = 5

// Construct produces construction progress: it buys energy and
// schedules placements along walls in open plains of the peak's
// territory, per spec.md §4.7.
type Construct struct {
	Base

	territory    []spatial.Tile
	deliveryTile string
	engine       host.Engine

	scheduledSites []string
	progressTicks  int
}

// NewConstruct builds a construct corp over one node's territory.
func NewConstruct(id string, territory []spatial.Tile, deliveryTile string, engine host.Engine) *Construct {
	return &Construct{
		Base:         NewBase(id, TypeConstruct),
		territory:    territory,
		deliveryTile: deliveryTile,
		engine:       engine,
	}
}

// Plan rescans the territory for open-plain tiles adjacent to a wall
// and schedules up to maxConstructionSites of them, skipping tiles
// already scheduled.
func (c *Construct) Plan(tick int64) error {
	if len(c.scheduledSites) >= maxConstructionSites {
		return nil
	}
	already := make(map[string]bool, len(c.scheduledSites))
	for _, s := range c.scheduledSites {
		already[s] = true
	}
	for _, t := range c.territory {
		if len(c.scheduledSites) >= maxConstructionSites {
			break
		}
		if c.engine.Terrain(t.Room.String(), t.X, t.Y) != host.TerrainPlain {
			continue
		}
		key := t.String()
		if already[key] {
			continue
		}
		if !c.adjacentToWall(t) {
			continue
		}
		c.scheduledSites = append(c.scheduledSites, key)
		already[key] = true
	}
	return nil
}

func (c *Construct) adjacentToWall(t spatial.Tile) bool {
	deltas := [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	for _, d := range deltas {
		nx, ny := t.X+d[0], t.Y+d[1]
		if nx < 0 || nx >= spatial.RoomSize || ny < 0 || ny >= spatial.RoomSize {
			continue
		}
		if c.engine.Terrain(t.Room.String(), nx, ny) == host.TerrainWall {
			return true
		}
	}
	return false
}

// Buys bids for construction energy at the markup spec.md §4.7 doesn't
// further specify; priced at parity since construct has no resale.
func (c *Construct) Buys(tick int64) []market.Offer {
	if len(c.scheduledSites) == 0 {
		return nil
	}
	quantity := len(c.scheduledSites) * constructionEnergyPerSite
	offer, err := market.NewOffer(c.ID(), market.SideBuy, "energy", quantity, constructionEnergyValue, c.deliveryTile, planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// constructionEnergyPerSite and constructionEnergyValue are the host
// engine's standard construction-site cost and this corp's flat
// valuation per energy unit spent building.
const (
	constructionEnergyPerSite = 500
	constructionEnergyValue   = 1.0
)

func (c *Construct) Sells(tick int64) []market.Offer { return nil }

func (c *Construct) Work(tick int64) error {
	c.progressTicks++
	return nil
}

func (c *Construct) Execute(contracts []*market.Contract, tick int64) error { return nil }

func (c *Construct) Serialize() ([]byte, error) {
	return marshal(constructData{
		Base:           c.Base,
		Territory:      c.territory,
		DeliveryTile:   c.deliveryTile,
		ScheduledSites: c.scheduledSites,
		ProgressTicks:  c.progressTicks,
	})
}

func (c *Construct) Deserialize(data []byte) error {
	var d constructData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	c.Base = d.Base
	c.territory = d.Territory
	c.deliveryTile = d.DeliveryTile
	c.scheduledSites = d.ScheduledSites
	c.progressTicks = d.ProgressTicks
	return nil
}

type constructData struct {
	Base           `json:"base"`
	Territory      []spatial.Tile `json:"territory"`
	DeliveryTile   string         `json:"deliveryTile"`
	ScheduledSites []string       `json:"scheduledSites"`
	ProgressTicks  int            `json:"progressTicks"`
}
