package tick_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/adapters/hostmock"
	"github.com/ShadyMccoy/colony-controller/internal/application/tick"
	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/host"
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// fakeCorp is the minimal corp.Corp a driver test needs: a fixed buy or
// sell offer and counters so assertions can see that Plan/Work/Execute
// were actually invoked by Step.
type fakeCorp struct {
	id       string
	balance  float64
	sell     *market.Offer
	buy      *market.Offer
	plans    int
	works    int
	executes int
}

func (c *fakeCorp) ID() string      { return c.id }
func (c *fakeCorp) Type() corp.Type { return corp.TypeHarvest }
func (c *fakeCorp) Balance() float64 { return c.balance }

func (c *fakeCorp) Buys(tick int64) []market.Offer {
	if c.buy == nil {
		return nil
	}
	return []market.Offer{*c.buy}
}

func (c *fakeCorp) Sells(tick int64) []market.Offer {
	if c.sell == nil {
		return nil
	}
	return []market.Offer{*c.sell}
}

func (c *fakeCorp) Plan(tick int64) error { c.plans++; return nil }
func (c *fakeCorp) Work(tick int64) error { c.works++; return nil }

func (c *fakeCorp) Execute(contracts []*market.Contract, tick int64) error {
	c.executes++
	return nil
}

func (c *fakeCorp) RecordRevenue(delta float64) { c.balance += delta }
func (c *fakeCorp) RecordCost(delta float64)    { c.balance -= delta }

func (c *fakeCorp) RecordDelivery(contractID string, quantity int) error { return nil }

func (c *fakeCorp) Serialize() ([]byte, error) { return []byte("{}"), nil }
func (c *fakeCorp) Deserialize(data []byte) error { return nil }

var _ corp.Corp = (*fakeCorp)(nil)

func newHarness(t *testing.T) (*tick.Driver, *shared.MockTickSource) {
	t.Helper()
	engine := hostmock.New()
	var terrain [2500]host.Terrain
	for i := range terrain {
		terrain[i] = host.TerrainPlain
	}
	engine.AddRoom("0_0", hostmock.Room{Terrain: terrain})

	ticks := shared.NewMockTickSource(0)
	driver := tick.NewDriver(tick.Config{
		Ticks:               ticks,
		Engine:              engine,
		SpatialStarts:       []shared.RoomCoord{shared.NewRoomCoord(0, 0)},
		SummaryCadenceTicks: 1,
	})
	return driver, ticks
}

func TestDriver_Step_RunsEveryCorpPhase(t *testing.T) {
	driver, _ := newHarness(t)

	seller := &fakeCorp{id: "seller-a"}
	sellOffer, err := market.NewOffer("seller-a", market.SideSell, "energy", 100, 0.08, "", 100)
	require.NoError(t, err)
	seller.sell = &sellOffer
	driver.AddCorp(seller)

	buyer := &fakeCorp{id: "buyer-a"}
	buyOffer, err := market.NewOffer("buyer-a", market.SideBuy, "energy", 100, 0.12, "", 100)
	require.NoError(t, err)
	buyer.buy = &buyOffer
	driver.AddCorp(buyer)

	driver.Step()

	assert.Equal(t, 1, seller.plans)
	assert.Equal(t, 1, seller.works)
	assert.Equal(t, 1, buyer.plans)
	assert.Equal(t, 1, buyer.works)
	assert.NotEmpty(t, driver.Market().ActiveContracts())
}

func TestDriver_Step_SettlesContractsOverSubsequentTicks(t *testing.T) {
	driver, ticks := newHarness(t)

	seller := &fakeCorp{id: "seller-a"}
	sellOffer, err := market.NewOffer("seller-a", market.SideSell, "energy", 100, 0.08, "", 100)
	require.NoError(t, err)
	seller.sell = &sellOffer
	driver.AddCorp(seller)

	buyer := &fakeCorp{id: "buyer-a"}
	buyOffer, err := market.NewOffer("buyer-a", market.SideBuy, "energy", 100, 0.12, "", 100)
	require.NoError(t, err)
	buyer.buy = &buyOffer
	driver.AddCorp(buyer)

	driver.Step()
	ticks.Advance(1)
	driver.Step()

	assert.Equal(t, 2, seller.executes)
	assert.Equal(t, 2, buyer.executes)
}

func TestDriver_Step_NeverPanicsWithNoCorps(t *testing.T) {
	driver, _ := newHarness(t)
	assert.NotPanics(t, func() { driver.Step() })
}
