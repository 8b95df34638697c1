package market_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
)

type fakeCorp struct {
	id    string
	buys  []market.Offer
	sells []market.Offer
}

func (f fakeCorp) ID() string                    { return f.id }
func (f fakeCorp) Buys(tick int64) []market.Offer  { return f.buys }
func (f fakeCorp) Sells(tick int64) []market.Offer { return f.sells }

type fakeLedger struct {
	revenue      map[string]float64
	cost         map[string]float64
	acquisitions map[string]float64
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{revenue: map[string]float64{}, cost: map[string]float64{}, acquisitions: map[string]float64{}}
}
func (l *fakeLedger) RecordRevenue(corpID string, amount float64) { l.revenue[corpID] += amount }
func (l *fakeLedger) RecordCost(corpID string, amount float64)    { l.cost[corpID] += amount }
func (l *fakeLedger) RecordAcquisitionCost(corpID, resource string, amount float64) {
	l.acquisitions[corpID] += amount
}

func mustOffer(t *testing.T, corpID string, side market.Side, resource string, qty int, price float64) market.Offer {
	o, err := market.NewOffer(corpID, side, resource, qty, price, "", 100)
	require.NoError(t, err)
	return o
}

func TestClear_SingleMatchSettlesAtMaxOfAskAndBid(t *testing.T) {
	m := market.NewMarket()
	seller := fakeCorp{id: "harvest-1", sells: []market.Offer{mustOffer(t, "harvest-1", market.SideSell, "energy", 50, 1.0)}}
	buyer := fakeCorp{id: "haul-1", buys: []market.Offer{mustOffer(t, "haul-1", market.SideBuy, "energy", 50, 1.5)}}
	ledger := newFakeLedger()

	result, err := m.Clear(10, []market.Quoter{seller, buyer}, ledger)
	require.NoError(t, err)
	require.Len(t, result.Contracts, 1)
	assert.Equal(t, 50, result.Contracts[0].AgreedQuantity())
	assert.Equal(t, 1.5, result.Contracts[0].PricePerUnit()) // max(sellerAsk, buyerBid)
	assert.Equal(t, 50, result.TotalVolume)
	assert.Equal(t, 75.0, ledger.revenue["harvest-1"])
	assert.Equal(t, 75.0, ledger.cost["haul-1"])
}

func TestClear_BuyerExhaustsMultipleSellers(t *testing.T) {
	m := market.NewMarket()
	s1 := fakeCorp{id: "s1", sells: []market.Offer{mustOffer(t, "s1", market.SideSell, "energy", 20, 1.0)}}
	s2 := fakeCorp{id: "s2", sells: []market.Offer{mustOffer(t, "s2", market.SideSell, "energy", 20, 1.1)}}
	buyer := fakeCorp{id: "b1", buys: []market.Offer{mustOffer(t, "b1", market.SideBuy, "energy", 30, 2.0)}}
	ledger := newFakeLedger()

	result, err := m.Clear(1, []market.Quoter{s1, s2, buyer}, ledger)
	require.NoError(t, err)
	require.Len(t, result.Contracts, 2)
	assert.Equal(t, 30, result.TotalVolume)
	assert.Empty(t, result.UnmatchedBuys)
}

func TestClear_NoMatchWhenBidBelowAsk(t *testing.T) {
	m := market.NewMarket()
	seller := fakeCorp{id: "s1", sells: []market.Offer{mustOffer(t, "s1", market.SideSell, "energy", 10, 5.0)}}
	buyer := fakeCorp{id: "b1", buys: []market.Offer{mustOffer(t, "b1", market.SideBuy, "energy", 10, 1.0)}}
	ledger := newFakeLedger()

	result, err := m.Clear(1, []market.Quoter{seller, buyer}, ledger)
	require.NoError(t, err)
	assert.Empty(t, result.Contracts)
	assert.Len(t, result.UnmatchedBuys, 1)
	assert.Len(t, result.UnmatchedSells, 1)
}

func TestClear_TransactionLogIsBoundedAndRetireRemovesContract(t *testing.T) {
	m := market.NewMarket()
	ledger := newFakeLedger()
	for i := 0; i < 5; i++ {
		seller := fakeCorp{id: "s", sells: []market.Offer{mustOffer(t, "s", market.SideSell, "energy", 1, 1.0)}}
		buyer := fakeCorp{id: "b", buys: []market.Offer{mustOffer(t, "b", market.SideBuy, "energy", 1, 1.0)}}
		result, err := m.Clear(int64(i), []market.Quoter{seller, buyer}, ledger)
		require.NoError(t, err)
		require.Len(t, result.Contracts, 1)
		m.Retire(result.Contracts[0].ID())
	}
	assert.Len(t, m.Transactions(), 5)
	assert.Empty(t, m.ActiveContracts())
}

func TestContract_RecordDeliveryAndPaymentClampAtAgreedBounds(t *testing.T) {
	c, err := market.NewContract("seller", "buyer", "energy", 100, 2.0, 0, 50)
	require.NoError(t, err)

	require.NoError(t, c.RecordDelivery(70))
	assert.Equal(t, 70, c.Delivered())
	require.NoError(t, c.RecordDelivery(1000))
	assert.Equal(t, 100, c.Delivered()) // clamped at agreedQuantity

	require.NoError(t, c.RecordPayment(500))
	assert.Equal(t, c.TotalPrice(), c.Paid()) // clamped at agreedQuantity*pricePerUnit
	assert.True(t, c.IsFulfilled())
}

func TestContract_IsActiveRespectsWindowAndDelivery(t *testing.T) {
	c, err := market.NewContract("seller", "buyer", "energy", 10, 1.0, 100, 50)
	require.NoError(t, err)
	assert.False(t, c.IsActive(50)) // before openTick
	assert.True(t, c.IsActive(120))
	require.NoError(t, c.RecordDelivery(10))
	assert.False(t, c.IsActive(120)) // fully delivered
	assert.True(t, c.IsExpired(200))
}
