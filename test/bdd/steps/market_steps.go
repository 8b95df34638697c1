// Package steps holds godog step definitions for the colony BDD suite,
// the same split the teacher uses (test/bdd/features + test/bdd/steps),
// scaled down to the scenarios this repo actually covers.
package steps

import (
	"context"
	"fmt"

	"github.com/cucumber/godog"

	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
)

// fakeQuoter always offers one fixed buy and/or sell quote, letting
// the step definitions build a market.Quoter without a real corp.
type fakeQuoter struct {
	id   string
	buy  *market.Offer
	sell *market.Offer
}

func (q *fakeQuoter) ID() string { return q.id }

func (q *fakeQuoter) Buys(tick int64) []market.Offer {
	if q.buy == nil {
		return nil
	}
	return []market.Offer{*q.buy}
}

func (q *fakeQuoter) Sells(tick int64) []market.Offer {
	if q.sell == nil {
		return nil
	}
	return []market.Offer{*q.sell}
}

// noopLedger discards every credit/debit; this suite only asserts on
// the market's own Result, not on ledger side effects.
type noopLedger struct{}

func (noopLedger) RecordRevenue(string, float64)         {}
func (noopLedger) RecordCost(string, float64)            {}
func (noopLedger) RecordAcquisitionCost(string, string, float64) {}

type marketContext struct {
	quoters map[string]*fakeQuoter
	result  market.Result
	err     error
}

func (c *marketContext) reset(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
	c.quoters = make(map[string]*fakeQuoter)
	c.result = market.Result{}
	c.err = nil
	return ctx, nil
}

func (c *marketContext) aSellerAskingForUnitsOf(corpID string, price float64, qty int, resource string) error {
	offer, err := market.NewOffer(corpID, market.SideSell, resource, qty, price, "", 100)
	if err != nil {
		return err
	}
	c.quoters[corpID] = &fakeQuoter{id: corpID, sell: &offer}
	return nil
}

func (c *marketContext) aBuyerBiddingForUnitsOf(corpID string, price float64, qty int, resource string) error {
	offer, err := market.NewOffer(corpID, market.SideBuy, resource, qty, price, "", 100)
	if err != nil {
		return err
	}
	c.quoters[corpID] = &fakeQuoter{id: corpID, buy: &offer}
	return nil
}

func (c *marketContext) theMarketClears() error {
	m := market.NewMarket()
	quoters := make([]market.Quoter, 0, len(c.quoters))
	for _, q := range c.quoters {
		quoters = append(quoters, q)
	}
	c.result, c.err = m.Clear(0, quoters, noopLedger{})
	return c.err
}

func (c *marketContext) tradesWith(buyerID, sellerID string) error {
	for _, ct := range c.result.Contracts {
		if ct.BuyerID() == buyerID && ct.SellerID() == sellerID {
			return nil
		}
	}
	return fmt.Errorf("no contract matched buyer %s to seller %s in %d contracts", buyerID, sellerID, len(c.result.Contracts))
}

func (c *marketContext) theTransactedPriceIs(price float64) error {
	for _, ct := range c.result.Contracts {
		if ct.PricePerUnit() == price {
			return nil
		}
	}
	return fmt.Errorf("no contract transacted at price %.4f", price)
}

// InitializeMarketScenario registers this suite's step definitions.
func InitializeMarketScenario(sc *godog.ScenarioContext) {
	ctx := &marketContext{}
	sc.Before(ctx.reset)

	sc.Step(`^a seller "([^"]+)" asking ([0-9.]+) for (\d+) units of "([^"]+)"$`, func(corpID string, price float64, qty int, resource string) error {
		return ctx.aSellerAskingForUnitsOf(corpID, price, qty, resource)
	})
	sc.Step(`^a buyer "([^"]+)" bidding ([0-9.]+) for (\d+) units of "([^"]+)"$`, func(corpID string, price float64, qty int, resource string) error {
		return ctx.aBuyerBiddingForUnitsOf(corpID, price, qty, resource)
	})
	sc.Step(`^the market clears$`, ctx.theMarketClears)
	sc.Step(`^"([^"]+)" trades with "([^"]+)"$`, ctx.tradesWith)
	sc.Step(`^the transacted price is ([0-9.]+)$`, ctx.theTransactedPriceIs)
}
