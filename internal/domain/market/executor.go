package market

// PaymentLedger is the narrow port the contract executor needs to move
// credits from a buyer to a seller (spec.md §4.9). Any market.Ledger
// satisfies it structurally.
type PaymentLedger interface {
	RecordRevenue(corpID string, amount float64)
	RecordCost(corpID string, amount float64)
}

// RetiredContract records why a contract left active tracking, for the
// console/audit surface (spec.md §6).
type RetiredContract struct {
	ID        string
	Fulfilled bool
	Expired   bool
}

// Executor is the contract settlement pass, per spec.md §4.9: for every
// active contract, transfer the outstanding delivered-but-unpaid amount
// from buyer to seller, then retire contracts that are fully delivered
// or past their expiry. Grounded on the teacher's contract domain's
// payment-tracking invariant (paid never exceeds agreed total),
// generalized from a single accept/fulfill transition to a per-tick
// partial-payment loop.
type Executor struct{}

func NewExecutor() *Executor {
	return &Executor{}
}

// Settle runs one settlement pass over every contract the market
// currently tracks, mutating contract state and retiring as it goes.
func (e *Executor) Settle(tick int64, m *Market, ledger PaymentLedger) []RetiredContract {
	var retired []RetiredContract
	for _, c := range m.ActiveContracts() {
		due := c.OutstandingPayment()
		if due > 0 {
			ledger.RecordCost(c.BuyerID(), due)
			ledger.RecordRevenue(c.SellerID(), due)
			_ = c.RecordPayment(due) // due is derived from delivered/paid, always within bounds
		}

		switch {
		case c.IsFulfilled():
			m.Retire(c.ID())
			retired = append(retired, RetiredContract{ID: c.ID(), Fulfilled: true})
		case c.IsExpired(tick):
			m.Retire(c.ID())
			retired = append(retired, RetiredContract{ID: c.ID(), Expired: true})
		}
	}
	return retired
}
