package tick

import (
	"log"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
	"github.com/ShadyMccoy/colony-controller/internal/domain/ledger"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// acquirer is the extra hook a middleman corp (domain/corp.Haul) exposes;
// most corps don't care about their acquisition cost, so this is checked
// with a type assertion rather than widened onto every corp.
type acquirer interface {
	RecordAcquisitionCost(corpID, resource string, amount float64)
}

// Accountant is the single adapter that satisfies market.Ledger,
// market.PaymentLedger, and corp.Minter against the real domain/ledger.Book
// audit log, dispatching by corp id to the corp registry's own balance
// bookkeeping. Grounded on spec.md §5's invariant that no package writes a
// corp's balance except through the ledger: every revenue and cost recorded
// here is mirrored into both the Book (for the money-supply invariant) and
// the corp (for the balance the corp itself reports). Mint is the
// exception: it writes only to the Book, and the minting corp updates its
// own balance.
type Accountant struct {
	book  *ledger.Book
	corps map[string]corp.Corp
	ticks shared.TickSource
}

// NewAccountant builds an accountant over the driver's corp registry.
func NewAccountant(book *ledger.Book, corps map[string]corp.Corp, ticks shared.TickSource) *Accountant {
	return &Accountant{book: book, corps: corps, ticks: ticks}
}

func (a *Accountant) RecordRevenue(corpID string, amount float64) {
	c, ok := a.corps[corpID]
	if !ok {
		return
	}
	if _, err := a.book.RecordRevenue(corpID, a.ticks.Now(), amount, c.Balance(), ""); err != nil {
		log.Printf("tick: ledger rejected revenue for %s: %v", corpID, err)
		return
	}
	c.RecordRevenue(amount)
}

func (a *Accountant) RecordCost(corpID string, amount float64) {
	c, ok := a.corps[corpID]
	if !ok {
		return
	}
	if _, err := a.book.RecordCost(corpID, a.ticks.Now(), amount, c.Balance(), ""); err != nil {
		log.Printf("tick: ledger rejected cost for %s: %v", corpID, err)
		return
	}
	c.RecordCost(amount)
}

func (a *Accountant) RecordAcquisitionCost(corpID, resource string, amount float64) {
	c, ok := a.corps[corpID]
	if !ok {
		return
	}
	if acq, ok := c.(acquirer); ok {
		acq.RecordAcquisitionCost(corpID, resource, amount)
	}
}

// Mint satisfies corp.Minter for Upgrade corps converting upgrade points
// into credits (spec.md §4.7, §9 Open Question 1). It records the mint in
// the Book only; the corp's balance is not touched here.
func (a *Accountant) Mint(corpID string, tick int64, amount, balanceBefore float64, description string) error {
	_, err := a.book.Mint(corpID, tick, amount, balanceBefore, description)
	return err
}
