package ledger

import (
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// Book is the append-only transaction log plus the running minted/taxed
// totals spec.md §3's money-supply invariant is checked against:
// `treasury + Σbalance = minted − taxed`. Grounded on the teacher's
// LedgerRecorder shape (application/trading/services/manufacturing/
// ledger_recorder.go): a narrow set of named recording methods, one per
// economic event kind, each producing a Transaction — generalized here
// from a mediator-command indirection to direct in-process calls, since
// spec.md §5 runs the whole tick as one single-threaded, non-blocking
// computation with no inter-phase RPC.
//
// Book does not own any balance; each corp (spec.md §4.7) holds its own
// balance and is the only thing authorized to mutate it. Book only
// records the before/after pair the caller reports and checks the
// arithmetic, the same division of responsibility the teacher's
// Transaction.Validate enforces against a balance it is handed, not one
// it stores.
type Book struct {
	entries []*Transaction
	minted  float64
	taxed   float64
}

// NewBook creates an empty ledger book.
func NewBook() *Book {
	return &Book{}
}

// Mint records credits created from nothing into corpID's balance (the
// host engine's initial capitalization path, spec.md §3).
func (b *Book) Mint(corpID string, tick int64, amount, balanceBefore float64, description string) (*Transaction, error) {
	if amount <= 0 {
		return nil, shared.NewValidationError("amount", "mint amount must be positive")
	}
	tx, err := NewTransaction(corpID, tick, TransactionTypeMint, amount, balanceBefore, balanceBefore+amount, description, "")
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, tx)
	b.minted += amount
	return tx, nil
}

// Tax records credits removed from corpID's balance back out of the
// money supply.
func (b *Book) Tax(corpID string, tick int64, amount, balanceBefore float64, description string) (*Transaction, error) {
	if amount <= 0 {
		return nil, shared.NewValidationError("amount", "tax amount must be positive")
	}
	tx, err := NewTransaction(corpID, tick, TransactionTypeTax, -amount, balanceBefore, balanceBefore-amount, description, "")
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, tx)
	b.taxed += amount
	return tx, nil
}

// RecordRevenue records a market-clearing credit to a seller (spec.md
// §4.8 step 6's recordRevenue). It neither mints nor taxes: the
// corresponding RecordCost on the buyer keeps the money supply constant.
func (b *Book) RecordRevenue(corpID string, tick int64, amount, balanceBefore float64, contractID string) (*Transaction, error) {
	tx, err := NewTransaction(corpID, tick, TransactionTypeRevenue, amount, balanceBefore, balanceBefore+amount,
		fmt.Sprintf("market revenue on contract %s", contractID), contractID)
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, tx)
	return tx, nil
}

// RecordCost records a market-clearing debit to a buyer.
func (b *Book) RecordCost(corpID string, tick int64, amount, balanceBefore float64, contractID string) (*Transaction, error) {
	tx, err := NewTransaction(corpID, tick, TransactionTypeCost, -amount, balanceBefore, balanceBefore-amount,
		fmt.Sprintf("market cost on contract %s", contractID), contractID)
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, tx)
	return tx, nil
}

// RecordSettlement records a contract executor's per-tick payment leg
// (spec.md §4.9). delta is signed: positive for the seller receiving
// payment, negative for the buyer's balance it came from.
func (b *Book) RecordSettlement(corpID string, tick int64, delta, balanceBefore float64, contractID string) (*Transaction, error) {
	tx, err := NewTransaction(corpID, tick, TransactionTypeSettlement, delta, balanceBefore, balanceBefore+delta,
		fmt.Sprintf("settlement on contract %s", contractID), contractID)
	if err != nil {
		return nil, err
	}
	b.entries = append(b.entries, tx)
	return tx, nil
}

// Minted returns the running total of minted credits.
func (b *Book) Minted() float64 { return b.minted }

// Taxed returns the running total of taxed credits.
func (b *Book) Taxed() float64 { return b.taxed }

// Entries returns every recorded transaction, oldest first.
func (b *Book) Entries() []*Transaction {
	out := make([]*Transaction, len(b.entries))
	copy(out, b.entries)
	return out
}

// ValidateSupply checks spec.md §3's money-supply invariant given the
// current treasury balance and every corp's current balance.
func (b *Book) ValidateSupply(treasury float64, corpBalances map[string]float64) error {
	sum := treasury
	for _, bal := range corpBalances {
		sum += bal
	}
	expected := b.minted - b.taxed
	if !floatsEqual(sum, expected) {
		return shared.NewInvariantViolation("ledger.Book",
			fmt.Sprintf("treasury+Σbalance=%.4f does not equal minted−taxed=%.4f", sum, expected))
	}
	return nil
}
