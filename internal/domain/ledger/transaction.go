package ledger

import (
	"fmt"

	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
)

// Transaction is the aggregate root representing one balance-affecting
// event (spec.md §3's money-supply invariant is maintained one
// Transaction at a time). Transactions are immutable once created.
type Transaction struct {
	id              TransactionID
	corpID          string // the corp whose balance moves; set for every type, mint and tax included
	tick            int64
	transactionType TransactionType
	category        Category
	amount          float64 // positive for income, negative for expense
	balanceBefore   float64
	balanceAfter    float64
	description     string
	relatedContract string // contract id for revenue, cost and settlement transactions; empty when none
}

// NewTransaction creates a new transaction, validating the balance
// invariant and deriving its category from its type.
func NewTransaction(
	corpID string,
	tick int64,
	transactionType TransactionType,
	amount float64,
	balanceBefore float64,
	balanceAfter float64,
	description string,
	relatedContract string,
) (*Transaction, error) {
	if !transactionType.IsValid() {
		return nil, shared.NewValidationError("transaction_type", fmt.Sprintf("invalid transaction type: %s", transactionType))
	}

	category, err := transactionType.ToCategory()
	if err != nil {
		return nil, shared.NewValidationError("category", err.Error())
	}

	t := &Transaction{
		id:              NewTransactionID(),
		corpID:          corpID,
		tick:            tick,
		transactionType: transactionType,
		category:        category,
		amount:          amount,
		balanceBefore:   balanceBefore,
		balanceAfter:    balanceAfter,
		description:     description,
		relatedContract: relatedContract,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a transaction from persistence,
// bypassing NewTransaction's id generation.
func ReconstructTransaction(
	id TransactionID,
	corpID string,
	tick int64,
	transactionType TransactionType,
	category Category,
	amount, balanceBefore, balanceAfter float64,
	description, relatedContract string,
) *Transaction {
	return &Transaction{
		id: id, corpID: corpID, tick: tick,
		transactionType: transactionType, category: category,
		amount: amount, balanceBefore: balanceBefore, balanceAfter: balanceAfter,
		description: description, relatedContract: relatedContract,
	}
}

// Validate checks the transaction's invariants.
func (t *Transaction) Validate() error {
	if t.amount == 0 {
		return shared.NewValidationError("amount", "amount cannot be zero")
	}
	expected := t.balanceBefore + t.amount
	if !floatsEqual(t.balanceAfter, expected) {
		return shared.NewInvariantViolation("ledger.Transaction",
			fmt.Sprintf("balance_before=%.4f + amount=%.4f should equal balance_after=%.4f, got expected=%.4f",
				t.balanceBefore, t.amount, t.balanceAfter, expected))
	}
	return nil
}

func floatsEqual(a, b float64) bool {
	const epsilon = 1e-6
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < epsilon
}

func (t *Transaction) ID() TransactionID            { return t.id }
func (t *Transaction) CorpID() string                { return t.corpID }
func (t *Transaction) Tick() int64                   { return t.tick }
func (t *Transaction) TransactionType() TransactionType { return t.transactionType }
func (t *Transaction) Category() Category            { return t.category }
func (t *Transaction) Amount() float64               { return t.amount }
func (t *Transaction) BalanceBefore() float64         { return t.balanceBefore }
func (t *Transaction) BalanceAfter() float64          { return t.balanceAfter }
func (t *Transaction) Description() string           { return t.description }
func (t *Transaction) RelatedContract() string        { return t.relatedContract }

func (t *Transaction) IsIncome() bool  { return t.amount > 0 }
func (t *Transaction) IsExpense() bool { return t.amount < 0 }

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, type=%s, amount=%.2f, balance=%.2f->%.2f]",
		t.id.String(), t.transactionType, t.amount, t.balanceBefore, t.balanceAfter)
}
