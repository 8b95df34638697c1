package ledger

import "context"

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, id TransactionID) (*Transaction, error)
	FindByCorp(ctx context.Context, corpID string, opts QueryOptions) ([]*Transaction, error)
	CountByCorp(ctx context.Context, corpID string, opts QueryOptions) (int, error)
}

// QueryOptions filters and paginates transaction queries.
type QueryOptions struct {
	StartTick *int64
	EndTick   *int64

	Category        *Category
	TransactionType *TransactionType

	Limit  int
	Offset int

	OrderBy string // "tick ASC" or "tick DESC" (default DESC)
}

// DefaultQueryOptions returns default query options.
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		Offset:  0,
		OrderBy: "tick DESC",
	}
}
