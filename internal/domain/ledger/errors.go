package ledger

import "fmt"

// ErrTransactionNotFound represents errors when a transaction cannot be found.
// Transaction-shape validation errors use shared.ValidationError /
// shared.InvariantViolation instead of a package-local error type (see
// transaction.go), keeping the four-category error taxonomy in one place.
type ErrTransactionNotFound struct {
	ID     string
	CorpID string
}

func (e *ErrTransactionNotFound) Error() string {
	return fmt.Sprintf("transaction not found: id=%s, corp_id=%s", e.ID, e.CorpID)
}
