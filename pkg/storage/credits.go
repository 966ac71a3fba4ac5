package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// CreditStore defines the interface for the append-only credit transaction log.
// Entries are never mutated or deleted.
type CreditStore interface {
	// AppendCreditTransaction appends an entry to the log.
	AppendCreditTransaction(ctx context.Context, tx *models.CreditTransaction) (*models.CreditTransaction, error)

	// ListCreditTransactions retrieves a user's transactions in chronological
	// (insertion) order.
	ListCreditTransactions(ctx context.Context, userID string) ([]models.CreditTransaction, error)
}
