package memory

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// AppendCreditTransaction appends an entry to the credit log. The log is
// append-only; there is no update or delete.
func (s *Store) AppendCreditTransaction(ctx context.Context, tx *models.CreditTransaction) (*models.CreditTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append(s.transactions, *tx)
	created := *tx
	return &created, nil
}

// ListCreditTransactions retrieves a user's transactions in chronological order.
func (s *Store) ListCreditTransactions(ctx context.Context, userID string) ([]models.CreditTransaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.CreditTransaction
	for i := range s.transactions {
		if s.transactions[i].UserId == userID {
			out = append(out, s.transactions[i])
		}
	}
	return out, nil
}
