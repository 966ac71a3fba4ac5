package memory

import (
	"context"
	"fmt"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// CreateUser inserts a new user, rejecting duplicate emails.
func (s *Store) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Email == user.Email {
			return nil, fmt.Errorf("email %s: %w", user.Email, storage.ErrDuplicate)
		}
	}

	s.users = append(s.users, *user)
	created := *user
	return &created, nil
}

// GetUser retrieves a user by id.
func (s *Store) GetUser(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Id == userID {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", userID, storage.ErrNotFound)
}

// GetUserByEmail retrieves a user by email address.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.users {
		if s.users[i].Email == email {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user with email %s: %w", email, storage.ErrNotFound)
}

// UpdateUser replaces an existing user record. CreditBalance and
// CreditsInitialized are owned by the credit ledger and always kept from the
// stored record, so a profile update racing a posting cannot overwrite it.
func (s *Store) UpdateUser(ctx context.Context, user *models.User) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Id == user.Id {
			u := *user
			u.CreditBalance = s.users[i].CreditBalance
			u.CreditsInitialized = s.users[i].CreditsInitialized
			s.users[i] = u
			updated := u
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", user.Id, storage.ErrNotFound)
}

// ListUsers retrieves all users.
func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

// SetCreditBalance updates the cached balance field owned by the credit ledger.
func (s *Store) SetCreditBalance(ctx context.Context, userID string, balance int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Id == userID {
			s.users[i].CreditBalance = balance
			s.users[i].CreditsInitialized = true
			return nil
		}
	}
	return fmt.Errorf("user %s: %w", userID, storage.ErrNotFound)
}
