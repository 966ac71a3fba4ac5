package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// UserStore is the user directory. The ledgers only read identities from it
// and write the cached credit balance back; everything else belongs to the
// directory service.
type UserStore interface {
	// CreateUser inserts a new user. Fails with ErrDuplicate if the email is taken.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUser retrieves a user by id.
	GetUser(ctx context.Context, userID string) (*models.User, error)

	// GetUserByEmail retrieves a user by email address.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// UpdateUser replaces an existing user record.
	UpdateUser(ctx context.Context, user *models.User) (*models.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]models.User, error)

	// SetCreditBalance updates the cached credit balance and marks it initialized.
	SetCreditBalance(ctx context.Context, userID string, balance int64) error
}
