package memory

import (
	"sync"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// Store implements the Storage interface with in-process slices. A single
// RWMutex guards all collections; higher-level atomicity (conflict check plus
// insert, balance read-modify-write) is the ledgers' responsibility.
type Store struct {
	mu sync.RWMutex

	users        []models.User
	skills       []models.Skill
	bookings     []models.Booking
	transactions []models.CreditTransaction
	reviews      []models.Review
	projects     []models.Project
}

// New creates an empty Store.
func New() *Store {
	return &Store{}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)
