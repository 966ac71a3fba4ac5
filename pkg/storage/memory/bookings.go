package memory

import (
	"context"
	"fmt"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// InsertBooking appends a new booking.
func (s *Store) InsertBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookings = append(s.bookings, *booking)
	created := *booking
	return &created, nil
}

// GetBooking retrieves a booking by its ID.
func (s *Store) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.bookings {
		if s.bookings[i].Id == bookingID {
			b := s.bookings[i]
			return &b, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", bookingID, storage.ErrNotFound)
}

// FindBookings retrieves all bookings matching the predicate, in insertion order.
func (s *Store) FindBookings(ctx context.Context, pred func(*models.Booking) bool) ([]models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Booking
	for i := range s.bookings {
		b := s.bookings[i]
		if pred(&b) {
			out = append(out, b)
		}
	}
	return out, nil
}

// UpdateBooking replaces an existing booking record.
func (s *Store) UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.bookings {
		if s.bookings[i].Id == booking.Id {
			s.bookings[i] = *booking
			updated := *booking
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", booking.Id, storage.ErrNotFound)
}
