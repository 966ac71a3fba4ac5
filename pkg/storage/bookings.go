package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// BookingStore defines the interface for storing bookings. The conflict check
// itself lives in the booking ledger; the store only provides insert, lookup,
// predicate find and update.
type BookingStore interface {
	// InsertBooking appends a new booking.
	InsertBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)

	// GetBooking retrieves a booking by its ID.
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)

	// FindBookings retrieves all bookings matching the predicate, in insertion order.
	FindBookings(ctx context.Context, pred func(*models.Booking) bool) ([]models.Booking, error)

	// UpdateBooking replaces an existing booking record.
	UpdateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error)
}
