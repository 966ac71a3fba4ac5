package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// DefaultDuration is the session length in minutes when the request omits one.
const DefaultDuration = 60

// ErrSlotConflict is returned when a requested slot overlaps an active booking
// on either participant's calendar.
var ErrSlotConflict = errors.New("time slot conflict")

// ErrNotAuthorized is returned when the actor may not perform the transition.
var ErrNotAuthorized = errors.New("not allowed")

// ErrInvalidTransition is returned for a status change the state machine forbids.
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrInvalidSchedule is returned for missing or unparseable date, time or duration.
var ErrInvalidSchedule = errors.New("invalid schedule")

// CreditPoster is the slice of the credit ledger the booking ledger needs when
// a session completes.
type CreditPoster interface {
	PostCompletionPair(ctx context.Context, providerID, seekerID, bookingID string) error
}

// Ledger admits, stores and transitions bookings while preventing
// double-booking. A single mutex serializes the conflict-check-then-insert
// pair and all transitions; reads go straight to the store.
type Ledger struct {
	store   storage.BookingStore
	users   storage.UserStore
	credits CreditPoster

	// Now supplies timestamps and can be swapped in tests.
	Now func() time.Time

	mu sync.Mutex
}

// NewLedger creates a booking Ledger.
func NewLedger(store storage.BookingStore, users storage.UserStore, credits CreditPoster) *Ledger {
	return &Ledger{
		store:   store,
		users:   users,
		credits: credits,
		Now:     time.Now,
	}
}

// CreateRequest carries a seeker's booking request. Date is "2006-01-02",
// Time is "15:04"; a zero Duration means DefaultDuration.
type CreateRequest struct {
	ProviderId string
	SeekerId   string
	SkillId    string
	Date       string
	Time       string
	Duration   int
	Message    string
}

// Detail is a booking annotated with denormalized participant names and, for
// listings, the viewer's role.
type Detail struct {
	models.Booking
	ProviderName string
	SeekerName   string
	IsProvider   bool
}

// Create admits a booking request. The requested half-open interval
// [start, start+duration) must not overlap any active booking that shares a
// participant with the request, in either role: both the provider's and the
// seeker's calendars are protected. Slots that exactly abut do not conflict.
func (l *Ledger) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	if req.ProviderId == "" || req.Date == "" || req.Time == "" {
		return nil, fmt.Errorf("%w: provider, date and time are required", ErrInvalidSchedule)
	}

	provider, err := l.users.GetUser(ctx, req.ProviderId)
	if err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}
	seeker, err := l.users.GetUser(ctx, req.SeekerId)
	if err != nil {
		return nil, fmt.Errorf("seeker: %w", err)
	}

	duration := req.Duration
	if duration == 0 {
		duration = DefaultDuration
	}
	if duration < 0 {
		return nil, fmt.Errorf("%w: duration must be positive", ErrInvalidSchedule)
	}

	start, err := time.Parse("2006-01-02T15:04", req.Date+"T"+req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchedule, err)
	}
	end := start.Add(time.Duration(duration) * time.Minute)

	l.mu.Lock()
	defer l.mu.Unlock()

	conflicts, err := l.store.FindBookings(ctx, func(b *models.Booking) bool {
		if !b.Active() {
			return false
		}
		if !b.Involves(req.ProviderId) && !b.Involves(req.SeekerId) {
			return false
		}
		return start.Before(b.EndAt()) && end.After(b.StartAt)
	})
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, ErrSlotConflict
	}

	now := l.Now()
	bk := &models.Booking{
		Id:         uuid.New().String(),
		ProviderId: req.ProviderId,
		SeekerId:   req.SeekerId,
		SkillId:    req.SkillId,
		Date:       time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		TimeOfDay:  req.Time,
		Duration:   duration,
		StartAt:    start,
		Message:    req.Message,
		Status:     models.PENDING,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := l.store.InsertBooking(ctx, bk)
	if err != nil {
		return nil, err
	}
	return &Detail{
		Booking:      *created,
		ProviderName: provider.Name,
		SeekerName:   seeker.Name,
	}, nil
}

// Transition applies a status change on behalf of an actor, enforcing the
// booking state machine:
//
//	pending   --confirm (provider only)-------> confirmed
//	pending   --cancel  (either participant)--> cancelled
//	confirmed --cancel  (either participant)--> cancelled
//	confirmed --complete (either participant)-> completed
//
// Completed and cancelled are terminal. Completing posts the session's credit
// pair before the status is written, so a failed posting leaves the booking
// untouched and a repeated completion cannot double-post.
func (l *Ledger) Transition(ctx context.Context, bookingID, actorID string, status models.BookingStatus) (*models.Booking, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	bk, err := l.store.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	switch status {
	case models.CONFIRMED:
		if actorID != bk.ProviderId {
			return nil, fmt.Errorf("%w: only the provider can confirm", ErrNotAuthorized)
		}
		if bk.Status != models.PENDING {
			return nil, fmt.Errorf("%w: cannot confirm a %s booking", ErrInvalidTransition, bk.Status)
		}

	case models.CANCELLED:
		if !bk.Involves(actorID) {
			return nil, fmt.Errorf("%w: only a participant can cancel", ErrNotAuthorized)
		}
		if bk.Status != models.PENDING && bk.Status != models.CONFIRMED {
			return nil, fmt.Errorf("%w: cannot cancel a %s booking", ErrInvalidTransition, bk.Status)
		}

	case models.COMPLETED:
		if bk.Status == models.COMPLETED {
			return nil, fmt.Errorf("%w: booking already completed", ErrInvalidTransition)
		}
		if !bk.Involves(actorID) {
			return nil, fmt.Errorf("%w: only a participant can complete", ErrNotAuthorized)
		}
		if bk.Status != models.CONFIRMED {
			return nil, fmt.Errorf("%w: cannot complete a %s booking", ErrInvalidTransition, bk.Status)
		}
		if err := l.credits.PostCompletionPair(ctx, bk.ProviderId, bk.SeekerId, bk.Id); err != nil {
			return nil, fmt.Errorf("failed to post completion credits: %w", err)
		}

	default:
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, status)
	}

	bk.Status = status
	bk.UpdatedAt = l.Now()
	return l.store.UpdateBooking(ctx, bk)
}

// List returns every booking the user participates in, earliest session
// first, with participant names resolved and the viewer's role marked.
func (l *Ledger) List(ctx context.Context, userID string) ([]Detail, error) {
	items, err := l.store.FindBookings(ctx, func(b *models.Booking) bool {
		return b.Involves(userID)
	})
	if err != nil {
		return nil, err
	}

	details := make([]Detail, len(items))
	for i := range items {
		details[i] = Detail{
			Booking:      items[i],
			ProviderName: l.userName(ctx, items[i].ProviderId),
			SeekerName:   l.userName(ctx, items[i].SeekerId),
			IsProvider:   items[i].ProviderId == userID,
		}
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].StartAt.Before(details[j].StartAt)
	})
	return details, nil
}

func (l *Ledger) userName(ctx context.Context, userID string) string {
	user, err := l.users.GetUser(ctx, userID)
	if err != nil {
		return "Unknown"
	}
	return user.Name
}
