package booking

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillink/skillink/pkg/credits"
	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
	"github.com/skillink/skillink/pkg/storage/memory"
)

type fixture struct {
	ledger     *Ledger
	credits    *credits.Ledger
	store      *memory.Store
	providerID string
	seekerID   string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memory.New()
	creditLedger := credits.NewLedger(store, store)
	ledger := NewLedger(store, store, creditLedger)
	ledger.Now = func() time.Time { return time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC) }

	f := &fixture{ledger: ledger, credits: creditLedger, store: store}
	f.providerID = f.seedUser(t, "provider")
	f.seekerID = f.seedUser(t, "seeker")
	return f
}

func (f *fixture) seedUser(t *testing.T, name string) string {
	t.Helper()
	user, err := f.store.CreateUser(context.Background(), &models.User{
		Id:    uuid.New().String(),
		Email: name + "@example.com",
		Name:  name,
	})
	require.NoError(t, err)
	return user.Id
}

func (f *fixture) request(date, timeOfDay string, duration int) CreateRequest {
	return CreateRequest{
		ProviderId: f.providerID,
		SeekerId:   f.seekerID,
		Date:       date,
		Time:       timeOfDay,
		Duration:   duration,
	}
}

func TestCreate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t)

		detail, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)

		assert.Equal(t, models.PENDING, detail.Status)
		assert.Equal(t, "provider", detail.ProviderName)
		assert.Equal(t, "seeker", detail.SeekerName)
		assert.Equal(t, "10:00", detail.TimeOfDay)
		assert.Equal(t, time.Date(2025, 7, 1, 10, 0, 0, 0, time.UTC), detail.StartAt)
	})

	t.Run("Default Duration", func(t *testing.T) {
		f := newFixture(t)

		detail, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 0))
		require.NoError(t, err)
		assert.Equal(t, DefaultDuration, detail.Duration)
	})

	t.Run("Overlap Conflicts", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)

		// 10:30-11:00 falls inside 10:00-11:00.
		_, err = f.ledger.Create(context.Background(), f.request("2025-07-01", "10:30", 30))
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("Abutting Slots Accepted", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)

		// 11:00 starts exactly where the previous slot ends.
		_, err = f.ledger.Create(context.Background(), f.request("2025-07-01", "11:00", 60))
		assert.NoError(t, err)
	})

	t.Run("Conflict Across Roles", func(t *testing.T) {
		f := newFixture(t)
		otherID := f.seedUser(t, "other")

		_, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)

		// The first booking's provider now asks for an overlapping session as
		// a seeker with a third user; their calendar is still protected.
		_, err = f.ledger.Create(context.Background(), CreateRequest{
			ProviderId: otherID,
			SeekerId:   f.providerID,
			Date:       "2025-07-01",
			Time:       "10:30",
			Duration:   60,
		})
		assert.ErrorIs(t, err, ErrSlotConflict)
	})

	t.Run("Cancelled Slot Is Free", func(t *testing.T) {
		f := newFixture(t)

		detail, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)

		_, err = f.ledger.Transition(context.Background(), detail.Id, f.seekerID, models.CANCELLED)
		require.NoError(t, err)

		_, err = f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		assert.NoError(t, err)
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Create(context.Background(), CreateRequest{
			ProviderId: "missing",
			SeekerId:   f.seekerID,
			Date:       "2025-07-01",
			Time:       "10:00",
		})
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("Bad Schedule", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "25:99", 60))
		assert.ErrorIs(t, err, ErrInvalidSchedule)

		_, err = f.ledger.Create(context.Background(), f.request("", "10:00", 60))
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestTransition(t *testing.T) {
	create := func(t *testing.T, f *fixture) string {
		t.Helper()
		detail, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
		require.NoError(t, err)
		return detail.Id
	}

	t.Run("Provider Confirms", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		updated, err := f.ledger.Transition(context.Background(), id, f.providerID, models.CONFIRMED)
		require.NoError(t, err)
		assert.Equal(t, models.CONFIRMED, updated.Status)
	})

	t.Run("Seeker Cannot Confirm", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		_, err := f.ledger.Transition(context.Background(), id, f.seekerID, models.CONFIRMED)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("Outsider Cannot Cancel", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)
		outsiderID := f.seedUser(t, "outsider")

		_, err := f.ledger.Transition(context.Background(), id, outsiderID, models.CANCELLED)
		assert.ErrorIs(t, err, ErrNotAuthorized)
	})

	t.Run("Pending Cannot Complete", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		_, err := f.ledger.Transition(context.Background(), id, f.seekerID, models.COMPLETED)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Complete Posts Credits Once", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		_, err := f.ledger.Transition(context.Background(), id, f.providerID, models.CONFIRMED)
		require.NoError(t, err)

		updated, err := f.ledger.Transition(context.Background(), id, f.seekerID, models.COMPLETED)
		require.NoError(t, err)
		assert.Equal(t, models.COMPLETED, updated.Status)

		providerBalance, err := f.credits.Balance(context.Background(), f.providerID)
		require.NoError(t, err)
		assert.Equal(t, int64(120), providerBalance)

		seekerBalance, err := f.credits.Balance(context.Background(), f.seekerID)
		require.NoError(t, err)
		assert.Equal(t, int64(90), seekerBalance)

		// Completing again must fail before touching the ledger.
		_, err = f.ledger.Transition(context.Background(), id, f.providerID, models.COMPLETED)
		assert.ErrorIs(t, err, ErrInvalidTransition)

		providerBalance, err = f.credits.Balance(context.Background(), f.providerID)
		require.NoError(t, err)
		assert.Equal(t, int64(120), providerBalance)
	})

	t.Run("Cancelled Is Terminal", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		_, err := f.ledger.Transition(context.Background(), id, f.seekerID, models.CANCELLED)
		require.NoError(t, err)

		_, err = f.ledger.Transition(context.Background(), id, f.providerID, models.CONFIRMED)
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Unknown Status", func(t *testing.T) {
		f := newFixture(t)
		id := create(t, f)

		_, err := f.ledger.Transition(context.Background(), id, f.providerID, "archived")
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("Missing Booking", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.ledger.Transition(context.Background(), "missing", f.providerID, models.CONFIRMED)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}

// TestCreate_RandomSlotsStayDisjoint throws random slots at the ledger and
// checks each decision against a reference overlap scan: a request touching an
// accepted slot must be rejected, any other must be accepted, so the accepted
// set stays pairwise disjoint.
func TestCreate_RandomSlotsStayDisjoint(t *testing.T) {
	f := newFixture(t)
	rng := rand.New(rand.NewSource(42))

	type slot struct {
		start, end time.Time
	}
	var accepted []slot

	overlaps := func(aStart, aEnd, bStart, bEnd time.Time) bool {
		return aStart.Before(bEnd) && aEnd.After(bStart)
	}

	var accepts, rejects int
	for i := 0; i < 300; i++ {
		hour := 8 + rng.Intn(12)
		minute := 15 * rng.Intn(4)
		duration := []int{30, 45, 60, 90}[rng.Intn(4)]

		start := time.Date(2025, 7, 1, hour, minute, 0, 0, time.UTC)
		end := start.Add(time.Duration(duration) * time.Minute)

		wantConflict := false
		for _, s := range accepted {
			if overlaps(start, end, s.start, s.end) {
				wantConflict = true
				break
			}
		}

		_, err := f.ledger.Create(context.Background(), f.request("2025-07-01", fmt.Sprintf("%02d:%02d", hour, minute), duration))
		if wantConflict {
			assert.ErrorIs(t, err, ErrSlotConflict, "slot %v-%v overlaps an accepted slot", start, end)
			rejects++
		} else {
			if assert.NoError(t, err, "disjoint slot %v-%v was rejected", start, end) {
				accepted = append(accepted, slot{start, end})
			}
			accepts++
		}
	}

	// The seed must exercise both outcomes for the run to mean anything.
	require.NotZero(t, accepts)
	require.NotZero(t, rejects)

	for i := range accepted {
		for j := i + 1; j < len(accepted); j++ {
			assert.False(t, overlaps(accepted[i].start, accepted[i].end, accepted[j].start, accepted[j].end))
		}
	}
}

func TestList(t *testing.T) {
	f := newFixture(t)

	// Create out of chronological order.
	later, err := f.ledger.Create(context.Background(), f.request("2025-07-02", "10:00", 60))
	require.NoError(t, err)
	earlier, err := f.ledger.Create(context.Background(), f.request("2025-07-01", "10:00", 60))
	require.NoError(t, err)

	details, err := f.ledger.List(context.Background(), f.providerID)
	require.NoError(t, err)
	require.Len(t, details, 2)

	assert.Equal(t, earlier.Id, details[0].Id)
	assert.Equal(t, later.Id, details[1].Id)
	assert.True(t, details[0].IsProvider)

	seekerView, err := f.ledger.List(context.Background(), f.seekerID)
	require.NoError(t, err)
	require.Len(t, seekerView, 2)
	assert.False(t, seekerView[0].IsProvider)

	outsiderID := f.seedUser(t, "outsider")
	empty, err := f.ledger.List(context.Background(), outsiderID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
