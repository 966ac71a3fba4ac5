package credits

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage/memory"
)

func newTestLedger(t *testing.T) (*Ledger, *memory.Store) {
	t.Helper()
	store := memory.New()
	ledger := NewLedger(store, store)
	ledger.Now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return ledger, store
}

func seedUser(t *testing.T, store *memory.Store, name string) string {
	t.Helper()
	user, err := store.CreateUser(context.Background(), &models.User{
		Id:    uuid.New().String(),
		Email: name + "@example.com",
		Name:  name,
	})
	require.NoError(t, err)
	return user.Id
}

func TestBalance_InitializesOnce(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := seedUser(t, store, "alice")

	balance, err := ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(SignupCredits), balance)

	// A second read must not re-seed.
	balance, err = ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(SignupCredits), balance)

	history, err := ledger.History(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, history, "initialization seeds the balance without a transaction")
}

func TestAwardForAction(t *testing.T) {
	t.Run("Known Action", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		tx, err := ledger.AwardForAction(context.Background(), userID, models.SkillAdd, "")
		require.NoError(t, err)

		assert.Equal(t, int64(2), tx.Amount)
		assert.Equal(t, int64(100), tx.BalanceBefore)
		assert.Equal(t, int64(102), tx.BalanceAfter)
		assert.Equal(t, string(models.SkillAdd), tx.Reason)

		balance, err := ledger.Balance(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(102), balance)
	})

	t.Run("Unknown Action", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		_, err := ledger.AwardForAction(context.Background(), userID, "NO_SUCH_ACTION", "")
		assert.ErrorIs(t, err, ErrUnknownAction)
	})

	t.Run("Zero Value Action Posts", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		tx, err := ledger.AwardForAction(context.Background(), userID, models.ProjectJoin, "")
		require.NoError(t, err)
		assert.Equal(t, int64(0), tx.Amount)
		assert.Equal(t, tx.BalanceBefore, tx.BalanceAfter)
	})
}

func TestPost_AllowsNegativeBalance(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := seedUser(t, store, "alice")

	tx, err := ledger.Post(context.Background(), userID, -150, "SESSION_COMPLETE_SEEKER", "bk1")
	require.NoError(t, err)
	assert.Equal(t, int64(-50), tx.BalanceAfter)

	balance, err := ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(-50), balance)
}

func TestRedeem(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		tx, err := ledger.Redeem(context.Background(), userID, 30, "")
		require.NoError(t, err)

		assert.Equal(t, int64(-30), tx.Amount)
		assert.Equal(t, int64(70), tx.BalanceAfter)
		assert.Equal(t, RedemptionReason, tx.Reason)
	})

	t.Run("Insufficient Balance", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		_, err := ledger.Redeem(context.Background(), userID, 150, "gift card")
		assert.ErrorIs(t, err, ErrInsufficientBalance)

		// The refusal leaves no trace.
		balance, err := ledger.Balance(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)

		history, err := ledger.History(context.Background(), userID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})

	t.Run("Non Positive Amount", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		userID := seedUser(t, store, "alice")

		_, err := ledger.Redeem(context.Background(), userID, 0, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)

		_, err = ledger.Redeem(context.Background(), userID, -5, "")
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})
}

func TestPostCompletionPair(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		providerID := seedUser(t, store, "provider")
		seekerID := seedUser(t, store, "seeker")

		err := ledger.PostCompletionPair(context.Background(), providerID, seekerID, "bk1")
		require.NoError(t, err)

		providerBalance, err := ledger.Balance(context.Background(), providerID)
		require.NoError(t, err)
		assert.Equal(t, int64(120), providerBalance)

		seekerBalance, err := ledger.Balance(context.Background(), seekerID)
		require.NoError(t, err)
		assert.Equal(t, int64(90), seekerBalance)

		seekerHistory, err := ledger.History(context.Background(), seekerID)
		require.NoError(t, err)
		require.Len(t, seekerHistory, 1)
		assert.Equal(t, int64(100), seekerHistory[0].BalanceBefore)
		assert.Equal(t, int64(90), seekerHistory[0].BalanceAfter)
		assert.Equal(t, "bk1", seekerHistory[0].RelatedId)
	})

	t.Run("Unknown Seeker Posts Nothing", func(t *testing.T) {
		ledger, store := newTestLedger(t)
		providerID := seedUser(t, store, "provider")

		err := ledger.PostCompletionPair(context.Background(), providerID, "missing", "bk1")
		require.Error(t, err)

		// The provider must not have been awarded anything.
		history, err := ledger.History(context.Background(), providerID)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}

func TestHistory_MostRecentFirst(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := seedUser(t, store, "alice")

	tick := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ledger.Now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	_, err := ledger.Post(context.Background(), userID, 10, "first", "")
	require.NoError(t, err)
	_, err = ledger.Post(context.Background(), userID, 20, "second", "")
	require.NoError(t, err)

	history, err := ledger.History(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "second", history[0].Reason)
	assert.Equal(t, "first", history[1].Reason)
}

func TestReplayHoldsUnderConcurrentProfileUpdates(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := seedUser(t, store, "alice")

	const posts = 1000

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < posts; i++ {
			_, err := ledger.Post(context.Background(), userID, 1, "tick", "")
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		// Full-record profile rewrites racing the postings must never
		// overwrite the cached balance.
		for i := 0; i < posts; i++ {
			user, err := store.GetUser(context.Background(), userID)
			if !assert.NoError(t, err) {
				return
			}
			user.Bio = "updated"
			_, err = store.UpdateUser(context.Background(), user)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	txns, err := store.ListCreditTransactions(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, txns, posts)

	replayed := int64(SignupCredits)
	for _, tx := range txns {
		replayed += tx.Amount
	}

	balance, err := ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, replayed, balance)
	assert.Equal(t, int64(SignupCredits+posts), balance)

	user, err := store.GetUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, "updated", user.Bio)
}

func TestReplayReproducesBalance(t *testing.T) {
	ledger, store := newTestLedger(t)
	userID := seedUser(t, store, "alice")

	_, err := ledger.AwardForAction(context.Background(), userID, models.SkillAdd, "")
	require.NoError(t, err)
	_, err = ledger.AwardForAction(context.Background(), userID, models.ProfileComplete, "")
	require.NoError(t, err)
	_, err = ledger.Redeem(context.Background(), userID, 40, "")
	require.NoError(t, err)
	_, err = ledger.AwardForAction(context.Background(), userID, models.ProjectCreate, "p1")
	require.NoError(t, err)

	txns, err := store.ListCreditTransactions(context.Background(), userID)
	require.NoError(t, err)

	replayed := int64(SignupCredits)
	for _, tx := range txns {
		assert.Equal(t, replayed, tx.BalanceBefore)
		replayed += tx.Amount
		assert.Equal(t, replayed, tx.BalanceAfter)
	}

	balance, err := ledger.Balance(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, replayed, balance)
}
