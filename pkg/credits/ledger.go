package credits

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// SignupCredits is the balance a user starts with on first credit access.
const SignupCredits = 100

// RedemptionReason is used when a redemption request gives no reason.
const RedemptionReason = "CREDIT_REDEMPTION"

// Actions maps each award tag to its fixed signed delta.
var Actions = map[models.CreditAction]int64{
	models.SessionCompleteProvider: 20,
	models.SessionCompleteSeeker:   -10,
	models.ProfileComplete:         10,
	models.FirstReview:             5,
	models.ProjectCreate:           -5,
	models.ProjectJoin:             0,
	models.SkillAdd:                2,
	models.Referral:                15,
	models.SignupBonus:             50,
}

// ErrInsufficientBalance is returned when a redemption exceeds the user's balance.
var ErrInsufficientBalance = errors.New("insufficient credit balance")

// ErrUnknownAction is returned for an action tag missing from the Actions table.
var ErrUnknownAction = errors.New("unknown credit action")

// ErrInvalidAmount is returned when a redemption amount is not a positive integer.
var ErrInvalidAmount = errors.New("redemption amount must be positive")

// Ledger maintains per-user credit balances and their append-only transaction
// logs. The cached balance on the user record is always a pure fold of the
// log over the signup constant; every mutation happens under the user's lock
// so the read-modify-write cannot lose updates.
type Ledger struct {
	users storage.UserStore
	log   storage.CreditStore

	// Now supplies timestamps and can be swapped in tests.
	Now func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewLedger creates a credit Ledger over the given stores.
func NewLedger(users storage.UserStore, log storage.CreditStore) *Ledger {
	return &Ledger{
		users: users,
		log:   log,
		Now:   time.Now,
		locks: make(map[string]*sync.Mutex),
	}
}

// userLock returns the mutex serializing operations on one user's balance.
func (l *Ledger) userLock(userID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lk, ok := l.locks[userID]
	if !ok {
		lk = &sync.Mutex{}
		l.locks[userID] = lk
	}
	return lk
}

// EnsureInitialized seeds the user's balance with the signup constant on first
// access. Idempotent; repeated calls are no-ops.
func (l *Ledger) EnsureInitialized(ctx context.Context, userID string) error {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	_, err := l.ensureInitializedLocked(ctx, userID)
	return err
}

func (l *Ledger) ensureInitializedLocked(ctx context.Context, userID string) (*models.User, error) {
	user, err := l.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CreditsInitialized {
		if err := l.users.SetCreditBalance(ctx, userID, SignupCredits); err != nil {
			return nil, err
		}
		user.CreditBalance = SignupCredits
		user.CreditsInitialized = true
	}
	return user, nil
}

// Post applies a signed delta to the user's balance and appends the matching
// transaction. There is no overdraft check here: system debits (such as the
// seeker's share of a completed session) may drive a balance negative. Only
// user-initiated redemption guards the balance, in Redeem.
func (l *Ledger) Post(ctx context.Context, userID string, amount int64, reason, relatedID string) (*models.CreditTransaction, error) {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	return l.postLocked(ctx, userID, amount, reason, relatedID)
}

// postLocked assumes the caller holds the user's lock.
func (l *Ledger) postLocked(ctx context.Context, userID string, amount int64, reason, relatedID string) (*models.CreditTransaction, error) {
	user, err := l.ensureInitializedLocked(ctx, userID)
	if err != nil {
		return nil, err
	}

	tx := &models.CreditTransaction{
		Id:            uuid.New().String(),
		UserId:        userID,
		Amount:        amount,
		Reason:        reason,
		RelatedId:     relatedID,
		BalanceBefore: user.CreditBalance,
		BalanceAfter:  user.CreditBalance + amount,
		CreatedAt:     l.Now(),
	}

	if err := l.users.SetCreditBalance(ctx, userID, tx.BalanceAfter); err != nil {
		return nil, fmt.Errorf("failed to update cached balance: %w", err)
	}
	return l.log.AppendCreditTransaction(ctx, tx)
}

// AwardForAction posts the fixed delta registered for the action tag.
func (l *Ledger) AwardForAction(ctx context.Context, userID string, action models.CreditAction, relatedID string) (*models.CreditTransaction, error) {
	amount, ok := Actions[action]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAction, action)
	}
	return l.Post(ctx, userID, amount, string(action), relatedID)
}

// Redeem spends credits at the user's request. Unlike system debits, a
// redemption that exceeds the balance is refused and leaves no trace.
func (l *Ledger) Redeem(ctx context.Context, userID string, amount int64, reason string) (*models.CreditTransaction, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if reason == "" {
		reason = RedemptionReason
	}

	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	user, err := l.ensureInitializedLocked(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.CreditBalance < amount {
		return nil, ErrInsufficientBalance
	}
	return l.postLocked(ctx, userID, -amount, reason, "")
}

// Balance returns the user's cached balance, initializing it if needed.
func (l *Ledger) Balance(ctx context.Context, userID string) (int64, error) {
	lk := l.userLock(userID)
	lk.Lock()
	defer lk.Unlock()

	user, err := l.ensureInitializedLocked(ctx, userID)
	if err != nil {
		return 0, err
	}
	return user.CreditBalance, nil
}

// History returns the user's transactions, most recent first.
func (l *Ledger) History(ctx context.Context, userID string) ([]models.CreditTransaction, error) {
	txns, err := l.log.ListCreditTransactions(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(txns)-1; i < j; i, j = i+1, j-1 {
		txns[i], txns[j] = txns[j], txns[i]
	}
	return txns, nil
}

// PostCompletionPair posts the provider award and seeker debit for a completed
// session as a unit. Both users' locks are taken in ID order and both users
// must resolve before either transaction is appended, so a failure leaves no
// partial state behind.
func (l *Ledger) PostCompletionPair(ctx context.Context, providerID, seekerID, bookingID string) error {
	first, second := providerID, seekerID
	if second < first {
		first, second = second, first
	}

	fl := l.userLock(first)
	fl.Lock()
	defer fl.Unlock()
	if second != first {
		sl := l.userLock(second)
		sl.Lock()
		defer sl.Unlock()
	}

	if _, err := l.ensureInitializedLocked(ctx, providerID); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if _, err := l.ensureInitializedLocked(ctx, seekerID); err != nil {
		return fmt.Errorf("seeker: %w", err)
	}

	if _, err := l.postLocked(ctx, providerID, Actions[models.SessionCompleteProvider], string(models.SessionCompleteProvider), bookingID); err != nil {
		return err
	}
	_, err := l.postLocked(ctx, seekerID, Actions[models.SessionCompleteSeeker], string(models.SessionCompleteSeeker), bookingID)
	return err
}
