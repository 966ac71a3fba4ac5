package directory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage/memory"
)

func newTestService(t *testing.T) (*Service, *memory.Store) {
	t.Helper()
	store := memory.New()
	return NewService(store, store, store, store), store
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := newTestService(t)

	user, err := svc.Register(context.Background(), "alice@example.com", "hunter22", "Alice")
	require.NoError(t, err)
	assert.NotEmpty(t, user.Id)
	assert.NotEqual(t, "hunter22", user.PasswordHash)

	t.Run("Correct Password", func(t *testing.T) {
		got, err := svc.Authenticate(context.Background(), "alice@example.com", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, user.Id, got.Id)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "alice@example.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody@example.com", "hunter22")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		_, err := svc.Register(context.Background(), "alice@example.com", "other", "Alice Two")
		assert.ErrorIs(t, err, ErrEmailTaken)
	})
}

func TestUpdateProfile_MergesFields(t *testing.T) {
	svc, _ := newTestService(t)
	user, err := svc.Register(context.Background(), "alice@example.com", "pw", "Alice")
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(context.Background(), user.Id, ProfileUpdate{Bio: "Teaches Go"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name, "empty patch fields keep current values")
	assert.Equal(t, "Teaches Go", updated.Bio)

	updated, err = svc.UpdateProfile(context.Background(), user.Id, ProfileUpdate{Name: "Alice B"})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, "Teaches Go", updated.Bio)
}

func seedSkill(t *testing.T, store *memory.Store, userID, name string, skillType models.SkillType) {
	t.Helper()
	_, err := store.InsertSkill(context.Background(), &models.Skill{
		Id:          uuid.New().String(),
		UserId:      userID,
		SkillName:   name,
		Type:        skillType,
		Proficiency: 3,
	})
	require.NoError(t, err)
}

func TestSearch(t *testing.T) {
	svc, store := newTestService(t)

	alice, err := svc.Register(context.Background(), "alice@example.com", "pw", "Alice")
	require.NoError(t, err)
	bob, err := svc.Register(context.Background(), "bob@example.com", "pw", "Bob")
	require.NoError(t, err)

	seedSkill(t, store, alice.Id, "Go Programming", models.OFFERING)
	seedSkill(t, store, alice.Id, "Photography", models.SEEKING)
	seedSkill(t, store, bob.Id, "Golang Basics", models.OFFERING)

	t.Run("Substring Match", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "go", "")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, alice.Id, results[0].Id)
		assert.Equal(t, bob.Id, results[1].Id)
	})

	t.Run("Type Filter", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "", models.SEEKING)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, alice.Id, results[0].Id)
		require.Len(t, results[0].Skills, 1)
		assert.Equal(t, "Photography", results[0].Skills[0].Name)
	})

	t.Run("No Match", func(t *testing.T) {
		results, err := svc.Search(context.Background(), "juggling", "")
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestNearby(t *testing.T) {
	svc, store := newTestService(t)

	register := func(name string, lat, lon float64) *models.User {
		user, err := svc.Register(context.Background(), name+"@example.com", "pw", name)
		require.NoError(t, err)
		_, err = svc.UpdateLocation(context.Background(), user.Id, lat, lon, "")
		require.NoError(t, err)
		return user
	}

	// San Francisco, Oakland (~13 km away) and Los Angeles (~560 km away).
	alice := register("alice", 37.7749, -122.4194)
	bob := register("bob", 37.8044, -122.2712)
	carol := register("carol", 34.0522, -118.2437)
	seedSkill(t, store, bob.Id, "Guitar", models.OFFERING)

	t.Run("Within Default Radius", func(t *testing.T) {
		results, err := svc.Nearby(context.Background(), alice.Id, "", 0, nil, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, bob.Id, results[0].Id)
		assert.InDelta(t, 13, results[0].Distance, 2)
		require.Len(t, results[0].Skills, 1)
		assert.Equal(t, "Guitar", results[0].Skills[0].Name)
	})

	t.Run("Wide Radius Sorted By Distance", func(t *testing.T) {
		results, err := svc.Nearby(context.Background(), alice.Id, "", 1000, nil, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, bob.Id, results[0].Id)
		assert.Equal(t, carol.Id, results[1].Id)
	})

	t.Run("Skill Filter", func(t *testing.T) {
		results, err := svc.Nearby(context.Background(), alice.Id, "guitar", 1000, nil, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, bob.Id, results[0].Id)
	})

	t.Run("Explicit Origin", func(t *testing.T) {
		lat, lon := 34.05, -118.24
		results, err := svc.Nearby(context.Background(), alice.Id, "", 10, &lat, &lon)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, carol.Id, results[0].Id)
	})

	t.Run("No Origin", func(t *testing.T) {
		dave, err := svc.Register(context.Background(), "dave@example.com", "pw", "Dave")
		require.NoError(t, err)

		_, err = svc.Nearby(context.Background(), dave.Id, "", 0, nil, nil)
		assert.ErrorIs(t, err, ErrLocationUnset)
	})
}

func TestComputeReputation(t *testing.T) {
	svc, store := newTestService(t)

	alice, err := svc.Register(context.Background(), "alice@example.com", "pw", "Alice")
	require.NoError(t, err)
	bob, err := svc.Register(context.Background(), "bob@example.com", "pw", "Bob")
	require.NoError(t, err)

	for _, rating := range []int{4, 5} {
		_, err := store.InsertReview(context.Background(), &models.Review{
			Id:         uuid.New().String(),
			ReviewerId: bob.Id,
			RevieweeId: alice.Id,
			Rating:     rating,
		})
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := store.InsertBooking(context.Background(), &models.Booking{
			Id:         uuid.New().String(),
			ProviderId: alice.Id,
			SeekerId:   bob.Id,
			Status:     models.COMPLETED,
		})
		require.NoError(t, err)
	}
	seedSkill(t, store, alice.Id, "Go", models.OFFERING)
	seedSkill(t, store, alice.Id, "Rust", models.OFFERING)
	seedSkill(t, store, alice.Id, "Photography", models.SEEKING)
	seedSkill(t, store, alice.Id, "Cooking", models.SEEKING)

	rep, err := svc.ComputeReputation(context.Background(), alice.Id)
	require.NoError(t, err)

	// avg 4.5 -> 22.5, 3 completed -> 9, 4 skills -> 40; (22.5+9+40)/10 = 7.15.
	assert.Equal(t, 7.2, rep.Score)
	assert.Equal(t, "Newcomer", rep.Level)
	assert.Equal(t, 4.5, rep.AvgRating)
	assert.Equal(t, 2, rep.TotalReviews)
	assert.Equal(t, 3, rep.CompletedSessions)
	assert.Equal(t, 4, rep.TotalSkills)
	assert.Equal(t, "Alice", rep.UserName)

	t.Run("Empty History", func(t *testing.T) {
		eve, err := svc.Register(context.Background(), "eve@example.com", "pw", "Eve")
		require.NoError(t, err)

		rep, err := svc.ComputeReputation(context.Background(), eve.Id)
		require.NoError(t, err)
		assert.Equal(t, 0.0, rep.Score)
		assert.Equal(t, "Newcomer", rep.Level)
	})
}
