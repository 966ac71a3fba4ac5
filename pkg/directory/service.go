package directory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillink/skillink/pkg/geo"
	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// DefaultRadiusKm bounds nearby searches when no radius is given.
const DefaultRadiusKm = 50

// ErrInvalidCredentials is returned for a wrong email or password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrEmailTaken is returned when registering an email that already exists.
var ErrEmailTaken = errors.New("email already registered")

// ErrLocationUnset is returned when a nearby search has no origin coordinates.
var ErrLocationUnset = errors.New("location not set")

// Service is the user directory: registration, authentication, profiles,
// skill search, proximity search and reputation.
type Service struct {
	users    storage.UserStore
	skills   storage.SkillStore
	reviews  storage.ReviewStore
	bookings storage.BookingStore

	// Now supplies timestamps and can be swapped in tests.
	Now func() time.Time
}

// NewService creates a directory Service over the given stores.
func NewService(users storage.UserStore, skills storage.SkillStore, reviews storage.ReviewStore, bookings storage.BookingStore) *Service {
	return &Service{
		users:    users,
		skills:   skills,
		reviews:  reviews,
		bookings: bookings,
		Now:      time.Now,
	}
}

// Register creates a user with a bcrypt-hashed password.
func (s *Service) Register(ctx context.Context, email, password, name string) (*models.User, error) {
	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := &models.User{
		Id:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.CreateUser(ctx, user)
}

// Authenticate checks a user's credentials. A missing user and a wrong
// password are indistinguishable to the caller.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// ProfileUpdate carries optional profile fields; empty values keep the
// current ones.
type ProfileUpdate struct {
	Name     string
	Bio      string
	Location string
	Phone    string
}

// UpdateProfile merges the patch into the user's profile.
func (s *Service) UpdateProfile(ctx context.Context, userID string, patch ProfileUpdate) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if patch.Name != "" {
		user.Name = patch.Name
	}
	if patch.Bio != "" {
		user.Bio = patch.Bio
	}
	if patch.Location != "" {
		user.Location = patch.Location
	}
	if patch.Phone != "" {
		user.Phone = patch.Phone
	}
	user.UpdatedAt = s.Now()

	return s.users.UpdateUser(ctx, user)
}

// UpdateLocation sets the user's coordinates and, optionally, the address label.
func (s *Service) UpdateLocation(ctx context.Context, userID string, latitude, longitude float64, address string) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Latitude = &latitude
	user.Longitude = &longitude
	if address != "" {
		user.Location = address
	}
	user.UpdatedAt = s.Now()

	return s.users.UpdateUser(ctx, user)
}

// SkillSummary is a skill as shown in search results.
type SkillSummary struct {
	Name        string
	Type        models.SkillType
	Proficiency int
}

// SearchResult is a user matched by a skill search.
type SearchResult struct {
	Id       string
	Name     string
	Bio      string
	Location string
	Skills   []SkillSummary
}

// Search finds users by skill name substring and skill type. Empty filters
// match everything.
func (s *Service) Search(ctx context.Context, skillQuery string, skillType models.SkillType) ([]SearchResult, error) {
	query := strings.ToLower(skillQuery)
	matched, err := s.skills.FindSkills(ctx, func(sk *models.Skill) bool {
		if query != "" && !strings.Contains(strings.ToLower(sk.SkillName), query) {
			return false
		}
		if skillType != "" && sk.Type != skillType {
			return false
		}
		return true
	})
	if err != nil {
		return nil, err
	}

	var order []string
	byUser := make(map[string][]SkillSummary)
	for _, sk := range matched {
		if _, seen := byUser[sk.UserId]; !seen {
			order = append(order, sk.UserId)
		}
		byUser[sk.UserId] = append(byUser[sk.UserId], SkillSummary{
			Name:        sk.SkillName,
			Type:        sk.Type,
			Proficiency: sk.Proficiency,
		})
	}

	var results []SearchResult
	for _, userID := range order {
		user, err := s.users.GetUser(ctx, userID)
		if err != nil {
			continue
		}
		results = append(results, SearchResult{
			Id:       user.Id,
			Name:     user.Name,
			Bio:      user.Bio,
			Location: user.Location,
			Skills:   byUser[userID],
		})
	}
	return results, nil
}

// NearbyUser is a user matched by a proximity search, nearest first.
type NearbyUser struct {
	Id        string
	Name      string
	Bio       string
	Location  string
	Latitude  float64
	Longitude float64
	Distance  float64
	Skills    []SkillSummary
}

// Nearby finds users within radiusKm of the origin. When a skill filter is
// given only users offering a matching skill are considered; otherwise every
// other user with coordinates is. The origin defaults to the searching user's
// own stored location.
func (s *Service) Nearby(ctx context.Context, userID, skillQuery string, radiusKm float64, latitude, longitude *float64) ([]NearbyUser, error) {
	if radiusKm <= 0 {
		radiusKm = DefaultRadiusKm
	}

	originLat, originLon := latitude, longitude
	if originLat == nil || originLon == nil {
		current, err := s.users.GetUser(ctx, userID)
		if err != nil {
			return nil, err
		}
		originLat, originLon = current.Latitude, current.Longitude
	}
	if originLat == nil || originLon == nil {
		return nil, ErrLocationUnset
	}

	candidates, err := s.nearbyCandidates(ctx, userID, skillQuery)
	if err != nil {
		return nil, err
	}

	var results []NearbyUser
	for _, user := range candidates {
		if user.Latitude == nil || user.Longitude == nil {
			continue
		}
		distance := geo.DistanceKm(*originLat, *originLon, *user.Latitude, *user.Longitude)
		distance = math.Round(distance*10) / 10
		if distance > radiusKm {
			continue
		}

		offering, err := s.skills.FindSkills(ctx, func(sk *models.Skill) bool {
			return sk.UserId == user.Id && sk.Type == models.OFFERING
		})
		if err != nil {
			return nil, err
		}
		summaries := make([]SkillSummary, len(offering))
		for i, sk := range offering {
			summaries[i] = SkillSummary{Name: sk.SkillName, Proficiency: sk.Proficiency}
		}

		results = append(results, NearbyUser{
			Id:        user.Id,
			Name:      user.Name,
			Bio:       user.Bio,
			Location:  user.Location,
			Latitude:  *user.Latitude,
			Longitude: *user.Longitude,
			Distance:  distance,
			Skills:    summaries,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Distance < results[j].Distance
	})
	return results, nil
}

func (s *Service) nearbyCandidates(ctx context.Context, userID, skillQuery string) ([]models.User, error) {
	if skillQuery == "" {
		all, err := s.users.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		var others []models.User
		for _, u := range all {
			if u.Id != userID {
				others = append(others, u)
			}
		}
		return others, nil
	}

	query := strings.ToLower(skillQuery)
	matched, err := s.skills.FindSkills(ctx, func(sk *models.Skill) bool {
		return sk.Type == models.OFFERING && strings.Contains(strings.ToLower(sk.SkillName), query)
	})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var users []models.User
	for _, sk := range matched {
		if seen[sk.UserId] {
			continue
		}
		seen[sk.UserId] = true
		user, err := s.users.GetUser(ctx, sk.UserId)
		if err != nil {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

// Reputation is a user's derived standing on the platform.
type Reputation struct {
	UserId            string
	UserName          string
	Score             float64
	Level             string
	AvgRating         float64
	TotalReviews      int
	CompletedSessions int
	TotalSkills       int
}

// ComputeReputation derives a weighted score: 50% average rating, 30%
// completed sessions, 20% skill count, the last two capped.
func (s *Service) ComputeReputation(ctx context.Context, userID string) (*Reputation, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	received, err := s.reviews.FindReviews(ctx, func(r *models.Review) bool {
		return r.RevieweeId == userID
	})
	if err != nil {
		return nil, err
	}
	var avgRating float64
	if len(received) > 0 {
		var sum int
		for _, r := range received {
			sum += r.Rating
		}
		avgRating = float64(sum) / float64(len(received))
	}

	completed, err := s.bookings.FindBookings(ctx, func(b *models.Booking) bool {
		return b.Status == models.COMPLETED && b.Involves(userID)
	})
	if err != nil {
		return nil, err
	}

	skills, err := s.skills.ListSkillsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	score := (avgRating*10*0.5 +
		math.Min(float64(len(completed))/10, 10)*0.3*100 +
		math.Min(float64(len(skills))/2, 10)*0.2*100) / 10

	level := "Newcomer"
	switch {
	case score >= 80:
		level = "Expert"
	case score >= 60:
		level = "Advanced"
	case score >= 40:
		level = "Intermediate"
	case score >= 20:
		level = "Beginner"
	}

	return &Reputation{
		UserId:            userID,
		UserName:          user.Name,
		Score:             math.Round(score*10) / 10,
		Level:             level,
		AvgRating:         math.Round(avgRating*10) / 10,
		TotalReviews:      len(received),
		CompletedSessions: len(completed),
		TotalSkills:       len(skills),
	}, nil
}
