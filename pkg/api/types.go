// Package api defines the JSON wire types served to the SkilLink frontend.
// Field names match the shapes the existing SPA clients already consume.
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error is the uniform error envelope.
type Error struct {
	Error string `json:"error"`
}

// Message is a bare confirmation envelope.
type Message struct {
	Message string `json:"message"`
}

// Health reports service liveness.
type Health struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser is the user summary returned with a token.
type AuthUser struct {
	Id    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Message string   `json:"message"`
	Token   string   `json:"token"`
	User    AuthUser `json:"user"`
}

// UserProfile is a user's editable profile.
type UserProfile struct {
	Id       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// ProfileUpdateRequest is the body of PUT /api/users/profile. Empty fields
// keep their current values.
type ProfileUpdateRequest struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
}

// ProfileResponse wraps an updated profile.
type ProfileResponse struct {
	Message string      `json:"message"`
	User    UserProfile `json:"user"`
}

// LocationUpdateRequest is the body of PUT /api/users/location.
type LocationUpdateRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Address   string   `json:"address"`
}

// Location is a user's stored position.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// LocationResponse wraps an updated location.
type LocationResponse struct {
	Message  string   `json:"message"`
	Location Location `json:"location"`
}

// NewSkill is the body of POST /api/skills.
type NewSkill struct {
	SkillName   string `json:"skillName"`
	Type        string `json:"type"`
	Proficiency int    `json:"proficiency"`
}

// Skill is a stored skill.
type Skill struct {
	Id          string    `json:"id"`
	UserId      string    `json:"userId"`
	SkillName   string    `json:"skillName"`
	Type        string    `json:"type"`
	Proficiency int       `json:"proficiency"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SkillResponse wraps a newly added skill.
type SkillResponse struct {
	Message string `json:"message"`
	Skill   Skill  `json:"skill"`
}

// SkillsResponse groups a user's skills by type.
type SkillsResponse struct {
	Offering []Skill `json:"offering"`
	Seeking  []Skill `json:"seeking"`
}

// SkillSummary is a skill as embedded in search results.
type SkillSummary struct {
	Name        string `json:"name"`
	Type        string `json:"type,omitempty"`
	Proficiency int    `json:"proficiency"`
}

// SearchResult is a user matched by GET /api/users/search.
type SearchResult struct {
	Id       string         `json:"id"`
	Name     string         `json:"name"`
	Bio      string         `json:"bio"`
	Location string         `json:"location"`
	Skills   []SkillSummary `json:"skills"`
}

// NearbyUser is a user matched by GET /api/users/nearby.
type NearbyUser struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Bio       string         `json:"bio"`
	Location  string         `json:"location"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Distance  float64        `json:"distance"`
	Skills    []SkillSummary `json:"skills"`
}

// ReputationStats are the raw counters behind a reputation score.
type ReputationStats struct {
	AvgRating         float64 `json:"avgRating"`
	TotalReviews      int     `json:"totalReviews"`
	CompletedSessions int     `json:"completedSessions"`
	TotalSkills       int     `json:"totalSkills"`
}

// Reputation is returned by GET /api/users/{userId}/reputation.
type Reputation struct {
	UserId          string          `json:"userId"`
	UserName        string          `json:"userName"`
	ReputationScore float64         `json:"reputationScore"`
	Level           string          `json:"level"`
	Stats           ReputationStats `json:"stats"`
}

// NewBooking is the body of POST /api/bookings.
type NewBooking struct {
	ProviderId string             `json:"providerId"`
	SkillId    string             `json:"skillId"`
	Date       openapi_types.Date `json:"date"`
	Time       string             `json:"time"`
	Duration   int                `json:"duration"`
	Message    string             `json:"message"`
}

// Booking is a stored booking. ProviderName, SeekerName and IsProvider are
// denormalized for the viewer where the endpoint provides them.
type Booking struct {
	Id           string             `json:"id"`
	ProviderId   string             `json:"providerId"`
	SeekerId     string             `json:"seekerId"`
	SkillId      string             `json:"skillId"`
	Date         openapi_types.Date `json:"date"`
	Time         string             `json:"time"`
	Duration     int                `json:"duration"`
	Message      string             `json:"message"`
	Status       string             `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt"`
	ProviderName string             `json:"providerName,omitempty"`
	SeekerName   string             `json:"seekerName,omitempty"`
	IsProvider   *bool              `json:"isProvider,omitempty"`
}

// BookingResponse wraps a booking mutation result.
type BookingResponse struct {
	Message string  `json:"message"`
	Booking Booking `json:"booking"`
}

// BookingStatusUpdate is the body of PATCH /api/bookings/{id}.
type BookingStatusUpdate struct {
	Status string `json:"status"`
}

// CreditTransaction is one entry of a user's credit log. RelatedId is null
// when the transaction is not tied to a booking or other record.
type CreditTransaction struct {
	Id            string    `json:"id"`
	UserId        string    `json:"userId"`
	Amount        int64     `json:"amount"`
	Reason        string    `json:"reason"`
	RelatedId     *string   `json:"relatedId"`
	BalanceBefore int64     `json:"balanceBefore"`
	BalanceAfter  int64     `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
}

// CreditsResponse is returned by GET /api/credits.
type CreditsResponse struct {
	Balance      int64               `json:"balance"`
	Transactions []CreditTransaction `json:"transactions"`
}

// AwardRequest is the body of POST /api/credits/award.
type AwardRequest struct {
	Action    string `json:"action"`
	RelatedId string `json:"relatedId"`
}

// RedeemRequest is the body of POST /api/credits/redeem.
type RedeemRequest struct {
	Amount int64  `json:"amount"`
	Reason string `json:"reason"`
}

// CreditMutationResponse wraps an award or redemption result.
type CreditMutationResponse struct {
	Message     string            `json:"message"`
	Transaction CreditTransaction `json:"transaction"`
	NewBalance  int64             `json:"newBalance"`
}

// NewReview is the body of POST /api/reviews.
type NewReview struct {
	RevieweeId string `json:"revieweeId"`
	BookingId  string `json:"bookingId"`
	SkillId    string `json:"skillId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Review is a stored review.
type Review struct {
	Id           string    `json:"id"`
	ReviewerId   string    `json:"reviewerId"`
	RevieweeId   string    `json:"revieweeId"`
	BookingId    string    `json:"bookingId"`
	SkillId      string    `json:"skillId"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	ReviewerName string    `json:"reviewerName,omitempty"`
}

// ReviewResponse wraps a newly created review.
type ReviewResponse struct {
	Message string `json:"message"`
	Review  Review `json:"review"`
}

// ReviewStats aggregates the reviews a user has received.
type ReviewStats struct {
	TotalReviews       int            `json:"totalReviews"`
	AvgRating          float64        `json:"avgRating"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
}

// ReviewsResponse is returned by GET /api/reviews/{userId}.
type ReviewsResponse struct {
	Reviews []Review    `json:"reviews"`
	Stats   ReviewStats `json:"stats"`
}

// NewProject is the body of POST /api/projects.
type NewProject struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	Location    string   `json:"location"`
}

// Project is a stored project.
type Project struct {
	Id          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Location    string    `json:"location"`
	CreatorId   string    `json:"creatorId"`
	Members     []string  `json:"members"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	CreatorName string    `json:"creatorName,omitempty"`
}

// ProjectResponse wraps a project mutation result.
type ProjectResponse struct {
	Message string  `json:"message"`
	Project Project `json:"project"`
}
