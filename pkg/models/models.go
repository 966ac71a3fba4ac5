package models

import (
	"time"
)

// BookingStatus defines the possible states of a booking.
type BookingStatus string

const (
	PENDING   BookingStatus = "pending"
	CONFIRMED BookingStatus = "confirmed"
	CANCELLED BookingStatus = "cancelled"
	COMPLETED BookingStatus = "completed"
)

// SkillType distinguishes skills a user teaches from skills they want to learn.
type SkillType string

const (
	OFFERING SkillType = "offering"
	SEEKING  SkillType = "seeking"
)

// CreditAction tags a fixed-value credit award.
type CreditAction string

const (
	SessionCompleteProvider CreditAction = "SESSION_COMPLETE_PROVIDER"
	SessionCompleteSeeker   CreditAction = "SESSION_COMPLETE_SEEKER"
	ProfileComplete         CreditAction = "PROFILE_COMPLETE"
	FirstReview             CreditAction = "FIRST_REVIEW"
	ProjectCreate           CreditAction = "PROJECT_CREATE"
	ProjectJoin             CreditAction = "PROJECT_JOIN"
	SkillAdd                CreditAction = "SKILL_ADD"
	Referral                CreditAction = "REFERRAL"
	SignupBonus             CreditAction = "SIGNUP_BONUS"
)

// User represents the internal domain model for a registered user.
// CreditBalance is a cache owned by the credit ledger; it is only meaningful
// once CreditsInitialized is set.
type User struct {
	Id                 string
	Email              string
	PasswordHash       string
	Name               string
	Bio                string
	Location           string
	Phone              string
	Latitude           *float64
	Longitude          *float64
	CreditBalance      int64
	CreditsInitialized bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Skill is a single skill a user is offering or seeking.
type Skill struct {
	Id          string
	UserId      string
	SkillName   string
	Type        SkillType
	Proficiency int
	CreatedAt   time.Time
}

// Booking represents a requested teaching session between a provider and a
// seeker. Date holds the calendar date at midnight UTC and TimeOfDay the
// wall-clock start ("15:04"); StartAt is the combined instant used for
// conflict detection. Bookings are never deleted, cancellation is a status.
type Booking struct {
	Id         string
	ProviderId string
	SeekerId   string
	SkillId    string
	Date       time.Time
	TimeOfDay  string
	Duration   int
	StartAt    time.Time
	Message    string
	Status     BookingStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EndAt returns the exclusive end of the booking's time slot.
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.Duration) * time.Minute)
}

// Active reports whether the booking still occupies its slot.
func (b *Booking) Active() bool {
	return b.Status != CANCELLED
}

// Involves reports whether the user participates in the booking in either role.
func (b *Booking) Involves(userID string) bool {
	return b.ProviderId == userID || b.SeekerId == userID
}

// CreditTransaction is one append-only entry in a user's credit log.
// BalanceBefore and BalanceAfter snapshot the cached balance around the
// posting; replaying a user's log in order must reproduce the cache.
type CreditTransaction struct {
	Id            string
	UserId        string
	Amount        int64
	Reason        string
	RelatedId     string
	BalanceBefore int64
	BalanceAfter  int64
	CreatedAt     time.Time
}

// Review is feedback left by one session participant about the other.
type Review struct {
	Id         string
	ReviewerId string
	RevieweeId string
	BookingId  string
	SkillId    string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// ProjectStatus defines the possible states of a project.
type ProjectStatus string

const (
	ACTIVE ProjectStatus = "active"
)

// Project is a collaborative project users can create and join.
type Project struct {
	Id          string
	Title       string
	Description string
	Skills      []string
	Location    string
	CreatorId   string
	Members     []string
	Status      ProjectStatus
	CreatedAt   time.Time
}
