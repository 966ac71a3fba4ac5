package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/skillink/skillink/pkg/booking"
	"github.com/skillink/skillink/pkg/directory"
	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// BookingLedger is the slice of the booking ledger the handlers consume.
type BookingLedger interface {
	Create(ctx context.Context, req booking.CreateRequest) (*booking.Detail, error)
	Transition(ctx context.Context, bookingID, actorID string, status models.BookingStatus) (*models.Booking, error)
	List(ctx context.Context, userID string) ([]booking.Detail, error)
}

// CreditLedger is the slice of the credit ledger the handlers consume.
type CreditLedger interface {
	Balance(ctx context.Context, userID string) (int64, error)
	History(ctx context.Context, userID string) ([]models.CreditTransaction, error)
	AwardForAction(ctx context.Context, userID string, action models.CreditAction, relatedID string) (*models.CreditTransaction, error)
	Redeem(ctx context.Context, userID string, amount int64, reason string) (*models.CreditTransaction, error)
}

// ApiHandler holds the application's dependencies: the storage layer, the two
// ledgers and the user directory, plus what it needs to mint tokens.
type ApiHandler struct {
	Store     storage.Storage
	Bookings  BookingLedger
	Credits   CreditLedger
	Directory *directory.Service

	TokenSecret []byte
	TokenTTL    time.Duration
}

// NewApiHandler creates a new ApiHandler.
func NewApiHandler(store storage.Storage, bookings BookingLedger, credits CreditLedger, dir *directory.Service, tokenSecret []byte, tokenTTL time.Duration) *ApiHandler {
	return &ApiHandler{
		Store:       store,
		Bookings:    bookings,
		Credits:     credits,
		Directory:   dir,
		TokenSecret: tokenSecret,
		TokenTTL:    tokenTTL,
	}
}

// Router assembles the API routes. The protected subset is guarded by authmw.
func (h *ApiHandler) Router(authmw func(next http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.GetHealth)
		r.Post("/auth/register", h.Register)
		r.Post("/auth/login", h.Login)
		r.Get("/users/search", h.SearchUsers)
		r.Get("/users/{userId}/reputation", h.GetReputation)
		r.Get("/reviews/{userId}", h.ListReviews)
		r.Get("/projects", h.ListProjects)
		r.Get("/projects/{id}", h.GetProject)

		r.Group(func(r chi.Router) {
			r.Use(authmw)
			r.Put("/users/profile", h.UpdateProfile)
			r.Put("/users/location", h.UpdateLocation)
			r.Get("/users/nearby", h.NearbyUsers)
			r.Post("/skills", h.AddSkill)
			r.Get("/skills", h.ListSkills)
			r.Delete("/skills/{id}", h.DeleteSkill)
			r.Post("/bookings", h.CreateBooking)
			r.Get("/bookings", h.ListBookings)
			r.Patch("/bookings/{id}", h.UpdateBookingStatus)
			r.Patch("/bookings/{id}/complete", h.CompleteBooking)
			r.Get("/credits", h.GetCredits)
			r.Post("/credits/award", h.AwardCredits)
			r.Post("/credits/redeem", h.RedeemCredits)
			r.Post("/reviews", h.CreateReview)
			r.Post("/projects", h.CreateProject)
			r.Post("/projects/{id}/join", h.JoinProject)
		})
	})
	return r
}
