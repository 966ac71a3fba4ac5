package handlers

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// CreateReview records feedback about a session partner. When a booking is
// referenced it must be completed and both parties must be its participants;
// one review per booking per reviewer.
func (h *ApiHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req api.NewReview
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.RevieweeId == "" || req.Rating == 0 {
		writeError(w, http.StatusBadRequest, "Reviewee and rating are required")
		return
	}
	if req.Rating < 1 || req.Rating > 5 {
		writeError(w, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	reviewerID := middleware.UserID(r.Context())

	if req.BookingId != "" {
		bk, err := h.Store.GetBooking(r.Context(), req.BookingId)
		if err != nil || bk.Status != models.COMPLETED || !bk.Involves(req.RevieweeId) || !bk.Involves(reviewerID) {
			writeError(w, http.StatusBadRequest, "Invalid booking or not completed yet")
			return
		}

		already, err := h.Store.FindReviews(r.Context(), func(rv *models.Review) bool {
			return rv.BookingId == req.BookingId && rv.ReviewerId == reviewerID
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		if len(already) > 0 {
			writeError(w, http.StatusBadRequest, "Already reviewed this session")
			return
		}
	}

	created, err := h.Store.InsertReview(r.Context(), &models.Review{
		Id:         uuid.New().String(),
		ReviewerId: reviewerID,
		RevieweeId: req.RevieweeId,
		BookingId:  req.BookingId,
		SkillId:    req.SkillId,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.ReviewResponse{
		Message: "Review submitted successfully",
		Review:  mapping.ToApiReview(created, h.userName(r, reviewerID, "Anonymous")),
	})
}

// ListReviews returns the reviews a user has received plus aggregate stats.
func (h *ApiHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")

	received, err := h.Store.FindReviews(r.Context(), func(rv *models.Review) bool {
		return rv.RevieweeId == userID
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	reviews := make([]api.Review, len(received))
	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	sum := 0
	for i := range received {
		reviews[i] = mapping.ToApiReview(&received[i], h.userName(r, received[i].ReviewerId, "Anonymous"))
		distribution[fmt.Sprintf("%d", received[i].Rating)]++
		sum += received[i].Rating
	}

	avg := 0.0
	if len(received) > 0 {
		avg = math.Round(float64(sum)/float64(len(received))*10) / 10
	}

	writeJSON(w, http.StatusOK, api.ReviewsResponse{
		Reviews: reviews,
		Stats: api.ReviewStats{
			TotalReviews:       len(received),
			AvgRating:          avg,
			RatingDistribution: distribution,
		},
	})
}

func (h *ApiHandler) userName(r *http.Request, userID, fallback string) string {
	user, err := h.Store.GetUser(r.Context(), userID)
	if err != nil {
		return fallback
	}
	return user.Name
}
