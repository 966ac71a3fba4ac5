package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// CreateBooking admits a booking request on behalf of the authenticated seeker.
func (h *ApiHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req api.NewBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ProviderId == "" || req.Date.IsZero() || req.Time == "" {
		writeError(w, http.StatusBadRequest, "Provider, date, and time are required")
		return
	}

	detail, err := h.Bookings.Create(r.Context(), mapping.ToDomainCreateRequest(&req, middleware.UserID(r.Context())))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.BookingResponse{
		Message: "Booking request sent successfully",
		Booking: mapping.ToApiBookingDetail(detail),
	})
}

// ListBookings returns all bookings the caller participates in.
func (h *ApiHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	details, err := h.Bookings.List(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]api.Booking, len(details))
	for i := range details {
		out[i] = mapping.ToApiBookingDetail(&details[i])
		out[i].IsProvider = &details[i].IsProvider
	}
	writeJSON(w, http.StatusOK, out)
}

// UpdateBookingStatus applies a status transition requested by the caller.
// A "completed" status goes through the same path as CompleteBooking, so the
// credit postings happen exactly once regardless of route.
func (h *ApiHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	var req api.BookingStatusUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	status := models.BookingStatus(req.Status)
	switch status {
	case models.CONFIRMED, models.CANCELLED, models.COMPLETED:
	default:
		writeError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	h.transitionBooking(w, r, status)
}

// CompleteBooking marks a booking completed and awards the session credits.
func (h *ApiHandler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	h.transitionBooking(w, r, models.COMPLETED)
}

func (h *ApiHandler) transitionBooking(w http.ResponseWriter, r *http.Request, status models.BookingStatus) {
	updated, err := h.Bookings.Transition(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()), status)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	message := "Booking " + string(status) + " successfully"
	if status == models.COMPLETED {
		message = "Booking completed and credits awarded"
	}
	writeJSON(w, http.StatusOK, api.BookingResponse{
		Message: message,
		Booking: mapping.ToApiBooking(updated),
	})
}
