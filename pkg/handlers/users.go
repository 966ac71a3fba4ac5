package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/directory"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// UpdateProfile merges the submitted fields into the caller's profile.
func (h *ApiHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req api.ProfileUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Directory.UpdateProfile(r.Context(), middleware.UserID(r.Context()), directory.ProfileUpdate{
		Name:     req.Name,
		Bio:      req.Bio,
		Location: req.Location,
		Phone:    req.Phone,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ProfileResponse{
		Message: "Profile updated successfully",
		User:    mapping.ToApiUserProfile(user),
	})
}

// UpdateLocation stores the caller's coordinates.
func (h *ApiHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	var req api.LocationUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Latitude == nil || req.Longitude == nil {
		writeError(w, http.StatusBadRequest, "Latitude and longitude are required")
		return
	}

	user, err := h.Directory.UpdateLocation(r.Context(), middleware.UserID(r.Context()), *req.Latitude, *req.Longitude, req.Address)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.LocationResponse{
		Message: "Location updated successfully",
		Location: api.Location{
			Latitude:  *user.Latitude,
			Longitude: *user.Longitude,
			Address:   user.Location,
		},
	})
}

// SearchUsers finds users by skill name and type.
func (h *ApiHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	results, err := h.Directory.Search(r.Context(), query.Get("skill"), models.SkillType(query.Get("type")))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]api.SearchResult, len(results))
	for i := range results {
		out[i] = mapping.ToApiSearchResult(&results[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// NearbyUsers finds users within a radius of the caller (or explicit coordinates).
func (h *ApiHandler) NearbyUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	radius := 0.0
	if raw := query.Get("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid radius")
			return
		}
		radius = parsed
	}

	var lat, lon *float64
	if raw := query.Get("latitude"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid latitude")
			return
		}
		lat = &parsed
	}
	if raw := query.Get("longitude"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid longitude")
			return
		}
		lon = &parsed
	}

	results, err := h.Directory.Nearby(r.Context(), middleware.UserID(r.Context()), query.Get("skill"), radius, lat, lon)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]api.NearbyUser, len(results))
	for i := range results {
		out[i] = mapping.ToApiNearbyUser(&results[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// GetReputation returns a user's derived reputation score.
func (h *ApiHandler) GetReputation(w http.ResponseWriter, r *http.Request) {
	rep, err := h.Directory.ComputeReputation(r.Context(), chi.URLParam(r, "userId"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiReputation(rep))
}
