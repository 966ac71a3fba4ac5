package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/booking"
	"github.com/skillink/skillink/pkg/credits"
	"github.com/skillink/skillink/pkg/directory"
	"github.com/skillink/skillink/pkg/storage"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, api.Error{Error: msg})
}

// writeDomainError translates ledger, directory and storage errors to their
// HTTP form. Anything unrecognized is a 500.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, booking.ErrSlotConflict):
		writeError(w, http.StatusConflict, "Time slot conflict detected")
	case errors.Is(err, booking.ErrNotAuthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, booking.ErrInvalidTransition),
		errors.Is(err, booking.ErrInvalidSchedule),
		errors.Is(err, credits.ErrUnknownAction),
		errors.Is(err, credits.ErrInvalidAmount),
		errors.Is(err, directory.ErrEmailTaken),
		errors.Is(err, directory.ErrLocationUnset),
		errors.Is(err, storage.ErrDuplicate):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, credits.ErrInsufficientBalance):
		writeError(w, http.StatusBadRequest, "Insufficient credits")
	case errors.Is(err, directory.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
