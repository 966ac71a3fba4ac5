package handlers

import (
	"net/http"
	"time"

	"github.com/skillink/skillink/pkg/api"
)

// GetHealth reports service liveness.
func (h *ApiHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, api.Health{
		Status:    "OK",
		Message:   "SkilLink API is running!",
		Timestamp: time.Now().UTC(),
	})
}
