package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/auth"
	"github.com/skillink/skillink/pkg/models"
)

// Register handles new user signup and issues a token.
func (h *ApiHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	user, err := h.Directory.Register(r.Context(), req.Email, req.Password, req.Name)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.respondWithToken(w, http.StatusCreated, "User registered successfully", user)
}

// Login authenticates a user and issues a token.
func (h *ApiHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Directory.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	h.respondWithToken(w, http.StatusOK, "Login successful", user)
}

func (h *ApiHandler) respondWithToken(w http.ResponseWriter, status int, message string, user *models.User) {
	token, err := auth.CreateToken(user.Id, h.TokenSecret, h.TokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	writeJSON(w, status, api.AuthResponse{
		Message: message,
		Token:   token,
		User:    api.AuthUser{Id: user.Id, Email: user.Email, Name: user.Name},
	})
}
