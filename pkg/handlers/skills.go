package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// AddSkill registers a skill the caller offers or seeks.
func (h *ApiHandler) AddSkill(w http.ResponseWriter, r *http.Request) {
	var req api.NewSkill
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.SkillName == "" || req.Type == "" {
		writeError(w, http.StatusBadRequest, "Skill name and type are required")
		return
	}
	skillType := models.SkillType(req.Type)
	if skillType != models.OFFERING && skillType != models.SEEKING {
		writeError(w, http.StatusBadRequest, `Type must be "offering" or "seeking"`)
		return
	}

	userID := middleware.UserID(r.Context())

	existing, err := h.Store.FindSkills(r.Context(), func(sk *models.Skill) bool {
		return sk.UserId == userID && sk.SkillName == req.SkillName && sk.Type == skillType
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if len(existing) > 0 {
		writeError(w, http.StatusBadRequest, "Skill already added")
		return
	}

	proficiency := req.Proficiency
	if proficiency == 0 {
		proficiency = 3
	}

	created, err := h.Store.InsertSkill(r.Context(), &models.Skill{
		Id:          uuid.New().String(),
		UserId:      userID,
		SkillName:   req.SkillName,
		Type:        skillType,
		Proficiency: proficiency,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.SkillResponse{
		Message: "Skill added successfully",
		Skill:   mapping.ToApiSkill(created),
	})
}

// ListSkills returns the caller's skills grouped by type.
func (h *ApiHandler) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := h.Store.ListSkillsByUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	resp := api.SkillsResponse{Offering: []api.Skill{}, Seeking: []api.Skill{}}
	for i := range skills {
		mapped := mapping.ToApiSkill(&skills[i])
		if skills[i].Type == models.OFFERING {
			resp.Offering = append(resp.Offering, mapped)
		} else {
			resp.Seeking = append(resp.Seeking, mapped)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

// DeleteSkill removes one of the caller's skills.
func (h *ApiHandler) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	err := h.Store.DeleteSkill(r.Context(), chi.URLParam(r, "id"), middleware.UserID(r.Context()))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, api.Message{Message: "Skill removed successfully"})
}
