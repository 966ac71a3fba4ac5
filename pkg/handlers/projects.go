package handlers

import (
	"encoding/json"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/skillink/skillink/pkg/api"
	"github.com/skillink/skillink/pkg/mapping"
	"github.com/skillink/skillink/pkg/middleware"
	"github.com/skillink/skillink/pkg/models"
)

// ListProjects returns all projects with creator names denormalized.
func (h *ApiHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}

	out := make([]api.Project, len(projects))
	for i := range projects {
		out[i] = mapping.ToApiProject(&projects[i], h.userName(r, projects[i].CreatorId, "Unknown"))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetProject returns a single project.
func (h *ApiHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapping.ToApiProject(project, h.userName(r, project.CreatorId, "Unknown")))
}

// CreateProject starts a project with the caller as its only member.
func (h *ApiHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req api.NewProject
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Title == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "Title and description are required")
		return
	}

	creatorID := middleware.UserID(r.Context())
	skills := req.Skills
	if skills == nil {
		skills = []string{}
	}

	created, err := h.Store.InsertProject(r.Context(), &models.Project{
		Id:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Skills:      skills,
		Location:    req.Location,
		CreatorId:   creatorID,
		Members:     []string{creatorID},
		Status:      models.ACTIVE,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, api.ProjectResponse{
		Message: "Project created successfully",
		Project: mapping.ToApiProject(created, h.userName(r, creatorID, "Unknown")),
	})
}

// JoinProject adds the caller to a project's member list.
func (h *ApiHandler) JoinProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.Store.GetProject(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}

	userID := middleware.UserID(r.Context())
	if slices.Contains(project.Members, userID) {
		writeError(w, http.StatusBadRequest, "Already a member of this project")
		return
	}

	project.Members = append(project.Members, userID)
	updated, err := h.Store.UpdateProject(r.Context(), project)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, api.ProjectResponse{
		Message: "Successfully joined project",
		Project: mapping.ToApiProject(updated, h.userName(r, updated.CreatorId, "Unknown")),
	})
}
