package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// ProjectStore defines the interface for managing projects.
type ProjectStore interface {
	// InsertProject appends a new project.
	InsertProject(ctx context.Context, project *models.Project) (*models.Project, error)

	// GetProject retrieves a project by its ID.
	GetProject(ctx context.Context, projectID string) (*models.Project, error)

	// ListProjects retrieves all projects in insertion order.
	ListProjects(ctx context.Context) ([]models.Project, error)

	// UpdateProject replaces an existing project record.
	UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error)
}
