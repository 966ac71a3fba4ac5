package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// InsertProject appends a new project. Member and skill slices are copied so
// callers cannot mutate stored state.
func (s *Store) InsertProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *project
	p.Skills = slices.Clone(project.Skills)
	p.Members = slices.Clone(project.Members)
	s.projects = append(s.projects, p)

	created := cloneProject(&p)
	return &created, nil
}

// GetProject retrieves a project by its ID.
func (s *Store) GetProject(ctx context.Context, projectID string) (*models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.projects {
		if s.projects[i].Id == projectID {
			p := cloneProject(&s.projects[i])
			return &p, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", projectID, storage.ErrNotFound)
}

// ListProjects retrieves all projects in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]models.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Project, len(s.projects))
	for i := range s.projects {
		out[i] = cloneProject(&s.projects[i])
	}
	return out, nil
}

// UpdateProject replaces an existing project record.
func (s *Store) UpdateProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.projects {
		if s.projects[i].Id == project.Id {
			p := *project
			p.Skills = slices.Clone(project.Skills)
			p.Members = slices.Clone(project.Members)
			s.projects[i] = p

			updated := cloneProject(&p)
			return &updated, nil
		}
	}
	return nil, fmt.Errorf("project %s: %w", project.Id, storage.ErrNotFound)
}

func cloneProject(p *models.Project) models.Project {
	out := *p
	out.Skills = slices.Clone(p.Skills)
	out.Members = slices.Clone(p.Members)
	return out
}
