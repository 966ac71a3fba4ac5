package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// SkillStore defines the interface for managing user skills.
type SkillStore interface {
	// InsertSkill appends a new skill.
	InsertSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error)

	// DeleteSkill removes a skill owned by the given user.
	DeleteSkill(ctx context.Context, skillID, userID string) error

	// ListSkillsByUser retrieves all skills for a user.
	ListSkillsByUser(ctx context.Context, userID string) ([]models.Skill, error)

	// FindSkills retrieves all skills matching the predicate, in insertion order.
	FindSkills(ctx context.Context, pred func(*models.Skill) bool) ([]models.Skill, error)
}
