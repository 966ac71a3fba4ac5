package memory

import (
	"context"
	"fmt"

	"github.com/skillink/skillink/pkg/models"
	"github.com/skillink/skillink/pkg/storage"
)

// InsertSkill appends a new skill.
func (s *Store) InsertSkill(ctx context.Context, skill *models.Skill) (*models.Skill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.skills = append(s.skills, *skill)
	created := *skill
	return &created, nil
}

// DeleteSkill removes a skill owned by the given user.
func (s *Store) DeleteSkill(ctx context.Context, skillID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.skills {
		if s.skills[i].Id == skillID && s.skills[i].UserId == userID {
			s.skills = append(s.skills[:i], s.skills[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("skill %s: %w", skillID, storage.ErrNotFound)
}

// ListSkillsByUser retrieves all skills for a user.
func (s *Store) ListSkillsByUser(ctx context.Context, userID string) ([]models.Skill, error) {
	return s.FindSkills(ctx, func(sk *models.Skill) bool { return sk.UserId == userID })
}

// FindSkills retrieves all skills matching the predicate, in insertion order.
func (s *Store) FindSkills(ctx context.Context, pred func(*models.Skill) bool) ([]models.Skill, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Skill
	for i := range s.skills {
		sk := s.skills[i]
		if pred(&sk) {
			out = append(out, sk)
		}
	}
	return out, nil
}
