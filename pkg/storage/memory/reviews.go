package memory

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// InsertReview appends a new review.
func (s *Store) InsertReview(ctx context.Context, review *models.Review) (*models.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reviews = append(s.reviews, *review)
	created := *review
	return &created, nil
}

// FindReviews retrieves all reviews matching the predicate, in insertion order.
func (s *Store) FindReviews(ctx context.Context, pred func(*models.Review) bool) ([]models.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Review
	for i := range s.reviews {
		r := s.reviews[i]
		if pred(&r) {
			out = append(out, r)
		}
	}
	return out, nil
}
