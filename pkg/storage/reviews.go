package storage

import (
	"context"

	"github.com/skillink/skillink/pkg/models"
)

// ReviewStore defines the interface for storing session reviews.
type ReviewStore interface {
	// InsertReview appends a new review.
	InsertReview(ctx context.Context, review *models.Review) (*models.Review, error)

	// FindReviews retrieves all reviews matching the predicate, in insertion order.
	FindReviews(ctx context.Context, pred func(*models.Review) bool) ([]models.Review, error)
}
