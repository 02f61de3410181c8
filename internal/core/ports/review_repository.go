package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	// Create inserts a review. A uniqueness violation on (booking, user)
	// surfaces as domain.ErrDuplicateReview.
	Create(ctx context.Context, r *domain.Review) (*domain.Review, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Review, error)
	FindAll(ctx context.Context) ([]domain.Review, error)
	FindByArtist(ctx context.Context, artistID primitive.ObjectID) ([]domain.Review, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AverageForArtist aggregates the mean rating across the artist's
	// reviews; ok=false when the artist has no reviews left.
	AverageForArtist(ctx context.Context, artistID primitive.ObjectID) (avg float64, ok bool, err error)
}
