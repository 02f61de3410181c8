package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// CreateReviewInput carries a new review. The artist is denormalized from
// the booking, never client-supplied.
type CreateReviewInput struct {
	Booking primitive.ObjectID
	Rating  int
	Text    string
}

// ReviewService defines use-case operations for reviews. After every create
// or delete the owning artist's average rating is recomputed and persisted
// synchronously.
type ReviewService interface {
	// List and Get return reviews with their user, artist, and booking
	// references resolved into summaries.
	List(ctx context.Context) ([]domain.ReviewDetail, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.ReviewDetail, error)
	Create(ctx context.Context, requesterID primitive.ObjectID, role string, in CreateReviewInput) (*domain.Review, error)
	Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error
}
