package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// UpdateArtistInput carries a partial profile update; nil fields are left
// untouched.
type UpdateArtistInput struct {
	StageName    *string
	Bio          *string
	Genres       []string
	HourlyRate   *float64
	ProfileImage *string
	Gallery      []string
	SocialLinks  *domain.SocialLinks
}

// ArtistRepository defines persistence operations for artist profiles.
type ArtistRepository interface {
	Create(ctx context.Context, a *domain.Artist) (*domain.Artist, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error)
	// FindByUser returns the profile owned by the given user, or
	// domain.ErrArtistNotFound when the user has none.
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Artist, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Artist, error)
	// Count returns the unfiltered collection total used for pagination.
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, in UpdateArtistInput) (*domain.Artist, error)
	SetAvailability(ctx context.Context, id primitive.ObjectID, slots []domain.AvailabilitySlot) (*domain.Artist, error)
	SetAverageRating(ctx context.Context, id primitive.ObjectID, rating float64) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}
