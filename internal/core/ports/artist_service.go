package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// CreateArtistInput carries the data needed to create an artist profile.
type CreateArtistInput struct {
	StageName    string
	Bio          string
	Genres       []string
	HourlyRate   float64
	ProfileImage string
	Gallery      []string
	SocialLinks  domain.SocialLinks
	Availability []domain.AvailabilitySlot
}

// ArtistService defines use-case operations for artist profiles.
type ArtistService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Artist, *ListMeta, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error)
	// Create enforces the one-profile-per-user rule (admins are exempt).
	Create(ctx context.Context, userID primitive.ObjectID, role string, in CreateArtistInput) (*domain.Artist, error)
	Update(ctx context.Context, id, requesterID primitive.ObjectID, role string, in UpdateArtistInput) (*domain.Artist, error)
	Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error
	Reviews(ctx context.Context, artistID primitive.ObjectID) ([]domain.Review, error)
	Availability(ctx context.Context, artistID primitive.ObjectID) ([]domain.AvailabilitySlot, error)
	// UpdateAvailability replaces the slot list. Only the owning user may call
	// it; there is no admin override on availability.
	UpdateAvailability(ctx context.Context, artistID, requesterID primitive.ObjectID, slots []domain.AvailabilitySlot) ([]domain.AvailabilitySlot, error)
}
