package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

const defaultProfileImage = "default-profile.jpg"

// ArtistService implements use cases for artist profiles.
type ArtistService struct {
	artists ports.ArtistRepository
	reviews ports.ReviewRepository
	logger  zerolog.Logger
}

func NewArtistService(artists ports.ArtistRepository, reviews ports.ReviewRepository, logger zerolog.Logger) *ArtistService {
	return &ArtistService{artists: artists, reviews: reviews, logger: logger}
}

func (s *ArtistService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Artist, *ports.ListMeta, error) {
	opts = opts.Normalized()
	if len(opts.Sort) == 0 {
		opts.Sort = []string{"-createdAt"}
	}

	artists, err := s.artists.List(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.artists.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	return artists, &ports.ListMeta{
		Count:      len(artists),
		Pagination: ports.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *ArtistService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	return s.artists.FindByID(ctx, id)
}

// Create enforces the one-profile-per-user rule; admins are exempt.
func (s *ArtistService) Create(ctx context.Context, userID primitive.ObjectID, role string, in ports.CreateArtistInput) (*domain.Artist, error) {
	if role != domain.RoleAdmin {
		if _, err := s.artists.FindByUser(ctx, userID); err == nil {
			return nil, domain.ErrProfileExists
		} else if !errors.Is(err, domain.ErrArtistNotFound) {
			return nil, err
		}
	}

	profileImage := in.ProfileImage
	if profileImage == "" {
		profileImage = defaultProfileImage
	}
	gallery := in.Gallery
	if gallery == nil {
		gallery = []string{}
	}

	now := time.Now().UTC()
	artist, err := s.artists.Create(ctx, &domain.Artist{
		User:         userID,
		StageName:    in.StageName,
		Bio:          in.Bio,
		Genres:       in.Genres,
		HourlyRate:   in.HourlyRate,
		ProfileImage: profileImage,
		Gallery:      gallery,
		SocialLinks:  in.SocialLinks,
		Availability: in.Availability,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("artist_id", artist.ID.Hex()).Str("user_id", userID.Hex()).Msg("artist profile created")
	return artist, nil
}

func (s *ArtistService) Update(ctx context.Context, id, requesterID primitive.ObjectID, role string, in ports.UpdateArtistInput) (*domain.Artist, error) {
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(artist.User, requesterID, role) {
		return nil, domain.ErrNotOwner
	}
	return s.artists.Update(ctx, id, in)
}

func (s *ArtistService) Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error {
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isOwnerOrAdmin(artist.User, requesterID, role) {
		return domain.ErrNotOwner
	}
	return s.artists.Delete(ctx, id)
}

func (s *ArtistService) Reviews(ctx context.Context, artistID primitive.ObjectID) ([]domain.Review, error) {
	return s.reviews.FindByArtist(ctx, artistID)
}

func (s *ArtistService) Availability(ctx context.Context, artistID primitive.ObjectID) ([]domain.AvailabilitySlot, error) {
	artist, err := s.artists.FindByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist.Availability == nil {
		return []domain.AvailabilitySlot{}, nil
	}
	return artist.Availability, nil
}

// UpdateAvailability replaces the slot list. Only the owning user may call it;
// there is no admin override here.
func (s *ArtistService) UpdateAvailability(ctx context.Context, artistID, requesterID primitive.ObjectID, slots []domain.AvailabilitySlot) ([]domain.AvailabilitySlot, error) {
	artist, err := s.artists.FindByID(ctx, artistID)
	if err != nil {
		return nil, err
	}
	if artist.User != requesterID {
		return nil, domain.ErrNotOwner
	}

	updated, err := s.artists.SetAvailability(ctx, artistID, slots)
	if err != nil {
		return nil, err
	}
	if updated.Availability == nil {
		return []domain.AvailabilitySlot{}, nil
	}
	return updated.Availability, nil
}

// RefreshRating recomputes and persists the artist's average rating. Called
// by the review lifecycle after create and delete; an artist with no reviews
// left is reset to zero.
func (s *ArtistService) RefreshRating(ctx context.Context, artistID primitive.ObjectID) error {
	avg, ok, err := s.reviews.AverageForArtist(ctx, artistID)
	if err != nil {
		return err
	}
	if !ok {
		avg = 0
	}
	return s.artists.SetAverageRating(ctx, artistID, avg)
}
