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

// RatingRefresher recomputes and persists an artist's average rating.
// Satisfied by ArtistService.
type RatingRefresher interface {
	RefreshRating(ctx context.Context, artistID primitive.ObjectID) error
}

// ReviewService implements use cases for reviews. The owning artist's average
// rating is recomputed synchronously after every create and delete; there are
// no store-side hooks.
type ReviewService struct {
	reviews  ports.ReviewRepository
	bookings ports.BookingRepository
	users    ports.UserRepository
	artists  ports.ArtistRepository
	events   ports.EventRepository
	ratings  RatingRefresher
	logger   zerolog.Logger
}

func NewReviewService(
	reviews ports.ReviewRepository,
	bookings ports.BookingRepository,
	users ports.UserRepository,
	artists ports.ArtistRepository,
	events ports.EventRepository,
	ratings RatingRefresher,
	logger zerolog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		bookings: bookings,
		users:    users,
		artists:  artists,
		events:   events,
		ratings:  ratings,
		logger:   logger,
	}
}

// List returns every review with populated user, artist, and booking
// summaries.
func (s *ReviewService) List(ctx context.Context) ([]domain.ReviewDetail, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]domain.ReviewDetail, 0, len(reviews))
	for i := range reviews {
		d, err := s.populate(ctx, &reviews[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *d)
	}
	return details, nil
}

func (s *ReviewService) Get(ctx context.Context, id primitive.ObjectID) (*domain.ReviewDetail, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, review)
}

// populate resolves the documents a review references into the summaries
// reads render: the reviewer's name, the artist's stage name, and the
// reviewed booking with its event title. A dangling reference renders as
// null instead of failing the read.
func (s *ReviewService) populate(ctx context.Context, r *domain.Review) (*domain.ReviewDetail, error) {
	d := &domain.ReviewDetail{Review: *r}

	user, err := s.users.FindByID(ctx, r.User)
	if err == nil {
		d.User = &domain.ReviewUser{ID: user.ID, Name: user.Name}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	artist, err := s.artists.FindByID(ctx, r.Artist)
	if err == nil {
		d.Artist = &domain.ReviewArtist{ID: artist.ID, StageName: artist.StageName}
	} else if !errors.Is(err, domain.ErrArtistNotFound) {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, r.Booking)
	if err == nil {
		ref := &domain.ReviewBooking{ID: booking.ID}
		event, err := s.events.FindByID(ctx, booking.Event)
		if err == nil {
			ref.Event = &domain.ReviewBookingEvent{ID: event.ID, Title: event.Title}
		} else if !errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		d.Booking = ref
	} else if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, err
	}

	return d, nil
}

// Create gates review creation on booking completion and ownership. The
// reviewed artist comes from the booking, never from the client. The unique
// (booking, user) index enforces one review per pair.
func (s *ReviewService) Create(ctx context.Context, requesterID primitive.ObjectID, role string, in ports.CreateReviewInput) (*domain.Review, error) {
	booking, err := s.bookings.FindByID(ctx, in.Booking)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(booking.User, requesterID, role) {
		return nil, domain.ErrNotOwner
	}
	if booking.Status != domain.BookingCompleted {
		return nil, domain.ErrBookingNotCompleted
	}

	now := time.Now().UTC()
	review, err := s.reviews.Create(ctx, &domain.Review{
		Booking:   in.Booking,
		Artist:    booking.Artist,
		User:      requesterID,
		Rating:    in.Rating,
		Text:      in.Text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.ratings.RefreshRating(ctx, booking.Artist); err != nil {
		s.logger.Warn().Err(err).Str("artist_id", booking.Artist.Hex()).Msg("failed to refresh artist rating")
	}

	s.logger.Info().Str("review_id", review.ID.Hex()).Str("booking_id", in.Booking.Hex()).Msg("review created")
	return review, nil
}

func (s *ReviewService) Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isOwnerOrAdmin(review.User, requesterID, role) {
		return domain.ErrNotOwner
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return err
	}

	if err := s.ratings.RefreshRating(ctx, review.Artist); err != nil {
		s.logger.Warn().Err(err).Str("artist_id", review.Artist.Hex()).Msg("failed to refresh artist rating")
	}
	return nil
}
