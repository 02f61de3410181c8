package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// PaymentLocker abstracts the short-lived payment guard (Redis). It narrows
// the window in which two concurrent payment calls can both pass the
// not-yet-completed check; the conditional store update remains the final
// arbiter.
type PaymentLocker interface {
	Acquire(ctx context.Context, bookingID string) (bool, error)
	Release(ctx context.Context, bookingID string)
}

// BookingService governs the booking lifecycle: creation preconditions,
// derived fields, status transitions, and payment capture.
type BookingService struct {
	bookings ports.BookingRepository
	events   ports.EventRepository
	artists  ports.ArtistRepository
	users    ports.UserRepository
	paylock  PaymentLocker
	logger   zerolog.Logger
}

func NewBookingService(
	bookings ports.BookingRepository,
	events ports.EventRepository,
	artists ports.ArtistRepository,
	users ports.UserRepository,
	paylock PaymentLocker,
	logger zerolog.Logger,
) *BookingService {
	return &BookingService{
		bookings: bookings,
		events:   events,
		artists:  artists,
		users:    users,
		paylock:  paylock,
		logger:   logger,
	}
}

// Create validates the booking preconditions and persists a new pending
// booking with derived price and times.
//
// The existence checks, the duplicate check, and the insert are separate
// store operations with no atomicity between them; the unique (event, artist)
// index converts a lost race into ErrDuplicateBooking on insert.
func (s *BookingService) Create(ctx context.Context, requesterID primitive.ObjectID, in ports.CreateBookingInput) (*domain.Booking, error) {
	event, err := s.events.FindByID(ctx, in.Event)
	if err != nil {
		return nil, err
	}

	artist, err := s.artists.FindByID(ctx, in.Artist)
	if err != nil {
		return nil, err
	}

	if _, err := s.bookings.FindByEventAndArtist(ctx, in.Event, in.Artist); err == nil {
		return nil, domain.ErrDuplicateBooking
	} else if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, err
	}

	if !artist.AvailableOn(event.Date) {
		return nil, domain.ErrArtistUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		Event:     in.Event,
		Artist:    in.Artist,
		User:      requesterID,
		Status:    domain.BookingPending,
		Price:     artist.HourlyRate * event.Duration,
		StartTime: event.Date,
		EndTime:   event.Date.Add(time.Duration(event.Duration * float64(time.Hour))),
		Notes:     in.Notes,
		Payment:   domain.Payment{PaymentStatus: domain.PaymentPending},
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", created.ID.Hex()).
		Str("event_id", in.Event.Hex()).
		Str("artist_id", in.Artist.Hex()).
		Float64("price", created.Price).
		Msg("booking created")

	return created, nil
}

// List returns the bookings the requester may see: everything for admins,
// otherwise bookings where they are the owning user or the assigned artist.
// Results carry populated event, artist, and user summaries.
func (s *BookingService) List(ctx context.Context, requesterID primitive.ObjectID, role string, opts ports.ListOptions) ([]domain.BookingDetail, *ports.ListMeta, error) {
	opts = opts.Normalized()
	if len(opts.Sort) == 0 {
		opts.Sort = []string{"-createdAt"}
	}

	scope := ports.BookingScope{All: role == domain.RoleAdmin}
	if !scope.All {
		scope.UserID = requesterID
		if profile, err := s.artists.FindByUser(ctx, requesterID); err == nil {
			scope.ArtistID = profile.ID
		} else if !errors.Is(err, domain.ErrArtistNotFound) {
			return nil, nil, err
		}
	}

	bookings, err := s.bookings.List(ctx, scope, opts)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	details := make([]domain.BookingDetail, 0, len(bookings))
	for i := range bookings {
		d, err := s.populate(ctx, &bookings[i])
		if err != nil {
			return nil, nil, err
		}
		details = append(details, *d)
	}

	return details, &ports.ListMeta{
		Count:      len(details),
		Pagination: ports.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *BookingService) Get(ctx context.Context, id, requesterID primitive.ObjectID, role string) (*domain.BookingDetail, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(ctx, booking, requesterID, role) {
		return nil, domain.ErrNotOwner
	}
	return s.populate(ctx, booking)
}

// populate resolves the documents a booking references into the summaries
// reads render: event title/date/location, artist stage name and rate, user
// name and email. A dangling reference renders as null instead of failing
// the read.
func (s *BookingService) populate(ctx context.Context, b *domain.Booking) (*domain.BookingDetail, error) {
	d := &domain.BookingDetail{Booking: *b}

	event, err := s.events.FindByID(ctx, b.Event)
	if err == nil {
		d.Event = &domain.BookingEvent{ID: event.ID, Title: event.Title, Date: event.Date, Location: event.Location}
	} else if !errors.Is(err, domain.ErrEventNotFound) {
		return nil, err
	}

	artist, err := s.artists.FindByID(ctx, b.Artist)
	if err == nil {
		d.Artist = &domain.BookingArtist{ID: artist.ID, StageName: artist.StageName, HourlyRate: artist.HourlyRate}
	} else if !errors.Is(err, domain.ErrArtistNotFound) {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, b.User)
	if err == nil {
		d.User = &domain.BookingUser{ID: user.ID, Name: user.Name, Email: user.Email}
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	return d, nil
}

// UpdateStatus sets any member of the status enum. No transition graph is
// enforced beyond enum membership: confirmed → pending is permitted.
func (s *BookingService) UpdateStatus(ctx context.Context, id, requesterID primitive.ObjectID, role string, status domain.BookingStatus) (*domain.Booking, error) {
	if !status.Valid() {
		return nil, domain.ErrInvalidStatus
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.canAccess(ctx, booking, requesterID, role) {
		return nil, domain.ErrNotOwner
	}

	return s.bookings.UpdateStatus(ctx, id, status)
}

// Cancel marks the booking canceled. Only the owning user or an admin may
// cancel; the assigned artist may not.
func (s *BookingService) Cancel(ctx context.Context, id, requesterID primitive.ObjectID, role string) error {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isOwnerOrAdmin(booking.User, requesterID, role) {
		return domain.ErrNotOwner
	}

	if _, err := s.bookings.UpdateStatus(ctx, id, domain.BookingCanceled); err != nil {
		return err
	}

	s.logger.Info().Str("booking_id", id.Hex()).Msg("booking canceled")
	return nil
}

// ProcessPayment simulates a successful payment capture: it records the
// payment sub-record and confirms the booking. The store-level conditional
// update guarantees at most one call succeeds per booking.
func (s *BookingService) ProcessPayment(ctx context.Context, id, requesterID primitive.ObjectID, role, method string) (*domain.Booking, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, domain.ErrInvalidPayment
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(booking.User, requesterID, role) {
		return nil, domain.ErrNotOwner
	}
	if booking.Payment.PaymentStatus == domain.PaymentCompleted {
		return nil, domain.ErrPaymentCompleted
	}

	if s.paylock != nil {
		ok, lockErr := s.paylock.Acquire(ctx, id.Hex())
		if lockErr != nil {
			s.logger.Warn().Err(lockErr).Str("booking_id", id.Hex()).Msg("payment lock unavailable, relying on conditional update")
		} else if !ok {
			return nil, domain.ErrPaymentCompleted
		} else {
			defer s.paylock.Release(ctx, id.Hex())
		}
	}

	paidAt := time.Now().UTC()
	updated, err := s.bookings.CompletePayment(ctx, id, domain.Payment{
		PaymentMethod: method,
		PaymentStatus: domain.PaymentCompleted,
		TransactionID: newTransactionID(),
		PaidAt:        &paidAt,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("booking_id", id.Hex()).
		Str("method", method).
		Str("transaction_id", updated.Payment.TransactionID).
		Msg("payment processed")

	return updated, nil
}

// canAccess implements the booking read/update rule: owner, assigned artist,
// or admin. The artist check resolves the requester's profile so the booking's
// artist reference (a profile id) is compared against a profile id.
func (s *BookingService) canAccess(ctx context.Context, b *domain.Booking, requesterID primitive.ObjectID, role string) bool {
	if isOwnerOrAdmin(b.User, requesterID, role) {
		return true
	}
	profile, err := s.artists.FindByUser(ctx, requesterID)
	return err == nil && profile.ID == b.Artist
}

// newTransactionID returns an opaque payment reference in the format txn_XXXX….
func newTransactionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("txn_%X", time.Now().UnixNano())
	}
	return fmt.Sprintf("txn_%X", b)
}
