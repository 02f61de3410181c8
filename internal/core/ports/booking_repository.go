package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// BookingScope restricts a booking listing to what the requester may see.
// All=true (admin) sees everything; otherwise the listing matches bookings
// where the requester is the owning user or the assigned artist profile.
type BookingScope struct {
	All      bool
	UserID   primitive.ObjectID
	ArtistID primitive.ObjectID // zero when the requester has no artist profile
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	// Create inserts a booking. A uniqueness violation on (event, artist)
	// surfaces as domain.ErrDuplicateBooking.
	Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Booking, error)
	// FindByEventAndArtist returns domain.ErrBookingNotFound when no booking
	// exists for the pair.
	FindByEventAndArtist(ctx context.Context, eventID, artistID primitive.ObjectID) (*domain.Booking, error)
	List(ctx context.Context, scope BookingScope, opts ListOptions) ([]domain.Booking, error)
	// Count returns the unfiltered collection total used for pagination.
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error)
	// CompletePayment applies the payment sub-record and confirms the booking
	// in a single conditional update that only succeeds while the current
	// payment status is not yet completed. A lost race surfaces as
	// domain.ErrPaymentCompleted.
	CompletePayment(ctx context.Context, id primitive.ObjectID, p domain.Payment) (*domain.Booking, error)
}
