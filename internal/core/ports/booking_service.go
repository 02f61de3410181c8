package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// CreateBookingInput carries the client-supplied part of a booking. Price and
// times are derived server-side and never accepted from the client.
type CreateBookingInput struct {
	Event  primitive.ObjectID
	Artist primitive.ObjectID
	Notes  string
}

// BookingService governs the booking lifecycle: creation preconditions,
// derived fields, status transitions, and payment capture.
type BookingService interface {
	// List and Get return bookings with their event, artist, and user
	// references resolved into summaries.
	List(ctx context.Context, requesterID primitive.ObjectID, role string, opts ListOptions) ([]domain.BookingDetail, *ListMeta, error)
	Get(ctx context.Context, id, requesterID primitive.ObjectID, role string) (*domain.BookingDetail, error)
	Create(ctx context.Context, requesterID primitive.ObjectID, in CreateBookingInput) (*domain.Booking, error)
	// UpdateStatus sets any member of the status enum; no transition graph is
	// enforced beyond enum membership.
	UpdateStatus(ctx context.Context, id, requesterID primitive.ObjectID, role string, status domain.BookingStatus) (*domain.Booking, error)
	// Cancel is allowed for the owning user or an admin, not the artist.
	Cancel(ctx context.Context, id, requesterID primitive.ObjectID, role string) error
	ProcessPayment(ctx context.Context, id, requesterID primitive.ObjectID, role, method string) (*domain.Booking, error)
}
