package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// UpdateEventInput carries a partial event update; nil fields are left untouched.
type UpdateEventInput struct {
	Title          *string
	Description    *string
	EventType      *string
	Date           *time.Time
	Duration       *float64
	Location       *domain.Location
	Budget         *float64
	RequiredGenres []string
	Status         *domain.EventStatus
}

// EventRepository defines persistence operations for events.
type EventRepository interface {
	Create(ctx context.Context, e *domain.Event) (*domain.Event, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error)
	List(ctx context.Context, opts ListOptions) ([]domain.Event, error)
	// Count returns the unfiltered collection total used for pagination.
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
