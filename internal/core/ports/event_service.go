package ports

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// CreateEventInput carries the data needed to create an event.
type CreateEventInput struct {
	Title          string
	Description    string
	EventType      string
	Date           time.Time
	Duration       float64
	Location       domain.Location
	Budget         float64
	RequiredGenres []string
	Status         domain.EventStatus // defaults to draft when empty
}

// EventService defines use-case operations for events.
type EventService interface {
	List(ctx context.Context, opts ListOptions) ([]domain.Event, *ListMeta, error)
	Get(ctx context.Context, id primitive.ObjectID) (*domain.Event, error)
	Create(ctx context.Context, organizerID primitive.ObjectID, in CreateEventInput) (*domain.Event, error)
	Update(ctx context.Context, id, requesterID primitive.ObjectID, role string, in UpdateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error
}
