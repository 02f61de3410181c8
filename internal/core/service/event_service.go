package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// EventService implements use cases for events.
type EventService struct {
	events ports.EventRepository
	logger zerolog.Logger
}

func NewEventService(events ports.EventRepository, logger zerolog.Logger) *EventService {
	return &EventService{events: events, logger: logger}
}

func (s *EventService) List(ctx context.Context, opts ports.ListOptions) ([]domain.Event, *ports.ListMeta, error) {
	opts = opts.Normalized()
	if len(opts.Sort) == 0 {
		// Events sort by event date, not creation time.
		opts.Sort = []string{"-date"}
	}

	events, err := s.events.List(ctx, opts)
	if err != nil {
		return nil, nil, err
	}

	total, err := s.events.Count(ctx)
	if err != nil {
		return nil, nil, err
	}

	return events, &ports.ListMeta{
		Count:      len(events),
		Pagination: ports.NewPagination(opts.Page, opts.Limit, total),
	}, nil
}

func (s *EventService) Get(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	return s.events.FindByID(ctx, id)
}

func (s *EventService) Create(ctx context.Context, organizerID primitive.ObjectID, in ports.CreateEventInput) (*domain.Event, error) {
	status := in.Status
	if status == "" {
		status = domain.EventDraft
	}

	now := time.Now().UTC()
	event, err := s.events.Create(ctx, &domain.Event{
		Title:          in.Title,
		Description:    in.Description,
		Organizer:      organizerID,
		EventType:      in.EventType,
		Date:           in.Date,
		Duration:       in.Duration,
		Location:       in.Location,
		Budget:         in.Budget,
		RequiredGenres: in.RequiredGenres,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("event_id", event.ID.Hex()).Str("organizer", organizerID.Hex()).Msg("event created")
	return event, nil
}

func (s *EventService) Update(ctx context.Context, id, requesterID primitive.ObjectID, role string, in ports.UpdateEventInput) (*domain.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isOwnerOrAdmin(event.Organizer, requesterID, role) {
		return nil, domain.ErrNotOwner
	}
	return s.events.Update(ctx, id, in)
}

func (s *EventService) Delete(ctx context.Context, id, requesterID primitive.ObjectID, role string) error {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !isOwnerOrAdmin(event.Organizer, requesterID, role) {
		return domain.ErrNotOwner
	}
	return s.events.Delete(ctx, id)
}
