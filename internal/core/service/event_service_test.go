package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

func TestEventCreate_DefaultsStatusToDraft(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), discardLogger)

	event, err := svc.Create(context.Background(), primitive.NewObjectID(), ports.CreateEventInput{
		Title:     "Garden Party",
		EventType: "private",
		Date:      time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC),
		Duration:  3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if event.Status != domain.EventDraft {
		t.Errorf("status: want draft, got %q", event.Status)
	}
}

func TestEventUpdate_OrganizerOwnership(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, discardLogger)

	organizer := primitive.NewObjectID()
	stranger := primitive.NewObjectID()
	admin := primitive.NewObjectID()

	event, err := svc.Create(context.Background(), organizer, ports.CreateEventInput{
		Title: "Launch Night", EventType: "corporate",
		Date: time.Date(2026, 10, 1, 19, 0, 0, 0, time.UTC), Duration: 2,
	})
	if err != nil {
		t.Fatal(err)
	}

	title := "Launch Night (rescheduled)"
	in := ports.UpdateEventInput{Title: &title}

	if _, err := svc.Update(context.Background(), event.ID, stranger, domain.RoleUser, in); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("stranger update: expected ErrNotOwner, got %v", err)
	}
	if _, err := svc.Update(context.Background(), event.ID, organizer, domain.RoleUser, in); err != nil {
		t.Errorf("organizer update: unexpected error %v", err)
	}
	if _, err := svc.Update(context.Background(), event.ID, admin, domain.RoleAdmin, in); err != nil {
		t.Errorf("admin update: unexpected error %v", err)
	}
}

func TestEventDelete_OrganizerOwnership(t *testing.T) {
	repo := newStubEventRepo()
	svc := NewEventService(repo, discardLogger)

	organizer := primitive.NewObjectID()
	event, err := svc.Create(context.Background(), organizer, ports.CreateEventInput{
		Title: "Pop-up Gig", EventType: "concert",
		Date: time.Date(2026, 11, 5, 20, 0, 0, 0, time.UTC), Duration: 1.5,
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := svc.Delete(context.Background(), event.ID, primitive.NewObjectID(), domain.RoleUser); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("stranger delete: expected ErrNotOwner, got %v", err)
	}
	if err := svc.Delete(context.Background(), event.ID, organizer, domain.RoleUser); err != nil {
		t.Errorf("organizer delete: unexpected error %v", err)
	}
	if _, err := svc.Get(context.Background(), event.ID); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("expected event gone, got %v", err)
	}
}

func TestEventGet_NotFound(t *testing.T) {
	svc := NewEventService(newStubEventRepo(), discardLogger)
	if _, err := svc.Get(context.Background(), primitive.NewObjectID()); !errors.Is(err, domain.ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}
