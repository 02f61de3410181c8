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

type reviewFixture struct {
	svc      *ReviewService
	reviews  *stubReviewRepo
	bookings *stubBookingRepo
	artists  *stubArtistRepo
	users    *stubUserRepo
	events   *stubEventRepo

	owner   primitive.ObjectID
	artist  *domain.Artist
	event   *domain.Event
	booking *domain.Booking
}

// newReviewFixture seeds a completed booking owned by f.owner against f.artist.
func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()

	reviews := newStubReviewRepo()
	bookings := newStubBookingRepo()
	artists := newStubArtistRepo()
	users := newStubUserRepo()
	events := newStubEventRepo()

	artist, err := artists.Create(context.Background(), &domain.Artist{
		User:       primitive.NewObjectID(),
		StageName:  "The Night Owls",
		HourlyRate: 80,
	})
	if err != nil {
		t.Fatalf("seed artist: %v", err)
	}

	ownerUser, err := users.Create(context.Background(), &domain.User{
		Name:  "Rosa Vega",
		Email: "rosa@example.com",
		Role:  domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("seed owner: %v", err)
	}
	owner := ownerUser.ID

	event, err := events.Create(context.Background(), &domain.Event{
		Title:     "Summer Gala",
		Organizer: primitive.NewObjectID(),
		Date:      time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed event: %v", err)
	}

	booking, err := bookings.Create(context.Background(), &domain.Booking{
		Event:     event.ID,
		Artist:    artist.ID,
		User:      owner,
		Status:    domain.BookingCompleted,
		StartTime: time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("seed booking: %v", err)
	}

	artistSvc := NewArtistService(artists, reviews, discardLogger)
	return &reviewFixture{
		svc:      NewReviewService(reviews, bookings, users, artists, events, artistSvc, discardLogger),
		reviews:  reviews,
		bookings: bookings,
		artists:  artists,
		users:    users,
		events:   events,
		owner:    owner,
		artist:   artist,
		event:    event,
		booking:  booking,
	}
}

func TestReviewCreate_RequiresCompletedBooking(t *testing.T) {
	f := newReviewFixture(t)
	f.bookings.byID[f.booking.ID].Status = domain.BookingConfirmed

	_, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID,
		Rating:  5,
		Text:    "fantastic performance",
	})
	if !errors.Is(err, domain.ErrBookingNotCompleted) {
		t.Errorf("expected ErrBookingNotCompleted, got %v", err)
	}
}

func TestReviewCreate_OwnerOnly(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.Create(context.Background(), primitive.NewObjectID(), domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID,
		Rating:  4,
		Text:    "great set, on time",
	})
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}
}

func TestReviewCreate_BookingNotFound(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: primitive.NewObjectID(),
		Rating:  4,
		Text:    "great set, on time",
	})
	if !errors.Is(err, domain.ErrBookingNotFound) {
		t.Errorf("expected ErrBookingNotFound, got %v", err)
	}
}

func TestReviewCreate_OncePerBookingAndUser(t *testing.T) {
	f := newReviewFixture(t)

	in := ports.CreateReviewInput{Booking: f.booking.ID, Rating: 5, Text: "crowd loved them"}
	review, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, in)
	if err != nil {
		t.Fatalf("first review: %v", err)
	}
	if review.Artist != f.artist.ID {
		t.Errorf("artist must be denormalized from booking: want %s, got %s", f.artist.ID.Hex(), review.Artist.Hex())
	}

	_, err = f.svc.Create(context.Background(), f.owner, domain.RoleUser, in)
	if !errors.Is(err, domain.ErrDuplicateReview) {
		t.Errorf("expected ErrDuplicateReview, got %v", err)
	}
}

func TestReviewCreate_RefreshesArtistRating(t *testing.T) {
	f := newReviewFixture(t)

	if _, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID, Rating: 4, Text: "solid night",
	}); err != nil {
		t.Fatal(err)
	}

	stored, _ := f.artists.FindByID(context.Background(), f.artist.ID)
	if stored.AverageRating != 4 {
		t.Errorf("average rating: want 4, got %v", stored.AverageRating)
	}

	// A second completed booking by another user moves the average.
	other := primitive.NewObjectID()
	b2, _ := f.bookings.Create(context.Background(), &domain.Booking{
		Event:  primitive.NewObjectID(),
		Artist: f.artist.ID,
		User:   other,
		Status: domain.BookingCompleted,
	})
	if _, err := f.svc.Create(context.Background(), other, domain.RoleUser, ports.CreateReviewInput{
		Booking: b2.ID, Rating: 2, Text: "started late",
	}); err != nil {
		t.Fatal(err)
	}

	stored, _ = f.artists.FindByID(context.Background(), f.artist.ID)
	if stored.AverageRating != 3 {
		t.Errorf("average rating: want 3, got %v", stored.AverageRating)
	}
}

func TestReviewDelete_ResetsRatingWhenLastReviewGoes(t *testing.T) {
	f := newReviewFixture(t)

	review, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID, Rating: 5, Text: "unforgettable",
	})
	if err != nil {
		t.Fatal(err)
	}

	// A stranger cannot delete.
	if err := f.svc.Delete(context.Background(), review.ID, primitive.NewObjectID(), domain.RoleUser); !errors.Is(err, domain.ErrNotOwner) {
		t.Errorf("expected ErrNotOwner, got %v", err)
	}

	if err := f.svc.Delete(context.Background(), review.ID, f.owner, domain.RoleUser); err != nil {
		t.Fatalf("owner delete: %v", err)
	}

	stored, _ := f.artists.FindByID(context.Background(), f.artist.ID)
	if stored.AverageRating != 0 {
		t.Errorf("average rating after last delete: want 0, got %v", stored.AverageRating)
	}
}

func TestReviewGet_PopulatesReferences(t *testing.T) {
	f := newReviewFixture(t)

	review, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID, Rating: 5, Text: "crowd loved them",
	})
	if err != nil {
		t.Fatal(err)
	}

	got, err := f.svc.Get(context.Background(), review.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.User == nil || got.User.Name != "Rosa Vega" {
		t.Errorf("user summary: got %+v", got.User)
	}
	if got.Artist == nil || got.Artist.StageName != "The Night Owls" {
		t.Errorf("artist summary: got %+v", got.Artist)
	}
	if got.Booking == nil || got.Booking.Event == nil || got.Booking.Event.Title != "Summer Gala" {
		t.Errorf("booking summary: got %+v", got.Booking)
	}

	all, err := f.svc.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 1 || all[0].User == nil {
		t.Errorf("list must carry populated summaries: %+v", all)
	}
}

func TestReviewDelete_AdminOverride(t *testing.T) {
	f := newReviewFixture(t)

	review, err := f.svc.Create(context.Background(), f.owner, domain.RoleUser, ports.CreateReviewInput{
		Booking: f.booking.ID, Rating: 3, Text: "decent set list",
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := f.svc.Delete(context.Background(), review.ID, primitive.NewObjectID(), domain.RoleAdmin); err != nil {
		t.Errorf("admin delete: %v", err)
	}
}
