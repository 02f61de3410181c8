package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// behavior of the Mongo implementations, including the unique-index errors.
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[primitive.ObjectID]*domain.User
	byEmail map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{
		byID:    make(map[primitive.ObjectID]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[u.Email]; ok {
		return nil, domain.ErrDuplicateKey
	}
	clone := *u
	clone.ID = primitive.NewObjectID()
	r.byID[clone.ID] = &clone
	r.byEmail[clone.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) UpdateDetails(_ context.Context, id primitive.ObjectID, name, email *string) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if name != nil {
		u.Name = *name
	}
	if email != nil {
		delete(r.byEmail, u.Email)
		u.Email = *email
		r.byEmail[u.Email] = u
	}
	clone := *u
	return &clone, nil
}

type stubArtistRepo struct {
	byID map[primitive.ObjectID]*domain.Artist
}

func newStubArtistRepo() *stubArtistRepo {
	return &stubArtistRepo{byID: make(map[primitive.ObjectID]*domain.Artist)}
}

func (r *stubArtistRepo) Create(_ context.Context, a *domain.Artist) (*domain.Artist, error) {
	clone := *a
	clone.ID = primitive.NewObjectID()
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubArtistRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Artist, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtistRepo) FindByUser(_ context.Context, userID primitive.ObjectID) (*domain.Artist, error) {
	for _, a := range r.byID {
		if a.User == userID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrArtistNotFound
}

func (r *stubArtistRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.Artist, error) {
	out := make([]domain.Artist, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubArtistRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubArtistRepo) Update(_ context.Context, id primitive.ObjectID, in ports.UpdateArtistInput) (*domain.Artist, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	if in.StageName != nil {
		a.StageName = *in.StageName
	}
	if in.Bio != nil {
		a.Bio = *in.Bio
	}
	if in.Genres != nil {
		a.Genres = in.Genres
	}
	if in.HourlyRate != nil {
		a.HourlyRate = *in.HourlyRate
	}
	clone := *a
	return &clone, nil
}

func (r *stubArtistRepo) SetAvailability(_ context.Context, id primitive.ObjectID, slots []domain.AvailabilitySlot) (*domain.Artist, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrArtistNotFound
	}
	a.Availability = slots
	clone := *a
	return &clone, nil
}

func (r *stubArtistRepo) SetAverageRating(_ context.Context, id primitive.ObjectID, rating float64) error {
	a, ok := r.byID[id]
	if !ok {
		return domain.ErrArtistNotFound
	}
	a.AverageRating = rating
	return nil
}

func (r *stubArtistRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrArtistNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubEventRepo struct {
	byID map[primitive.ObjectID]*domain.Event
}

func newStubEventRepo() *stubEventRepo {
	return &stubEventRepo{byID: make(map[primitive.ObjectID]*domain.Event)}
}

func (r *stubEventRepo) Create(_ context.Context, e *domain.Event) (*domain.Event, error) {
	clone := *e
	clone.ID = primitive.NewObjectID()
	r.byID[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubEventRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) List(_ context.Context, _ ports.ListOptions) ([]domain.Event, error) {
	out := make([]domain.Event, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEventRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubEventRepo) Update(_ context.Context, id primitive.ObjectID, in ports.UpdateEventInput) (*domain.Event, error) {
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if in.Title != nil {
		e.Title = *in.Title
	}
	if in.Status != nil {
		e.Status = *in.Status
	}
	clone := *e
	return &clone, nil
}

func (r *stubEventRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrEventNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubBookingRepo struct {
	byID   map[primitive.ObjectID]*domain.Booking
	byPair map[string]*domain.Booking
}

func newStubBookingRepo() *stubBookingRepo {
	return &stubBookingRepo{
		byID:   make(map[primitive.ObjectID]*domain.Booking),
		byPair: make(map[string]*domain.Booking),
	}
}

func pairKey(eventID, artistID primitive.ObjectID) string {
	return eventID.Hex() + ":" + artistID.Hex()
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	key := pairKey(b.Event, b.Artist)
	if _, ok := r.byPair[key]; ok {
		return nil, domain.ErrDuplicateBooking
	}
	clone := *b
	clone.ID = primitive.NewObjectID()
	r.byID[clone.ID] = &clone
	r.byPair[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *stubBookingRepo) FindByEventAndArtist(_ context.Context, eventID, artistID primitive.ObjectID) (*domain.Booking, error) {
	b, ok := r.byPair[pairKey(eventID, artistID)]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	clone := *b
	return &clone, nil
}

// List applies the same role scoping the real Mongo repo would use.
func (r *stubBookingRepo) List(_ context.Context, scope ports.BookingScope, _ ports.ListOptions) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range r.byID {
		if !scope.All {
			ownedByUser := b.User == scope.UserID
			assignedArtist := !scope.ArtistID.IsZero() && b.Artist == scope.ArtistID
			if !ownedByUser && !assignedArtist {
				continue
			}
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *stubBookingRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.byID)), nil
}

func (r *stubBookingRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status domain.BookingStatus) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	b.Status = status
	clone := *b
	return &clone, nil
}

// CompletePayment mirrors the conditional update: it fails once the payment
// is already completed.
func (r *stubBookingRepo) CompletePayment(_ context.Context, id primitive.ObjectID, p domain.Payment) (*domain.Booking, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	if b.Payment.PaymentStatus == domain.PaymentCompleted {
		return nil, domain.ErrPaymentCompleted
	}
	b.Payment = p
	b.Status = domain.BookingConfirmed
	clone := *b
	return &clone, nil
}

type stubReviewRepo struct {
	byID   map[primitive.ObjectID]*domain.Review
	byPair map[string]*domain.Review
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{
		byID:   make(map[primitive.ObjectID]*domain.Review),
		byPair: make(map[string]*domain.Review),
	}
}

func (r *stubReviewRepo) Create(_ context.Context, rv *domain.Review) (*domain.Review, error) {
	key := rv.Booking.Hex() + ":" + rv.User.Hex()
	if _, ok := r.byPair[key]; ok {
		return nil, domain.ErrDuplicateReview
	}
	clone := *rv
	clone.ID = primitive.NewObjectID()
	r.byID[clone.ID] = &clone
	r.byPair[key] = &clone
	out := clone
	return &out, nil
}

func (r *stubReviewRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Review, error) {
	rv, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	clone := *rv
	return &clone, nil
}

func (r *stubReviewRepo) FindAll(_ context.Context) ([]domain.Review, error) {
	out := make([]domain.Review, 0, len(r.byID))
	for _, rv := range r.byID {
		out = append(out, *rv)
	}
	return out, nil
}

func (r *stubReviewRepo) FindByArtist(_ context.Context, artistID primitive.ObjectID) ([]domain.Review, error) {
	var out []domain.Review
	for _, rv := range r.byID {
		if rv.Artist == artistID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	rv, ok := r.byID[id]
	if !ok {
		return domain.ErrReviewNotFound
	}
	delete(r.byPair, rv.Booking.Hex()+":"+rv.User.Hex())
	delete(r.byID, id)
	return nil
}

func (r *stubReviewRepo) AverageForArtist(_ context.Context, artistID primitive.ObjectID) (float64, bool, error) {
	var sum, n float64
	for _, rv := range r.byID {
		if rv.Artist == artistID {
			sum += float64(rv.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, false, nil
	}
	return sum / n, true, nil
}

// stubPayLock records lock traffic; set denied=true to simulate a lost race.
type stubPayLock struct {
	denied   bool
	acquired int
	released int
}

func (l *stubPayLock) Acquire(_ context.Context, _ string) (bool, error) {
	if l.denied {
		return false, nil
	}
	l.acquired++
	return true, nil
}

func (l *stubPayLock) Release(_ context.Context, _ string) {
	l.released++
}
