package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

type stubBookingService struct {
	detail *domain.BookingDetail
	list   []domain.BookingDetail
	meta   *ports.ListMeta
	err    error
}

func (s *stubBookingService) List(ctx context.Context, requesterID primitive.ObjectID, role string, opts ports.ListOptions) ([]domain.BookingDetail, *ports.ListMeta, error) {
	return s.list, s.meta, s.err
}

func (s *stubBookingService) Get(ctx context.Context, id, requesterID primitive.ObjectID, role string) (*domain.BookingDetail, error) {
	return s.detail, s.err
}

func (s *stubBookingService) Create(ctx context.Context, requesterID primitive.ObjectID, in ports.CreateBookingInput) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.detail.Booking, nil
}

func (s *stubBookingService) UpdateStatus(ctx context.Context, id, requesterID primitive.ObjectID, role string, status domain.BookingStatus) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.detail.Booking, nil
}

func (s *stubBookingService) Cancel(ctx context.Context, id, requesterID primitive.ObjectID, role string) error {
	return s.err
}

func (s *stubBookingService) ProcessPayment(ctx context.Context, id, requesterID primitive.ObjectID, role, method string) (*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &s.detail.Booking, nil
}

func newBookingContext(t *testing.T, method, body string, bookingID primitive.ObjectID) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(bookingID.Hex())
	c.Set("user_id", primitive.NewObjectID())
	c.Set("role", domain.RoleUser)
	return c, rec
}

func TestBookingCancel_RendersMessage(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{})

	c, rec := newBookingContext(t, http.MethodDelete, "", primitive.NewObjectID())
	if err := h.Cancel(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["success"] != true {
		t.Errorf("success: got %v", body["success"])
	}
	if body["message"] != "Booking has been canceled" {
		t.Errorf("message: got %v", body["message"])
	}
	if data, ok := body["data"].(map[string]any); !ok || len(data) != 0 {
		t.Errorf("data: want empty object, got %v", body["data"])
	}
}

func TestProcessPayment_RendersMessage(t *testing.T) {
	booking := &domain.BookingDetail{Booking: domain.Booking{
		ID:     primitive.NewObjectID(),
		Status: domain.BookingConfirmed,
		Payment: domain.Payment{
			PaymentMethod: "paypal",
			PaymentStatus: domain.PaymentCompleted,
			TransactionID: "txn_ABCDEF0123456789",
		},
	}}
	h := NewBookingHandler(&stubBookingService{detail: booking})

	c, rec := newBookingContext(t, http.MethodPost, `{"paymentMethod":"paypal"}`, booking.ID)
	if err := h.ProcessPayment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status: want 200, got %d", rec.Code)
	}

	var body struct {
		Success bool           `json:"success"`
		Message string         `json:"message"`
		Data    domain.Booking `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Payment processed successfully" {
		t.Errorf("message: got %q", body.Message)
	}
	if body.Data.Payment.TransactionID != "txn_ABCDEF0123456789" {
		t.Errorf("data.payment.transactionId: got %q", body.Data.Payment.TransactionID)
	}
}

func TestBookingGet_SerializesPopulatedReferences(t *testing.T) {
	detail := &domain.BookingDetail{
		Booking: domain.Booking{ID: primitive.NewObjectID(), Status: domain.BookingPending},
		Event:   &domain.BookingEvent{ID: primitive.NewObjectID(), Title: "Summer Gala"},
		Artist:  &domain.BookingArtist{ID: primitive.NewObjectID(), StageName: "The Night Owls", HourlyRate: 100},
		User:    &domain.BookingUser{ID: primitive.NewObjectID(), Name: "Rosa Vega", Email: "rosa@example.com"},
	}
	h := NewBookingHandler(&stubBookingService{detail: detail})

	c, rec := newBookingContext(t, http.MethodGet, "", detail.ID)
	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body struct {
		Data struct {
			Event  map[string]any `json:"event"`
			Artist map[string]any `json:"artist"`
			User   map[string]any `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Data.Event["title"] != "Summer Gala" {
		t.Errorf("event.title: got %v", body.Data.Event["title"])
	}
	if body.Data.Artist["stageName"] != "The Night Owls" {
		t.Errorf("artist.stageName: got %v", body.Data.Artist["stageName"])
	}
	if body.Data.User["email"] != "rosa@example.com" {
		t.Errorf("user.email: got %v", body.Data.User["email"])
	}
}
