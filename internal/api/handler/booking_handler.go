package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/api/metrics"
	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// BookingHandler handles the booking lifecycle endpoints. Every route sits
// behind the Auth middleware.
type BookingHandler struct {
	bookings ports.BookingService
}

func NewBookingHandler(bookings ports.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	Event  string `json:"event" validate:"required"`
	Artist string `json:"artist" validate:"required"`
	Notes  string `json:"notes"`
}

type updateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed canceled completed"`
}

type processPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"required,oneof=credit_card paypal bank_transfer cash"`
}

// List handles GET /api/bookings. Admins see every booking; everyone else
// sees bookings where they are the requesting user or the assigned artist.
//
// @Summary      List bookings visible to the requester
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        select  query     string  false  "Comma-separated projection"
// @Param        sort    query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  envelope
// @Failure      401     {object}  envelope
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	bookings, meta, err := h.bookings.List(c.Request().Context(), userID, role, listOptions(c))
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, bookings, meta)
}

// Get handles GET /api/bookings/:id. Visible to the owning user, the
// assigned artist, and admins.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Get(c.Request().Context(), id, userID, role)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, booking)
}

// Create handles POST /api/bookings. Price and times are derived server-side
// from the event and the artist's hourly rate.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Event and artist ids"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	userID, _, err := requester(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	eventID, err := primitive.ObjectIDFromHex(req.Event)
	if err != nil {
		return domain.ErrInvalidID
	}
	artistID, err := primitive.ObjectIDFromHex(req.Artist)
	if err != nil {
		return domain.ErrInvalidID
	}

	booking, err := h.bookings.Create(c.Request().Context(), userID, ports.CreateBookingInput{
		Event:  eventID,
		Artist: artistID,
		Notes:  req.Notes,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, booking)
}

// UpdateStatus handles PUT /api/bookings/:id. Any enum member may be set;
// there is no transition graph.
//
// @Summary      Update a booking's status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                      true  "Booking id"
// @Param        body  body      updateBookingStatusRequest  true  "New status"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/bookings/{id} [put]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req updateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.UpdateStatus(c.Request().Context(), id, userID, role, domain.BookingStatus(req.Status))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, booking)
}

// Cancel handles DELETE /api/bookings/:id. A soft delete: the booking stays
// stored with status canceled. Owning user or admin; the artist cannot
// cancel.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.bookings.Cancel(c.Request().Context(), id, userID, role); err != nil {
		return err
	}
	return respondMessage(c, http.StatusOK, "Booking has been canceled", map[string]any{})
}

// ProcessPayment handles POST /api/bookings/:id/payment. Capture is simulated:
// a transaction id is generated and the booking confirms. A repeated call
// fails; the store-level conditional update is the final arbiter under
// concurrency.
//
// @Summary      Process payment for a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Booking id"
// @Param        body  body      processPaymentRequest  true  "Payment method"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/bookings/{id}/payment [post]
func (h *BookingHandler) ProcessPayment(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req processPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.bookings.ProcessPayment(c.Request().Context(), id, userID, role, req.PaymentMethod)
	if err != nil {
		return err
	}

	metrics.PaymentsProcessedTotal.WithLabelValues(req.PaymentMethod).Inc()
	return respondMessage(c, http.StatusOK, "Payment processed successfully", booking)
}
