package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// EventHandler handles event endpoints. Reads are public; mutations require
// the organizer (or an admin).
type EventHandler struct {
	events ports.EventService
}

func NewEventHandler(events ports.EventService) *EventHandler {
	return &EventHandler{events: events}
}

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type locationRequest struct {
	Address     string              `json:"address" validate:"required"`
	City        string              `json:"city" validate:"required"`
	State       string              `json:"state" validate:"required"`
	Country     string              `json:"country" validate:"required"`
	ZipCode     string              `json:"zipCode"`
	Coordinates *coordinatesRequest `json:"coordinates"`
}

func (r locationRequest) toDomain() domain.Location {
	loc := domain.Location{
		Address: r.Address,
		City:    r.City,
		State:   r.State,
		Country: r.Country,
		ZipCode: r.ZipCode,
	}
	if r.Coordinates != nil {
		loc.Coordinates = &domain.Coordinates{Lat: r.Coordinates.Lat, Lng: r.Coordinates.Lng}
	}
	return loc
}

type createEventRequest struct {
	Title          string          `json:"title" validate:"required"`
	Description    string          `json:"description" validate:"required"`
	EventType      string          `json:"eventType" validate:"required,oneof=concert wedding corporate festival private other"`
	Date           time.Time       `json:"date" validate:"required"`
	Duration       float64         `json:"duration" validate:"required,gt=0"`
	Location       locationRequest `json:"location" validate:"required"`
	Budget         float64         `json:"budget" validate:"omitempty,gt=0"`
	RequiredGenres []string        `json:"requiredGenres"`
	Status         string          `json:"status" validate:"omitempty,oneof=draft published canceled completed"`
}

type updateEventRequest struct {
	Title          *string          `json:"title"`
	Description    *string          `json:"description"`
	EventType      *string          `json:"eventType" validate:"omitempty,oneof=concert wedding corporate festival private other"`
	Date           *time.Time       `json:"date"`
	Duration       *float64         `json:"duration" validate:"omitempty,gt=0"`
	Location       *locationRequest `json:"location"`
	Budget         *float64         `json:"budget" validate:"omitempty,gt=0"`
	RequiredGenres []string         `json:"requiredGenres"`
	Status         *string          `json:"status" validate:"omitempty,oneof=draft published canceled completed"`
}

// List handles GET /api/events with full query shaping.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        select  query     string  false  "Comma-separated projection"
// @Param        sort    query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  envelope
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	events, meta, err := h.events.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, events, meta)
}

// Get handles GET /api/events/:id.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	event, err := h.events.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, event)
}

// Create handles POST /api/events. The authenticated user becomes the
// organizer.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	userID, _, err := requester(c)
	if err != nil {
		return err
	}

	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.events.Create(c.Request().Context(), userID, ports.CreateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		EventType:      req.EventType,
		Date:           req.Date,
		Duration:       req.Duration,
		Location:       req.Location.toDomain(),
		Budget:         req.Budget,
		RequiredGenres: req.RequiredGenres,
		Status:         domain.EventStatus(req.Status),
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, event)
}

// Update handles PUT /api/events/:id. Organizer or admin only.
//
// @Summary      Update an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Event id"
// @Param        body  body      updateEventRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/events/{id} [put]
func (h *EventHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req updateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateEventInput{
		Title:          req.Title,
		Description:    req.Description,
		EventType:      req.EventType,
		Date:           req.Date,
		Duration:       req.Duration,
		Budget:         req.Budget,
		RequiredGenres: req.RequiredGenres,
	}
	if req.Location != nil {
		loc := req.Location.toDomain()
		in.Location = &loc
	}
	if req.Status != nil {
		status := domain.EventStatus(*req.Status)
		in.Status = &status
	}

	event, err := h.events.Update(c.Request().Context(), id, userID, role, in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, event)
}

// Delete handles DELETE /api/events/:id. Organizer or admin only.
//
// @Summary      Delete an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/events/{id} [delete]
func (h *EventHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.events.Delete(c.Request().Context(), id, userID, role); err != nil {
		return err
	}
	return respondDeleted(c, http.StatusOK)
}
