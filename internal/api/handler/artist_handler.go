package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// ArtistHandler handles artist profile endpoints.
type ArtistHandler struct {
	artists ports.ArtistService
}

func NewArtistHandler(artists ports.ArtistService) *ArtistHandler {
	return &ArtistHandler{artists: artists}
}

type socialLinksRequest struct {
	Website   string `json:"website"`
	Instagram string `json:"instagram"`
	Twitter   string `json:"twitter"`
	Facebook  string `json:"facebook"`
	YouTube   string `json:"youtube"`
	Spotify   string `json:"spotify"`
}

func (r socialLinksRequest) toDomain() domain.SocialLinks {
	return domain.SocialLinks{
		Website:   r.Website,
		Instagram: r.Instagram,
		Twitter:   r.Twitter,
		Facebook:  r.Facebook,
		YouTube:   r.YouTube,
		Spotify:   r.Spotify,
	}
}

type availabilitySlotRequest struct {
	Date        time.Time `json:"date" validate:"required"`
	IsAvailable *bool     `json:"isAvailable"`
}

// toSlots converts slot requests; isAvailable defaults to true when omitted.
func toSlots(reqs []availabilitySlotRequest) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0, len(reqs))
	for _, r := range reqs {
		available := true
		if r.IsAvailable != nil {
			available = *r.IsAvailable
		}
		slots = append(slots, domain.AvailabilitySlot{Date: r.Date, IsAvailable: available})
	}
	return slots
}

type createArtistRequest struct {
	StageName    string                    `json:"stageName" validate:"required"`
	Bio          string                    `json:"bio" validate:"required"`
	Genres       []string                  `json:"genres" validate:"required,min=1"`
	HourlyRate   float64                   `json:"hourlyRate" validate:"required,gt=0"`
	ProfileImage string                    `json:"profileImage"`
	Gallery      []string                  `json:"gallery"`
	SocialLinks  socialLinksRequest        `json:"socialLinks"`
	Availability []availabilitySlotRequest `json:"availability" validate:"dive"`
}

type updateArtistRequest struct {
	StageName    *string             `json:"stageName"`
	Bio          *string             `json:"bio"`
	Genres       []string            `json:"genres"`
	HourlyRate   *float64            `json:"hourlyRate" validate:"omitempty,gt=0"`
	ProfileImage *string             `json:"profileImage"`
	Gallery      []string            `json:"gallery"`
	SocialLinks  *socialLinksRequest `json:"socialLinks"`
}

type updateAvailabilityRequest struct {
	Availability []availabilitySlotRequest `json:"availability" validate:"required,dive"`
}

// List handles GET /api/artists with full query shaping.
//
// @Summary      List artist profiles
// @Tags         artists
// @Produce      json
// @Param        select  query     string  false  "Comma-separated projection"
// @Param        sort    query     string  false  "Comma-separated sort fields, '-' prefix for descending"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Success      200     {object}  envelope
// @Router       /api/artists [get]
func (h *ArtistHandler) List(c echo.Context) error {
	artists, meta, err := h.artists.List(c.Request().Context(), listOptions(c))
	if err != nil {
		return err
	}
	return respondList(c, http.StatusOK, artists, meta)
}

// Get handles GET /api/artists/:id.
//
// @Summary      Get an artist profile
// @Tags         artists
// @Produce      json
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/artists/{id} [get]
func (h *ArtistHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	artist, err := h.artists.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, artist)
}

// Create handles POST /api/artists. Requires the artist or admin role; a
// non-admin may hold at most one profile.
//
// @Summary      Create an artist profile
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createArtistRequest  true  "Profile details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Router       /api/artists [post]
func (h *ArtistHandler) Create(c echo.Context) error {
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req createArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	artist, err := h.artists.Create(c.Request().Context(), userID, role, ports.CreateArtistInput{
		StageName:    req.StageName,
		Bio:          req.Bio,
		Genres:       req.Genres,
		HourlyRate:   req.HourlyRate,
		ProfileImage: req.ProfileImage,
		Gallery:      req.Gallery,
		SocialLinks:  req.SocialLinks.toDomain(),
		Availability: toSlots(req.Availability),
	})
	if err != nil {
		return err
	}
	return respondData(c, http.StatusCreated, artist)
}

// Update handles PUT /api/artists/:id. Owner or admin only.
//
// @Summary      Update an artist profile
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Artist id"
// @Param        body  body      updateArtistRequest  true  "Fields to change"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/artists/{id} [put]
func (h *ArtistHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req updateArtistRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	in := ports.UpdateArtistInput{
		StageName:    req.StageName,
		Bio:          req.Bio,
		Genres:       req.Genres,
		HourlyRate:   req.HourlyRate,
		ProfileImage: req.ProfileImage,
		Gallery:      req.Gallery,
	}
	if req.SocialLinks != nil {
		links := req.SocialLinks.toDomain()
		in.SocialLinks = &links
	}

	artist, err := h.artists.Update(c.Request().Context(), id, userID, role, in)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, artist)
}

// Delete handles DELETE /api/artists/:id. Owner or admin only.
//
// @Summary      Delete an artist profile
// @Tags         artists
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/artists/{id} [delete]
func (h *ArtistHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.artists.Delete(c.Request().Context(), id, userID, role); err != nil {
		return err
	}
	return respondDeleted(c, http.StatusOK)
}

// Reviews handles GET /api/artists/:id/reviews.
//
// @Summary      List an artist's reviews
// @Tags         artists
// @Produce      json
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/artists/{id}/reviews [get]
func (h *ArtistHandler) Reviews(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	reviews, err := h.artists.Reviews(c.Request().Context(), id)
	if err != nil {
		return err
	}
	count := len(reviews)
	return respondList(c, http.StatusOK, reviews, &ports.ListMeta{Count: count})
}

// Availability handles GET /api/artists/:id/availability.
//
// @Summary      Get an artist's availability slots
// @Tags         artists
// @Produce      json
// @Param        id   path      string  true  "Artist id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/artists/{id}/availability [get]
func (h *ArtistHandler) Availability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	slots, err := h.artists.Availability(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, slots)
}

// UpdateAvailability handles PUT /api/artists/:id/availability. Only the
// owning artist; admins have no override here.
//
// @Summary      Replace an artist's availability slots
// @Tags         artists
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                     true  "Artist id"
// @Param        body  body      updateAvailabilityRequest  true  "Slot list"
// @Success      200   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/artists/{id}/availability [put]
func (h *ArtistHandler) UpdateAvailability(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, _, err := requester(c)
	if err != nil {
		return err
	}

	var req updateAvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	slots, err := h.artists.UpdateAvailability(c.Request().Context(), id, userID, toSlots(req.Availability))
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, slots)
}
