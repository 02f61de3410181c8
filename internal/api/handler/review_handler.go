package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/api/metrics"
	"github.com/gigstage/booking-system/internal/core/domain"
	"github.com/gigstage/booking-system/internal/core/ports"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	Booking string `json:"booking" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Text    string `json:"text" validate:"required,min=5,max=500"`
}

// List handles GET /api/reviews. Admin only (enforced at the route).
//
// @Summary      List all reviews
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Router       /api/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	reviews, err := h.reviews.List(c.Request().Context())
	if err != nil {
		return err
	}
	count := len(reviews)
	return respondList(c, http.StatusOK, reviews, &ports.ListMeta{Count: count})
}

// Get handles GET /api/reviews/:id.
//
// @Summary      Get a review
// @Tags         reviews
// @Produce      json
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/reviews/{id} [get]
func (h *ReviewHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	review, err := h.reviews.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return respondData(c, http.StatusOK, review)
}

// Create handles POST /api/reviews. The booking must be completed and owned
// by the requester; one review per (booking, user).
//
// @Summary      Create a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Review details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookingID, err := primitive.ObjectIDFromHex(req.Booking)
	if err != nil {
		return domain.ErrInvalidID
	}

	review, err := h.reviews.Create(c.Request().Context(), userID, role, ports.CreateReviewInput{
		Booking: bookingID,
		Rating:  req.Rating,
		Text:    req.Text,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return respondData(c, http.StatusCreated, review)
}

// Delete handles DELETE /api/reviews/:id. Author or admin only.
//
// @Summary      Delete a review
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Review id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /api/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	userID, role, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.reviews.Delete(c.Request().Context(), id, userID, role); err != nil {
		return err
	}
	return respondDeleted(c, http.StatusOK)
}
