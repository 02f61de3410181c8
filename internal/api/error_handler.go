package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gigstage/booking-system/internal/api/handler"
	"github.com/gigstage/booking-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors. Fields
// beyond success and message appear only when they apply: validation failures
// carry the per-field list, unexpected errors carry detail in development.
type errorResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Errors  []handler.FieldError `json:"errors,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to deterministic HTTP status codes
//     (ownership failures render 401, the role gate alone produces 403).
//   - Renders validation failures with the per-field list attached.
//   - Logs unexpected errors and answers "Something went wrong", with the
//     underlying detail included only when env is "development".
func NewHTTPErrorHandler(log zerolog.Logger, env string) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *handler.ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, errorResponse{
				Message: ve.Error(),
				Errors:  ve.Fields,
			})
			return
		}

		code, msg, detail := resolveError(err, log, c, env)
		_ = c.JSON(code, errorResponse{Message: msg, Error: detail})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context, env string) (int, string, string) {
	// Echo's own errors (bind failures, 404 from the router, middleware).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message), ""
	}

	// Known domain errors map to deterministic codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrArtistNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrReviewNotFound),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusNotFound, err.Error(), ""

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrInvalidLogin):
		return http.StatusUnauthorized, err.Error(), ""

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrProfileExists),
		errors.Is(err, domain.ErrDuplicateKey),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidPayment),
		errors.Is(err, domain.ErrDuplicateBooking),
		errors.Is(err, domain.ErrArtistUnavailable),
		errors.Is(err, domain.ErrPaymentCompleted),
		errors.Is(err, domain.ErrBookingNotCompleted),
		errors.Is(err, domain.ErrDuplicateReview):
		return http.StatusBadRequest, err.Error(), ""
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	detail := ""
	if env == "development" {
		detail = err.Error()
	}
	return http.StatusInternalServerError, "Something went wrong", detail
}
