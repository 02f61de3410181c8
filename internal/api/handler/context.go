package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/gigstage/booking-system/internal/core/domain"
)

// requester extracts the identity injected by the Auth middleware and
// fast-fails before any service call: both claims must be present, otherwise
// the route was wired without the middleware.
func requester(c echo.Context) (primitive.ObjectID, string, error) {
	id, _ := c.Get("user_id").(primitive.ObjectID)
	role, _ := c.Get("role").(string)
	if id.IsZero() || role == "" {
		return primitive.NilObjectID, "", echo.NewHTTPError(http.StatusUnauthorized, "Not authorized to access this route")
	}
	return id, role, nil
}

// pathID parses the :id path segment. A malformed ObjectID renders as a
// not-found, never a 400.
func pathID(c echo.Context) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}
