package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/gigstage/booking-system/internal/core/ports"
)

// envelope is the canonical success body. Errors use the same shape with
// success=false and a message (see internal/api/error_handler.go).
type envelope struct {
	Success    bool              `json:"success"`
	Count      *int              `json:"count,omitempty"`
	Pagination *ports.Pagination `json:"pagination,omitempty"`
	Token      string            `json:"token,omitempty"`
	Data       any               `json:"data,omitempty"`
	Message    string            `json:"message,omitempty"`
}

func respondData(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data})
}

// respondList renders a collection body with count and pagination cursors.
func respondList(c echo.Context, code int, data any, meta *ports.ListMeta) error {
	body := envelope{Success: true, Data: data}
	if meta != nil {
		count := meta.Count
		body.Count = &count
		body.Pagination = &meta.Pagination
	}
	return c.JSON(code, body)
}

func respondToken(c echo.Context, code int, token string) error {
	return c.JSON(code, envelope{Success: true, Token: token})
}

// respondDeleted renders the delete body: data is an empty object, not null.
func respondDeleted(c echo.Context, code int) error {
	return c.JSON(code, envelope{Success: true, Data: map[string]any{}})
}

// respondMessage renders a success body with a human-readable message.
func respondMessage(c echo.Context, code int, message string, data any) error {
	return c.JSON(code, envelope{Success: true, Data: data, Message: message})
}
