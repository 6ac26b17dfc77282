package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/domzi1231/fb-ads-generator/internal/service"
	"github.com/domzi1231/fb-ads-generator/internal/service/ai"
)

// errorResponse is the JSON body of every failure. Raw carries the
// unparseable completion text for diagnostics; Items carries whatever
// valid ads were recovered from an insufficient generation response.
type errorResponse struct {
	Error string          `json:"error"`
	Raw   string          `json:"raw,omitempty"`
	Items []adItemPayload `json:"items,omitempty"`
}

// writeServiceError maps the service error taxonomy onto HTTP statuses:
// validation -> 400, configuration -> 500, upstream parse -> 502 with the
// raw payload attached, everything else -> 500 with a best-effort message.
func writeServiceError(c echo.Context, err error) error {
	var insufficient *ai.InsufficientError
	var parseErr *ai.ParseError

	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.As(err, &insufficient):
		return c.JSON(http.StatusBadGateway, errorResponse{
			Error: insufficient.Error(),
			Raw:   insufficient.Raw,
			Items: adItemsPayload(insufficient.Items),
		})
	case errors.As(err, &parseErr):
		return c.JSON(http.StatusBadGateway, errorResponse{
			Error: parseErr.Error(),
			Raw:   parseErr.Raw,
		})
	case errors.Is(err, ai.ErrMissingAPIKey),
		errors.Is(err, ai.ErrMissingModel),
		errors.Is(err, ai.ErrMissingBaseURL),
		errors.Is(err, ai.ErrInvalidProvider):
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "completion API is not configured: " + err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
	}
}
