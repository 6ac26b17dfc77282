package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service"
)

type HistoryHandler struct {
	service service.HistoryService
}

func NewHistoryHandler(service service.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

func (h *HistoryHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/history", h.List)
	g.POST("/history", h.Append)
	g.DELETE("/history", h.Clear)
}

type historyEntryPayload struct {
	ID           string          `json:"id"`
	CreatedAt    time.Time       `json:"createdAt"`
	Label        string          `json:"label"`
	Ads          []adItemPayload `json:"ads"`
	URL          *string         `json:"url,omitempty"`
	CustomPrompt *string         `json:"customPrompt,omitempty"`
}

type historyListResponse struct {
	Entries []historyEntryPayload `json:"entries"`
}

type historyAppendRequest struct {
	Label        string          `json:"label"`
	Ads          []adItemPayload `json:"ads"`
	URL          *string         `json:"url"`
	CustomPrompt *string         `json:"customPrompt"`
}

type historyClearResponse struct {
	Deleted int64 `json:"deleted"`
}

// List returns the history log, newest first.
func (h *HistoryHandler) List(c echo.Context) error {
	entries, err := h.service.Load(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}

	payload := make([]historyEntryPayload, len(entries))
	for i, entry := range entries {
		payload[i] = historyEntryPayload{
			ID:           entry.ID,
			CreatedAt:    entry.CreatedAt,
			Label:        entry.Label,
			Ads:          adItemsPayload(entry.Ads),
			URL:          entry.URL,
			CustomPrompt: entry.CustomPrompt,
		}
	}
	return c.JSON(http.StatusOK, historyListResponse{Entries: payload})
}

// Append stores one generation in the log and returns the stored entry
// with its assigned id and timestamp.
func (h *HistoryHandler) Append(c echo.Context) error {
	var req historyAppendRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if len(req.Ads) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "ads is required"})
	}

	ads := make([]model.AdItem, len(req.Ads))
	for i, p := range req.Ads {
		ads[i] = p.toModel()
	}

	entry, err := h.service.Append(c.Request().Context(), model.HistoryEntry{
		Label:        req.Label,
		Ads:          ads,
		URL:          req.URL,
		CustomPrompt: req.CustomPrompt,
	})
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, historyEntryPayload{
		ID:           entry.ID,
		CreatedAt:    entry.CreatedAt,
		Label:        entry.Label,
		Ads:          adItemsPayload(entry.Ads),
		URL:          entry.URL,
		CustomPrompt: entry.CustomPrompt,
	})
}

// Clear wipes the whole log.
func (h *HistoryHandler) Clear(c echo.Context) error {
	deleted, err := h.service.Clear(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, historyClearResponse{Deleted: deleted})
}
