package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service"
)

type AdsHandler struct {
	service service.AdsService
}

func NewAdsHandler(service service.AdsService) *AdsHandler {
	return &AdsHandler{service: service}
}

func (h *AdsHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/generate", h.Generate)
	g.POST("/translate", h.Translate)
}

// Request/Response types

type adItemPayload struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

func (p adItemPayload) toModel() model.AdItem {
	return model.AdItem{
		Title:       p.Title,
		Description: p.Description,
		CTA:         p.CTA,
	}
}

func adItemsPayload(ads []model.AdItem) []adItemPayload {
	out := make([]adItemPayload, len(ads))
	for i, ad := range ads {
		out[i] = adItemPayload{Title: ad.Title, Description: ad.Description, CTA: ad.CTA}
	}
	return out
}

type generateRequest struct {
	URL          string         `json:"url"`
	CustomPrompt string         `json:"customPrompt"`
	Language     string         `json:"language"`
	VariantOf    *adItemPayload `json:"variantOf"`
}

type sourcePayload struct {
	URL         string  `json:"url"`
	Heading     *string `json:"heading"`
	Description *string `json:"description"`
	Variant     bool    `json:"variant"`
}

type generateResponse struct {
	Source sourcePayload   `json:"source"`
	Ads    []adItemPayload `json:"ads"`
}

type translateRequest struct {
	Ads            []adItemPayload `json:"ads"`
	TargetLanguage string          `json:"targetLanguage"`
}

type translateResponse struct {
	Ads []adItemPayload `json:"ads"`
}

// Generate scrapes the product page (unless a base ad is given) and asks
// the completion API for exactly three ad variations. The request mode is
// decided here, once: variantOf wins over url.
func (h *AdsHandler) Generate(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	var genReq service.GenerateRequest
	switch {
	case req.VariantOf != nil:
		genReq = service.NewVariantRequest(req.VariantOf.toModel(), req.Language)
	case strings.TrimSpace(req.URL) != "":
		genReq = service.NewFreshRequest(strings.TrimSpace(req.URL), req.CustomPrompt, req.Language)
	default:
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "url or variantOf is required"})
	}

	result, err := h.service.Generate(c.Request().Context(), genReq)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		Source: sourcePayload{
			URL:         result.Source.URL,
			Heading:     result.Source.Heading,
			Description: result.Source.Description,
			Variant:     result.Source.Variant,
		},
		Ads: adItemsPayload(result.Ads),
	})
}

// Translate renders a batch of existing ads into the target language.
func (h *AdsHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	if len(req.Ads) == 0 {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "ads is required"})
	}
	if strings.TrimSpace(req.TargetLanguage) == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "targetLanguage is required"})
	}

	ads := make([]model.AdItem, len(req.Ads))
	for i, p := range req.Ads {
		ads[i] = p.toModel()
	}

	translated, err := h.service.Translate(c.Request().Context(), ads, req.TargetLanguage)
	if err != nil {
		return writeServiceError(c, err)
	}

	return c.JSON(http.StatusOK, translateResponse{Ads: adItemsPayload(translated)})
}
