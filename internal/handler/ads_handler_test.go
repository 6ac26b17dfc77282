package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/domzi1231/fb-ads-generator/internal/handler"
	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service"
	"github.com/domzi1231/fb-ads-generator/internal/service/ai"
)

type adsServiceStub struct {
	generateResult *service.GenerateResult
	generateErr    error
	generateCalls  int

	translateResult []model.AdItem
	translateErr    error
	translateCalls  int
	lastLanguage    string
}

func (s *adsServiceStub) Generate(_ context.Context, _ service.GenerateRequest) (*service.GenerateResult, error) {
	s.generateCalls++
	if s.generateErr != nil {
		return nil, s.generateErr
	}
	return s.generateResult, nil
}

func (s *adsServiceStub) Translate(_ context.Context, _ []model.AdItem, targetLanguage string) ([]model.AdItem, error) {
	s.translateCalls++
	s.lastLanguage = targetLanguage
	if s.translateErr != nil {
		return nil, s.translateErr
	}
	return s.translateResult, nil
}

func performAds(t *testing.T, svc service.AdsService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	handler.NewAdsHandler(svc).RegisterRoutes(e.Group("/api"))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func threeAds() []model.AdItem {
	return []model.AdItem{
		{Title: "A", Description: "d", CTA: "Buy now"},
		{Title: "B", Description: "d", CTA: "Buy now"},
		{Title: "C", Description: "d", CTA: "Buy now"},
	}
}

func TestAdsHandler_Generate_OK(t *testing.T) {
	heading := "Widget"
	stub := &adsServiceStub{generateResult: &service.GenerateResult{
		Source: service.SourceInfo{URL: "https://shop.example", Heading: &heading},
		Ads:    threeAds(),
	}}

	rec := performAds(t, stub, http.MethodPost, "/api/generate",
		`{"url": "https://shop.example", "language": "de"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Source struct {
			URL     string  `json:"url"`
			Heading *string `json:"heading"`
			Variant bool    `json:"variant"`
		} `json:"source"`
		Ads []map[string]string `json:"ads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "https://shop.example", body.Source.URL)
	require.Equal(t, "Widget", *body.Source.Heading)
	require.Len(t, body.Ads, 3)
	require.Equal(t, "Buy now", body.Ads[0]["cta"])
}

func TestAdsHandler_Generate_MissingURLAndVariant(t *testing.T) {
	stub := &adsServiceStub{}

	rec := performAds(t, stub, http.MethodPost, "/api/generate", `{"language": "de"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "url or variantOf is required")
	require.Equal(t, 0, stub.generateCalls, "validation failures must not reach the service")
}

func TestAdsHandler_Generate_VariantWithoutURL(t *testing.T) {
	stub := &adsServiceStub{generateResult: &service.GenerateResult{
		Source: service.SourceInfo{Variant: true},
		Ads:    threeAds(),
	}}

	rec := performAds(t, stub, http.MethodPost, "/api/generate",
		`{"variantOf": {"title": "t", "description": "d", "cta": "c"}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, stub.generateCalls)
	require.Contains(t, rec.Body.String(), `"variant":true`)
}

func TestAdsHandler_Generate_InsufficientItems(t *testing.T) {
	stub := &adsServiceStub{generateErr: &ai.InsufficientError{
		Raw:   `{"ads": [...]}`,
		Items: []model.AdItem{{Title: "A", Description: "d", CTA: "Go"}},
	}}

	rec := performAds(t, stub, http.MethodPost, "/api/generate", `{"url": "https://shop.example"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	var body struct {
		Error string              `json:"error"`
		Raw   string              `json:"raw"`
		Items []map[string]string `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Contains(t, body.Error, "expected 3 valid ad items")
	require.Equal(t, `{"ads": [...]}`, body.Raw)
	require.Len(t, body.Items, 1)
}

func TestAdsHandler_Generate_ParseError(t *testing.T) {
	stub := &adsServiceStub{generateErr: &ai.ParseError{Raw: "not json"}}

	rec := performAds(t, stub, http.MethodPost, "/api/generate", `{"url": "https://shop.example"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), `"raw":"not json"`)
}

func TestAdsHandler_Generate_MissingAPIKey(t *testing.T) {
	stub := &adsServiceStub{generateErr: ai.ErrMissingAPIKey}

	rec := performAds(t, stub, http.MethodPost, "/api/generate", `{"url": "https://shop.example"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "completion API is not configured")
}

func TestAdsHandler_Translate_OK(t *testing.T) {
	stub := &adsServiceStub{translateResult: []model.AdItem{
		{Title: "Eins", Description: "d", CTA: "Jetzt kaufen"},
	}}

	rec := performAds(t, stub, http.MethodPost, "/api/translate",
		`{"ads": [{"title": "One", "description": "d", "cta": "Buy now"}], "targetLanguage": "de"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "de", stub.lastLanguage)
	require.Contains(t, rec.Body.String(), "Jetzt kaufen")
}

func TestAdsHandler_Translate_Validation(t *testing.T) {
	stub := &adsServiceStub{}

	rec := performAds(t, stub, http.MethodPost, "/api/translate", `{"targetLanguage": "de"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "ads is required")

	rec = performAds(t, stub, http.MethodPost, "/api/translate",
		`{"ads": [{"title": "t", "description": "d", "cta": "c"}], "targetLanguage": "  "}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "targetLanguage is required")

	require.Equal(t, 0, stub.translateCalls)
}

func TestAdsHandler_Translate_ParseError(t *testing.T) {
	stub := &adsServiceStub{translateErr: &ai.ParseError{Raw: "garbage"}}

	rec := performAds(t, stub, http.MethodPost, "/api/translate",
		`{"ads": [{"title": "t", "description": "d", "cta": "c"}], "targetLanguage": "de"}`)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), `"raw":"garbage"`)
}
