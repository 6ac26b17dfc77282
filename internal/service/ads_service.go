package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/domzi1231/fb-ads-generator/internal/logger"
	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service/ai"
)

// DefaultLanguage is used when a request names no target language.
const DefaultLanguage = "en"

type generateKind int

const (
	kindFresh generateKind = iota
	kindVariant
)

// GenerateRequest is the decided form of a generation request. The
// handler resolves the loose JSON body into exactly one mode at the
// boundary, so nothing downstream re-branches on optional fields.
type GenerateRequest struct {
	kind         generateKind
	url          string
	customPrompt string
	language     string
	base         model.AdItem
}

// NewFreshRequest builds a request that scrapes url for context.
// customPrompt may be empty.
func NewFreshRequest(url, customPrompt, language string) GenerateRequest {
	return GenerateRequest{
		kind:         kindFresh,
		url:          url,
		customPrompt: customPrompt,
		language:     normalizeLanguage(language),
	}
}

// NewVariantRequest builds a request for paraphrases of an existing ad.
// No scraping happens for variant requests.
func NewVariantRequest(base model.AdItem, language string) GenerateRequest {
	return GenerateRequest{
		kind:     kindVariant,
		base:     base,
		language: normalizeLanguage(language),
	}
}

func normalizeLanguage(language string) string {
	if trimmed := strings.TrimSpace(language); trimmed != "" {
		return trimmed
	}
	return DefaultLanguage
}

// SourceInfo describes where the generated ads came from.
type SourceInfo struct {
	URL         string
	Heading     *string
	Description *string
	Variant     bool
}

// GenerateResult is a successful generation: exactly three valid ads
// plus their source annotation.
type GenerateResult struct {
	Source SourceInfo
	Ads    []model.AdItem
}

// AdsService generates and translates ad copy through the completion API.
type AdsService interface {
	// Generate runs the scrape -> prompt -> complete -> normalize pipeline.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
	// Translate renders each ad's three fields into targetLanguage.
	// The model may under-return; at least one valid item is required.
	Translate(ctx context.Context, ads []model.AdItem, targetLanguage string) ([]model.AdItem, error)
}

type adsService struct {
	scraper     ScrapeService
	cfg         ai.Config
	newProvider func(ai.Config) (ai.Provider, error)
}

// NewAdsService creates a new ads service.
func NewAdsService(scraper ScrapeService, cfg ai.Config) AdsService {
	return &adsService{
		scraper:     scraper,
		cfg:         cfg,
		newProvider: ai.NewProvider,
	}
}

// NewAdsServiceWithProvider wires a custom provider factory.
// This is only for use in tests.
func NewAdsServiceWithProvider(scraper ScrapeService, cfg ai.Config, factory func(ai.Config) (ai.Provider, error)) AdsService {
	return &adsService{
		scraper:     scraper,
		cfg:         cfg,
		newProvider: factory,
	}
}

func (s *adsService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	provider, err := s.newProvider(s.cfg)
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "generate", "resource", "ads", "result", "failed", "provider", s.cfg.Provider, "model", s.cfg.Model, "error", err)
		return nil, fmt.Errorf("create provider: %w", err)
	}

	input := ai.PromptInput{Language: req.language}
	source := SourceInfo{}

	switch req.kind {
	case kindVariant:
		base := req.base
		input.VariantOf = &base
		source.Variant = true
	default:
		scraped, err := s.scraper.Scrape(ctx, req.url)
		if err != nil {
			return nil, err
		}
		input.URL = req.url
		input.Heading = scraped.Heading
		input.Description = scraped.Description
		input.CustomPrompt = req.customPrompt
		source.URL = req.url
		source.Heading = scraped.Heading
		source.Description = scraped.Description
	}

	prompt := ai.BuildGeneratePrompt(input)
	raw, err := provider.Complete(ctx, ai.GetAdCopySystemPrompt(req.language), prompt, ai.GenerationFormat())
	if err != nil {
		logger.Warn("ads completion failed", "module", "service", "action", "generate", "resource", "ads", "result", "failed", "provider", provider.Name(), "model", s.cfg.Model, "error", err)
		return nil, fmt.Errorf("completion: %w", err)
	}

	ads, err := ai.NormalizeGeneration(raw)
	if err != nil {
		logger.Warn("ads response rejected", "module", "service", "action", "generate", "resource", "ads", "result", "failed", "provider", provider.Name(), "error", err)
		return nil, err
	}

	logger.Info("ads generated", "module", "service", "action", "generate", "resource", "ads", "result", "ok", "provider", provider.Name(), "model", s.cfg.Model, "variant", source.Variant, "language", req.language)
	return &GenerateResult{Source: source, Ads: ads}, nil
}

func (s *adsService) Translate(ctx context.Context, ads []model.AdItem, targetLanguage string) ([]model.AdItem, error) {
	if len(ads) == 0 || strings.TrimSpace(targetLanguage) == "" {
		return nil, ErrInvalid
	}

	provider, err := s.newProvider(s.cfg)
	if err != nil {
		logger.Warn("ai provider create failed", "module", "service", "action", "translate", "resource", "ads", "result", "failed", "provider", s.cfg.Provider, "model", s.cfg.Model, "error", err)
		return nil, fmt.Errorf("create provider: %w", err)
	}

	prompt := ai.BuildTranslatePrompt(ads, targetLanguage)
	raw, err := provider.Complete(ctx, ai.GetAdCopySystemPrompt(targetLanguage), prompt, ai.TranslationFormat())
	if err != nil {
		logger.Warn("translate completion failed", "module", "service", "action", "translate", "resource", "ads", "result", "failed", "provider", provider.Name(), "model", s.cfg.Model, "error", err)
		return nil, fmt.Errorf("completion: %w", err)
	}

	translated, err := ai.NormalizeTranslation(raw)
	if err != nil {
		logger.Warn("translate response rejected", "module", "service", "action", "translate", "resource", "ads", "result", "failed", "provider", provider.Name(), "error", err)
		return nil, err
	}

	logger.Info("ads translated", "module", "service", "action", "translate", "resource", "ads", "result", "ok", "provider", provider.Name(), "count_in", len(ads), "count_out", len(translated), "language", targetLanguage)
	return translated, nil
}
