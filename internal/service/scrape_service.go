package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Noooste/azuretls-client"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"

	"github.com/domzi1231/fb-ads-generator/internal/config"
	"github.com/domzi1231/fb-ads-generator/internal/logger"
	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/network"
)

const (
	scrapeTimeout   = 15 * time.Second
	scrapeBodyLimit = 2 << 20 // 2 MiB is plenty for heading + meta tags

	acceptHTML = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// ScrapeService extracts generation context from a product page.
type ScrapeService interface {
	// Scrape fetches the URL once and returns the first heading and a
	// meta description. Any failure is fatal for the request; no retry.
	Scrape(ctx context.Context, pageURL string) (*model.ScrapeResult, error)
}

type scrapeService struct {
	clients   *network.ClientFactory
	sanitizer *bluemonday.Policy
}

func NewScrapeService(clients *network.ClientFactory) ScrapeService {
	// Strip scripts and other noise before parsing, but keep the meta
	// tags the extractor reads; bluemonday drops them by default.
	p := bluemonday.UGCPolicy()
	p.AllowElements("meta")
	p.AllowAttrs("name", "property", "content").OnElements("meta")

	return &scrapeService{
		clients:   clients,
		sanitizer: p,
	}
}

func (s *scrapeService) Scrape(ctx context.Context, pageURL string) (*model.ScrapeResult, error) {
	status, body, err := s.fetch(ctx, pageURL)
	if err != nil {
		logger.Warn("scrape request failed", "module", "service", "action", "fetch", "resource", "scrape", "result", "failed", "url", pageURL, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrScrape, err)
	}

	if status < 200 || status >= 300 {
		logger.Warn("scrape bad status", "module", "service", "action", "fetch", "resource", "scrape", "result", "failed", "url", pageURL, "status_code", status)
		return nil, fmt.Errorf("%w: HTTP %d", ErrScrape, status)
	}

	sanitized := s.sanitizer.Sanitize(string(body))

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(sanitized))
	if err != nil {
		return nil, fmt.Errorf("%w: parse markup: %v", ErrScrape, err)
	}

	result := &model.ScrapeResult{}
	if heading := strings.TrimSpace(doc.Find("h1").First().Text()); heading != "" {
		result.Heading = &heading
	}
	if desc := extractDescription(doc); desc != "" {
		result.Description = &desc
	}

	logger.Debug("page scraped", "module", "service", "action", "fetch", "resource", "scrape", "result", "ok", "url", pageURL, "has_heading", result.Heading != nil, "has_description", result.Description != nil)
	return result, nil
}

// fetch issues the single page GET. Storefronts routinely reject
// non-browser TLS stacks, so real fetches go through the Chrome-fingerprint
// session; an injected test client uses a plain GET instead.
func (s *scrapeService) fetch(ctx context.Context, pageURL string) (int, []byte, error) {
	if client := s.clients.TestHTTPClient(); client != nil {
		return s.fetchPlain(ctx, client, pageURL)
	}

	session := s.clients.NewFingerprintSession(scrapeTimeout)
	defer session.Close()

	resp, err := session.Do(&azuretls.Request{
		Method: http.MethodGet,
		Url:    pageURL,
		OrderedHeaders: azuretls.OrderedHeaders{
			{"accept", acceptHTML},
			{"accept-language", "en-US,en;q=0.9"},
			{"sec-ch-ua", config.ChromeSecChUa},
			{"sec-ch-ua-mobile", "?0"},
			{"sec-ch-ua-platform", `"Windows"`},
			{"user-agent", config.ChromeUserAgent},
		},
	})
	if err != nil {
		return 0, nil, err
	}

	body := resp.Body
	if len(body) > scrapeBodyLimit {
		body = body[:scrapeBodyLimit]
	}
	return resp.StatusCode, body, nil
}

func (s *scrapeService) fetchPlain(ctx context.Context, client *http.Client, pageURL string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("User-Agent", config.ChromeUserAgent)
	req.Header.Set("Sec-Ch-Ua", config.ChromeSecChUa)
	req.Header.Set("Accept", acceptHTML)

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, scrapeBodyLimit))
	if err != nil {
		return 0, nil, fmt.Errorf("read body: %v", err)
	}
	return resp.StatusCode, body, nil
}

// extractDescription prefers the plain meta description and falls back to
// the Open Graph one.
func extractDescription(doc *goquery.Document) string {
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		if trimmed := strings.TrimSpace(desc); trimmed != "" {
			return trimmed
		}
	}
	if desc, ok := doc.Find(`meta[property="og:description"]`).First().Attr("content"); ok {
		return strings.TrimSpace(desc)
	}
	return ""
}
