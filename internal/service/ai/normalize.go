package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/domzi1231/fb-ads-generator/internal/model"
)

// GenerationAdCount is the number of valid items a generation response
// must yield; fewer is a failure, never a partial result.
const GenerationAdCount = 3

// ParseError reports that a completion response yielded no usable ad
// items. Raw carries the original response text for diagnostics.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return "no ad items could be parsed from completion response"
}

// InsufficientError reports that fewer than GenerationAdCount valid items
// survived normalization. Items carries whatever was recovered.
type InsufficientError struct {
	Raw   string
	Items []model.AdItem
}

func (e *InsufficientError) Error() string {
	return fmt.Sprintf("expected %d valid ad items, got %d", GenerationAdCount, len(e.Items))
}

// parseStrategy attempts to extract a list of candidate items from raw
// response text. Strategies are tried in order; the first that yields a
// non-empty list wins.
type parseStrategy func(raw string) ([]any, bool)

var parseStrategies = []parseStrategy{
	parseBareArray,
	parseAdsObject,
	parseBracketSubstring,
}

// parseBareArray handles responses that are themselves a JSON array.
func parseBareArray(raw string) ([]any, bool) {
	var items []any
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, false
	}
	return items, true
}

// parseAdsObject handles the declared {"ads": [...]} envelope.
func parseAdsObject(raw string) ([]any, bool) {
	var envelope struct {
		Ads []any `json:"ads"`
	}
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, false
	}
	return envelope.Ads, envelope.Ads != nil
}

// parseBracketSubstring salvages the first bracketed array found anywhere
// in the text; models wrap JSON in prose often enough to earn this.
func parseBracketSubstring(raw string) ([]any, bool) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, false
	}
	return parseBareArray(raw[start : end+1])
}

func parseRawItems(raw string) ([]any, error) {
	for _, parse := range parseStrategies {
		if items, ok := parse(raw); ok && len(items) > 0 {
			return items, nil
		}
	}
	return nil, &ParseError{Raw: raw}
}

// NormalizeGeneration parses a generation response into exactly
// GenerationAdCount valid ad items. Truncation to the first three happens
// before validity filtering, so a fourth valid item never rescues an
// invalid third one.
func NormalizeGeneration(raw string) ([]model.AdItem, error) {
	items, err := parseRawItems(raw)
	if err != nil {
		return nil, err
	}
	if len(items) > GenerationAdCount {
		items = items[:GenerationAdCount]
	}
	ads := validAds(items)
	if len(ads) < GenerationAdCount {
		return nil, &InsufficientError{Raw: raw, Items: ads}
	}
	return ads, nil
}

// NormalizeTranslation parses a translation response into at least one
// valid ad item; any count is accepted.
func NormalizeTranslation(raw string) ([]model.AdItem, error) {
	items, err := parseRawItems(raw)
	if err != nil {
		return nil, err
	}
	ads := validAds(items)
	if len(ads) == 0 {
		return nil, &ParseError{Raw: raw}
	}
	return ads, nil
}

func validAds(items []any) []model.AdItem {
	ads := make([]model.AdItem, 0, len(items))
	for _, item := range items {
		ad := coerceItem(item)
		if ad.Valid() {
			ads = append(ads, ad)
		}
	}
	return ads
}

func coerceItem(v any) model.AdItem {
	obj, _ := v.(map[string]any)
	return model.AdItem{
		Title:       coerceString(obj["title"]),
		Description: coerceString(obj["description"]),
		CTA:         coerceString(obj["cta"]),
	}
}

// coerceString renders a decoded JSON value as a trimmed string.
// Missing and non-scalar values become empty, which marks the item invalid.
func coerceString(v any) string {
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	default:
		return ""
	}
}
