package ai_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/service/ai"
)

func strPtr(s string) *string { return &s }

func TestBuildGeneratePrompt_Fresh(t *testing.T) {
	prompt := ai.BuildGeneratePrompt(ai.PromptInput{
		URL:         "https://shop.example/product",
		Heading:     strPtr("Great Widget"),
		Description: strPtr("The best widget."),
		Language:    "de",
	})

	require.Contains(t, prompt, "<page_url>https://shop.example/product</page_url>")
	require.Contains(t, prompt, "<page_heading>Great Widget</page_heading>")
	require.Contains(t, prompt, "<page_description>The best widget.</page_description>")
	require.Contains(t, prompt, "<target_language>de</target_language>")
	require.Contains(t, prompt, "<style_guidelines>")
	require.Contains(t, prompt, "EXACTLY 3")
}

func TestBuildGeneratePrompt_MissingScrapeFields(t *testing.T) {
	prompt := ai.BuildGeneratePrompt(ai.PromptInput{
		URL:      "https://shop.example",
		Language: "en",
	})

	require.NotContains(t, prompt, "<page_heading>", "absent heading should emit no tag")
	require.NotContains(t, prompt, "<page_description>", "absent description should emit no tag")
	require.Contains(t, prompt, "<page_url>https://shop.example</page_url>")
}

func TestBuildGeneratePrompt_CustomPromptFirst(t *testing.T) {
	prompt := ai.BuildGeneratePrompt(ai.PromptInput{
		URL:          "https://shop.example",
		CustomPrompt: "  Focus on free shipping.  ",
		Language:     "en",
	})

	require.True(t, strings.HasPrefix(prompt, "Focus on free shipping."),
		"custom prompt text should lead the prompt verbatim")
	require.Contains(t, prompt, "<style_guidelines>")
	require.Contains(t, prompt, "<output_format>")
}

func TestBuildGeneratePrompt_VariantWinsOverCustom(t *testing.T) {
	base := model.AdItem{Title: "🚀 Base", Description: "desc", CTA: "Buy now →"}
	prompt := ai.BuildGeneratePrompt(ai.PromptInput{
		URL:          "https://shop.example",
		CustomPrompt: "ignored",
		VariantOf:    &base,
		Language:     "fr",
	})

	require.NotContains(t, prompt, "ignored", "variant mode should ignore the custom prompt")
	require.Contains(t, prompt, "🚀 Base")
	require.Contains(t, prompt, `"Buy now →" VERBATIM`)
	require.Contains(t, prompt, "<target_language>fr</target_language>")
}

func TestGetAdCopySystemPrompt_Language(t *testing.T) {
	prompt := ai.GetAdCopySystemPrompt("pl")
	require.Contains(t, prompt, "<target_language>: pl")
	require.Contains(t, prompt, "strict JSON")
}

func TestBuildTranslatePrompt(t *testing.T) {
	ads := []model.AdItem{
		{Title: "🚀 One", Description: "d1", CTA: "Buy now"},
		{Title: "🔥 Two", Description: "d2", CTA: "Learn more"},
	}
	prompt := ai.BuildTranslatePrompt(ads, "es")

	require.Contains(t, prompt, "<target_language>es</target_language>")
	require.Contains(t, prompt, `<ad index="1">`)
	require.Contains(t, prompt, `<ad index="2">`)
	require.Contains(t, prompt, "🔥 Two")
	require.Contains(t, prompt, "Keep the ads in input order")
	require.Less(t, strings.Index(prompt, "🚀 One"), strings.Index(prompt, "🔥 Two"),
		"ads should appear in input order")
}
