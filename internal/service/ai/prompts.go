package ai

import (
	"fmt"
	"strings"

	"github.com/domzi1231/fb-ads-generator/internal/model"
)

// PromptInput carries everything the generation prompt may draw on.
// Mode priority: VariantOf wins over CustomPrompt, CustomPrompt wins
// over the generic copywriter mode.
type PromptInput struct {
	URL          string
	Heading      *string
	Description  *string
	CustomPrompt string
	VariantOf    *model.AdItem
	Language     string
}

const styleGuidelines = `<style_guidelines>
1. title: at most 9 words, starting with an emoji
2. description: 3-6 short bullet-like lines; NO URLs; NEVER repeat the call to action inside it
3. cta: 1-5 words chosen from the page intent (commerce -> "Buy now" style, informational or blog -> "Learn more" style, signup -> "Sign in" style, contact or service -> "Contact us" / "Request a quote" style); a leading emoji and/or a trailing arrow glyph are allowed
4. Write EVERY field strictly in the target language. Mixed-language output is invalid
</style_guidelines>`

const outputShape = `<output_format>
Return ONLY a JSON object shaped {"ads": [{"title": "...", "description": "...", "cta": "..."}, ...]} with EXACTLY 3 entries. No markdown, no commentary.
</output_format>`

// GetAdCopySystemPrompt returns the system prompt shared by all
// generation and translation requests.
func GetAdCopySystemPrompt(language string) string {
	return fmt.Sprintf(`You are an expert performance ads copywriter.

<instructions>
1. You MUST write every output field in the language specified in <target_language>: %s. Responses in other languages are invalid
2. Respond with a single strict JSON object and nothing else
3. NEVER wrap output in markdown code blocks
4. NO leading or trailing text around the JSON
</instructions>`, language)
}

// BuildGeneratePrompt builds the user prompt for one generation request.
// Pure function of its input.
func BuildGeneratePrompt(in PromptInput) string {
	switch {
	case in.VariantOf != nil:
		return buildVariantPrompt(*in.VariantOf, in.Language)
	case strings.TrimSpace(in.CustomPrompt) != "":
		return buildCustomPrompt(in)
	default:
		return buildFreshPrompt(in)
	}
}

func buildVariantPrompt(base model.AdItem, language string) string {
	return fmt.Sprintf(`Produce EXACTLY 3 paraphrased variations of the base ad below.

<context>
<base_ad>
title: %s
description: %s
cta: %s
</base_ad>
<target_language>%s</target_language>
</context>

<instructions>
1. Keep the call to action %q VERBATIM in every variation
2. Preserve the persuasive style and emoji usage of the base ad
3. Write every field strictly in the target language
</instructions>

%s`, base.Title, base.Description, base.CTA, language, base.CTA, outputShape)
}

func buildCustomPrompt(in PromptInput) string {
	return fmt.Sprintf(`%s

%s

%s

%s

Produce EXACTLY 3 distinct ad variations following the guidelines above.`,
		strings.TrimSpace(in.CustomPrompt), buildPageContext(in), styleGuidelines, outputShape)
}

func buildFreshPrompt(in PromptInput) string {
	return fmt.Sprintf(`You are writing performance ads for the product page described below. Produce 3 distinct ad variations.

%s

%s

%s`, buildPageContext(in), styleGuidelines, outputShape)
}

func buildPageContext(in PromptInput) string {
	var b strings.Builder
	b.WriteString("<context>\n")
	fmt.Fprintf(&b, "<page_url>%s</page_url>\n", in.URL)
	if in.Heading != nil && *in.Heading != "" {
		fmt.Fprintf(&b, "<page_heading>%s</page_heading>\n", *in.Heading)
	}
	if in.Description != nil && *in.Description != "" {
		fmt.Fprintf(&b, "<page_description>%s</page_description>\n", *in.Description)
	}
	fmt.Fprintf(&b, "<target_language>%s</target_language>\n", in.Language)
	b.WriteString("</context>")
	return b.String()
}

// BuildTranslatePrompt builds the user prompt for a batch ad translation.
func BuildTranslatePrompt(ads []model.AdItem, targetLanguage string) string {
	var b strings.Builder
	for i, ad := range ads {
		fmt.Fprintf(&b, "<ad index=\"%d\">\ntitle: %s\ndescription: %s\ncta: %s\n</ad>\n", i+1, ad.Title, ad.Description, ad.CTA)
	}

	return fmt.Sprintf(`Translate each ad below into the target language.

<context>
<target_language>%s</target_language>
</context>

<ads>
%s</ads>

<instructions>
1. Translate title, description and cta for every ad
2. Preserve the persuasive tone and the emoji usage of each ad
3. Use a natural, short call-to-action phrasing for the target language, not a word-for-word rendering
4. Keep the ads in input order
</instructions>

<output_format>
Return ONLY a JSON object shaped {"ads": [{"title": "...", "description": "...", "cta": "..."}, ...]} with one entry per input ad. No markdown, no commentary.
</output_format>`, targetLanguage, b.String())
}
