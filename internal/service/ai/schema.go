package ai

import "github.com/invopop/jsonschema"

// adsEnvelope mirrors the JSON object the model must return for generation.
type adsEnvelope struct {
	Ads []adItemSchema `json:"ads" jsonschema:"minItems=3,maxItems=3" jsonschema_description:"Exactly three ad variations"`
}

// translatedAdsEnvelope is the translation response shape; no count constraint.
type translatedAdsEnvelope struct {
	Ads []adItemSchema `json:"ads" jsonschema_description:"The translated ad items, in input order"`
}

type adItemSchema struct {
	Title       string `json:"title" jsonschema_description:"Ad headline"`
	Description string `json:"description" jsonschema_description:"Short multi-line ad body"`
	CTA         string `json:"cta" jsonschema_description:"Call to action phrase"`
}

func generateSchema[T any]() any {
	// Structured Outputs uses a subset of JSON schema.
	// These flags are necessary to comply with the subset.
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}

// Reflected once at init; the shapes never change at runtime.
var (
	generationSchema  = generateSchema[adsEnvelope]()
	translationSchema = generateSchema[translatedAdsEnvelope]()
)

// GenerationFormat returns the structured-output constraint for ad generation.
func GenerationFormat() ResponseFormat {
	return ResponseFormat{
		Name:        "ad_items",
		Description: "Exactly three ad copy variations",
		Schema:      generationSchema,
	}
}

// TranslationFormat returns the structured-output constraint for ad translation.
func TranslationFormat() ResponseFormat {
	return ResponseFormat{
		Name:        "translated_ad_items",
		Description: "The input ad items translated into the target language",
		Schema:      translationSchema,
	}
}
