package model

// AdItem is one rendered advertisement: a title, a short multi-line
// description and a call to action. All three fields are non-empty after
// trimming once an item has passed normalization.
type AdItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CTA         string `json:"cta"`
}

// Valid reports whether all three fields are non-empty.
// Callers are expected to have trimmed the fields already.
func (a AdItem) Valid() bool {
	return a.Title != "" && a.Description != "" && a.CTA != ""
}

// ScrapeResult holds the generation context extracted from a product page.
// Either field is nil when the page does not provide it.
type ScrapeResult struct {
	Heading     *string
	Description *string
}
