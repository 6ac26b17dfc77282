package model

import "time"

// HistoryEntry is one saved generation in the browser history log.
// IDs are random (UUID), not ordered; ordering uses CreatedAt.
type HistoryEntry struct {
	ID           string
	CreatedAt    time.Time
	Label        string
	Ads          []AdItem
	URL          *string
	CustomPrompt *string
}
