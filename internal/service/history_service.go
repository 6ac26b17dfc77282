package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/domzi1231/fb-ads-generator/internal/logger"
	"github.com/domzi1231/fb-ads-generator/internal/model"
	"github.com/domzi1231/fb-ads-generator/internal/repository"
)

// HistoryLimit bounds the history log; appending beyond it evicts the
// oldest entries.
const HistoryLimit = 100

// HistoryService is the load/append/clear contract the browser history
// log syncs against. The generation pipeline does not depend on it.
type HistoryService interface {
	Load(ctx context.Context) ([]model.HistoryEntry, error)
	// Append assigns the entry a random ID and timestamp and stores it.
	Append(ctx context.Context, entry model.HistoryEntry) (*model.HistoryEntry, error)
	// Clear deletes the whole log and returns the number of removed entries.
	Clear(ctx context.Context) (int64, error)
}

type historyService struct {
	repo repository.HistoryRepository
}

// NewHistoryService creates a new history service.
func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Load(ctx context.Context) ([]model.HistoryEntry, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		logger.Warn("history load failed", "module", "service", "action", "fetch", "resource", "history", "result", "failed", "error", err)
		return nil, err
	}
	return entries, nil
}

func (s *historyService) Append(ctx context.Context, entry model.HistoryEntry) (*model.HistoryEntry, error) {
	if len(entry.Ads) == 0 {
		return nil, ErrInvalid
	}

	entry.ID = uuid.NewString()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	if entry.Label == "" {
		entry.Label = deriveLabel(entry)
	}

	if err := s.repo.Insert(ctx, entry, HistoryLimit); err != nil {
		logger.Warn("history append failed", "module", "service", "action", "save", "resource", "history", "result", "failed", "error", err)
		return nil, err
	}
	logger.Info("history entry saved", "module", "service", "action", "save", "resource", "history", "result", "ok", "entry_id", entry.ID, "ads", len(entry.Ads))
	return &entry, nil
}

func (s *historyService) Clear(ctx context.Context) (int64, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		logger.Warn("history clear failed", "module", "service", "action", "clear", "resource", "history", "result", "failed", "error", err)
		return 0, err
	}
	logger.Info("history cleared", "module", "service", "action", "clear", "resource", "history", "result", "ok", "deleted", deleted)
	return deleted, nil
}

func deriveLabel(entry model.HistoryEntry) string {
	if entry.URL != nil && *entry.URL != "" {
		return *entry.URL
	}
	if len(entry.Ads) > 0 && entry.Ads[0].Title != "" {
		return entry.Ads[0].Title
	}
	return "generation"
}
