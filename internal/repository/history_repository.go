package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/domzi1231/fb-ads-generator/internal/model"
)

// HistoryRepository stores the bounded generation history log.
type HistoryRepository interface {
	// List returns entries newest first.
	List(ctx context.Context) ([]model.HistoryEntry, error)
	// Insert saves an entry and evicts the oldest rows beyond limit.
	Insert(ctx context.Context, entry model.HistoryEntry, limit int) error
	// DeleteAll clears the log and returns the number of deleted rows.
	DeleteAll(ctx context.Context) (int64, error)
}

type historyRepository struct {
	db dbtx
}

func NewHistoryRepository(db dbtx) HistoryRepository {
	return &historyRepository{db: db}
}

func (r *historyRepository) List(ctx context.Context) ([]model.HistoryEntry, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, label, ads, url, custom_prompt, created_at
		 FROM history_entries ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []model.HistoryEntry
	for rows.Next() {
		entry, err := scanHistoryEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *historyRepository) Insert(ctx context.Context, entry model.HistoryEntry, limit int) error {
	ads, err := json.Marshal(entry.Ads)
	if err != nil {
		return fmt.Errorf("marshal ads: %w", err)
	}

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = r.db.ExecContext(
		ctx,
		`INSERT INTO history_entries (id, label, ads, url, custom_prompt, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		entry.ID, entry.Label, string(ads), entry.URL, entry.CustomPrompt, formatTime(createdAt),
	)
	if err != nil {
		return err
	}

	if limit > 0 {
		_, err = r.db.ExecContext(
			ctx,
			`DELETE FROM history_entries WHERE rowid NOT IN (
			   SELECT rowid FROM history_entries ORDER BY created_at DESC, rowid DESC LIMIT ?
			 )`,
			limit,
		)
	}
	return err
}

func (r *historyRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM history_entries`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanHistoryEntry(rows *sql.Rows) (model.HistoryEntry, error) {
	var entry model.HistoryEntry
	var ads, createdAt string
	var url, customPrompt sql.NullString

	if err := rows.Scan(&entry.ID, &entry.Label, &ads, &url, &customPrompt, &createdAt); err != nil {
		return entry, err
	}
	if err := json.Unmarshal([]byte(ads), &entry.Ads); err != nil {
		return entry, fmt.Errorf("unmarshal ads: %w", err)
	}
	if url.Valid {
		entry.URL = &url.String
	}
	if customPrompt.Valid {
		entry.CustomPrompt = &customPrompt.String
	}
	parsed, err := parseTime(createdAt)
	if err != nil {
		return entry, fmt.Errorf("parse created_at: %w", err)
	}
	entry.CreatedAt = parsed

	return entry, nil
}
