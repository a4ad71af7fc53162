package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medilog/internal/errors"
	"medilog/internal/model"
	"medilog/internal/store"
)

const moodLogsPath = "mood_logs"

// MoodLogRepository defines mood log persistence operations. Same contract as
// MedicationLogRepository: append-only, non-idempotent writes, no registry
// check.
type MoodLogRepository interface {
	Append(ctx context.Context, entry *model.MoodLog) (string, error)
	HistoryByUser(ctx context.Context, userID string) ([]model.MoodLog, error)
}

type moodLogRepository struct {
	db  store.Database
	now func() time.Time
}

// NewMoodLogRepository creates a store-backed mood log repository.
func NewMoodLogRepository(db store.Database) MoodLogRepository {
	return &moodLogRepository{db: db, now: time.Now}
}

// Append writes a new entry with a server-assigned timestamp and returns the
// store-assigned key.
func (r *moodLogRepository) Append(ctx context.Context, entry *model.MoodLog) (string, error) {
	record := model.MoodLog{
		UserID:   entry.UserID,
		Mood:     entry.Mood,
		Notes:    entry.Notes,
		LoggedAt: r.now().UTC().Format(time.RFC3339),
	}
	return r.db.Push(ctx, moodLogsPath, record)
}

// HistoryByUser returns the user's entries in store-native order, empty
// (never nil) when none exist.
func (r *moodLogRepository) HistoryByUser(ctx context.Context, userID string) ([]model.MoodLog, error) {
	nodes, err := r.db.QueryByChild(ctx, moodLogsPath, "user_id", userID)
	if err != nil {
		return nil, err
	}
	logs := make([]model.MoodLog, 0, len(nodes))
	for _, n := range nodes {
		var entry model.MoodLog
		if err := json.Unmarshal(n.Raw, &entry); err != nil {
			return nil, fmt.Errorf("%w: decode entry %s: %v", errors.ErrStoreUnavailable, n.Key, err)
		}
		entry.LogID = n.Key
		logs = append(logs, entry)
	}
	return logs, nil
}
