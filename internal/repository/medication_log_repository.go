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

// medicationLogsPath is the store namespace for medication entries. Disjoint
// from the mood namespace: the two kinds are never comingled in one query.
const medicationLogsPath = "medication_logs"

// MedicationLogRepository defines medication log persistence operations.
//
// Append is deliberately not idempotent: two identical calls record two
// distinct doses. Neither operation checks the user registry; logs may belong
// to a user created out-of-band.
type MedicationLogRepository interface {
	Append(ctx context.Context, entry *model.MedicationLog) (string, error)
	HistoryByUser(ctx context.Context, userID string) ([]model.MedicationLog, error)
}

type medicationLogRepository struct {
	db  store.Database
	now func() time.Time
}

// NewMedicationLogRepository creates a store-backed medication log repository.
func NewMedicationLogRepository(db store.Database) MedicationLogRepository {
	return &medicationLogRepository{db: db, now: time.Now}
}

// Append writes a new entry and returns the store-assigned key. The creation
// timestamp and status are set here, never taken from the caller.
func (r *medicationLogRepository) Append(ctx context.Context, entry *model.MedicationLog) (string, error) {
	record := model.MedicationLog{
		UserID:         entry.UserID,
		MedicationName: entry.MedicationName,
		Dosage:         entry.Dosage,
		TakenAt:        r.now().UTC().Format(time.RFC3339),
		Status:         model.MedicationStatusTaken,
	}
	return r.db.Push(ctx, medicationLogsPath, record)
}

// HistoryByUser returns the user's entries in store-native order. The result
// is an empty slice, never nil, when the user has no entries.
func (r *medicationLogRepository) HistoryByUser(ctx context.Context, userID string) ([]model.MedicationLog, error) {
	nodes, err := r.db.QueryByChild(ctx, medicationLogsPath, "user_id", userID)
	if err != nil {
		return nil, err
	}
	logs := make([]model.MedicationLog, 0, len(nodes))
	for _, n := range nodes {
		var entry model.MedicationLog
		if err := json.Unmarshal(n.Raw, &entry); err != nil {
			return nil, fmt.Errorf("%w: decode entry %s: %v", errors.ErrStoreUnavailable, n.Key, err)
		}
		entry.LogID = n.Key
		logs = append(logs, entry)
	}
	return logs, nil
}
