package service

import (
	"context"
	"time"

	"medilog/internal/cache"
	"medilog/internal/model"
	"medilog/internal/repository"
)

// MedicationService handles medication logging and history retrieval.
//
// History reads go through a fail-safe cache; the cached copy is dropped on
// every append so a following read reflects the new entry. A broken cache
// degrades to direct store reads.
type MedicationService interface {
	Log(ctx context.Context, userID, medicationName, dosage string) (string, error)
	History(ctx context.Context, userID string) ([]model.MedicationLog, error)
}

type medicationService struct {
	repo     repository.MedicationLogRepository
	cache    *cache.Client
	cacheTTL time.Duration
	timeout  time.Duration
}

// NewMedicationService builds a MedicationService with repository and cache.
func NewMedicationService(repo repository.MedicationLogRepository, cache *cache.Client, cacheTTL, timeout time.Duration) MedicationService {
	return &medicationService{repo: repo, cache: cache, cacheTTL: cacheTTL, timeout: timeout}
}

func (s *medicationService) cacheKey(userID string) string {
	return "medication:history:" + userID
}

// Log appends one intake entry and returns the store-assigned log id. The
// user id is not checked against the registry; see the repository contract.
func (s *medicationService) Log(ctx context.Context, userID, medicationName, dosage string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	logID, err := s.repo.Append(ctx, &model.MedicationLog{
		UserID:         userID,
		MedicationName: medicationName,
		Dosage:         dosage,
	})
	if err != nil {
		return "", err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return logID, nil
}

// History returns the user's entries, possibly empty, in store-native order.
func (s *medicationService) History(ctx context.Context, userID string) ([]model.MedicationLog, error) {
	var cached []model.MedicationLog
	if s.cache.GetJSON(ctx, s.cacheKey(userID), &cached) {
		return cached, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	logs, err := s.repo.HistoryByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.cache.SetJSON(ctx, s.cacheKey(userID), logs, s.cacheTTL)
	return logs, nil
}
