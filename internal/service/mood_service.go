package service

import (
	"context"
	"time"

	"medilog/internal/cache"
	"medilog/internal/model"
	"medilog/internal/repository"
)

// MoodService handles mood logging and history retrieval. Same caching and
// decoupling rules as MedicationService.
type MoodService interface {
	Log(ctx context.Context, userID, mood, notes string) (string, error)
	History(ctx context.Context, userID string) ([]model.MoodLog, error)
}

type moodService struct {
	repo     repository.MoodLogRepository
	cache    *cache.Client
	cacheTTL time.Duration
	timeout  time.Duration
}

// NewMoodService builds a MoodService with repository and cache.
func NewMoodService(repo repository.MoodLogRepository, cache *cache.Client, cacheTTL, timeout time.Duration) MoodService {
	return &moodService{repo: repo, cache: cache, cacheTTL: cacheTTL, timeout: timeout}
}

func (s *moodService) cacheKey(userID string) string {
	return "mood:history:" + userID
}

func (s *moodService) Log(ctx context.Context, userID, mood, notes string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	logID, err := s.repo.Append(ctx, &model.MoodLog{
		UserID: userID,
		Mood:   mood,
		Notes:  notes,
	})
	if err != nil {
		return "", err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(userID))
	return logID, nil
}

func (s *moodService) History(ctx context.Context, userID string) ([]model.MoodLog, error) {
	var cached []model.MoodLog
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
