package service

import (
	"context"

	"medilog/internal/repository"
	"medilog/internal/tips"
)

// TipsService resolves a user's condition and returns its precautions.
type TipsService interface {
	ForUser(ctx context.Context, userID string) ([]string, error)
}

type tipsService struct {
	users repository.UserRepository
	table *tips.Table
}

// NewTipsService builds a TipsService over the registry and the static table.
func NewTipsService(users repository.UserRepository, table *tips.Table) TipsService {
	return &tipsService{users: users, table: table}
}

// ForUser returns precautions for the user's condition, or ErrUserNotFound
// when the id is not in the registry. The lookup itself never fails.
func (s *tipsService) ForUser(ctx context.Context, userID string) ([]string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.table.Lookup(user.Condition), nil
}
