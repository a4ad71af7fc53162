package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"medilog/internal/model"
	"medilog/internal/repository"
)

// UserService exposes registry operations.
type UserService interface {
	Signup(ctx context.Context, name, condition string) (*model.User, error)
	Get(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService builds a UserService over a registry backend.
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

// Signup registers a new patient under a freshly generated id. A random
// UUIDv4 keeps concurrent signups collision-free without a shared counter.
func (s *userService) Signup(ctx context.Context, name, condition string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.NewString(),
		Name:      name,
		Condition: condition,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) Get(ctx context.Context, id string) (*model.User, error) {
	return s.repo.FindByID(ctx, id)
}
