package repository

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"medilog/internal/errors"
	"medilog/internal/model"
)

// UserRepository defines the registry contract: no two users ever share an
// id. Both backends rely on ids being freshly generated from a high-entropy
// source rather than a counter.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type mysqlUserRepository struct {
	db *gorm.DB
}

// NewMySQLUserRepository builds a GORM-backed registry that survives restarts.
func NewMySQLUserRepository(db *gorm.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

func (r *mysqlUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *mysqlUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
