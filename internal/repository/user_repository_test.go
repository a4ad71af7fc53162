package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"medilog/internal/errors"
	"medilog/internal/model"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Silent)})
	require.NoError(t, err)
	return db, mock
}

func TestMySQLUserRepository_Create(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	repo := NewMySQLUserRepository(db)
	err := repo.Create(context.Background(), &model.User{ID: "id-1", Name: "Amina", Condition: "Diabetes"})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLUserRepository_FindByID(t *testing.T) {
	db, mock := newMockGorm(t)
	rows := sqlmock.NewRows([]string{"id", "name", "condition", "created_at"}).
		AddRow("id-1", "Amina", "Diabetes", time.Now())
	mock.ExpectQuery("SELECT (.+) FROM `users`").WillReturnRows(rows)

	repo := NewMySQLUserRepository(db)
	user, err := repo.FindByID(context.Background(), "id-1")

	assert.NoError(t, err)
	assert.Equal(t, "Amina", user.Name)
	assert.Equal(t, "Diabetes", user.Condition)
}

func TestMySQLUserRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockGorm(t)
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "condition", "created_at"}))

	repo := NewMySQLUserRepository(db)
	_, err := repo.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user := &model.User{ID: "id-1", Name: "Amina", Condition: "Diabetes", CreatedAt: time.Now()}
	assert.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByID(ctx, "id-1")
	assert.NoError(t, err)
	assert.Equal(t, "Amina", found.Name)

	_, err = repo.FindByID(ctx, "id-2")
	assert.ErrorIs(t, err, errors.ErrUserNotFound)

	// The registry contract: an id can never be taken twice.
	assert.Error(t, repo.Create(ctx, &model.User{ID: "id-1", Name: "Imposter"}))
}
