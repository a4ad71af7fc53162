package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"medilog/internal/errors"
	"medilog/internal/repository"
	"medilog/internal/tips"
)

func testTipsTable(t *testing.T) *tips.Table {
	t.Helper()
	path := filepath.Join(t.TempDir(), "precautions.csv")
	csv := "Disease,Precaution_1,Precaution_2,Precaution_3,Precaution_4\n" +
		"Diabetes,Check blood sugar regularly,Exercise 30 mins daily,,\n"
	assert.NoError(t, os.WriteFile(path, []byte(csv), 0o644))
	return tips.Load(path, zap.NewNop().Sugar())
}

func TestTipsService_ForUser(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewTipsService(repo, testTipsTable(t))

	users := NewUserService(repo)
	user, err := users.Signup(context.Background(), "Amina", "diabetes")
	assert.NoError(t, err)

	got, err := svc.ForUser(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{"Check blood sugar regularly", "Exercise 30 mins daily"}, got)
}

func TestTipsService_ForUser_FallbackCondition(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	svc := NewTipsService(repo, testTipsTable(t))

	users := NewUserService(repo)
	user, err := users.Signup(context.Background(), "Ben", "unknown-condition")
	assert.NoError(t, err)

	got, err := svc.ForUser(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, []string{tips.Fallback}, got)
}

func TestTipsService_ForUser_UnknownUser(t *testing.T) {
	svc := NewTipsService(repository.NewMemoryUserRepository(), testTipsTable(t))

	_, err := svc.ForUser(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}
