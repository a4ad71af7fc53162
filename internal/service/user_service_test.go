package service

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"medilog/internal/errors"
	"medilog/internal/repository"
)

func TestUserService_Signup(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())

	user, err := svc.Signup(context.Background(), "Amina", "Diabetes")

	assert.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Amina", user.Name)
	assert.Equal(t, "Diabetes", user.Condition)

	found, err := svc.Get(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
}

func TestUserService_Get_Unknown(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())

	_, err := svc.Get(context.Background(), "no-such-id")

	assert.ErrorIs(t, err, errors.ErrUserNotFound)
}

func TestUserService_Signup_ConcurrentUniqueIDs(t *testing.T) {
	svc := NewUserService(repository.NewMemoryUserRepository())

	const n = 200
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			user, err := svc.Signup(context.Background(), "Patient", "Asthma")
			if err != nil {
				t.Errorf("signup: %v", err)
				return
			}
			ids <- user.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{}, n)
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, n)
}
