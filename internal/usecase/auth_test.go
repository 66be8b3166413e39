//go:build unit

package usecase_test

import (
	"context"
	"testing"
	"time"

	"glisten-lounge/internal/domain/user"
	"glisten-lounge/internal/infra"
	"glisten-lounge/internal/pkg/jwt"
	"glisten-lounge/internal/pkg/password"
	"glisten-lounge/internal/usecase"
	"glisten-lounge/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepo struct {
	users      map[string]*user.User
	lastLogins []uuid.UUID
}

func newFakeUserRepo(users ...*user.User) *fakeUserRepo {
	f := &fakeUserRepo{users: map[string]*user.User{}}
	for _, u := range users {
		f.users[u.Email().Value()] = u
	}
	return f
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	u, ok := f.users[email.Value()]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	for _, u := range f.users {
		if u.ID() == id {
			return &readmodel.AuthorizedUserRM{
				ID:       u.ID(),
				Email:    u.Email().Value(),
				Role:     u.Role().String(),
				IsActive: u.IsActive(),
			}, nil
		}
	}
	return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (f *fakeUserRepo) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	f.lastLogins = append(f.lastLogins, userID)
	return nil
}

func seedUser(t *testing.T, email, pin string, role user.Role, active bool) *user.User {
	t.Helper()
	e, err := user.NewEmail(email)
	require.NoError(t, err)
	hash, err := password.HashPin(pin)
	require.NoError(t, err)
	return user.Reconstruct(uuid.New(), e, hash, role, nil, active)
}

func mustCredentials(t *testing.T, email, pin string) user.Credentials {
	t.Helper()
	c, err := user.NewCredentials(email, pin)
	require.NoError(t, err)
	return c
}

func TestLogin(t *testing.T) {
	jwtService := jwt.NewService("test-secret", time.Hour)

	t.Run("valid credentials issue a token and touch last login", func(t *testing.T) {
		u := seedUser(t, "admin@example.com", "2468", user.RoleAdmin, true)
		repo := newFakeUserRepo(u)
		uc := usecase.NewAuthUseCase(repo, jwtService)

		token, rm, err := uc.Login(context.Background(), mustCredentials(t, "admin@example.com", "2468"))
		require.NoError(t, err)

		assert.NotEmpty(t, token)
		assert.Equal(t, u.ID(), rm.ID)
		assert.Equal(t, "admin@example.com", rm.Email)
		assert.Equal(t, "admin", rm.Role)
		assert.True(t, rm.IsActive)
		assert.Equal(t, []uuid.UUID{u.ID()}, repo.lastLogins)
	})

	t.Run("wrong pin is rejected", func(t *testing.T) {
		repo := newFakeUserRepo(seedUser(t, "admin@example.com", "2468", user.RoleAdmin, true))
		uc := usecase.NewAuthUseCase(repo, jwtService)

		_, _, err := uc.Login(context.Background(), mustCredentials(t, "admin@example.com", "9999"))
		assert.ErrorIs(t, err, usecase.ErrInvalidCredentials)
		assert.Empty(t, repo.lastLogins)
	})

	t.Run("unknown email maps to user not found", func(t *testing.T) {
		uc := usecase.NewAuthUseCase(newFakeUserRepo(), jwtService)

		_, _, err := uc.Login(context.Background(), mustCredentials(t, "ghost@example.com", "2468"))
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)
	})

	t.Run("inactive account is rejected before the pin check", func(t *testing.T) {
		repo := newFakeUserRepo(seedUser(t, "staff@example.com", "2468", user.RoleStaff, false))
		uc := usecase.NewAuthUseCase(repo, jwtService)

		_, _, err := uc.Login(context.Background(), mustCredentials(t, "staff@example.com", "2468"))
		assert.ErrorIs(t, err, usecase.ErrUserInactive)
	})
}
