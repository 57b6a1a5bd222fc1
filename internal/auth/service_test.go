package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

type fakeUserSource struct {
	user domain.User
	err  error
}

func (f *fakeUserSource) GetByCredentials(ctx context.Context, email, password string) (domain.User, error) {
	if f.err != nil {
		return domain.User{}, f.err
	}
	if email == f.user.Email && password == f.user.Password {
		return f.user, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func setupService(t *testing.T, users *fakeUserSource) *Service {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewService(users, NewSessionStore(client, time.Hour))
}

func TestServiceSignIn(t *testing.T) {
	users := &fakeUserSource{user: domain.User{
		ID:       "u1",
		Email:    "admin@studio.id",
		Password: "secret",
		Role:     domain.RoleAdmin,
	}}
	svc := setupService(t, users)
	ctx := context.Background()

	t.Run("issues a session for valid credentials", func(t *testing.T) {
		user, sess, err := svc.SignIn(ctx, "admin@studio.id", "secret")
		require.NoError(t, err)
		assert.NotEmpty(t, sess.Token)
		assert.Empty(t, user.Password, "password never leaves the service")

		got, err := svc.Authenticate(ctx, sess.Token)
		require.NoError(t, err)
		assert.Equal(t, "u1", got.UserID)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		_, _, err := svc.SignIn(ctx, "admin@studio.id", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("passes through storage errors", func(t *testing.T) {
		users.err = errors.New("db down")
		defer func() { users.err = nil }()

		_, _, err := svc.SignIn(ctx, "admin@studio.id", "secret")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestServiceSignOut(t *testing.T) {
	users := &fakeUserSource{user: domain.User{
		ID:       "u1",
		Email:    "admin@studio.id",
		Password: "secret",
	}}
	svc := setupService(t, users)
	ctx := context.Background()

	_, sess, err := svc.SignIn(ctx, "admin@studio.id", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.SignOut(ctx, sess.Token))

	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
