package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venstudio/studio-backend/internal/domain"
)

func setupSessionStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionStore(client, time.Hour), mr
}

func TestSessionStoreCreateAndGet(t *testing.T) {
	store, _ := setupSessionStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, domain.User{
		ID:       "u1",
		Email:    "admin@studio.id",
		FullName: "Admin",
		Role:     domain.RoleAdmin,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)

	got, err := store.Get(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, domain.RoleAdmin, got.Role)
}

func TestSessionStoreUnknownToken(t *testing.T) {
	store, _ := setupSessionStore(t)

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := setupSessionStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, domain.User{ID: "u1"})
	require.NoError(t, err)

	mr.FastForward(2 * time.Hour)

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreRevoke(t *testing.T) {
	store, _ := setupSessionStore(t)
	ctx := context.Background()

	sess, err := store.Create(ctx, domain.User{ID: "u1"})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, sess.Token))

	_, err = store.Get(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Revoking again is a no-op.
	require.NoError(t, store.Revoke(ctx, sess.Token))
}
