package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/venstudio/studio-backend/internal/domain"
)

const sessionKeyPrefix = "studio:session:" // Key for session data: studio:session:{token}

// ErrSessionNotFound is returned when a token does not resolve to a live
// session, whether it expired or never existed.
var ErrSessionNotFound = errors.New("session not found")

// Session is the signed-in identity held in Redis for the token's lifetime.
type Session struct {
	Token     string          `json:"token"`
	UserID    string          `json:"userId"`
	Email     string          `json:"email"`
	FullName  string          `json:"fullName"`
	Role      domain.UserRole `json:"role"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SessionStore keeps sessions in Redis under a TTL. Sessions are not
// persisted anywhere else: a Redis flush signs everyone out.
type SessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	return &SessionStore{client: client, ttl: ttl}
}

// Create issues a fresh opaque token for the user.
func (s *SessionStore) Create(ctx context.Context, u domain.User) (Session, error) {
	sess := Session{
		Token:     uuid.New().String(),
		UserID:    u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		CreatedAt: time.Now().UTC(),
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return Session{}, fmt.Errorf("marshal session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(sess.Token), data, s.ttl).Err(); err != nil {
		return Session{}, fmt.Errorf("store session: %w", err)
	}
	return sess, nil
}

// Get resolves a token to its session.
func (s *SessionStore) Get(ctx context.Context, token string) (Session, error) {
	data, err := s.client.Get(ctx, s.key(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Session{}, ErrSessionNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("get session: %w", err)
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return Session{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return sess, nil
}

// Revoke deletes the session; revoking an unknown token is not an error.
func (s *SessionStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.key(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *SessionStore) key(token string) string {
	return sessionKeyPrefix + token
}
