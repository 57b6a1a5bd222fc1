package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/venstudio/studio-backend/internal/domain"
)

// ErrInvalidCredentials is returned when the email/password pair does not
// match a user.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserSource looks up a user by their sign-in credentials.
type UserSource interface {
	GetByCredentials(ctx context.Context, email, password string) (domain.User, error)
}

// Service signs users in and out against the users table and the Redis
// session store.
type Service struct {
	users    UserSource
	sessions *SessionStore
}

func NewService(users UserSource, sessions *SessionStore) *Service {
	return &Service{users: users, sessions: sessions}
}

// SignIn verifies the credentials and issues a session. The signed-in user
// is returned with the password blanked.
func (s *Service) SignIn(ctx context.Context, email, password string) (domain.User, Session, error) {
	u, err := s.users.GetByCredentials(ctx, email, password)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.User{}, Session{}, ErrInvalidCredentials
	}
	if err != nil {
		return domain.User{}, Session{}, err
	}
	sess, err := s.sessions.Create(ctx, u)
	if err != nil {
		log.Error().Err(err).Str("email", email).Msg("session create failed")
		return domain.User{}, Session{}, err
	}
	u.Password = ""
	return u, sess, nil
}

// SignOut revokes the session for the given token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// Authenticate resolves a bearer token to its session.
func (s *Service) Authenticate(ctx context.Context, token string) (Session, error) {
	return s.sessions.Get(ctx, token)
}
