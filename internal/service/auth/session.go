package auth

import (
	"crypto/subtle"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidCredentials is returned for unknown users or wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

const sessionTTL = 12 * time.Hour

// Session is one authenticated dashboard session.
type Session struct {
	Token     string    `json:"token"`
	User      string    `json:"user"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Service verifies logins against the static credential list and keeps the
// issued session tokens in memory. Sessions do not survive a restart; staff
// just log in again.
type Service struct {
	users    map[string]string
	sessions map[string]Session
	mu       sync.RWMutex
	now      func() time.Time
}

// NewService creates a session service over the configured credential list.
func NewService(users map[string]string) *Service {
	return &Service{
		users:    users,
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Login checks the credentials and issues a fresh session token.
func (s *Service) Login(user, password string) (Session, error) {
	expected, ok := s.users[user]
	if !ok || subtle.ConstantTimeCompare([]byte(expected), []byte(password)) != 1 {
		return Session{}, ErrInvalidCredentials
	}

	session := Session{
		Token:     uuid.NewString(),
		User:      user,
		ExpiresAt: s.now().Add(sessionTTL),
	}

	s.mu.Lock()
	s.sessions[session.Token] = session
	s.mu.Unlock()

	return session, nil
}

// Validate resolves a token to its user, expiring stale sessions lazily.
func (s *Service) Validate(token string) (string, bool) {
	s.mu.RLock()
	session, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if s.now().After(session.ExpiresAt) {
		s.Logout(token)
		return "", false
	}
	return session.User, true
}

// Logout removes a session.
func (s *Service) Logout(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
