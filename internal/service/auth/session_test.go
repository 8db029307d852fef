package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(map[string]string{"alice": "s3cret"})
}

func TestLoginIssuesSession(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, "alice", session.User)

	user, ok := svc.Validate(session.Token)
	assert.True(t, ok)
	assert.Equal(t, "alice", user)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService()

	_, err := svc.Login("alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("mallory", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateUnknownToken(t *testing.T) {
	svc := newTestService()

	_, ok := svc.Validate("not-a-token")
	assert.False(t, ok)
}

func TestLogoutInvalidatesToken(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)

	svc.Logout(session.Token)
	_, ok := svc.Validate(session.Token)
	assert.False(t, ok)
}

func TestSessionExpiry(t *testing.T) {
	svc := newTestService()

	session, err := svc.Login("alice", "s3cret")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(sessionTTL + time.Minute) }
	_, ok := svc.Validate(session.Token)
	assert.False(t, ok)
}
