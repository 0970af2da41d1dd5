package store_test

import (
	"testing"
	"time"

	"gdsgames/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionLifecycle(t *testing.T) {
	s, _ := setupStore(t)
	userID := createTestUser(t, s, "alice")

	session, err := s.CreateSession(userID, time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)

	got, err := s.GetSession(session.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)

	require.NoError(t, s.RevokeSession(session.ID))

	_, err = s.GetSession(session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	// Revoking again is a not-found.
	err = s.RevokeSession(session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetSessionExpired(t *testing.T) {
	s, _ := setupStore(t)
	userID := createTestUser(t, s, "alice")

	session, err := s.CreateSession(userID, -time.Minute)
	require.NoError(t, err)

	_, err = s.GetSession(session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestGetSessionUnknown(t *testing.T) {
	s, _ := setupStore(t)

	_, err := s.GetSession("missing-session")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
