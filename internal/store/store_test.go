package store_test

import (
	"testing"
	"time"

	"gdsgames/backend/internal/database"
	"gdsgames/backend/internal/models"
	"gdsgames/backend/internal/store"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupStore creates a migrated and seeded in-memory SQLite database. The
// raw handle is returned too so tests can adjust rows directly.
func setupStore(t *testing.T) (*store.Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	return store.New(db), db
}

// createTestUser registers a user and returns its ID.
func createTestUser(t *testing.T, s *store.Store, username string) string {
	t.Helper()

	id, err := s.CreateUser(username, username+"@example.com", "secret1")
	require.NoError(t, err)
	return id
}

// createTestGame adds a game in the given category and returns its ID.
func createTestGame(t *testing.T, s *store.Store, title, category, userID string) string {
	t.Helper()

	id, err := s.AddGame(title, "a test game", category, "http://img.example/"+title, "http://play.example/"+title, userID)
	require.NoError(t, err)
	return id
}

// setGameCreatedAt pins a game's creation time so ordering tests are not at
// the mercy of sub-millisecond timestamps.
func setGameCreatedAt(t *testing.T, db *gorm.DB, gameID string, at time.Time) {
	t.Helper()

	err := db.Model(&models.Game{}).Where("id = ?", gameID).UpdateColumn("created_at", at).Error
	require.NoError(t, err)
}
