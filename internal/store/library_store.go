package store

import (
	"errors"
	"time"

	"gdsgames/backend/internal/models"

	"gorm.io/gorm"
)

// LibraryView is a library entry joined with its game and category.
type LibraryView struct {
	Game       GameView   `json:"game"`
	AddedAt    time.Time  `json:"added_at"`
	Status     string     `json:"status"`
	LastPlayed *time.Time `json:"last_played"`
	PlayTime   int64      `json:"play_time"`
}

// AddToLibrary inserts a library entry for the user. Adding a game twice is
// rejected, not silently ignored.
func (s *Store) AddToLibrary(userID, gameID string) error {
	var count int64
	if err := s.db.Model(&models.Game{}).
		Where("id = ? AND is_active = ?", gameID, true).
		Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return &NotFoundError{Kind: "game"}
	}

	if err := s.db.Model(&models.LibraryEntry{}).
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return &DuplicateError{Kind: "library entry"}
	}

	entry := models.LibraryEntry{
		UserID:  userID,
		GameID:  gameID,
		AddedAt: time.Now().UTC(),
		Status:  "owned",
	}
	if err := s.db.Create(&entry).Error; err != nil {
		// A concurrent insert for the same (user, game) loses the race at
		// the composite primary key; report it as the same duplicate.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &DuplicateError{Kind: "library entry"}
		}
		return err
	}
	return nil
}

// ListLibrary returns the user's library, most recently added first. Games
// that were deactivated after being added are filtered out.
func (s *Store) ListLibrary(userID string) ([]LibraryView, error) {
	var entries []models.LibraryEntry
	err := s.db.
		Preload("Game.Category").
		Preload("Game.Author").
		Joins("JOIN games ON games.id = library_entries.game_id").
		Where("library_entries.user_id = ? AND games.is_active = ?", userID, true).
		Order("library_entries.added_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}

	views := make([]LibraryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, LibraryView{
			Game:       newGameView(entry.Game),
			AddedAt:    entry.AddedAt,
			Status:     entry.Status,
			LastPlayed: entry.LastPlayed,
			PlayTime:   entry.PlayTime,
		})
	}
	return views, nil
}

// RemoveFromLibrary deletes the entry if present and reports whether a row
// was actually removed.
func (s *Store) RemoveFromLibrary(userID, gameID string) (bool, error) {
	result := s.db.
		Where("user_id = ? AND game_id = ?", userID, gameID).
		Delete(&models.LibraryEntry{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
