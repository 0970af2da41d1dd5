package store

import "gdsgames/backend/internal/models"

// PopularGame is the single most-played game in the catalog.
type PopularGame struct {
	Title     string `json:"title"`
	PlayCount int64  `json:"play_count"`
}

// Stats holds platform-wide counters.
type Stats struct {
	TotalUsers    int64        `json:"total_users"`
	TotalGames    int64        `json:"total_games"`
	TotalMessages int64        `json:"total_messages"`
	PopularGame   *PopularGame `json:"popular_game"`
}

// GetStats counts active users, active games and non-deleted messages, and
// finds the game with the highest play count. PopularGame is nil when the
// catalog is empty.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	if err := s.db.Model(&models.User{}).
		Where("is_active = ?", true).
		Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Game{}).
		Where("is_active = ?", true).
		Count(&stats.TotalGames).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.ChatMessage{}).
		Where("is_deleted = ?", false).
		Count(&stats.TotalMessages).Error; err != nil {
		return nil, err
	}

	var popular PopularGame
	result := s.db.Model(&models.Game{}).
		Select("title, play_count").
		Where("is_active = ?", true).
		Order("play_count DESC").
		Limit(1).
		Scan(&popular)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected > 0 {
		stats.PopularGame = &popular
	}

	return stats, nil
}
