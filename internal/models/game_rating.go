package models

import "time"

// GameRating stores a per-user 1-5 star rating with an optional review.
// The table is migrated alongside the rest of the schema; no store
// operation writes to it yet.
type GameRating struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    string `gorm:"size:36;not null;uniqueIndex:idx_game_ratings_user_game"`
	GameID    string `gorm:"size:36;not null;uniqueIndex:idx_game_ratings_user_game;index"`
	Rating    int    `gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review    *string
	CreatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
