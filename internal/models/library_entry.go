package models

import "time"

// LibraryEntry ties a game to a user's personal library.
// The primary key is a composite of (UserID, GameID) to ensure a user has
// at most one entry per game.
type LibraryEntry struct {
	UserID     string `gorm:"primaryKey;size:36"`
	GameID     string `gorm:"primaryKey;size:36"`
	AddedAt    time.Time
	Status     string `gorm:"size:50;not null;default:'owned'"`
	LastPlayed *time.Time
	PlayTime   int64 `gorm:"not null;default:0"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Game Game `gorm:"foreignKey:GameID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
