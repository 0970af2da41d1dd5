package models

import "time"

// Game represents a catalog entry. A user cannot add two games with the
// same title, hence the composite unique index on (title, added_by).
type Game struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"size:255;not null;uniqueIndex:idx_games_title_added_by"`
	Description string    `gorm:"not null"`
	CategoryID  uint      `gorm:"not null;index"`
	ImageURL    string    `gorm:"size:512;not null"`
	GameURL     string    `gorm:"size:512;not null"`
	AddedBy     string    `gorm:"size:36;not null;uniqueIndex:idx_games_title_added_by"`
	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	IsActive    bool    `gorm:"not null;default:true"`
	PlayCount   int64   `gorm:"not null;default:0"`
	Rating      float64 `gorm:"not null;default:0"`

	Category Category `gorm:"foreignKey:CategoryID"`
	Author   User     `gorm:"foreignKey:AddedBy;references:ID"`
}
