package models

import "time"

// User represents a registered account. Users are never hard-deleted;
// IsActive toggles visibility instead.
type User struct {
	ID           string `gorm:"primaryKey;size:36"`
	Username     string `gorm:"size:20;uniqueIndex;not null"`
	Email        string `gorm:"size:255;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	CreatedAt    time.Time
	LastLogin    *time.Time
	IsActive     bool `gorm:"not null;default:true"`
	IsAdmin      bool `gorm:"not null;default:false"`
	ProfileImage *string
	Bio          *string
}
