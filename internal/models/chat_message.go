package models

import "time"

// ChatMessage is a single community chat message. Messages are never
// hard-deleted, only flagged via IsDeleted.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    string    `gorm:"size:36;not null;index"`
	Message   string    `gorm:"size:500;not null"`
	CreatedAt time.Time `gorm:"index"`
	IsDeleted bool      `gorm:"not null;default:false"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
