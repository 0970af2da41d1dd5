package models

import "time"

// Session is a server-side login session. The row ID doubles as the opaque
// token carried inside the bearer JWT; every authenticated call checks the
// row is still active and unexpired.
type Session struct {
	ID        string `gorm:"primaryKey;size:36"`
	UserID    string `gorm:"size:36;not null;index"`
	CreatedAt time.Time
	ExpiresAt time.Time
	IsActive  bool `gorm:"not null;default:true"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
