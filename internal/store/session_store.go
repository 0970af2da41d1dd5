package store

import (
	"errors"
	"time"

	"gdsgames/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreateSession opens a new login session for the user.
func (s *Store) CreateSession(userID string, ttl time.Duration) (*models.Session, error) {
	now := time.Now().UTC()
	session := models.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		IsActive:  true,
	}
	if err := s.db.Create(&session).Error; err != nil {
		return nil, err
	}
	return &session, nil
}

// GetSession returns the session only while it is active and unexpired.
func (s *Store) GetSession(id string) (*models.Session, error) {
	var session models.Session
	err := s.db.Where("id = ?", id).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Kind: "session"}
	}
	if err != nil {
		return nil, err
	}
	if !session.IsActive || session.ExpiresAt.Before(time.Now().UTC()) {
		return nil, &NotFoundError{Kind: "session"}
	}
	return &session, nil
}

// RevokeSession deactivates a session. Revoking an unknown or already
// revoked session is a not-found.
func (s *Store) RevokeSession(id string) error {
	result := s.db.Model(&models.Session{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Kind: "session"}
	}
	return nil
}
