package store

import (
	"strings"
	"time"
	"unicode/utf8"

	"gdsgames/backend/internal/models"
)

const maxMessageLength = 500

// MessageView is a chat message joined with the sender's username.
type MessageView struct {
	ID        uint      `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// SendMessage stores a trimmed chat message.
func (s *Store) SendMessage(userID, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return &InvalidInputError{Field: "message", Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(text) > maxMessageLength {
		return &InvalidInputError{Field: "message", Reason: "too long (maximum 500 characters)"}
	}

	msg := models.ChatMessage{
		UserID:    userID,
		Message:   text,
		CreatedAt: time.Now().UTC(),
	}
	return s.db.Create(&msg).Error
}

// ListMessages returns the most recent non-deleted messages in chronological
// order. The fetch is newest-first so the limit picks the latest window; the
// slice is then reversed to the oldest-first order a chat UI expects.
func (s *Store) ListMessages(limit int) ([]MessageView, error) {
	var messages []models.ChatMessage
	err := s.db.
		Preload("User").
		Where("is_deleted = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, err
	}

	views := make([]MessageView, 0, len(messages))
	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		views = append(views, MessageView{
			ID:        msg.ID,
			UserID:    msg.UserID,
			Username:  msg.User.Username,
			Message:   msg.Message,
			CreatedAt: msg.CreatedAt,
		})
	}
	return views, nil
}

// DeleteMessage soft-deletes a chat message. Returns whether a row was
// flipped.
func (s *Store) DeleteMessage(id uint) (bool, error) {
	result := s.db.Model(&models.ChatMessage{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
