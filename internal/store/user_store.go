package store

import (
	"errors"
	"regexp"
	"time"
	"unicode/utf8"

	"gdsgames/backend/internal/models"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const bcryptCost = 12

var (
	usernameRegex = regexp.MustCompile(`^[A-Za-z0-9_]{3,20}$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
)

// UserView is the public projection of a user. It never carries the
// password hash.
type UserView struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	IsAdmin      bool       `json:"is_admin"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
	ProfileImage *string    `json:"profile_image,omitempty"`
	Bio          *string    `json:"bio,omitempty"`
}

func newUserView(user models.User) *UserView {
	return &UserView{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		IsAdmin:      user.IsAdmin,
		CreatedAt:    user.CreatedAt,
		LastLogin:    user.LastLogin,
		ProfileImage: user.ProfileImage,
		Bio:          user.Bio,
	}
}

// CreateUser validates and registers a new user, returning the new ID.
func (s *Store) CreateUser(username, email, password string) (string, error) {
	if !usernameRegex.MatchString(username) {
		return "", &InvalidInputError{Field: "username", Reason: "use only letters, numbers and _ (3-20 characters)"}
	}
	if !emailRegex.MatchString(email) {
		return "", &InvalidInputError{Field: "email", Reason: "invalid email address"}
	}
	if utf8.RuneCountInString(password) < 6 {
		return "", &InvalidInputError{Field: "password", Reason: "must be at least 6 characters"}
	}

	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", &DuplicateError{Kind: "username or email"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		ID:           uuid.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}
	return user.ID, nil
}

// Authenticate verifies the password for an active user matched by username
// or email. Missing user and wrong password are indistinguishable to the
// caller: both yield a not-found error.
func (s *Store) Authenticate(login, password string) (*UserView, error) {
	var user models.User
	err := s.db.
		Where("(username = ? OR email = ?) AND is_active = ?", login, login, true).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Kind: "user"}
	}
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, &NotFoundError{Kind: "user"}
	}

	now := time.Now().UTC()
	if err := s.db.Model(&user).Update("last_login", now).Error; err != nil {
		return nil, err
	}
	user.LastLogin = &now

	return newUserView(user), nil
}

// GetUserByID returns the public projection of an active user.
func (s *Store) GetUserByID(id string) (*UserView, error) {
	var user models.User
	err := s.db.Where("id = ? AND is_active = ?", id, true).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Kind: "user"}
	}
	if err != nil {
		return nil, err
	}
	return newUserView(user), nil
}
