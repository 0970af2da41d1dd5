package store

import (
	"errors"
	"strings"
	"time"

	"gdsgames/backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameView is the denormalized catalog row: game columns joined with its
// category and the username of the user who added it.
type GameView struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	CategoryID      uint      `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	CategoryColor   string    `json:"category_color"`
	ImageURL        string    `json:"image_url"`
	GameURL         string    `json:"game_url"`
	AddedBy         string    `json:"added_by"`
	AddedByUsername string    `json:"added_by_username"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	PlayCount       int64     `json:"play_count"`
	Rating          float64   `json:"rating"`
}

func newGameView(game models.Game) GameView {
	return GameView{
		ID:              game.ID,
		Title:           game.Title,
		Description:     game.Description,
		CategoryID:      game.CategoryID,
		CategoryName:    game.Category.Name,
		CategoryColor:   game.Category.Color,
		ImageURL:        game.ImageURL,
		GameURL:         game.GameURL,
		AddedBy:         game.AddedBy,
		AddedByUsername: game.Author.Username,
		CreatedAt:       game.CreatedAt,
		UpdatedAt:       game.UpdatedAt,
		PlayCount:       game.PlayCount,
		Rating:          game.Rating,
	}
}

// AddGame validates and inserts a new catalog entry, returning the new ID.
// The category is matched by exact name.
func (s *Store) AddGame(title, description, category, imageURL, gameURL, addedBy string) (string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	category = strings.TrimSpace(category)
	imageURL = strings.TrimSpace(imageURL)
	gameURL = strings.TrimSpace(gameURL)

	for _, field := range []struct{ name, value string }{
		{"title", title},
		{"description", description},
		{"category", category},
		{"image_url", imageURL},
		{"game_url", gameURL},
	} {
		if field.value == "" {
			return "", &InvalidInputError{Field: field.name, Reason: "is required"}
		}
	}

	var cat models.Category
	err := s.db.Where("name = ?", category).First(&cat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &ConstraintError{Kind: "category"}
	}
	if err != nil {
		return "", err
	}

	var count int64
	if err := s.db.Model(&models.Game{}).
		Where("title = ? AND added_by = ?", title, addedBy).
		Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", &DuplicateError{Kind: "game title"}
	}

	now := time.Now().UTC()
	game := models.Game{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		CategoryID:  cat.ID,
		ImageURL:    imageURL,
		GameURL:     gameURL,
		AddedBy:     addedBy,
		CreatedAt:   now,
		UpdatedAt:   now,
		IsActive:    true,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return "", err
	}
	return game.ID, nil
}

// ListGames returns active games, newest first. search matches the title or
// description case-insensitively; category filters by exact name.
func (s *Store) ListGames(search, category string, limit, offset int) ([]GameView, error) {
	query := s.db.Model(&models.Game{}).
		Preload("Category").
		Preload("Author").
		Where("games.is_active = ?", true)

	if search != "" {
		term := "%" + strings.ToLower(search) + "%"
		query = query.Where("lower(games.title) LIKE ? OR lower(games.description) LIKE ?", term, term)
	}
	if category != "" {
		query = query.
			Joins("JOIN categories ON categories.id = games.category_id").
			Where("categories.name = ?", category)
	}

	var games []models.Game
	if err := query.
		Order("games.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&games).Error; err != nil {
		return nil, err
	}

	views := make([]GameView, 0, len(games))
	for _, game := range games {
		views = append(views, newGameView(game))
	}
	return views, nil
}

// GetGameByID returns the denormalized view of a single active game.
func (s *Store) GetGameByID(id string) (*GameView, error) {
	var game models.Game
	err := s.db.
		Preload("Category").
		Preload("Author").
		Where("id = ? AND is_active = ?", id, true).
		First(&game).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Kind: "game"}
	}
	if err != nil {
		return nil, err
	}
	view := newGameView(game)
	return &view, nil
}

// IncrementPlayCount bumps the play counter. Repeated calls increment
// repeatedly; there is no dedup.
func (s *Store) IncrementPlayCount(id string) error {
	result := s.db.Model(&models.Game{}).
		Where("id = ?", id).
		UpdateColumn("play_count", gorm.Expr("play_count + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Kind: "game"}
	}
	return nil
}

// DeactivateGame soft-deletes a game, hiding it from the catalog and from
// every library listing. Returns whether a row was flipped.
func (s *Store) DeactivateGame(id string) (bool, error) {
	result := s.db.Model(&models.Game{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
