package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"gdsgames/backend/internal/config"
	"gdsgames/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const seedBcryptCost = 12

// Connect opens the database for the configured driver, runs migrations and
// seeds default data. Safe to call on every startup.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch cfg.DBDriver {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.DatabaseURL)
	case "sqlite", "":
		// For SQLite the DATABASE_URL is the database file path.
		dialector = sqlite.Open(cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := Seed(db); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	return db, nil
}

// Migrate creates all tables and indexes if absent.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Game{},
		&models.LibraryEntry{},
		&models.ChatMessage{},
		&models.GameRating{},
		&models.Session{},
	)
}

// Seed inserts the fixed category set and the default administrator account.
// An empty categories table is the "database not yet populated" signal; once
// any category exists the whole step is skipped.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "action", Description: "Action and arcade games", Color: "#e74c3c"},
		{Name: "adventure", Description: "Adventure and exploration games", Color: "#3498db"},
		{Name: "strategy", Description: "Strategy and planning games", Color: "#9b59b6"},
		{Name: "racing", Description: "Racing and speed games", Color: "#f39c12"},
		{Name: "puzzle", Description: "Puzzle and logic games", Color: "#2ecc71"},
		{Name: "rpg", Description: "Role-playing games", Color: "#e67e22"},
		{Name: "sports", Description: "Sports games", Color: "#1abc9c"},
		{Name: "simulation", Description: "Simulation games", Color: "#34495e"},
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), seedBcryptCost)
	if err != nil {
		return err
	}
	admin := models.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		Email:        "admin@gdsgames.com",
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
		IsActive:     true,
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Println("Default categories and admin account seeded.")
	return nil
}
