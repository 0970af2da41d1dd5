// Package store is the catalog's system of record. Every mutation and query
// goes through a Store; handlers never touch the database directly.
package store

import "gorm.io/gorm"

// Store owns all persisted state for users, games, categories, libraries,
// chat and sessions.
type Store struct {
	db *gorm.DB
}

// New creates a Store on top of an already migrated database.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
