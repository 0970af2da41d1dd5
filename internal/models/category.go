package models

// Category is a fixed catalog bucket (e.g. "puzzle", "rpg"). The full set
// is seeded on first initialization and is immutable afterwards.
type Category struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string
	Color       string `gorm:"size:7;not null;default:'#6c5ce7'"`
}
