package store

import "gdsgames/backend/internal/models"

// CategoryView is the public shape of a catalog category.
type CategoryView struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// ListCategories returns all categories, alphabetical by name.
func (s *Store) ListCategories() ([]CategoryView, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}

	views := make([]CategoryView, 0, len(categories))
	for _, cat := range categories {
		views = append(views, CategoryView{
			ID:          cat.ID,
			Name:        cat.Name,
			Description: cat.Description,
			Color:       cat.Color,
		})
	}
	return views, nil
}
