package handler

import (
	"net/http"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// CategoryHandler serves the read-only category listing. Categories are
// seeded at first initialization and immutable afterwards.
type CategoryHandler struct {
	Store *store.Store
}

// List godoc
// @Summary      List categories
// @Description  Returns all catalog categories, alphabetical by name.
// @Tags         categories
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.Store.ListCategories()
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "categories found", gin.H{
		"categories": categories,
	})
}
