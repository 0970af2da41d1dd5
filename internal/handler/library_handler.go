package handler

import (
	"net/http"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// LibraryHandler serves the per-user game library endpoints.
type LibraryHandler struct {
	Store *store.Store
}

// List godoc
// @Summary      Get the caller's library
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /library [get]
func (h *LibraryHandler) List(c *gin.Context) {
	userID, _ := c.Get("userID")

	entries, err := h.Store.ListLibrary(userID.(string))
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "user library", gin.H{
		"games": entries,
		"count": len(entries),
	})
}

// Add godoc
// @Summary      Add a game to the caller's library
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Failure      409  {object}  Envelope
// @Router       /library/{id} [post]
func (h *LibraryHandler) Add(c *gin.Context) {
	userID, _ := c.Get("userID")

	if err := h.Store.AddToLibrary(userID.(string), c.Param("id")); err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, http.StatusOK, "game added to library", nil)
}

// Remove godoc
// @Summary      Remove a game from the caller's library
// @Tags         library
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /library/{id} [delete]
func (h *LibraryHandler) Remove(c *gin.Context) {
	userID, _ := c.Get("userID")

	removed, err := h.Store.RemoveFromLibrary(userID.(string), c.Param("id"))
	if err != nil {
		FailFromError(c, err)
		return
	}
	if !removed {
		Fail(c, http.StatusNotFound, "game not found in library")
		return
	}
	OK(c, http.StatusOK, "game removed from library", nil)
}
