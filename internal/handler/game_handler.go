package handler

import (
	"errors"
	"net/http"
	"strconv"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// GameHandler serves the public catalog and game creation endpoints.
type GameHandler struct {
	Store *store.Store
}

// GameInput defines the structure for adding a game to the catalog.
type GameInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Category    string `json:"category" binding:"required"`
	ImageURL    string `json:"image_url" binding:"required"`
	GameURL     string `json:"game_url" binding:"required"`
}

// List godoc
// @Summary      List games
// @Description  Lists active games, newest first, with optional search and category filters.
// @Tags         games
// @Produce      json
// @Param        search   query  string  false  "Substring match on title or description"
// @Param        category query  string  false  "Exact category name"
// @Param        limit    query  int     false  "Page size" default(50)
// @Param        offset   query  int     false  "Rows to skip" default(0)
// @Success      200  {object}  Envelope
// @Router       /games [get]
func (h *GameHandler) List(c *gin.Context) {
	search := c.Query("search")
	category := c.Query("category")

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		offset = 0
	}

	games, err := h.Store.ListGames(search, category, limit, offset)
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "games found", gin.H{
		"games":    games,
		"count":    len(games),
		"search":   search,
		"category": category,
	})
}

// Get godoc
// @Summary      Get a game by ID
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /games/{id} [get]
func (h *GameHandler) Get(c *gin.Context) {
	game, err := h.Store.GetGameByID(c.Param("id"))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, http.StatusOK, "game found", game)
}

// Create godoc
// @Summary      Add a game to the catalog
// @Tags         games
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body GameInput true "Game Info"
// @Success      201  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      409  {object}  Envelope
// @Router       /games [post]
func (h *GameHandler) Create(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input GameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "all fields are required")
		return
	}

	gameID, err := h.Store.AddGame(
		input.Title,
		input.Description,
		input.Category,
		input.ImageURL,
		input.GameURL,
		userID.(string),
	)
	if err != nil {
		FailFromError(c, err)
		return
	}

	game, err := h.Store.GetGameByID(gameID)
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusCreated, "game added", gin.H{"game": game})
}

// Play godoc
// @Summary      Register a play
// @Description  Increments the play counter and adds the game to the caller's library if not already there.
// @Tags         games
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /games/{id}/play [post]
func (h *GameHandler) Play(c *gin.Context) {
	userID, _ := c.Get("userID")
	gameID := c.Param("id")

	game, err := h.Store.GetGameByID(gameID)
	if err != nil {
		FailFromError(c, err)
		return
	}

	if err := h.Store.IncrementPlayCount(gameID); err != nil {
		FailFromError(c, err)
		return
	}

	// Best-effort library insert. The two writes are not transactionally
	// linked; a concurrent duplicate is absorbed here.
	if err := h.Store.AddToLibrary(userID.(string), gameID); err != nil && !errors.Is(err, store.ErrDuplicate) {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "game started", gin.H{
		"game_url": game.GameURL,
		"title":    game.Title,
	})
}

// Deactivate godoc
// @Summary      Remove a game from the catalog
// @Description  Soft-deletes a game. Admin only.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Game ID"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /admin/games/{id} [delete]
func (h *GameHandler) Deactivate(c *gin.Context) {
	removed, err := h.Store.DeactivateGame(c.Param("id"))
	if err != nil {
		FailFromError(c, err)
		return
	}
	if !removed {
		Fail(c, http.StatusNotFound, "game not found")
		return
	}
	OK(c, http.StatusOK, "game removed from catalog", nil)
}
