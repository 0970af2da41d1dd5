package handler

import (
	"net/http"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves platform-wide statistics.
type StatsHandler struct {
	Store *store.Store
}

// Get godoc
// @Summary      Platform statistics
// @Description  Counts of active users, active games, chat messages and the most played game.
// @Tags         stats
// @Produce      json
// @Success      200  {object}  Envelope
// @Router       /stats [get]
func (h *StatsHandler) Get(c *gin.Context) {
	stats, err := h.Store.GetStats()
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, http.StatusOK, "platform statistics", stats)
}
