package handler

import (
	"net/http"
	"strconv"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the poll-based community chat endpoints.
type ChatHandler struct {
	Store *store.Store
}

// MessageInput defines the structure for sending a chat message.
type MessageInput struct {
	Message string `json:"message" binding:"required"`
}

// List godoc
// @Summary      Get recent chat messages
// @Description  Returns the most recent messages in chronological (oldest-first) order.
// @Tags         chat
// @Produce      json
// @Param        limit query int false "Number of messages" default(50)
// @Success      200  {object}  Envelope
// @Router       /chat/messages [get]
func (h *ChatHandler) List(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}
	if limit > 100 {
		limit = 100 // Max limit
	}

	messages, err := h.Store.ListMessages(limit)
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "chat messages", gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

// Send godoc
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body MessageInput true "Message"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /chat/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input MessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "message cannot be empty")
		return
	}

	if err := h.Store.SendMessage(userID.(string), input.Message); err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, http.StatusOK, "message sent", nil)
}

// Delete godoc
// @Summary      Delete a chat message
// @Description  Soft-deletes a message. Admin only.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Message ID"
// @Success      200  {object}  Envelope
// @Failure      403  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /admin/chat/messages/{id} [delete]
func (h *ChatHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		Fail(c, http.StatusBadRequest, "invalid message ID")
		return
	}

	removed, err := h.Store.DeleteMessage(uint(id))
	if err != nil {
		FailFromError(c, err)
		return
	}
	if !removed {
		Fail(c, http.StatusNotFound, "message not found")
		return
	}
	OK(c, http.StatusOK, "message deleted", nil)
}
