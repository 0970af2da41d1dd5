package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform response shape for every endpoint.
type Envelope struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
}

func envelope(success bool, message string, data any) Envelope {
	return Envelope{
		Success:   success,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Data:      data,
	}
}

// OK writes a success envelope.
func OK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, envelope(true, message, data))
}

// Fail writes a failure envelope.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, envelope(false, message, nil))
}

// AbortFail writes a failure envelope and stops the handler chain. Used by
// middleware.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, envelope(false, message, nil))
}

// FailFromError maps a store error to an HTTP status. Unexpected errors are
// logged and collapsed into a generic 500 so no internal detail leaks.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrInvalidInput), errors.Is(err, store.ErrConstraint):
		Fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrDuplicate):
		Fail(c, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrNotFound):
		Fail(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("internal error: %v", err)
		Fail(c, http.StatusInternalServerError, "internal server error")
	}
}
