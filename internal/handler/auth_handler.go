package handler

import (
	"errors"
	"net/http"
	"time"

	"gdsgames/backend/internal/store"
	"gdsgames/backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// SessionTTL is how long a login session stays valid.
const SessionTTL = 7 * 24 * time.Hour

// AuthHandler serves registration, login and session endpoints.
type AuthHandler struct {
	Store *store.Store
}

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Email    string `json:"email" binding:"required" example:"test@example.com"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Login    string `json:"login" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a new user account.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      409  {object}  Envelope
// @Router       /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "username, email and password are required")
		return
	}

	userID, err := h.Store.CreateUser(input.Username, input.Email, input.Password)
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusCreated, "user created", gin.H{
		"user_id":  userID,
		"username": input.Username,
	})
}

// Login godoc
// @Summary      Log in a user
// @Description  Authenticates by username or email, opens a session and returns a bearer token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  Envelope
// @Failure      400  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "login and password are required")
		return
	}

	user, err := h.Store.Authenticate(input.Login, input.Password)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			Fail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		FailFromError(c, err)
		return
	}

	session, err := h.Store.CreateSession(user.ID, SessionTTL)
	if err != nil {
		FailFromError(c, err)
		return
	}

	signed, err := token.Generate(user.ID, session.ID, SessionTTL)
	if err != nil {
		FailFromError(c, err)
		return
	}

	OK(c, http.StatusOK, "login successful", gin.H{
		"token": signed,
		"user":  user,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current session.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, _ := c.Get("sessionID")
	if err := h.Store.RevokeSession(sessionID.(string)); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			FailFromError(c, err)
			return
		}
	}
	OK(c, http.StatusOK, "logout successful", nil)
}

// Me godoc
// @Summary      Get current user's info
// @Description  Returns the public profile of the authenticated user.
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Envelope
// @Failure      401  {object}  Envelope
// @Failure      404  {object}  Envelope
// @Router       /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("userID")

	user, err := h.Store.GetUserByID(userID.(string))
	if err != nil {
		FailFromError(c, err)
		return
	}
	OK(c, http.StatusOK, "current user", user)
}
