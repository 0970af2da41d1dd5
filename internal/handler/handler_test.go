package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gdsgames/backend/internal/auth"
	"gdsgames/backend/internal/config"
	"gdsgames/backend/internal/database"
	"gdsgames/backend/internal/handler"
	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type envelope struct {
	Success   bool           `json:"success"`
	Message   string         `json:"message"`
	Timestamp string         `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// setupRouter wires the full API against a seeded in-memory database,
// mirroring the route table in cmd/server.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	catalog := store.New(db)

	authHandler := &handler.AuthHandler{Store: catalog}
	gameHandler := &handler.GameHandler{Store: catalog}
	libraryHandler := &handler.LibraryHandler{Store: catalog}
	chatHandler := &handler.ChatHandler{Store: catalog}
	categoryHandler := &handler.CategoryHandler{Store: catalog}
	statsHandler := &handler.StatsHandler{Store: catalog}

	router := gin.New()
	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/games", gameHandler.List)
		api.GET("/games/:id", gameHandler.Get)
		api.GET("/categories", categoryHandler.List)
		api.GET("/chat/messages", chatHandler.List)
		api.GET("/stats", statsHandler.Get)

		authed := api.Group("")
		authed.Use(auth.AuthMiddleware(catalog))
		{
			authed.POST("/logout", authHandler.Logout)
			authed.GET("/me", authHandler.Me)
			authed.POST("/games", gameHandler.Create)
			authed.POST("/games/:id/play", gameHandler.Play)
			authed.GET("/library", libraryHandler.List)
			authed.POST("/library/:id", libraryHandler.Add)
			authed.DELETE("/library/:id", libraryHandler.Remove)
			authed.POST("/chat/messages", chatHandler.Send)
		}

		admin := api.Group("/admin")
		admin.Use(auth.AuthMiddleware(catalog), auth.AdminMiddleware(catalog))
		{
			admin.DELETE("/games/:id", gameHandler.Deactivate)
			admin.DELETE("/chat/messages/:id", chatHandler.Delete)
		}
	}
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body any, bearer string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

// login returns a bearer token for the given credentials.
func login(t *testing.T, router *gin.Engine, loginField, password string) string {
	t.Helper()

	w, env := doRequest(t, router, http.MethodPost, "/api/login", gin.H{
		"login":    loginField,
		"password": password,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	return env.Data["token"].(string)
}

func TestRegisterLoginGameLibraryFlow(t *testing.T) {
	router := setupRouter(t)

	// Register.
	w, env := doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "bob3",
		"email":    "bob3@x.com",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "bob3", env.Data["username"])
	assert.NotEmpty(t, env.Data["user_id"])

	// Registering the same username again conflicts.
	w, env = doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "bob3",
		"email":    "other@x.com",
		"password": "secret1",
	}, "")
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.False(t, env.Success)

	// Wrong password yields nothing.
	w, _ = doRequest(t, router, http.MethodPost, "/api/login", gin.H{
		"login":    "bob3",
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Correct password returns a token and a hash-free user view.
	w, env = doRequest(t, router, http.MethodPost, "/api/login", gin.H{
		"login":    "bob3",
		"password": "secret1",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	user := env.Data["user"].(map[string]any)
	assert.Equal(t, false, user["is_admin"])
	assert.NotContains(t, user, "password_hash")
	bearer := env.Data["token"].(string)

	// Add a game.
	w, env = doRequest(t, router, http.MethodPost, "/api/games", gin.H{
		"title":       "Puzzle X",
		"description": "slide the tiles",
		"category":    "puzzle",
		"image_url":   "http://img.example/puzzle-x.png",
		"game_url":    "http://play.example/puzzle-x",
	}, bearer)
	require.Equal(t, http.StatusCreated, w.Code)
	game := env.Data["game"].(map[string]any)
	gameID := game["id"].(string)
	assert.Equal(t, "puzzle", game["category_name"])

	// It shows up in the category listing.
	w, env = doRequest(t, router, http.MethodGet, "/api/games?category=puzzle", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	games := env.Data["games"].([]any)
	require.Len(t, games, 1)
	assert.Equal(t, gameID, games[0].(map[string]any)["id"])

	// Add to library, then list it.
	w, _ = doRequest(t, router, http.MethodPost, "/api/library/"+gameID, nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w, env = doRequest(t, router, http.MethodGet, "/api/library", nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, env.Data["count"])

	// Second add conflicts; remove works exactly once.
	w, _ = doRequest(t, router, http.MethodPost, "/api/library/"+gameID, nil, bearer)
	assert.Equal(t, http.StatusConflict, w.Code)

	w, _ = doRequest(t, router, http.MethodDelete, "/api/library/"+gameID, nil, bearer)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodDelete, "/api/library/"+gameID, nil, bearer)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthRequired(t *testing.T) {
	router := setupRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/me", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, env.Success)

	w, _ = doRequest(t, router, http.MethodGet, "/api/me", nil, "garbage-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesSession(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "carol",
		"email":    "carol@x.com",
		"password": "secret1",
	}, "")
	bearer := login(t, router, "carol", "secret1")

	w, _ := doRequest(t, router, http.MethodGet, "/api/me", nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/logout", nil, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	// The token itself is still well-formed, but the session is gone.
	w, _ = doRequest(t, router, http.MethodGet, "/api/me", nil, bearer)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPlayRegistersAndFillsLibrary(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "dave",
		"email":    "dave@x.com",
		"password": "secret1",
	}, "")
	bearer := login(t, router, "dave", "secret1")

	_, env := doRequest(t, router, http.MethodPost, "/api/games", gin.H{
		"title":       "Space Race",
		"description": "go fast",
		"category":    "racing",
		"image_url":   "http://img.example/space-race.png",
		"game_url":    "http://play.example/space-race",
	}, bearer)
	gameID := env.Data["game"].(map[string]any)["id"].(string)

	// Playing twice keeps a single library entry but counts both plays.
	for i := 0; i < 2; i++ {
		w, env := doRequest(t, router, http.MethodPost, "/api/games/"+gameID+"/play", nil, bearer)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Space Race", env.Data["title"])
	}

	_, env = doRequest(t, router, http.MethodGet, "/api/library", nil, bearer)
	assert.EqualValues(t, 1, env.Data["count"])

	_, env = doRequest(t, router, http.MethodGet, "/api/games/"+gameID, nil, "")
	assert.EqualValues(t, 2, env.Data["play_count"])

	w, _ := doRequest(t, router, http.MethodPost, "/api/games/missing-id/play", nil, bearer)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatEndpoints(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "erin",
		"email":    "erin@x.com",
		"password": "secret1",
	}, "")
	bearer := login(t, router, "erin", "secret1")

	w, _ := doRequest(t, router, http.MethodPost, "/api/chat/messages", gin.H{"message": "hello"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/chat/messages", gin.H{"message": "hello"}, bearer)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodPost, "/api/chat/messages", gin.H{"message": "   "}, bearer)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, env := doRequest(t, router, http.MethodGet, "/api/chat/messages", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	messages := env.Data["messages"].([]any)
	require.Len(t, messages, 1)
	assert.Equal(t, "hello", messages[0].(map[string]any)["message"])
	assert.Equal(t, "erin", messages[0].(map[string]any)["username"])
}

func TestAdminGate(t *testing.T) {
	router := setupRouter(t)

	doRequest(t, router, http.MethodPost, "/api/register", gin.H{
		"username": "frank",
		"email":    "frank@x.com",
		"password": "secret1",
	}, "")
	userBearer := login(t, router, "frank", "secret1")

	_, env := doRequest(t, router, http.MethodPost, "/api/games", gin.H{
		"title":       "Doomed Game",
		"description": "soon gone",
		"category":    "action",
		"image_url":   "http://img.example/doomed.png",
		"game_url":    "http://play.example/doomed",
	}, userBearer)
	gameID := env.Data["game"].(map[string]any)["id"].(string)

	// Regular users cannot reach admin routes.
	w, _ := doRequest(t, router, http.MethodDelete, "/api/admin/games/"+gameID, nil, userBearer)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The seeded admin can.
	adminBearer := login(t, router, "admin", "admin123")
	w, _ = doRequest(t, router, http.MethodDelete, "/api/admin/games/"+gameID, nil, adminBearer)
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = doRequest(t, router, http.MethodGet, "/api/games/"+gameID, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoriesAndStats(t *testing.T) {
	router := setupRouter(t)

	w, env := doRequest(t, router, http.MethodGet, "/api/categories", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	categories := env.Data["categories"].([]any)
	require.Len(t, categories, 8)
	assert.Equal(t, "action", categories[0].(map[string]any)["name"], "alphabetical order")

	w, env = doRequest(t, router, http.MethodGet, "/api/stats", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, env.Data["total_users"])
	assert.Nil(t, env.Data["popular_game"])
}
