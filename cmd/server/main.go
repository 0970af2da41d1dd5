package main

import (
	"fmt"
	"log"
	"net/http"

	"gdsgames/backend/internal/auth"
	"gdsgames/backend/internal/config"
	"gdsgames/backend/internal/database"
	"gdsgames/backend/internal/handler"
	"gdsgames/backend/internal/store"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gdsgames/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           GDS Games API
// @version         1.0
// @description     REST API for the GDS casual-games catalog.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	db, err := database.Connect(config.AppConfig)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	catalog := store.New(db)

	authHandler := &handler.AuthHandler{Store: catalog}
	gameHandler := &handler.GameHandler{Store: catalog}
	libraryHandler := &handler.LibraryHandler{Store: catalog}
	chatHandler := &handler.ChatHandler{Store: catalog}
	categoryHandler := &handler.CategoryHandler{Store: catalog}
	statsHandler := &handler.StatsHandler{Store: catalog}

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api")
	{
		// Auth routes
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// Public catalog routes
		api.GET("/games", gameHandler.List)
		api.GET("/games/:id", gameHandler.Get)
		api.GET("/categories", categoryHandler.List)
		api.GET("/chat/messages", chatHandler.List)
		api.GET("/stats", statsHandler.Get)

		// Authenticated routes
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

		// Admin routes (protected by auth and admin check)
		admin := api.Group("/admin")
		admin.Use(auth.AuthMiddleware(catalog), auth.AdminMiddleware(catalog))
		{
			admin.DELETE("/games/:id", gameHandler.Deactivate)
			admin.DELETE("/chat/messages/:id", chatHandler.Delete)
		}
	}

	addr := ":" + config.AppConfig.ServerPort
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
