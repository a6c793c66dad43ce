package main

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"shortlink/config"
	"shortlink/db"
	_ "shortlink/docs" // Import docs for Swagger
	"shortlink/handlers"
	"shortlink/middleware"
	"shortlink/shortener"
)

// @title Shortlink API
// @version 1.0
// @description API for shortening URLs, resolving redirects with expiry and access limits, and tracking per-visit statistics
// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := config.Load()

	database, err := db.InitDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	log.Println("Successfully connected to PostgreSQL database")

	generator := shortener.NewGenerator(database, database, cfg.CodeLength)
	engine := shortener.NewEngine(database, database, generator)
	resolver := shortener.NewResolver(database, database)
	h := handlers.New(engine, resolver)

	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.Default())

	// Add Swagger documentation route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1/shorten")
	{
		api.POST("", h.Shorten)
		api.GET("/:code", h.Redirect)
		api.GET("/:code/details", h.Details)
		api.PUT("/:code", h.Update)
		api.DELETE("/:code", h.Delete)
		api.GET("/:code/stats", h.Stats)
	}

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Shortlink API", "docs": "/swagger/index.html"})
	})

	log.Println("Server is running on port", cfg.Port)
	log.Println("Swagger documentation available at: http://localhost:" + cfg.Port + "/swagger/index.html")

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
