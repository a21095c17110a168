package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aribzeeshan2446/NutriSnap/internal/entry"
	"github.com/aribzeeshan2446/NutriSnap/internal/inference"
	"github.com/aribzeeshan2446/NutriSnap/internal/settings"
	"github.com/aribzeeshan2446/NutriSnap/internal/stats"
)

// New registers every route on a fresh engine. main wires the
// dependencies; tests can pass fakes.
func New(
	inferenceHandler *inference.Handler,
	entryHandler *entry.Handler,
	settingsHandler *settings.Handler,
	statsHandler *stats.Handler,
) *gin.Engine {

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Inference
	r.POST("/estimate", inferenceHandler.Estimate)
	r.POST("/chat", inferenceHandler.Chat)

	// Calorie log
	entries := r.Group("/entries")
	{
		entries.POST("", entryHandler.Create)
		entries.GET("", entryHandler.List)
		entries.PUT("/:id", entryHandler.Update)
		entries.DELETE("/:id", entryHandler.Delete)
	}

	// Settings
	r.GET("/settings", settingsHandler.Get)
	r.PUT("/settings", settingsHandler.Put)

	// Aggregates
	statsGroup := r.Group("/stats")
	{
		statsGroup.GET("/today", statsHandler.Today)
		statsGroup.GET("/daily", statsHandler.Daily)
		statsGroup.GET("/weekly", statsHandler.Weekly)
		statsGroup.GET("/monthly", statsHandler.Monthly)
	}

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
