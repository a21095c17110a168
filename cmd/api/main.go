package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/aribzeeshan2446/NutriSnap/internal/entry"
	"github.com/aribzeeshan2446/NutriSnap/internal/inference"
	"github.com/aribzeeshan2446/NutriSnap/internal/llm"
	"github.com/aribzeeshan2446/NutriSnap/internal/router"
	"github.com/aribzeeshan2446/NutriSnap/internal/settings"
	"github.com/aribzeeshan2446/NutriSnap/internal/stats"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"GEMINI_API_KEY",
		"GEMINI_MODEL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("Missing env var: %s", k)
		}
	}

	dataDir := os.Getenv("NUTRISNAP_DATA_DIR")
	if dataDir == "" {
		dataDir = "data"
	}

	// ───────────────────────── STORES ─────────────────────────
	entryRepo, err := entry.NewFileRepository(filepath.Join(dataDir, "calorie-log.json"))
	if err != nil {
		log.Fatal("Failed to open calorie log:", err)
	}

	settingsStore := settings.NewStore(filepath.Join(dataDir, "settings.json"))

	// ───────────────────────── SERVICES ─────────────────────────
	llmClient := llm.NewGeminiClient()
	inferenceService := inference.NewService(llmClient)
	entryService := entry.NewService(entryRepo)

	// ───────────────────────── HANDLERS ─────────────────────────
	inferenceHandler := inference.NewHandler(inferenceService)
	entryHandler := entry.NewHandler(entryService)
	settingsHandler := settings.NewHandler(settingsStore)
	statsHandler := stats.NewHandler(entryService, settingsStore)

	// ───────────────────────── START ─────────────────────────
	r := router.New(inferenceHandler, entryHandler, settingsHandler, statsHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("NutriSnap API running at http://localhost:" + port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
