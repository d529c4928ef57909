package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Sill-Liu/test-platform/internal/auth"
	"github.com/Sill-Liu/test-platform/internal/handlers"
	"github.com/Sill-Liu/test-platform/internal/mocknet"
	"github.com/Sill-Liu/test-platform/internal/router"
	"github.com/Sill-Liu/test-platform/internal/store"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT secret: %v", err)
	}

	s := store.New()
	defer s.Close()

	// Cascade results feed the per-project websocket channel.
	s.Iterations.OnProgress = handlers.BroadcastProgress

	latency := 300 * time.Millisecond
	if raw := os.Getenv("MOCK_LATENCY_MS"); raw != "" {
		ms, err := strconv.Atoi(raw)
		if err != nil || ms < 0 {
			log.Fatalf("Invalid MOCK_LATENCY_MS: %q", raw)
		}
		latency = time.Duration(ms) * time.Millisecond
	}

	handlers.Init(s, mocknet.NewClient(latency))

	r := router.NewRouter(s)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
