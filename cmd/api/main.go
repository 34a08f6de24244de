package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/yt-dashboard/internal/api"
	"github.com/yt-dashboard/internal/config"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize YouTube API client
	client, err := api.NewYouTubeClient(context.Background(), cfg.YouTubeAPIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube API: %v", err)
	}

	server := api.NewServer(cfg, client)

	log.Printf("Server starting on port %s (fetch on load: %t, top videos: %d)",
		cfg.Port, cfg.FetchOnLoad, cfg.TopVideosLimit)
	if err := server.Start(cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
