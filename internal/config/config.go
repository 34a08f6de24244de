package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

var (
	ErrMissingAPIKey = errors.New("YouTube API key is required")
	ErrInvalidLimit  = errors.New("top videos limit must be between 1 and 50")
)

const (
	defaultPort           = "8080"
	defaultAllowedOrigins = "http://localhost:3000"
	defaultTopVideosLimit = 5
	maxTopVideosLimit     = 50
)

// Config holds the application configuration
type Config struct {
	YouTubeAPIKey  string
	Port           string
	AllowedOrigins []string
	TopVideosLimit int
	// FetchOnLoad controls whether the initial dashboard load queries the API
	// or waits for an explicit refresh.
	FetchOnLoad    bool
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Get YouTube API key from environment
	apiKey := strings.TrimSpace(os.Getenv("YOUTUBE_API_KEY"))
	if apiKey == "" {
		return nil, fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}

	limit := defaultTopVideosLimit
	if raw := os.Getenv("TOP_VIDEOS_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid TOP_VIDEOS_LIMIT %q: %w", raw, err)
		}
		limit = n
	}

	fetchOnLoad := true
	if raw := os.Getenv("FETCH_ON_LOAD"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid FETCH_ON_LOAD %q: %w", raw, err)
		}
		fetchOnLoad = b
	}

	origins := splitList(getEnv("ALLOWED_ORIGINS", defaultAllowedOrigins))
	if len(origins) == 0 {
		origins = []string{defaultAllowedOrigins}
	}

	cfg := &Config{
		YouTubeAPIKey:  apiKey,
		Port:           getEnv("PORT", defaultPort),
		AllowedOrigins: origins,
		TopVideosLimit: limit,
		FetchOnLoad:    fetchOnLoad,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.YouTubeAPIKey == "" {
		return fmt.Errorf("%w: YOUTUBE_API_KEY environment variable is not set", ErrMissingAPIKey)
	}
	if c.TopVideosLimit < 1 || c.TopVideosLimit > maxTopVideosLimit {
		return fmt.Errorf("%w: got %d", ErrInvalidLimit, c.TopVideosLimit)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
