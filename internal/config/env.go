package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	perplexityKey := os.Getenv("PERPLEXITY_API_KEY")
	pexelsKey := os.Getenv("PEXELS_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	jwtSecret := os.Getenv("JWT_SECRET")
	environment := os.Getenv("ENVIRONMENT")

	if perplexityKey == "" {
		return nil, fmt.Errorf("PERPLEXITY_API_KEY environment variable is required")
	}

	if pexelsKey == "" {
		return nil, fmt.Errorf("PEXELS_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	return &Config{
		PerplexityKey: perplexityKey,
		PexelsKey:     pexelsKey,
		DatabaseURL:   databaseURL,
		Environment:   environment,
	}, nil
}
