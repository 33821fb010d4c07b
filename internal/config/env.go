package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const defaultPort = "8000"

// loads configuration from environment variables
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	googleKey := os.Getenv("GOOGLE_API_KEY")
	databaseURL := os.Getenv("DATABASE_URL")
	environment := os.Getenv("ENVIRONMENT")
	port := os.Getenv("PORT")

	if googleKey == "" {
		return nil, fmt.Errorf("GOOGLE_API_KEY environment variable is required")
	}

	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if environment == "" {
		environment = "development"
	}

	if port == "" {
		port = defaultPort
	}

	return &Config{
		GoogleAPIKey: googleKey,
		DatabaseURL:  databaseURL,
		Environment:  environment,
		Port:         port,
	}, nil
}
