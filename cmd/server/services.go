package main

import (
	"codeberg.org/da-project/server/internal/config"
	"codeberg.org/da-project/server/internal/gemini"
)

// holds all external service clients
type Services struct {
	Generator gemini.Generator
}

// creates and configures all service clients
func InitializeServices(cfg *config.Config) *Services {
	geminiClient := gemini.NewClient(gemini.Config{
		APIKey: cfg.GoogleAPIKey,
	})

	return &Services{
		Generator: geminiClient,
	}
}
