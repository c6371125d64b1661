package main

import (
	"codeberg.org/webforge/server/internal/config"
	"codeberg.org/webforge/server/internal/generator"
	"codeberg.org/webforge/server/internal/llm"
	"codeberg.org/webforge/server/internal/pexels"
	"codeberg.org/webforge/server/webforge/users"
)

// creates and configures all service clients
func InitializeServices(cfg *config.Config, userRepo *users.Repository) *Services {
	llmClient := llm.NewPerplexityClient(llm.PerplexityConfig{
		APIKey: cfg.PerplexityKey,
	})

	generatorService := generator.New(userRepo, llmClient)
	pexelsClient := pexels.NewClient(cfg.PexelsKey)

	return &Services{
		Generator: generatorService,
		LLM:       llmClient,
		Pexels:    pexelsClient,
	}
}
