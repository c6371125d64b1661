package main

import (
	"codeberg.org/webforge/server/internal/config"
	"codeberg.org/webforge/server/internal/generator"
	"codeberg.org/webforge/server/internal/llm"
	"codeberg.org/webforge/server/internal/pexels"
	"codeberg.org/webforge/server/webforge/users"
	"codeberg.org/webforge/server/webforge/websites"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	userRepo    *users.Repository
	websiteRepo *websites.Repository
	services    *Services
	router      *gin.Engine
}

// holds all external service clients (LLM, generation pipeline, images)
type Services struct {
	Generator *generator.Service
	LLM       llm.TextGenerator
	Pexels    *pexels.Client
}
