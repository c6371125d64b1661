package config

type Config struct {
	PerplexityKey string
	PexelsKey     string
	DatabaseURL   string
	Environment   string
}
