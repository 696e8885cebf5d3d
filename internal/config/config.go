package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port  string `envconfig:"PORT" default:"8080"`
	Debug bool   `envconfig:"DEBUG" default:"false"`

	OpenAIAPIKey string `envconfig:"OPENAI_API_KEY"`

	// Optional JSON file overriding the embedded knowledge base
	KnowledgeFile string `envconfig:"KNOWLEDGE_FILE"`

	// Per-session chat message cap
	SessionLimit int `envconfig:"SESSION_LIMIT" default:"10"`

	// Transport-level throttle for /api/ask, per client IP
	ThrottleRPS   float64 `envconfig:"THROTTLE_RPS" default:"1"`
	ThrottleBurst int     `envconfig:"THROTTLE_BURST" default:"5"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("PORTFOLIO", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return cfg
}

func (c *Config) HasOpenAI() bool {
	return c.OpenAIAPIKey != ""
}
