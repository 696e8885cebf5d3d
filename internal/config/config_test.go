package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_WithEnvVars(t *testing.T) {
	os.Setenv("PORTFOLIO_PORT", "9090")
	os.Setenv("PORTFOLIO_DEBUG", "true")
	os.Setenv("PORTFOLIO_OPENAI_API_KEY", "sk-test")
	os.Setenv("PORTFOLIO_KNOWLEDGE_FILE", "/tmp/kb.json")
	os.Setenv("PORTFOLIO_SESSION_LIMIT", "5")
	defer func() {
		os.Unsetenv("PORTFOLIO_PORT")
		os.Unsetenv("PORTFOLIO_DEBUG")
		os.Unsetenv("PORTFOLIO_OPENAI_API_KEY")
		os.Unsetenv("PORTFOLIO_KNOWLEDGE_FILE")
		os.Unsetenv("PORTFOLIO_SESSION_LIMIT")
	}()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "/tmp/kb.json", cfg.KnowledgeFile)
	assert.Equal(t, 5, cfg.SessionLimit)
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 10, cfg.SessionLimit)
	assert.Equal(t, 1.0, cfg.ThrottleRPS)
	assert.Equal(t, 5, cfg.ThrottleBurst)
}

func TestHasOpenAI(t *testing.T) {
	cfg := &Config{OpenAIAPIKey: "sk-test"}
	assert.True(t, cfg.HasOpenAI())

	cfg.OpenAIAPIKey = ""
	assert.False(t, cfg.HasOpenAI())
}
