package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentryhq/zentry/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.API.ListenAddr)
	assert.NotEmpty(t, cfg.Claude.Model)
	assert.Equal(t, 0.8, cfg.Claude.ChatTemperature)
	assert.Equal(t, 0.7, cfg.Claude.TaskTemperature)
	assert.Equal(t, int64(config.DefaultTaskMaxTokens), cfg.Claude.TaskMaxTokens)
	assert.True(t, cfg.Demo.Seed)
	assert.Equal(t, 5, cfg.Sync.IntervalSeconds)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ZENTRY_API_AUTH_TOKEN", "sekrit")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "sekrit", cfg.API.AuthToken)
	assert.Equal(t, "sk-ant-test", cfg.Claude.APIKey)
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.Claude.ChatTemperature = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Claude.ChatTemperature = 0.8
	cfg.Claude.TaskMaxTokens = 0
	assert.Error(t, cfg.Validate())

	cfg.Claude.TaskMaxTokens = 300
	cfg.Sync.IntervalSeconds = 0
	assert.Error(t, cfg.Validate())
}

func TestClaudeConfig_StringMasksAPIKey(t *testing.T) {
	c := config.ClaudeConfig{APIKey: "sk-ant-abcdef123456", Model: "claude-haiku-4-5-20251001"}
	s := c.String()
	assert.NotContains(t, s, "abcdef123456")
	assert.Contains(t, s, "sk-a")

	short := config.ClaudeConfig{APIKey: "tiny"}
	assert.Contains(t, short.String(), "***")
}
