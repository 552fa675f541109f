package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// DefaultChatMaxTokens caps a CoPilot chat completion.
	DefaultChatMaxTokens = 1024

	// DefaultTaskMaxTokens caps a generated task description.
	DefaultTaskMaxTokens = 300
)

// Config holds all configuration for zentry.
type Config struct {
	Claude  ClaudeConfig  `mapstructure:"claude"`
	API     APIConfig     `mapstructure:"api"`
	Demo    DemoConfig    `mapstructure:"demo"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ClaudeConfig holds Anthropic Claude API settings.
type ClaudeConfig struct {
	APIKey          string  `mapstructure:"api_key"`
	Model           string  `mapstructure:"model"`
	ChatTemperature float64 `mapstructure:"chat_temperature"`
	TaskTemperature float64 `mapstructure:"task_temperature"`
	ChatMaxTokens   int64   `mapstructure:"chat_max_tokens"`
	TaskMaxTokens   int64   `mapstructure:"task_max_tokens"`
}

// String returns a safe representation of ClaudeConfig with the API key masked.
func (c ClaudeConfig) String() string {
	return fmt.Sprintf("ClaudeConfig{APIKey:%s, Model:%s}", maskAPIKey(c.APIKey), c.Model)
}

// maskAPIKey shows first 4 + last 4 chars, replacing the middle with asterisks.
func maskAPIKey(key string) string {
	const visible = 4
	if len(key) <= visible*2 {
		return "***"
	}
	return key[:visible] + "****" + key[len(key)-visible:]
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	ListenAddr string `mapstructure:"listen_addr"`
	AuthToken  string `mapstructure:"auth_token"`
}

// DemoConfig controls demo data seeding.
type DemoConfig struct {
	Seed bool `mapstructure:"seed"`
}

// SyncConfig controls the background sync status ticker.
type SyncConfig struct {
	IntervalSeconds int `mapstructure:"interval_seconds"`
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from file and environment variables.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("claude.model", "claude-haiku-4-5-20251001")
	v.SetDefault("claude.chat_temperature", 0.8)
	v.SetDefault("claude.task_temperature", 0.7)
	v.SetDefault("claude.chat_max_tokens", DefaultChatMaxTokens)
	v.SetDefault("claude.task_max_tokens", DefaultTaskMaxTokens)

	v.SetDefault("api.listen_addr", ":8080")
	v.SetDefault("api.auth_token", "")

	v.SetDefault("demo.seed", true)
	v.SetDefault("sync.interval_seconds", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(homeDir(), ".zentry"))
	v.AddConfigPath(".")

	// Environment variables
	v.SetEnvPrefix("ZENTRY")
	v.AutomaticEnv()

	// Map specific env vars
	_ = v.BindEnv("claude.api_key", "ANTHROPIC_API_KEY")
	_ = v.BindEnv("claude.model", "ZENTRY_CLAUDE_MODEL")
	_ = v.BindEnv("api.listen_addr", "ZENTRY_API_LISTEN_ADDR")
	_ = v.BindEnv("api.auth_token", "ZENTRY_API_AUTH_TOKEN")
	_ = v.BindEnv("demo.seed", "ZENTRY_DEMO_SEED")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults + env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that required configuration fields are set and consistent.
func (c *Config) Validate() error {
	if c.Claude.Model == "" {
		return fmt.Errorf("claude.model must not be empty")
	}
	if c.Claude.ChatTemperature < 0 || c.Claude.ChatTemperature > 1 {
		return fmt.Errorf("claude.chat_temperature must be between 0 and 1")
	}
	if c.Claude.TaskTemperature < 0 || c.Claude.TaskTemperature > 1 {
		return fmt.Errorf("claude.task_temperature must be between 0 and 1")
	}
	if c.Claude.ChatMaxTokens <= 0 {
		return fmt.Errorf("claude.chat_max_tokens must be greater than 0")
	}
	if c.Claude.TaskMaxTokens <= 0 {
		return fmt.Errorf("claude.task_max_tokens must be greater than 0")
	}
	if c.API.ListenAddr == "" {
		return fmt.Errorf("api.listen_addr must not be empty")
	}
	if c.Sync.IntervalSeconds <= 0 {
		return fmt.Errorf("sync.interval_seconds must be greater than 0")
	}
	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
