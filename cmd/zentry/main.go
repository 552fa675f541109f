package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/config"
	"github.com/zentryhq/zentry/internal/store"
)

var cfg *config.Config

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Missing .env is fine; real env vars still apply.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "zentry",
		Short: "ZENtry — in-memory business management core",
		Long:  "ZENtry keeps CRM, project, marketing and team data in one in-memory core with derived dashboard views and a CoPilot assistant.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(
		serveCmd(),
		mcpCmd(),
		chatCmd(),
		statsCmd(),
	)

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if cfg != nil && cfg.Logging.Level == "debug" {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg != nil && cfg.Logging.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

func newStore() *store.Store {
	st := store.New()
	if cfg.Demo.Seed {
		st.Seed()
	}
	return st
}

func newCopilot(logger *slog.Logger) *assistant.Gateway {
	return assistant.New(cfg.Claude, logger)
}
