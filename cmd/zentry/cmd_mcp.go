package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	mcpserver "github.com/mark3labs/mcp-go/server"

	zentrymcp "github.com/zentryhq/zentry/internal/mcp"
)

func mcpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP (Model Context Protocol) server over stdio",
		Long: `Starts an MCP JSON-RPC 2.0 server that reads from stdin and writes to stdout.
All diagnostic logs go to stderr so that stdout remains exclusively MCP protocol traffic.

Tools exposed:
  create_deal      — create a sales deal
  update_deal      — patch fields on a deal
  delete_deal      — delete a deal by ID
  list_deals       — list deals with optional search and magnitude filter
  create_task      — create a task
  complete_task    — move a task to done
  log_time         — append a time log entry to a task
  list_tasks       — list tasks with optional filters
  create_contact   — create a CRM contact
  dashboard_stats  — headline dashboard numbers
  chat_copilot     — ask CoPilot a question grounded in app state

If the Claude API is unavailable, chat_copilot degrades to a fixed fallback
message; every other tool works entirely against the in-memory store.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger()

			st := newStore()
			copilot := newCopilot(logger)

			srv := zentrymcp.NewServer(st, copilot, logger)

			// Use a standard log.Logger pointing at stderr for the mcp-go error logger.
			errLogger := log.New(os.Stderr, "mcp: ", log.LstdFlags)

			logger.Info("mcp: zentry MCP server starting", "transport", "stdio")

			return mcpserver.ServeStdio(
				srv.MCPServer(),
				mcpserver.WithErrorLogger(errLogger),
			)
		},
	}

	return cmd
}
