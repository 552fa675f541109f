package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/models"
)

func chatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to ZENtry CoPilot from the terminal",
		Long: `Starts an interactive CoPilot session grounded in the demo dataset.
Type a message and press enter; an empty line or EOF ends the session.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			st := newStore()
			copilot := newCopilot(logger)

			snap := assistant.Snapshot{
				Projects: st.Projects(),
				Tasks:    st.Tasks(),
				Deals:    st.Deals(),
			}

			var history []models.Message
			scanner := bufio.NewScanner(os.Stdin)
			fmt.Println("ZENtry CoPilot. Empty line to quit.")
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "" {
					break
				}

				reply := copilot.Chat(cmd.Context(), history, line, snap)
				fmt.Println(reply)

				now := time.Now().UTC().Format(time.RFC3339)
				history = append(history,
					models.Message{ID: uuid.NewString(), Role: models.RoleUser, Content: line, Timestamp: now},
					models.Message{ID: uuid.NewString(), Role: models.RoleAssistant, Content: reply, Timestamp: now},
				)
			}
			return scanner.Err()
		},
	}
}
