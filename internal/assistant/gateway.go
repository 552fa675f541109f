// Package assistant is the CoPilot gateway to the Anthropic Claude API.
// Callers always get a string back: on any API failure the gateway degrades
// to a fixed fallback message instead of surfacing an error.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/zentryhq/zentry/internal/config"
	"github.com/zentryhq/zentry/internal/metrics"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
)

// systemPersona is the CoPilot system prompt sent with every chat turn.
const systemPersona = "You are ZENtry CoPilot, a helpful business AI assistant integrated into the ZENtry platform. You help with CRM summaries, task planning, and general office productivity. Keep responses concise and professional."

// Fixed user-facing strings. The UI shows these verbatim, so they never change.
const (
	ChatFallback   = "The AI assistant is temporarily unavailable."
	ChatEmptyReply = "I'm sorry, I couldn't process that request."
	TaskFallback   = "Error connecting to AI Assistant."
	TaskEmptyReply = "Failed to generate description."
)

// Snapshot carries the store state the gateway folds into the chat prompt.
type Snapshot struct {
	Projects []models.Project
	Tasks    []models.Task
	Deals    []models.Deal
}

// Gateway wraps the Claude client with ZENtry's prompts and fallbacks.
type Gateway struct {
	client *anthropic.Client
	cfg    config.ClaudeConfig
	logger *slog.Logger
}

// New creates a Gateway backed by the Anthropic Claude API. Extra request
// options are applied to the client; tests use this to point at a local
// HTTP stub.
func New(cfg config.ClaudeConfig, logger *slog.Logger, opts ...option.RequestOption) *Gateway {
	clientOpts := append([]option.RequestOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	c := anthropic.NewClient(clientOpts...)
	return &Gateway{
		client: &c,
		cfg:    cfg,
		logger: logger,
	}
}

// BuildContextPrompt folds the current app state around the user's query so
// CoPilot can ground its answer in live data.
func BuildContextPrompt(userQuery string, snap Snapshot) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "User Query: %q\n\nCurrent App State:\n", userQuery)

	active := make([]string, 0, len(snap.Projects))
	for _, p := range snap.Projects {
		active = append(active, fmt.Sprintf("%s (%g%% complete)", p.Name, p.Growth))
	}
	sb.WriteString("- Active Projects: ")
	sb.WriteString(strings.Join(active, ", "))
	sb.WriteString("\n")

	pending := make([]string, 0, len(snap.Tasks))
	for _, t := range query.PendingTasks(snap.Tasks) {
		pending = append(pending, t.Title)
	}
	sb.WriteString("- Pending Tasks: ")
	sb.WriteString(strings.Join(pending, ", "))
	sb.WriteString("\n")

	fmt.Fprintf(&sb, "- Pipeline Value: $%s across %d deals.\n",
		query.FormatThousands(query.PipelineValue(snap.Deals)), len(snap.Deals))

	sb.WriteString("\nPlease answer based on this context.")
	return sb.String()
}

// Chat sends the user's query to CoPilot with the prior conversation and
// the current app state folded into the prompt, and returns the reply. On
// any failure the fixed fallback string comes back instead of an error.
func (g *Gateway) Chat(ctx context.Context, history []models.Message, userQuery string, snap Snapshot) string {
	metrics.Inc(metrics.AssistantCalls)

	turns := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, m := range history {
		if m.Content == "" {
			continue
		}
		block := anthropic.NewTextBlock(m.Content)
		if m.Role == models.RoleAssistant {
			turns = append(turns, anthropic.NewAssistantMessage(block))
		} else {
			turns = append(turns, anthropic.NewUserMessage(block))
		}
	}
	turns = append(turns, anthropic.NewUserMessage(anthropic.NewTextBlock(BuildContextPrompt(userQuery, snap))))

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.cfg.Model),
		MaxTokens:   g.cfg.ChatMaxTokens,
		Temperature: anthropic.Float(g.cfg.ChatTemperature),
		System: []anthropic.TextBlockParam{
			{Text: systemPersona},
		},
		Messages: turns,
	})
	if err != nil {
		metrics.Inc(metrics.AssistantFallbacks)
		g.logger.Warn("copilot: chat call failed, returning fallback", "error", err)
		return ChatFallback
	}

	text := responseText(resp)
	if text == "" {
		metrics.Inc(metrics.AssistantFallbacks)
		g.logger.Warn("copilot: empty chat response")
		return ChatEmptyReply
	}
	return text
}

// GenerateTaskDescription asks CoPilot for a description of a task given
// only its title. On any failure a fixed fallback string comes back.
func (g *Gateway) GenerateTaskDescription(ctx context.Context, title string) string {
	metrics.Inc(metrics.AssistantCalls)

	prompt := fmt.Sprintf("Generate a professional and detailed description for a business task titled: %q. Include key objectives and potential sub-tasks.", title)
	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(g.cfg.Model),
		MaxTokens:   g.cfg.TaskMaxTokens,
		Temperature: anthropic.Float(g.cfg.TaskTemperature),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		metrics.Inc(metrics.AssistantFallbacks)
		g.logger.Warn("copilot: task description call failed, returning fallback", "error", err)
		return TaskFallback
	}

	text := responseText(resp)
	if text == "" {
		metrics.Inc(metrics.AssistantFallbacks)
		g.logger.Warn("copilot: empty task description response")
		return TaskEmptyReply
	}
	return text
}

// responseText extracts the first text block from a Claude response.
func responseText(resp *anthropic.Message) string {
	for i := range resp.Content {
		if resp.Content[i].Type == "text" {
			return strings.TrimSpace(resp.Content[i].Text)
		}
	}
	return ""
}
