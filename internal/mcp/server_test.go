package mcp_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	zentrymcp "github.com/zentryhq/zentry/internal/mcp"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/store"
)

// newMCPServer returns a Server backed by an empty store and no copilot.
func newMCPServer(t *testing.T) (*zentrymcp.Server, *store.Store) {
	t.Helper()
	st := store.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	srv := zentrymcp.NewServer(st, nil, logger)
	return srv, st
}

// makeReq builds a CallToolRequest with the given string/number arguments.
func makeReq(toolName string, args map[string]any) mcpgo.CallToolRequest {
	req := mcpgo.CallToolRequest{}
	req.Params.Name = toolName
	req.Params.Arguments = args
	return req
}

// textContent extracts the first TextContent string from a CallToolResult.
func textContent(t *testing.T, result *mcpgo.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content, "expected at least one content item")
	tc, ok := result.Content[0].(mcpgo.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	return tc.Text
}

func TestMCPCreateDeal_StoresDeal(t *testing.T) {
	srv, st := newMCPServer(t)
	ctx := context.Background()

	result, err := srv.HandleCreateDeal(ctx, makeReq("create_deal", map[string]any{
		"title":   "ERP Implementation",
		"company": "Reliance Ind.",
		"amount":  450000.0,
		"stage":   "proposal",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError, "create_deal returned error: %s", textContent(t, result))

	var deal models.Deal
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &deal))
	require.NotEmpty(t, deal.ID)
	assert.Equal(t, models.StageProposal, deal.Stage)

	stored, ok := st.GetDeal(deal.ID)
	require.True(t, ok)
	assert.Equal(t, 450000.0, stored.Amount)
}

func TestMCPCreateDeal_InvalidStage(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleCreateDeal(context.Background(), makeReq("create_deal", map[string]any{
		"title": "Bad",
		"stage": "negotiation",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPCreateDeal_MissingTitle(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleCreateDeal(context.Background(), makeReq("create_deal", map[string]any{
		"company": "No Title Inc.",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPUpdateDeal_PatchesOnlyProvidedFields(t *testing.T) {
	srv, st := newMCPServer(t)
	d := st.AddDeal(models.Deal{Title: "Cloud Migration", Company: "Tata", Amount: 120000, Stage: models.StageProposal})

	result, err := srv.HandleUpdateDeal(context.Background(), makeReq("update_deal", map[string]any{
		"id":    d.ID,
		"stage": "won",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var deal models.Deal
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &deal))
	assert.Equal(t, models.StageWon, deal.Stage)
	assert.Equal(t, "Cloud Migration", deal.Title)
	assert.Equal(t, 120000.0, deal.Amount)
}

func TestMCPUpdateDeal_UnknownID(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleUpdateDeal(context.Background(), makeReq("update_deal", map[string]any{
		"id":    "missing",
		"stage": "won",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPDeleteDeal_UnknownIDIsNoOp(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleDeleteDeal(context.Background(), makeReq("delete_deal", map[string]any{
		"id": "missing",
	}))
	require.NoError(t, err)
	assert.False(t, result.IsError)
}

func TestMCPListDeals_MagnitudeFilter(t *testing.T) {
	srv, st := newMCPServer(t)
	st.AddDeal(models.Deal{Title: "Big", Amount: 450000})
	st.AddDeal(models.Deal{Title: "Mid", Amount: 120000})
	st.AddDeal(models.Deal{Title: "Small", Amount: 1000})

	result, err := srv.HandleListDeals(context.Background(), makeReq("list_deals", map[string]any{
		"magnitude": "mid",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var deals []models.Deal
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &deals))
	require.Len(t, deals, 1)
	assert.Equal(t, "Mid", deals[0].Title)
}

func TestMCPCompleteTask_MovesToDone(t *testing.T) {
	srv, st := newMCPServer(t)
	task := st.AddTask(models.Task{Title: "Finish report", Status: models.TaskInProgress})

	result, err := srv.HandleCompleteTask(context.Background(), makeReq("complete_task", map[string]any{
		"id": task.ID,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var done models.Task
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &done))
	assert.Equal(t, models.TaskDone, done.Status)
}

func TestMCPLogTime_AppendsAndFormats(t *testing.T) {
	srv, st := newMCPServer(t)
	task := st.AddTask(models.Task{Title: "Tracked"})

	result, err := srv.HandleLogTime(context.Background(), makeReq("log_time", map[string]any{
		"id":               task.ID,
		"duration_seconds": 3661.0,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var out struct {
		TotalSeconds int64  `json:"total_seconds"`
		TotalDisplay string `json:"total_display"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &out))
	assert.Equal(t, int64(3661), out.TotalSeconds)
	assert.Equal(t, "1h 1m 1s", out.TotalDisplay)
}

func TestMCPLogTime_RejectsNonPositiveDuration(t *testing.T) {
	srv, st := newMCPServer(t)
	task := st.AddTask(models.Task{Title: "Tracked"})

	result, err := srv.HandleLogTime(context.Background(), makeReq("log_time", map[string]any{
		"id":               task.ID,
		"duration_seconds": 0.0,
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestMCPCreateContact_DefaultsToLead(t *testing.T) {
	srv, st := newMCPServer(t)

	result, err := srv.HandleCreateContact(context.Background(), makeReq("create_contact", map[string]any{
		"name": "Mohit Gupta",
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var contact models.Contact
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &contact))
	assert.Equal(t, models.ContactStatusLead, contact.Status)

	require.Len(t, st.Contacts(), 1)
}

func TestMCPDashboardStats(t *testing.T) {
	srv, st := newMCPServer(t)
	st.Seed()

	result, err := srv.HandleDashboardStats(context.Background(), makeReq("dashboard_stats", nil))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var stats struct {
		PipelineValue float64 `json:"pipeline_value"`
		DealCount     int     `json:"deal_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(textContent(t, result)), &stats))
	assert.Equal(t, 570000.0, stats.PipelineValue)
	assert.Equal(t, 2, stats.DealCount)
}

func TestMCPChatCopilot_NilGateway(t *testing.T) {
	srv, _ := newMCPServer(t)

	result, err := srv.HandleChatCopilot(context.Background(), makeReq("chat_copilot", map[string]any{
		"message": "hello",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
