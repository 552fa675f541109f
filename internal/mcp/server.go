// Package mcp implements the Model Context Protocol server for zentry.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	mcpgo "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/zentryhq/zentry/internal/assistant"
	"github.com/zentryhq/zentry/internal/models"
	"github.com/zentryhq/zentry/internal/query"
	"github.com/zentryhq/zentry/internal/store"
)

// Server wraps an MCPServer with zentry dependencies.
type Server struct {
	mcp     *mcpserver.MCPServer
	st      *store.Store
	copilot *assistant.Gateway
	logger  *slog.Logger
}

// NewServer creates a new MCP server. If st or copilot are nil, the
// corresponding tool calls return an error response instead of panicking.
func NewServer(st *store.Store, copilot *assistant.Gateway, logger *slog.Logger) *Server {
	s := &Server{
		st:      st,
		copilot: copilot,
		logger:  logger,
	}

	mcpSrv := mcpserver.NewMCPServer(
		"zentry",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	mcpSrv.AddTool(buildCreateDealTool(), s.handleCreateDeal)
	mcpSrv.AddTool(buildUpdateDealTool(), s.handleUpdateDeal)
	mcpSrv.AddTool(buildDeleteDealTool(), s.handleDeleteDeal)
	mcpSrv.AddTool(buildListDealsTool(), s.handleListDeals)
	mcpSrv.AddTool(buildCreateTaskTool(), s.handleCreateTask)
	mcpSrv.AddTool(buildCompleteTaskTool(), s.handleCompleteTask)
	mcpSrv.AddTool(buildLogTimeTool(), s.handleLogTime)
	mcpSrv.AddTool(buildListTasksTool(), s.handleListTasks)
	mcpSrv.AddTool(buildCreateContactTool(), s.handleCreateContact)
	mcpSrv.AddTool(buildDashboardStatsTool(), s.handleDashboardStats)
	mcpSrv.AddTool(buildChatCopilotTool(), s.handleChatCopilot)

	s.mcp = mcpSrv
	return s
}

// MCPServer returns the underlying mcp-go MCPServer for use with ServeStdio.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcp
}

// Exported handlers for direct testing without the mcp-go transport layer.

// HandleCreateDeal is the exported handler for the "create_deal" tool.
func (s *Server) HandleCreateDeal(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleCreateDeal(ctx, req)
}

// HandleUpdateDeal is the exported handler for the "update_deal" tool.
func (s *Server) HandleUpdateDeal(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleUpdateDeal(ctx, req)
}

// HandleDeleteDeal is the exported handler for the "delete_deal" tool.
func (s *Server) HandleDeleteDeal(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDeleteDeal(ctx, req)
}

// HandleListDeals is the exported handler for the "list_deals" tool.
func (s *Server) HandleListDeals(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListDeals(ctx, req)
}

// HandleCreateTask is the exported handler for the "create_task" tool.
func (s *Server) HandleCreateTask(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleCreateTask(ctx, req)
}

// HandleCompleteTask is the exported handler for the "complete_task" tool.
func (s *Server) HandleCompleteTask(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleCompleteTask(ctx, req)
}

// HandleLogTime is the exported handler for the "log_time" tool.
func (s *Server) HandleLogTime(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleLogTime(ctx, req)
}

// HandleListTasks is the exported handler for the "list_tasks" tool.
func (s *Server) HandleListTasks(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleListTasks(ctx, req)
}

// HandleCreateContact is the exported handler for the "create_contact" tool.
func (s *Server) HandleCreateContact(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleCreateContact(ctx, req)
}

// HandleDashboardStats is the exported handler for the "dashboard_stats" tool.
func (s *Server) HandleDashboardStats(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleDashboardStats(ctx, req)
}

// HandleChatCopilot is the exported handler for the "chat_copilot" tool.
func (s *Server) HandleChatCopilot(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	return s.handleChatCopilot(ctx, req)
}

// --- helpers ---

// toolResultJSON marshals v to JSON and returns it as a tool text result.
func toolResultJSON(v any) (*mcpgo.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("mcp: marshaling result: %w", err)
	}
	return mcpgo.NewToolResultText(string(b)), nil
}

// --- tool definitions ---

func buildCreateDealTool() mcpgo.Tool {
	return mcpgo.NewTool("create_deal",
		mcpgo.WithDescription("Create a sales deal in the ZENtry pipeline."),
		mcpgo.WithString("title",
			mcpgo.Required(),
			mcpgo.Description("Deal title"),
		),
		mcpgo.WithString("company",
			mcpgo.Description("Company the deal is with"),
		),
		mcpgo.WithNumber("amount",
			mcpgo.Description("Deal amount in dollars"),
		),
		mcpgo.WithString("stage",
			mcpgo.Description("Pipeline stage: lead, qualified, proposal, won, or lost (default: lead)"),
		),
		mcpgo.WithString("contact",
			mcpgo.Description("Primary contact name"),
		),
	)
}

func buildUpdateDealTool() mcpgo.Tool {
	return mcpgo.NewTool("update_deal",
		mcpgo.WithDescription("Update fields on an existing deal. Omitted fields are left untouched."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The ID of the deal to update"),
		),
		mcpgo.WithString("title",
			mcpgo.Description("New deal title"),
		),
		mcpgo.WithString("company",
			mcpgo.Description("New company"),
		),
		mcpgo.WithNumber("amount",
			mcpgo.Description("New amount in dollars"),
		),
		mcpgo.WithString("stage",
			mcpgo.Description("New pipeline stage: lead, qualified, proposal, won, or lost"),
		),
		mcpgo.WithString("contact",
			mcpgo.Description("New primary contact name"),
		),
	)
}

func buildDeleteDealTool() mcpgo.Tool {
	return mcpgo.NewTool("delete_deal",
		mcpgo.WithDescription("Delete a deal by ID. Deleting an unknown ID is a no-op."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The ID of the deal to delete"),
		),
	)
}

func buildListDealsTool() mcpgo.Tool {
	return mcpgo.NewTool("list_deals",
		mcpgo.WithDescription("List deals, optionally filtered by a search query or magnitude bucket."),
		mcpgo.WithString("query",
			mcpgo.Description("Case-insensitive substring match on title or company"),
		),
		mcpgo.WithString("magnitude",
			mcpgo.Description("Amount bucket: high (>= 200k), mid (50k-200k), or low (< 50k)"),
		),
	)
}

func buildCreateTaskTool() mcpgo.Tool {
	return mcpgo.NewTool("create_task",
		mcpgo.WithDescription("Create a task, optionally attached to a project."),
		mcpgo.WithString("title",
			mcpgo.Required(),
			mcpgo.Description("Task title"),
		),
		mcpgo.WithString("description",
			mcpgo.Description("Task description"),
		),
		mcpgo.WithString("project_id",
			mcpgo.Description("Project the task belongs to"),
		),
		mcpgo.WithString("priority",
			mcpgo.Description("Task priority: low, medium, or high (default: medium)"),
		),
		mcpgo.WithString("assignee",
			mcpgo.Description("Assignee display name"),
		),
		mcpgo.WithString("due_date",
			mcpgo.Description("Due date in YYYY-MM-DD form"),
		),
	)
}

func buildCompleteTaskTool() mcpgo.Tool {
	return mcpgo.NewTool("complete_task",
		mcpgo.WithDescription("Move a task to the done column."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The ID of the task to complete"),
		),
	)
}

func buildLogTimeTool() mcpgo.Tool {
	return mcpgo.NewTool("log_time",
		mcpgo.WithDescription("Append a time log entry to a task. Logs are immutable once recorded."),
		mcpgo.WithString("id",
			mcpgo.Required(),
			mcpgo.Description("The ID of the task to log time against"),
		),
		mcpgo.WithNumber("duration_seconds",
			mcpgo.Required(),
			mcpgo.Description("Duration to log, in seconds"),
		),
	)
}

func buildListTasksTool() mcpgo.Tool {
	return mcpgo.NewTool("list_tasks",
		mcpgo.WithDescription("List tasks, optionally filtered by search query, project, or due bucket."),
		mcpgo.WithString("query",
			mcpgo.Description("Case-insensitive substring match on title"),
		),
		mcpgo.WithString("project_id",
			mcpgo.Description("Only tasks for this project"),
		),
		mcpgo.WithString("due",
			mcpgo.Description("Due bucket: overdue or today"),
		),
	)
}

func buildCreateContactTool() mcpgo.Tool {
	return mcpgo.NewTool("create_contact",
		mcpgo.WithDescription("Create a CRM contact."),
		mcpgo.WithString("name",
			mcpgo.Required(),
			mcpgo.Description("Contact name"),
		),
		mcpgo.WithString("email",
			mcpgo.Description("Contact email"),
		),
		mcpgo.WithString("company",
			mcpgo.Description("Contact company"),
		),
		mcpgo.WithString("status",
			mcpgo.Description("Contact status: lead, deal, or contact (default: lead)"),
		),
		mcpgo.WithNumber("value",
			mcpgo.Description("Contact lifetime value in dollars"),
		),
	)
}

func buildDashboardStatsTool() mcpgo.Tool {
	return mcpgo.NewTool("dashboard_stats",
		mcpgo.WithDescription("Get headline stats: pipeline value, deal and task counts, tracked hours, team size."),
	)
}

func buildChatCopilotTool() mcpgo.Tool {
	return mcpgo.NewTool("chat_copilot",
		mcpgo.WithDescription("Ask ZENtry CoPilot a question grounded in the current app state."),
		mcpgo.WithString("message",
			mcpgo.Required(),
			mcpgo.Description("The question to ask"),
		),
	)
}

// --- tool handlers ---

func (s *Server) handleCreateDeal(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	title := req.GetString("title", "")
	if strings.TrimSpace(title) == "" {
		return mcpgo.NewToolResultError("title is required and must not be empty"), nil
	}

	stage := models.StageLead
	if st := req.GetString("stage", ""); st != "" {
		candidate := models.DealStage(st)
		if !candidate.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid stage %q: must be one of lead, qualified, proposal, won, lost", st), nil
		}
		stage = candidate
	}

	deal := s.st.AddDeal(models.Deal{
		Title:   title,
		Company: req.GetString("company", ""),
		Amount:  req.GetFloat("amount", 0),
		Stage:   stage,
		Contact: req.GetString("contact", ""),
	})

	s.logger.Info("mcp: create_deal", "id", deal.ID, "stage", deal.Stage)
	return toolResultJSON(deal)
}

func (s *Server) handleUpdateDeal(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	id := req.GetString("id", "")
	if id == "" {
		return mcpgo.NewToolResultError("id is required"), nil
	}

	var patch store.DealPatch
	if t := req.GetString("title", ""); t != "" {
		patch.Title = &t
	}
	if c := req.GetString("company", ""); c != "" {
		patch.Company = &c
	}
	if a := req.GetFloat("amount", -1); a >= 0 {
		patch.Amount = &a
	}
	if st := req.GetString("stage", ""); st != "" {
		candidate := models.DealStage(st)
		if !candidate.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid stage %q: must be one of lead, qualified, proposal, won, lost", st), nil
		}
		patch.Stage = &candidate
	}
	if c := req.GetString("contact", ""); c != "" {
		patch.Contact = &c
	}

	deal, ok := s.st.UpdateDeal(id, patch)
	if !ok {
		return mcpgo.NewToolResultErrorf("deal %q not found", id), nil
	}
	return toolResultJSON(deal)
}

func (s *Server) handleDeleteDeal(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	id := req.GetString("id", "")
	if id == "" {
		return mcpgo.NewToolResultError("id is required"), nil
	}

	s.st.DeleteDeal(id)
	return toolResultJSON(map[string]any{"deleted": true})
}

func (s *Server) handleListDeals(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	deals := query.SearchDeals(s.st.Deals(), req.GetString("query", ""))
	if m := req.GetString("magnitude", ""); m != "" {
		deals = query.FilterDealsByMagnitude(deals, query.Magnitude(m))
	}
	return toolResultJSON(deals)
}

func (s *Server) handleCreateTask(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	title := req.GetString("title", "")
	if strings.TrimSpace(title) == "" {
		return mcpgo.NewToolResultError("title is required and must not be empty"), nil
	}

	priority := models.PriorityMedium
	if p := req.GetString("priority", ""); p != "" {
		candidate := models.TaskPriority(p)
		if !candidate.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid priority %q: must be one of low, medium, high", p), nil
		}
		priority = candidate
	}

	task := s.st.AddTask(models.Task{
		ProjectID:   req.GetString("project_id", ""),
		Title:       title,
		Description: req.GetString("description", ""),
		Status:      models.TaskTodo,
		Priority:    priority,
		Assignee:    req.GetString("assignee", ""),
		DueDate:     req.GetString("due_date", ""),
	})

	s.logger.Info("mcp: create_task", "id", task.ID, "priority", task.Priority)
	return toolResultJSON(task)
}

func (s *Server) handleCompleteTask(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	id := req.GetString("id", "")
	if id == "" {
		return mcpgo.NewToolResultError("id is required"), nil
	}

	done := models.TaskDone
	task, ok := s.st.UpdateTask(id, store.TaskPatch{Status: &done})
	if !ok {
		return mcpgo.NewToolResultErrorf("task %q not found", id), nil
	}
	return toolResultJSON(task)
}

func (s *Server) handleLogTime(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	id := req.GetString("id", "")
	if id == "" {
		return mcpgo.NewToolResultError("id is required"), nil
	}
	seconds := int64(req.GetFloat("duration_seconds", 0))
	if seconds <= 0 {
		return mcpgo.NewToolResultError("duration_seconds must be greater than 0"), nil
	}

	task, ok := s.st.AppendTimeLog(id, models.TimeLog{
		Duration:  seconds,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if !ok {
		return mcpgo.NewToolResultErrorf("task %q not found", id), nil
	}

	total := query.TaskSeconds(task)
	return toolResultJSON(map[string]any{
		"task":          task,
		"total_seconds": total,
		"total_display": query.FormatDuration(total),
	})
}

func (s *Server) handleListTasks(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	tasks := query.SearchTasks(s.st.Tasks(), req.GetString("query", ""))
	if pid := req.GetString("project_id", ""); pid != "" {
		tasks = query.TasksForProject(tasks, pid)
	}
	switch req.GetString("due", "") {
	case "overdue":
		tasks = query.OverdueTasks(tasks, time.Now())
	case "today":
		tasks = query.TasksDueToday(tasks, time.Now())
	}
	return toolResultJSON(tasks)
}

func (s *Server) handleCreateContact(_ context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	name := req.GetString("name", "")
	if strings.TrimSpace(name) == "" {
		return mcpgo.NewToolResultError("name is required and must not be empty"), nil
	}

	contactStatus := models.ContactStatusLead
	if st := req.GetString("status", ""); st != "" {
		candidate := models.ContactStatus(st)
		if !candidate.IsValid() {
			return mcpgo.NewToolResultErrorf("invalid status %q: must be one of lead, deal, contact", st), nil
		}
		contactStatus = candidate
	}

	contact := s.st.AddContact(models.Contact{
		Name:    name,
		Email:   req.GetString("email", ""),
		Company: req.GetString("company", ""),
		Status:  contactStatus,
		Value:   req.GetFloat("value", 0),
	})

	s.logger.Info("mcp: create_contact", "id", contact.ID, "status", contact.Status)
	return toolResultJSON(contact)
}

func (s *Server) handleDashboardStats(_ context.Context, _ mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}

	stats := query.Dashboard(s.st.Deals(), s.st.Tasks(), s.st.TeamMembers(), s.st.Projects(), s.st.Campaigns(), s.st.Sites())
	return toolResultJSON(stats)
}

func (s *Server) handleChatCopilot(ctx context.Context, req mcpgo.CallToolRequest) (*mcpgo.CallToolResult, error) {
	if s.st == nil {
		return mcpgo.NewToolResultError("store is unavailable"), nil
	}
	if s.copilot == nil {
		return mcpgo.NewToolResultError("copilot is unavailable"), nil
	}

	message := req.GetString("message", "")
	if strings.TrimSpace(message) == "" {
		return mcpgo.NewToolResultError("message is required and must not be empty"), nil
	}

	reply := s.copilot.Chat(ctx, nil, message, assistant.Snapshot{
		Projects: s.st.Projects(),
		Tasks:    s.st.Tasks(),
		Deals:    s.st.Deals(),
	})
	return mcpgo.NewToolResultText(reply), nil
}
